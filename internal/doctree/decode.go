// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package doctree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes YAML text into a document tree. Mapping keys keep
// the order they appear in the source.
func DecodeYAML(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return NewNull(), nil
	}
	return fromYAML(&root)
}

func fromYAML(yn *yaml.Node) (*Node, error) {
	switch yn.Kind {
	case yaml.DocumentNode:
		if len(yn.Content) == 0 {
			return NewNull(), nil
		}
		return fromYAML(yn.Content[0])
	case yaml.AliasNode:
		return fromYAML(yn.Alias)
	case yaml.ScalarNode:
		return fromYAMLScalar(yn)
	case yaml.SequenceNode:
		seq := NewSequence()
		for _, item := range yn.Content {
			child, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			seq.Append(child)
		}
		return seq, nil
	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i < len(yn.Content); i += 2 {
			key := yn.Content[i].Value
			child, err := fromYAML(yn.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key, child)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d", yn.Kind)
	}
}

func fromYAMLScalar(yn *yaml.Node) (*Node, error) {
	switch yn.Tag {
	case "!!null":
		return NewNull(), nil
	case "!!bool":
		var v bool
		if err := yn.Decode(&v); err != nil {
			return nil, err
		}
		return NewBool(v), nil
	case "!!int":
		var v int64
		if err := yn.Decode(&v); err != nil {
			return nil, err
		}
		return NewInt(v), nil
	case "!!float":
		var v float64
		if err := yn.Decode(&v); err != nil {
			return nil, err
		}
		return NewFloat(v), nil
	default:
		// Strings, timestamps, and unknown tags keep their literal text.
		return NewString(yn.Value), nil
	}
}

// DecodeJSON decodes JSON text into a document tree. Object keys keep
// the order they appear in the source, which encoding/json's map types
// would lose; the token stream is walked directly instead.
func DecodeJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := fromJSON(dec)
	if err != nil {
		return nil, err
	}
	// Trailing content after the first value is malformed input.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected trailing content")
	}
	return n, nil
}

func fromJSON(dec *json.Decoder) (*Node, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return fromJSONToken(dec, token)
}

func fromJSONToken(dec *json.Decoder, token json.Token) (*Node, error) {
	switch t := token.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return NewInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return NewFloat(f), nil
	case json.Delim:
		switch t {
		case '{':
			m := NewMapping()
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyToken.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyToken)
				}
				child, err := fromJSON(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			seq := NewSequence()
			for dec.More() {
				child, err := fromJSON(dec)
				if err != nil {
					return nil, err
				}
				seq.Append(child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return seq, nil
		}
	}
	return nil, fmt.Errorf("unexpected JSON token %v", token)
}
