// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package odcs reads Open Data Contract Standard documents.
//
// Contracts are decoded into a generic doctree.Node rather than fixed
// structs: ODCS is a loosely-typed, schema-evolving format, and unknown
// or extension fields must survive untouched. Both ODCS-style documents
// (apiVersion, schema, slaProperties) and Data Contract Specification
// style documents (dataContractSpecification, models, servicelevels)
// decode the same way; downstream consumers pattern-match on the keys
// they understand.
package odcs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/odpsmap/internal/doctree"
)

// ParseError wraps a deserializer failure for a malformed contract.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("invalid contract: %v", e.Err) }

// Unwrap returns the underlying deserializer error.
func (e *ParseError) Unwrap() error { return e.Err }

// Parser decodes an ODCS contract from an io.Reader.
type Parser struct {
	parse func([]byte) (*doctree.Node, error)
}

var (
	// JSON parses contracts from JSON.
	JSON = Parser{doctree.DecodeJSON}
	// YAML parses contracts from YAML.
	YAML = Parser{doctree.DecodeYAML}
)

// Parse decodes a contract from r. Malformed input yields a *ParseError;
// the document is otherwise passed through as-is, including extension
// blocks this tool does not interpret.
func (p Parser) Parse(r io.Reader) (*doctree.Node, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := p.parse(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if doc.Kind() != doctree.Mapping {
		return nil, &ParseError{Err: errors.New("contract root is not a mapping")}
	}
	return doc, nil
}

// ParserForPath picks a parser from the file extension. YAML is the
// default for unknown extensions.
func ParserForPath(path string) Parser {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// ParseFile reads and decodes the contract at path.
func ParseFile(path string) (*doctree.Node, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return ParserForPath(path).Parse(f)
}
