// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeYAML_RoundTripPreservesOrder(t *testing.T) {
	src := []byte(`zebra: 1
apple: two
mango:
  nested: true
  other: null
seq:
  - 1
  - 99.5
`)
	doc, err := DecodeYAML(src)
	require.NoError(t, err)

	out, err := EncodeYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(out))
}

func TestEncodeJSON_PreservesOrder(t *testing.T) {
	m := NewMapping()
	m.Set("zebra", NewInt(1))
	m.Set("apple", NewString("two"))
	m.Set("flag", NewBool(true))
	m.Set("nothing", NewNull())

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"zebra":1,"apple":"two","flag":true,"nothing":null}`, string(data))
	// Order matters, not just equivalence.
	assert.Equal(t, `{"zebra":1,"apple":"two","flag":true,"nothing":null}`, string(data))
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	src := []byte(`{"b": [1, 2.5, "x"], "a": {"nested": null}}`)
	doc, err := DecodeJSON(src)
	require.NoError(t, err)

	out, err := EncodeJSON(doc)
	require.NoError(t, err)

	again, err := DecodeJSON(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Keys(), again.Keys())
	assert.Equal(t, doc.Interface(), again.Interface())
}

func TestNode_SetKeepsPosition(t *testing.T) {
	m := NewMapping()
	m.Set("a", NewInt(1))
	m.Set("b", NewInt(2))
	m.Set("a", NewInt(3))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, int64(3), m.Get("a").Int())
}

func TestNode_Clone(t *testing.T) {
	doc, err := DecodeYAML([]byte("a:\n  b: 1\nc:\n  - x\n"))
	require.NoError(t, err)

	clone := doc.Clone()
	clone.At("a").Set("b", NewInt(99))
	clone.Get("c").Append(NewString("y"))

	assert.Equal(t, int64(1), doc.At("a", "b").Int())
	assert.Equal(t, 1, doc.Get("c").Len())
}

func TestNode_Text(t *testing.T) {
	assert.Equal(t, "42", NewInt(42).Text())
	assert.Equal(t, "99.9", NewFloat(99.9).Text())
	assert.Equal(t, "true", NewBool(true).Text())
	assert.Equal(t, "hello", NewString("hello").Text())
	assert.Equal(t, "", NewNull().Text())
	assert.Equal(t, "", NewSequence().Text())

	var nilNode *Node
	assert.Equal(t, "", nilNode.Text())
}

func TestNode_At(t *testing.T) {
	doc, err := DecodeYAML([]byte("a:\n  b:\n    c: deep\n"))
	require.NoError(t, err)

	assert.Equal(t, "deep", doc.At("a", "b", "c").Str())
	assert.Nil(t, doc.At("a", "missing", "c"))
	assert.Nil(t, doc.At("a", "b", "c", "too-far"))
}
