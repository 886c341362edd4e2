// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package doctree provides a generic document tree for YAML and JSON content.
// Mappings preserve insertion order, so "first entry" is well defined for
// documents that key collections by name.
package doctree

// Kind identifies the variant a Node holds.
type Kind uint8

// Node kinds.
const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Sequence
	Mapping
)

// Node is one vertex of a decoded document. The zero value is a null node.
type Node struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []*Node
	keys []string
	vals map[string]*Node
}

// NewNull returns a null node.
func NewNull() *Node { return &Node{kind: Null} }

// NewBool returns a boolean scalar node.
func NewBool(v bool) *Node { return &Node{kind: Bool, b: v} }

// NewInt returns an integer scalar node.
func NewInt(v int64) *Node { return &Node{kind: Int, i: v} }

// NewFloat returns a floating-point scalar node.
func NewFloat(v float64) *Node { return &Node{kind: Float, f: v} }

// NewString returns a string scalar node.
func NewString(v string) *Node { return &Node{kind: String, s: v} }

// NewSequence returns a sequence node holding the given items.
func NewSequence(items ...*Node) *Node { return &Node{kind: Sequence, seq: items} }

// NewMapping returns an empty mapping node.
func NewMapping() *Node { return &Node{kind: Mapping, vals: make(map[string]*Node)} }

// Kind returns the variant this node holds.
func (n *Node) Kind() Kind { return n.kind }

// IsNull reports whether the node is null (or nil).
func (n *Node) IsNull() bool { return n == nil || n.kind == Null }

// Bool returns the boolean value. Zero for non-boolean nodes.
func (n *Node) Bool() bool { return n.b }

// Int returns the integer value. Zero for non-integer nodes.
func (n *Node) Int() int64 { return n.i }

// Float returns the floating-point value. Zero for non-float nodes.
func (n *Node) Float() float64 { return n.f }

// Str returns the string value. Empty for non-string nodes.
func (n *Node) Str() string { return n.s }

// Seq returns the sequence items. Nil for non-sequence nodes.
func (n *Node) Seq() []*Node { return n.seq }

// Append adds an item to a sequence node.
func (n *Node) Append(item *Node) { n.seq = append(n.seq, item) }

// Keys returns the mapping keys in insertion order.
func (n *Node) Keys() []string { return n.keys }

// Len returns the number of entries in a mapping or items in a sequence.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	if n.kind == Mapping {
		return len(n.keys)
	}
	return len(n.seq)
}

// Get returns the value stored under key, or nil if the node is not a
// mapping or the key is absent.
func (n *Node) Get(key string) *Node {
	if n == nil || n.kind != Mapping {
		return nil
	}
	return n.vals[key]
}

// Has reports whether key exists in a mapping node.
func (n *Node) Has(key string) bool {
	if n == nil || n.kind != Mapping {
		return false
	}
	_, ok := n.vals[key]
	return ok
}

// Set stores val under key in a mapping node. New keys append to the
// insertion order; existing keys keep their position.
func (n *Node) Set(key string, val *Node) {
	if n.vals == nil {
		n.vals = make(map[string]*Node)
	}
	if _, ok := n.vals[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.vals[key] = val
}

// At descends through nested mappings along the given keys.
// Returns nil as soon as a step is missing or not a mapping.
func (n *Node) At(keys ...string) *Node {
	cur := n
	for _, k := range keys {
		cur = cur.Get(k)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Text returns the node's scalar rendered as a string: the string value
// itself, or the canonical rendering of bool/int/float scalars. Empty for
// null, sequence, and mapping nodes.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	switch n.kind {
	case String:
		return n.s
	case Bool:
		if n.b {
			return "true"
		}
		return "false"
	case Int:
		return formatInt(n.i)
	case Float:
		return formatFloat(n.f)
	default:
		return ""
	}
}

// Interface converts the tree to plain Go values (nil, bool, int64,
// float64, string, []any, map[string]any) for interop with validators.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.kind {
	case Bool:
		return n.b
	case Int:
		return n.i
	case Float:
		return n.f
	case String:
		return n.s
	case Sequence:
		out := make([]any, len(n.seq))
		for i, item := range n.seq {
			out[i] = item.Interface()
		}
		return out
	case Mapping:
		out := make(map[string]any, len(n.keys))
		for _, k := range n.keys {
			out[k] = n.vals[k].Interface()
		}
		return out
	default:
		return nil
	}
}

// Clone returns a deep copy of the tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{kind: n.kind, b: n.b, i: n.i, f: n.f, s: n.s}
	if n.seq != nil {
		out.seq = make([]*Node, len(n.seq))
		for i, item := range n.seq {
			out.seq[i] = item.Clone()
		}
	}
	if n.kind == Mapping {
		out.vals = make(map[string]*Node, len(n.keys))
		for _, k := range n.keys {
			out.keys = append(out.keys, k)
			out.vals[k] = n.vals[k].Clone()
		}
	}
	return out
}
