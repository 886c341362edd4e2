// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package odcs

import (
	"iter"

	"github.com/dacolabs/odpsmap/internal/doctree"
)

// Server is a read view of one contract server entry.
type Server struct {
	Name        string
	Type        string
	Format      string
	Location    string
	Description string
}

// ServiceLevel is a read view of one service-level dimension.
type ServiceLevel struct {
	Dimension string
	Objective string
	Unit      string
}

// Field is a read view of one model field or schema property.
type Field struct {
	Name        string
	Type        string
	Description string
}

// Model is a read view of one model or schema entry.
type Model struct {
	Name        string
	Description string
	Fields      []Field
}

// Definition is a read view of one reusable definition.
type Definition struct {
	Name        string
	Title       string
	Type        string
	Description string
}

// Link is one entry of the contract's links mapping, in document order.
type Link struct {
	Name string
	URL  string
}

// Title returns the contract title, falling back to its name.
func Title(doc *doctree.Node) string {
	return firstText(
		doc.At("info", "title"),
		doc.Get("name"),
		doc.At("info", "name"),
	)
}

// ID returns the contract's unique identifier.
func ID(doc *doctree.Node) string { return doc.Get("id").Text() }

// SpecKind returns the contract's specification version marker.
func SpecKind(doc *doctree.Node) string {
	return firstText(doc.Get("dataContractSpecification"), doc.Get("apiVersion"))
}

// Status returns the contract status.
func Status(doc *doctree.Node) string {
	return firstText(doc.At("info", "status"), doc.Get("status"))
}

// Version returns the contract version.
func Version(doc *doctree.Node) string {
	return firstText(doc.At("info", "version"), doc.Get("version"))
}

// Tags returns the contract tags in document order.
func Tags(doc *doctree.Node) []string {
	tags := doc.Get("tags")
	if tags == nil || tags.Kind() != doctree.Sequence {
		return nil
	}
	out := make([]string, 0, tags.Len())
	for _, tag := range tags.Seq() {
		out = append(out, tag.Text())
	}
	return out
}

// Links returns the contract's links in document order.
func Links(doc *doctree.Node) []Link {
	links := doc.Get("links")
	if links == nil || links.Kind() != doctree.Mapping {
		return nil
	}
	out := make([]Link, 0, links.Len())
	for _, name := range links.Keys() {
		out = append(out, Link{Name: name, URL: links.Get(name).Text()})
	}
	return out
}

// Servers returns all server entries in document order. Contracts may
// list servers as a sequence or key them by name; both forms are read,
// and keyed servers iterate in insertion order.
func Servers(doc *doctree.Node) []Server {
	servers := doc.Get("servers")
	if servers == nil {
		return nil
	}
	var out []Server
	switch servers.Kind() {
	case doctree.Sequence:
		for _, s := range servers.Seq() {
			out = append(out, serverView(firstText(s.Get("server"), s.Get("name")), s))
		}
	case doctree.Mapping:
		for _, name := range servers.Keys() {
			out = append(out, serverView(name, servers.Get(name)))
		}
	}
	return out
}

func serverView(name string, s *doctree.Node) Server {
	return Server{
		Name:        name,
		Type:        s.Get("type").Text(),
		Format:      s.Get("format").Text(),
		Location:    s.Get("location").Text(),
		Description: s.Get("description").Text(),
	}
}

// ServiceLevels returns every service-level dimension in insertion
// order. The objective is the first of threshold, percentage, period.
func ServiceLevels(doc *doctree.Node) []ServiceLevel {
	levels := doc.Get("servicelevels")
	if levels == nil || levels.Kind() != doctree.Mapping {
		return nil
	}
	out := make([]ServiceLevel, 0, levels.Len())
	for _, dimension := range levels.Keys() {
		level := levels.Get(dimension)
		out = append(out, ServiceLevel{
			Dimension: dimension,
			Objective: firstText(level.Get("threshold"), level.Get("percentage"), level.Get("period")),
			Unit:      level.Get("unit").Text(),
		})
	}
	return out
}

// Models returns every model or schema entry with its immediate fields.
func Models(doc *doctree.Node) []Model {
	models := doc.Get("models")
	if models == nil {
		models = doc.Get("schema")
	}
	var out []Model
	for name, entry := range named(models) {
		model := Model{
			Name:        name,
			Description: entry.Get("description").Text(),
		}
		props := entry.Get("fields")
		if props == nil {
			props = entry.Get("properties")
		}
		for fieldName, field := range named(props) {
			model.Fields = append(model.Fields, Field{
				Name:        fieldName,
				Type:        firstText(field.Get("logicalType"), field.Get("type"), field.Get("physicalType")),
				Description: field.Get("description").Text(),
			})
		}
		out = append(out, model)
	}
	return out
}

// Definitions returns every reusable definition entry.
func Definitions(doc *doctree.Node) []Definition {
	var out []Definition
	for name, entry := range named(doc.Get("definitions")) {
		out = append(out, Definition{
			Name:        name,
			Title:       entry.Get("title").Text(),
			Type:        firstText(entry.Get("logicalType"), entry.Get("type"), entry.Get("physicalType")),
			Description: entry.Get("description").Text(),
		})
	}
	return out
}

// named iterates a collection that either keys its members by name or
// lists them with a name field, yielding name and member in document
// order.
func named(n *doctree.Node) iter.Seq2[string, *doctree.Node] {
	return func(yield func(string, *doctree.Node) bool) {
		if n == nil {
			return
		}
		switch n.Kind() {
		case doctree.Mapping:
			for _, key := range n.Keys() {
				if !yield(key, n.Get(key)) {
					return
				}
			}
		case doctree.Sequence:
			for _, item := range n.Seq() {
				if !yield(item.Get("name").Text(), item) {
					return
				}
			}
		}
	}
}

func firstText(nodes ...*doctree.Node) string {
	for _, n := range nodes {
		if text := n.Text(); text != "" {
			return text
		}
	}
	return ""
}
