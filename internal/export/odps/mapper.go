// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package odps maps ODCS contracts to Open Data Product Specification
// documents.
//
// The mapping is a pure, single-pass function over generic document
// trees. It never invents values that are not derivable from the
// contract, apart from the fixed header literals and explicit nulls for
// fields ODCS has no equivalent for. Optional product blocks are
// omitted entirely when the contract carries no source data for them.
package odps

import (
	"fmt"

	"github.com/dacolabs/odpsmap/internal/doctree"
)

const (
	// SchemaURL is the published ODPS v3.0 schema location, emitted
	// verbatim as $schema in every product document.
	SchemaURL = "https://opendataproducts.org/v3.0/schema/odps.yaml"

	// SpecVersion is the ODPS version emitted in every product document.
	SpecVersion = "3.0"
)

// MappingError reports a contract that cannot be mapped because a
// mandatory details field is missing. Field names the missing field.
type MappingError struct {
	Field string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("contract is missing mandatory field %q", e.Field)
}

// Map converts an ODCS contract tree into an ODPS v3.0 product tree.
// The input is not mutated; every node in the result is freshly
// allocated. A contract lacking both a title and an identifier yields a
// *MappingError and no partial output.
func Map(contract *doctree.Node) (*doctree.Node, error) {
	details, err := mapDetails(contract)
	if err != nil {
		return nil, err
	}

	product := doctree.NewMapping()
	product.Set("details", details)
	if links := mapLinks(contract); links != nil {
		product.Set("links", links)
	}
	if ops := mapDataOps(contract); ops != nil {
		product.Set("dataOps", ops)
	}
	if access := mapDataAccess(contract); access != nil {
		product.Set("dataAccess", access)
	}
	if sla := mapSLA(contract); sla != nil {
		product.Set("SLA", sla)
	}
	if meta := mapMetadata(contract); meta != nil {
		product.Set("metadata", meta)
	}

	out := doctree.NewMapping()
	out.Set("$schema", doctree.NewString(SchemaURL))
	out.Set("version", doctree.NewString(SpecVersion))
	out.Set("product", product)
	return out, nil
}

// mapDetails builds the mandatory product.details.en block. Either a
// title or an identifier must be present; the one that is backfills the
// other.
func mapDetails(contract *doctree.Node) (*doctree.Node, error) {
	name := firstNonEmpty(
		contract.At("info", "title").Text(),
		contract.Get("name").Text(),
		contract.At("info", "name").Text(),
	)
	id := contract.Get("id").Text()
	if name == "" && id == "" {
		return nil, &MappingError{Field: "info.title"}
	}
	if name == "" {
		name = id
	}
	if id == "" {
		id = name
	}

	en := doctree.NewMapping()
	en.Set("name", doctree.NewString(name))
	en.Set("productID", doctree.NewString(id))
	en.Set("type", doctree.NewString(firstNonEmpty(
		contract.Get("dataContractSpecification").Text(),
		contract.Get("apiVersion").Text(),
	)))
	en.Set("visibility", doctree.NewString(firstNonEmpty(
		contract.At("info", "status").Text(),
		contract.Get("status").Text(),
	)))
	if version := firstNonEmpty(
		contract.At("info", "version").Text(),
		contract.Get("version").Text(),
	); version != "" {
		en.Set("version", doctree.NewString(version))
	}
	if tags := contract.Get("tags"); tags != nil && tags.Kind() == doctree.Sequence && tags.Len() > 0 {
		en.Set("tags", tags.Clone())
	}

	details := doctree.NewMapping()
	details.Set("en", en)
	return details, nil
}

// mapLinks copies the contract's links mapping verbatim. Absent or
// empty links yield no block at all, not an empty mapping.
func mapLinks(contract *doctree.Node) *doctree.Node {
	links := contract.Get("links")
	if links == nil || links.Kind() != doctree.Mapping || links.Len() == 0 {
		return nil
	}
	return links.Clone()
}

// mapDataOps emits the deployment documentation URL from the first
// policy. Policies beyond the first are ignored.
func mapDataOps(contract *doctree.Node) *doctree.Node {
	policies := contract.At("terms", "policies")
	if policies == nil {
		policies = contract.Get("policies")
	}
	if policies == nil || policies.Kind() != doctree.Sequence || policies.Len() == 0 {
		return nil
	}
	url := policies.Seq()[0].Get("url").Text()
	if url == "" {
		return nil
	}
	build := doctree.NewMapping()
	build.Set("deploymentDocumentationURL", doctree.NewString(url))
	ops := doctree.NewMapping()
	ops.Set("build", build)
	return ops
}

// mapDataAccess emits access details for the first server only. For
// keyed servers, "first" is the first insertion-order key. A
// multi-server contract loses the remaining servers in this mapping.
func mapDataAccess(contract *doctree.Node) *doctree.Node {
	server := firstEntry(contract.Get("servers"))
	if server == nil {
		return nil
	}
	access := doctree.NewMapping()
	access.Set("type", doctree.NewString(server.Get("type").Text()))
	access.Set("format", scalarOrNull(server.Get("format")))
	access.Set("specification", scalarOrNull(server.Get("location")))
	access.Set("documentationURL", scalarOrNull(server.Get("description")))
	// ODCS has no authentication equivalent.
	access.Set("authenticationMethod", doctree.NewNull())
	return access
}

// mapSLA emits one entry per service-level dimension, in insertion
// order. The objective is the first non-null of threshold, percentage,
// period.
func mapSLA(contract *doctree.Node) *doctree.Node {
	levels := contract.Get("servicelevels")
	if levels == nil || levels.Kind() != doctree.Mapping || levels.Len() == 0 {
		return nil
	}
	sla := doctree.NewSequence()
	for _, dimension := range levels.Keys() {
		level := levels.Get(dimension)

		title := doctree.NewMapping()
		title.Set("en", doctree.NewString(dimension))

		entry := doctree.NewMapping()
		entry.Set("dimension", doctree.NewString(dimension))
		entry.Set("displaytitle", doctree.NewSequence(title))
		entry.Set("monitoring", doctree.NewMapping())
		entry.Set("objective", objective(level))
		entry.Set("unit", doctree.NewString(level.Get("unit").Text()))
		sla.Append(entry)
	}
	return sla
}

func objective(level *doctree.Node) *doctree.Node {
	for _, key := range []string{"threshold", "percentage", "period"} {
		if v := level.Get(key); v != nil && !v.IsNull() {
			return v.Clone()
		}
	}
	return doctree.NewString("")
}

// mapMetadata emits the schemas and definitions sequences. The block
// appears only when the contract has at least one model or definition;
// within it, both sequences are always present, defaulting to empty.
func mapMetadata(contract *doctree.Node) *doctree.Node {
	schemas := mapSchemas(contract)
	definitions := mapDefinitions(contract)
	if schemas.Len() == 0 && definitions.Len() == 0 {
		return nil
	}
	meta := doctree.NewMapping()
	meta.Set("schemas", schemas)
	meta.Set("definitions", definitions)
	return meta
}

// mapSchemas flattens each model's declared fields one level deep.
// Object-typed fields appear once with their own type; their
// sub-properties are not unrolled into the parent's field list.
func mapSchemas(contract *doctree.Node) *doctree.Node {
	models := contract.Get("models")
	if models == nil {
		models = contract.Get("schema")
	}
	out := doctree.NewSequence()
	for _, model := range namedEntries(models) {
		fields := doctree.NewSequence()
		props := model.node.Get("fields")
		if props == nil {
			props = model.node.Get("properties")
		}
		for _, prop := range namedEntries(props) {
			field := doctree.NewMapping()
			field.Set("name", doctree.NewString(prop.name))
			field.Set("type", doctree.NewString(fieldType(prop.node)))
			field.Set("description", doctree.NewString(prop.node.Get("description").Text()))
			fields.Append(field)
		}

		entry := doctree.NewMapping()
		entry.Set("name", doctree.NewString(model.name))
		entry.Set("description", doctree.NewString(model.node.Get("description").Text()))
		entry.Set("fields", fields)
		out.Append(entry)
	}
	return out
}

// mapDefinitions emits every reusable definition with all four keys
// present, empty-string defaulted.
func mapDefinitions(contract *doctree.Node) *doctree.Node {
	out := doctree.NewSequence()
	for _, def := range namedEntries(contract.Get("definitions")) {
		entry := doctree.NewMapping()
		entry.Set("name", doctree.NewString(def.name))
		entry.Set("title", doctree.NewString(def.node.Get("title").Text()))
		entry.Set("type", doctree.NewString(fieldType(def.node)))
		entry.Set("description", doctree.NewString(def.node.Get("description").Text()))
		out.Append(entry)
	}
	return out
}

func fieldType(n *doctree.Node) string {
	return firstNonEmpty(
		n.Get("logicalType").Text(),
		n.Get("type").Text(),
		n.Get("physicalType").Text(),
	)
}

// namedEntry pairs a collection member with its name, whether the
// collection keys members by name or lists them with a name field.
type namedEntry struct {
	name string
	node *doctree.Node
}

func namedEntries(n *doctree.Node) []namedEntry {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case doctree.Mapping:
		entries := make([]namedEntry, 0, n.Len())
		for _, key := range n.Keys() {
			entries = append(entries, namedEntry{name: key, node: n.Get(key)})
		}
		return entries
	case doctree.Sequence:
		entries := make([]namedEntry, 0, n.Len())
		for _, item := range n.Seq() {
			entries = append(entries, namedEntry{name: item.Get("name").Text(), node: item})
		}
		return entries
	default:
		return nil
	}
}

// firstEntry returns the first element of a sequence, or the value of
// the first insertion-order key of a mapping.
func firstEntry(n *doctree.Node) *doctree.Node {
	if n == nil || n.Len() == 0 {
		return nil
	}
	switch n.Kind() {
	case doctree.Sequence:
		return n.Seq()[0]
	case doctree.Mapping:
		return n.Get(n.Keys()[0])
	default:
		return nil
	}
}

func scalarOrNull(n *doctree.Node) *doctree.Node {
	if n.IsNull() || n.Text() == "" {
		return doctree.NewNull()
	}
	return n.Clone()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
