// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package export defines the exporter registry.
package export

import (
	"fmt"
	"sort"

	"github.com/dacolabs/odpsmap/internal/doctree"
)

// Exporter converts a parsed ODCS contract into a target representation.
type Exporter interface {
	// Name returns the exporter's identifier (e.g., "odps", "markdown")
	Name() string

	// Export converts a contract document to the target format
	Export(contract *doctree.Node) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".yaml", ".md")
	FileExtension() string
}

// Register is a set of exporters keyed by name.
type Register map[string]Exporter

// Add registers an exporter under its own name.
func (r Register) Add(e Exporter) {
	r[e.Name()] = e
}

// Get retrieves an exporter by name.
func (r Register) Get(name string) (Exporter, error) {
	e, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown export format: %s", name)
	}
	return e, nil
}

// Available returns all registered exporter names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
