// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package odps

import (
	"github.com/dacolabs/odpsmap/internal/doctree"
)

// Exporter maps a contract and encodes the resulting product document.
type Exporter struct {
	name      string
	extension string
	encode    func(*doctree.Node) ([]byte, error)
}

var (
	// YAML exports ODPS products as YAML.
	YAML = Exporter{"odps", ".yaml", doctree.EncodeYAML}
	// JSON exports ODPS products as JSON.
	JSON = Exporter{"odps-json", ".json", doctree.EncodeJSON}
)

// Name returns the exporter's registry identifier.
func (e Exporter) Name() string { return e.name }

// FileExtension returns the extension for exported files.
func (e Exporter) FileExtension() string { return e.extension }

// Export maps the contract to an ODPS product tree and encodes it.
func (e Exporter) Export(contract *doctree.Node) ([]byte, error) {
	product, err := Map(contract)
	if err != nil {
		return nil, err
	}
	return e.encode(product)
}
