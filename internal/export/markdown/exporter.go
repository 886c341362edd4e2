// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown exports a contract as human-readable documentation.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/odpsmap/internal/doctree"
	"github.com/dacolabs/odpsmap/internal/odcs"
)

//go:embed markdown.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("markdown.go.tmpl").ParseFS(tmplFS, "markdown.go.tmpl"))

// Exporter renders contracts as markdown documentation.
type Exporter struct{}

// Name returns the exporter's registry identifier.
func (e *Exporter) Name() string { return "markdown" }

// FileExtension returns the file extension for markdown files.
func (e *Exporter) FileExtension() string { return ".md" }

// Export renders the contract as a markdown document.
func (e *Exporter) Export(contract *doctree.Node) ([]byte, error) {
	data := contractData{
		Title:         odcs.Title(contract),
		ID:            odcs.ID(contract),
		Version:       odcs.Version(contract),
		Status:        odcs.Status(contract),
		SpecKind:      odcs.SpecKind(contract),
		Tags:          odcs.Tags(contract),
		Links:         odcs.Links(contract),
		Servers:       odcs.Servers(contract),
		ServiceLevels: odcs.ServiceLevels(contract),
		Models:        odcs.Models(contract),
		Definitions:   odcs.Definitions(contract),
	}
	if data.Title == "" {
		data.Title = data.ID
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// contractData is the complete input passed to the markdown template.
type contractData struct {
	Title         string
	ID            string
	Version       string
	Status        string
	SpecKind      string
	Tags          []string
	Links         []odcs.Link
	Servers       []odcs.Server
	ServiceLevels []odcs.ServiceLevel
	Models        []odcs.Model
	Definitions   []odcs.Definition
}
