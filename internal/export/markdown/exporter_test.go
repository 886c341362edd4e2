// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/odpsmap/internal/doctree"
)

func TestExport_FullContract(t *testing.T) {
	contract, err := doctree.DecodeYAML([]byte(`
apiVersion: v3.0.2
id: abc-123
info:
  title: Orders
  status: active
  version: 2.0.0
tags:
  - sales
servers:
  - server: prod
    type: postgres
    format: jsonl
    location: jdbc:postgresql://prod/orders
servicelevels:
  availability:
    percentage: 99.9
    unit: "%"
schema:
  - name: orders
    description: All orders.
    properties:
      - name: order_id
        logicalType: string
        description: Order identifier.
`))
	require.NoError(t, err)

	exporter := &Exporter{}
	output, err := exporter.Export(contract)
	require.NoError(t, err)

	result := string(output)

	assert.Contains(t, result, "# Orders")
	assert.Contains(t, result, "`abc-123`")
	assert.Contains(t, result, "| Version | 2.0.0 |")
	assert.Contains(t, result, "| Status | active |")
	assert.Contains(t, result, "`sales`")
	assert.Contains(t, result, "## Servers")
	assert.Contains(t, result, "| prod | postgres | jsonl | `jdbc:postgresql://prod/orders` |")
	assert.Contains(t, result, "## Service Levels")
	assert.Contains(t, result, "| availability | 99.9 | % |")
	assert.Contains(t, result, "## orders")
	assert.Contains(t, result, "| `order_id` | string | Order identifier. |")
}

func TestExport_TitleFallsBackToID(t *testing.T) {
	contract, err := doctree.DecodeYAML([]byte("id: abc-123"))
	require.NoError(t, err)

	output, err := (&Exporter{}).Export(contract)
	require.NoError(t, err)

	assert.Contains(t, string(output), "# abc-123")
}

func TestExporter_Metadata(t *testing.T) {
	e := &Exporter{}
	assert.Equal(t, "markdown", e.Name())
	assert.Equal(t, ".md", e.FileExtension())
}
