// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/odpsmap/internal/doctree"
)

const validProduct = `
$schema: https://opendataproducts.org/v3.0/schema/odps.yaml
version: "3.0"
product:
  details:
    en:
      name: shipments
      productID: abc-123
      type: v3.0.2
      visibility: active
  dataAccess:
    type: s3
    format: parquet
    specification: null
    documentationURL: null
    authenticationMethod: null
  SLA:
    - dimension: availability
      displaytitle:
        - en: availability
      monitoring: {}
      objective: 99.9
      unit: "%"
  metadata:
    schemas:
      - name: shipments
        description: ""
        fields:
          - name: shipment_id
            type: string
            description: Unique identifier for each shipment.
    definitions: []
`

func productFromYAML(t *testing.T, src string) *doctree.Node {
	t.Helper()
	doc, err := doctree.DecodeYAML([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestValidateProduct_Valid(t *testing.T) {
	assert.NoError(t, ValidateProduct(productFromYAML(t, validProduct)))
}

func TestValidateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			"missing product",
			"$schema: https://opendataproducts.org/v3.0/schema/odps.yaml\nversion: \"3.0\"",
		},
		{
			"wrong version literal",
			"$schema: x\nversion: \"2.0\"\nproduct:\n  details:\n    en:\n      name: a\n      productID: b\n      type: \"\"\n      visibility: \"\"",
		},
		{
			"empty product name",
			"$schema: x\nversion: \"3.0\"\nproduct:\n  details:\n    en:\n      name: \"\"\n      productID: b\n      type: \"\"\n      visibility: \"\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(productFromYAML(t, tt.src))
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
		})
	}
}
