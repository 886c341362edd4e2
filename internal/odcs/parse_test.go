// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package odcs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ShipmentsFixture(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "shipments-odcs.yaml"))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	contract, err := YAML.Parse(f)
	require.NoError(t, err)

	assert.Equal(t, "shipments", Title(contract))
	assert.Equal(t, "53581432-6c55-4ba2-a65f-72344a91553a", ID(contract))
	assert.Equal(t, "v3.0.2", SpecKind(contract))
	assert.Equal(t, "active", Status(contract))
	assert.Equal(t, "1.0.0", Version(contract))
	assert.Equal(t, []string{"datalocation:EU", "shipments"}, Tags(contract))

	links := Links(contract)
	require.Len(t, links, 2)
	assert.Equal(t, "documentation", links[0].Name)

	servers := Servers(contract)
	require.Len(t, servers, 2)
	assert.Equal(t, "production", servers[0].Name)
	assert.Equal(t, "s3", servers[0].Type)
	assert.Equal(t, "parquet", servers[0].Format)

	levels := ServiceLevels(contract)
	require.Len(t, levels, 3)
	assert.Equal(t, "availability", levels[0].Dimension)
	assert.Equal(t, "99.9", levels[0].Objective)
	assert.Equal(t, "%", levels[0].Unit)
	assert.Equal(t, "P1Y", levels[1].Objective)
	assert.Equal(t, "25", levels[2].Objective)

	models := Models(contract)
	require.Len(t, models, 1)
	assert.Equal(t, "shipments", models[0].Name)
	require.Len(t, models[0].Fields, 5)
	assert.Equal(t, Field{
		Name:        "shipment_id",
		Type:        "string",
		Description: "Unique identifier for each shipment.",
	}, models[0].Fields[0])

	definitions := Definitions(contract)
	require.Len(t, definitions, 2)
	assert.Equal(t, "country_code", definitions[0].Name)
	assert.Equal(t, "Country Code", definitions[0].Title)
}

func TestParse_KeyedCollections(t *testing.T) {
	contract, err := YAML.Parse(strings.NewReader(`
dataContractSpecification: 1.1.0
id: orders-latest
info:
  title: Orders
servers:
  prod:
    type: postgres
    location: jdbc:postgresql://prod/orders
models:
  orders:
    description: All orders.
    fields:
      order_id:
        type: string
`))
	require.NoError(t, err)

	servers := Servers(contract)
	require.Len(t, servers, 1)
	assert.Equal(t, "prod", servers[0].Name)
	assert.Equal(t, "postgres", servers[0].Type)

	models := Models(contract)
	require.Len(t, models, 1)
	assert.Equal(t, "orders", models[0].Name)
	require.Len(t, models[0].Fields, 1)
	assert.Equal(t, "order_id", models[0].Fields[0].Name)
	assert.Equal(t, "string", models[0].Fields[0].Type)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser
		src    string
	}{
		{"YAML", YAML, "key: [unclosed"},
		{"JSON", JSON, `{"key": }`},
		{"YAML scalar root", YAML, "just a string"},
		{"JSON array root", JSON, `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parser.Parse(strings.NewReader(tt.src))
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParserForPath(t *testing.T) {
	contract, err := ParserForPath("contract.json").Parse(strings.NewReader(`{"id": "a"}`))
	require.NoError(t, err)
	assert.Equal(t, "a", ID(contract))

	contract, err = ParserForPath("contract.yaml").Parse(strings.NewReader("id: b"))
	require.NoError(t, err)
	assert.Equal(t, "b", ID(contract))

	// Unknown extensions default to YAML.
	contract, err = ParserForPath("contract").Parse(strings.NewReader("id: c"))
	require.NoError(t, err)
	assert.Equal(t, "c", ID(contract))
}

func TestParseFile(t *testing.T) {
	contract, err := ParseFile(filepath.Join("testdata", "shipments-odcs.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "shipments", Title(contract))

	_, err = ParseFile(filepath.Join("testdata", "does-not-exist.yaml"))
	assert.Error(t, err)
}
