// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/odpsmap/internal/doctree"
)

type fakeExporter struct {
	name string
}

func (f fakeExporter) Name() string                         { return f.name }
func (f fakeExporter) FileExtension() string                { return ".txt" }
func (f fakeExporter) Export(*doctree.Node) ([]byte, error) { return []byte(f.name), nil }

func TestRegister(t *testing.T) {
	r := make(Register)
	r.Add(fakeExporter{name: "zeta"})
	r.Add(fakeExporter{name: "alpha"})

	got, err := r.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Name())

	_, err = r.Get("missing")
	assert.ErrorContains(t, err, "unknown export format")

	assert.Equal(t, []string{"alpha", "zeta"}, r.Available())
}
