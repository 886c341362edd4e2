// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema validates ODPS documents against the bundled
// structural schema for ODPS v3.0.
package jschema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/odpsmap/internal/doctree"
)

//go:embed odps.schema.json
var odpsSchemaJSON []byte

// ValidationError reports a document that fails ODPS schema
// conformance. It is distinct from a mapping failure: the caller can
// tell "could not transform" from "transformed but non-conformant".
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document does not conform to the ODPS v3.0 schema: %v", e.Err)
}

// Unwrap returns the underlying validator error.
func (e *ValidationError) Unwrap() error { return e.Err }

var odpsResolved = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	var schema jsonschema.Schema
	if err := json.Unmarshal(odpsSchemaJSON, &schema); err != nil {
		return nil, err
	}
	return schema.Resolve(nil)
})

// ValidateProduct checks a product tree against the bundled ODPS v3.0
// schema. Conformance failures yield a *ValidationError.
func ValidateProduct(product *doctree.Node) error {
	resolved, err := odpsResolved()
	if err != nil {
		return fmt.Errorf("failed to load bundled ODPS schema: %w", err)
	}
	if err := resolved.Validate(product.Interface()); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
