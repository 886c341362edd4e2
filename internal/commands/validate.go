// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/odpsmap/internal/doctree"
	"github.com/dacolabs/odpsmap/internal/jschema"
	"github.com/dacolabs/odpsmap/internal/prompts"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an ODPS document against the bundled v3.0 schema",
		Example: `  # Validate an exported product document
  odpsmap validate product.yaml

  # JSON documents work the same way
  odpsmap validate product.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}

	var product *doctree.Node
	if strings.EqualFold(filepath.Ext(path), ".json") {
		product, err = doctree.DecodeJSON(data)
	} else {
		product, err = doctree.DecodeYAML(data)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := jschema.ValidateProduct(product); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Document", Value: path},
	}, "Document conforms to the ODPS v3.0 schema")

	return nil
}
