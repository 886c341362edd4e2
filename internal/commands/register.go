// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/odpsmap/internal/cmdctx"
	"github.com/dacolabs/odpsmap/internal/doctree"
	"github.com/dacolabs/odpsmap/internal/export"
	"github.com/dacolabs/odpsmap/internal/odcs"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(exporters export.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "odpsmap",
		Short: "Convert ODCS data contracts into ODPS data product documents",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newExportCmd(exporters))
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadContract resolves the contract document for a command: the
// --input flag wins, then the project configuration in the working
// directory. An empty path with no project yields ErrNotInitialized.
func loadContract(cmd *cobra.Command, input string) (*doctree.Node, string, error) {
	if input != "" {
		contract, err := odcs.ParseFile(input)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read contract %s: %w", input, err)
		}
		return contract, input, nil
	}

	loaded, err := cmdctx.Load(cmd.Context())
	if err != nil {
		return nil, "", err
	}
	ctx := cmdctx.From(loaded)
	if ctx == nil {
		return nil, "", errors.New("project context not loaded")
	}
	return ctx.Contract, ctx.ContractPath, nil
}
