// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/odpsmap/internal/commands"
	"github.com/dacolabs/odpsmap/internal/export"
	"github.com/dacolabs/odpsmap/internal/export/markdown"
	"github.com/dacolabs/odpsmap/internal/export/odps"
)

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context) error {
	rootCmd := commands.NewRootCmd(Exporters())
	return rootCmd.ExecuteContext(ctx)
}

// Exporters returns the registry of all shipped exporters.
func Exporters() export.Register {
	exporters := make(export.Register)
	exporters.Add(odps.YAML)
	exporters.Add(odps.JSON)
	exporters.Add(&markdown.Exporter{})
	return exporters
}
