// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/odpsmap/internal/cmdctx"
	"github.com/dacolabs/odpsmap/internal/config"
	"github.com/dacolabs/odpsmap/internal/odcs"
	"github.com/dacolabs/odpsmap/internal/prompts"
)

type initOptions struct {
	contract       string
	output         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an odpsmap project",
		Long: `Initialize an odpsmap project with an odpsmap.yaml configuration file
pointing at an existing ODCS contract.`,
		Example: `  # Interactive mode
  odpsmap init

  # Non-interactive
  odpsmap init --contract ./contract.yaml --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.contract, "contract", "c", "", "Path to the ODCS contract")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Default output directory for exports")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --contract)")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, cmdctx.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("odpsmap.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.contract == "" {
			return errors.New("non-interactive mode requires --contract")
		}
	} else {
		if err := prompts.RunInitForm(&opts.contract, &opts.output); err != nil {
			return err
		}
	}

	// The contract must exist and parse before the project is created.
	if _, err := odcs.ParseFile(opts.contract); err != nil {
		return fmt.Errorf("contract %s is not usable: %w", opts.contract, err)
	}

	cfg := &config.Config{
		Version:  config.CurrentConfigVersion,
		Contract: opts.contract,
		Output:   opts.output,
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmdctx.ConfigFileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: configPath},
		{Label: "Contract", Value: opts.contract},
	}, "Project initialized")

	return nil
}
