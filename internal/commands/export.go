// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/odpsmap/internal/cmdctx"
	"github.com/dacolabs/odpsmap/internal/doctree"
	"github.com/dacolabs/odpsmap/internal/export"
	"github.com/dacolabs/odpsmap/internal/jschema"
	"github.com/dacolabs/odpsmap/internal/odcs"
	"github.com/dacolabs/odpsmap/internal/prompts"
)

type exportOptions struct {
	input          string
	format         string
	output         string
	validate       bool
	nonInteractive bool
}

func newExportCmd(exporters export.Register) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an ODCS contract to a target format",
		Long: fmt.Sprintf(`Export an ODCS contract to a target format.

Available formats: %s`, strings.Join(exporters.Available(), ", ")),
		Example: `  # Interactive mode
  odpsmap export

  # Map a contract to an ODPS product document
  odpsmap export --input contract.yaml --output product.yaml

  # Map and check the result against the ODPS v3.0 schema
  odpsmap export --input contract.yaml --validate

  # Write JSON to stdout
  odpsmap export --input contract.yaml --format odps-json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, exporters, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Path to the ODCS contract (defaults to the project contract)")
	cmd.Flags().StringVar(&opts.format, "format", "odps", fmt.Sprintf("Output format (%s)", strings.Join(exporters.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (stdout if not set)")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Check ODPS output against the bundled v3.0 schema")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --input or a project config)")

	return cmd
}

func runExport(cmd *cobra.Command, exporters export.Register, opts *exportOptions) error {
	contract, input, err := loadContract(cmd, opts.input)
	if errors.Is(err, cmdctx.ErrNotInitialized) {
		if opts.nonInteractive {
			return errors.New("non-interactive mode requires --input or a project config")
		}
		input = ""
		if promptErr := prompts.RunExportForm(&input, &opts.format, exporters.Available()); promptErr != nil {
			return promptErr
		}
		contract, err = odcs.ParseFile(input)
	}
	if err != nil {
		return err
	}

	exporter, err := exporters.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(exporters.Available(), ", "))
	}

	data, err := exporter.Export(contract)
	if err != nil {
		return err
	}

	if opts.validate {
		if err := validateExported(opts.format, data); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(opts.output, data, 0o600); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Contract", Value: input},
		{Label: "Format", Value: exporter.Name()},
		{Label: "Output", Value: opts.output},
	}, "Export complete")

	return nil
}

// validateExported re-reads the exported bytes and checks them against
// the bundled ODPS schema. Only ODPS output can be validated.
func validateExported(format string, data []byte) error {
	var product *doctree.Node
	var err error
	switch format {
	case "odps":
		product, err = doctree.DecodeYAML(data)
	case "odps-json":
		product, err = doctree.DecodeJSON(data)
	default:
		return fmt.Errorf("--validate is not supported for format %q", format)
	}
	if err != nil {
		return err
	}
	return jschema.ValidateProduct(product)
}
