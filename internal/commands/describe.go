// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dacolabs/odpsmap/internal/odcs"
	"github.com/dacolabs/odpsmap/internal/prompts"
)

type describeOptions struct {
	input string
}

func newDescribeCmd() *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show a summary of an ODCS contract",
		Example: `  # Describe the project contract
  odpsmap describe

  # Describe a specific contract file
  odpsmap describe --input contract.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Path to the ODCS contract (defaults to the project contract)")

	return cmd
}

func runDescribe(cmd *cobra.Command, opts *describeOptions) error {
	contract, path, err := loadContract(cmd, opts.input)
	if err != nil {
		return err
	}

	fields := []prompts.ResultField{
		{Label: "Contract", Value: path},
		{Label: "Title", Value: odcs.Title(contract)},
		{Label: "ID", Value: odcs.ID(contract)},
	}
	if v := odcs.Version(contract); v != "" {
		fields = append(fields, prompts.ResultField{Label: "Version", Value: v})
	}
	if s := odcs.Status(contract); s != "" {
		fields = append(fields, prompts.ResultField{Label: "Status", Value: s})
	}
	if tags := odcs.Tags(contract); len(tags) > 0 {
		fields = append(fields, prompts.ResultField{Label: "Tags", Value: strings.Join(tags, ", ")})
	}
	prompts.PrintResult(fields, "")

	header := lipgloss.NewStyle().Bold(true)

	if servers := odcs.Servers(contract); len(servers) > 0 {
		fmt.Println(header.Render("Servers"))
		for _, s := range servers {
			fmt.Printf("  %s (%s) %s\n", s.Name, s.Type, s.Location)
		}
		fmt.Println()
	}

	if levels := odcs.ServiceLevels(contract); len(levels) > 0 {
		fmt.Println(header.Render("Service levels"))
		for _, l := range levels {
			fmt.Printf("  %s: %s %s\n", l.Dimension, l.Objective, l.Unit)
		}
		fmt.Println()
	}

	for _, model := range odcs.Models(contract) {
		fmt.Println(header.Render("Model " + model.Name))
		for _, f := range model.Fields {
			fmt.Printf("  %-24s %s\n", f.Name, f.Type)
		}
		fmt.Println()
	}

	return nil
}
