// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunExportForm prompts for the contract path and export format when
// they were not supplied via flags or project configuration.
func RunExportForm(input, format *string, formats []string) error {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to ODCS contract").
				Placeholder("./contract.yaml").
				Validate(required("contract path")).
				Value(input),
		).WithHideFunc(func() bool { return *input != "" }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Export format").
				Options(options...).
				Value(format),
		).WithHideFunc(func() bool { return *format != "" }),
	).WithTheme(Theme()).Run()
}
