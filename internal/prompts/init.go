// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(contract, output *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to ODCS contract").
				Placeholder("./contract.yaml").
				Validate(required("contract path")).
				Value(contract),
			huh.NewInput().
				Title("Default output directory").
				Placeholder("./out").
				Value(output),
		),
	).WithTheme(Theme()).Run()
}
