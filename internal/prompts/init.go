// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(docs, enums, structs, output *string, formats *[]string, strict *bool, available []string) error {
	formatOptions := make([]huh.Option[string], len(available))
	for i, f := range available {
		formatOptions[i] = huh.NewOption(f, f)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Documentation directory").
				Placeholder("./docs").
				Validate(requiredValidator("docs directory")).
				Value(docs),
			huh.NewInput().
				Title("Enum definitions directory").
				Placeholder("./defs/enums").
				Value(enums),
			huh.NewInput().
				Title("Struct definitions directory").
				Placeholder("./defs/structs").
				Value(structs),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("./gen").
				Value(output),
			huh.NewMultiSelect[string]().
				Title("Default output formats").
				Options(formatOptions...).
				Value(formats),
			huh.NewConfirm().
				Title("Treat warnings as errors?").
				Value(strict),
		),
	).WithTheme(Theme()).Run()
}

// RunGenerateForm prompts for output formats when none were selected via
// flags or configuration.
func RunGenerateForm(formats *[]string, available []string) error {
	if len(*formats) > 0 {
		return nil
	}

	options := make([]huh.Option[string], len(available))
	for i, f := range available {
		options[i] = huh.NewOption(f, f)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Output formats").
				Options(options...).
				Validate(func(sel []string) error {
					if len(sel) == 0 {
						return errNoFormats
					}
					return nil
				}).
				Value(formats),
		),
	).WithTheme(Theme()).Run()
}
