// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nativewrappers/nativegen/internal/database"
	"github.com/nativewrappers/nativegen/internal/prompts"
	"github.com/nativewrappers/nativegen/internal/session"
)

type checkOptions struct {
	strict  bool
	workers int
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse and validate all native documentation",
		Long: `Parse every documentation file, validate signatures against the enum
and struct definitions and report all diagnostics. Exits non-zero when any
errors are found.`,
		Example: `  # Validate the project
  nativegen check

  # Treat warnings as errors
  nativegen check --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Parallel parse workers (0 = one per CPU)")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	strict := opts.strict || ctx.Config.Strict

	db, diags := database.Build(cmd.Context(), ctx.Sources, ctx.Enums, ctx.Structs, database.Options{
		Strict:  strict,
		Workers: opts.workers,
	})
	if db == nil {
		return fmt.Errorf("check aborted: %s", diags[0].Message)
	}

	regDiags := ctx.RegistryDiags
	if strict {
		regDiags = regDiags.Promote()
	}
	diags = append(regDiags, diags...)

	errs, warns := prompts.PrintDiagnostics(os.Stderr, diags)

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Files", Value: fmt.Sprint(len(ctx.Sources))},
		{Label: "Natives", Value: fmt.Sprint(db.NativeCount())},
		{Label: "Namespaces", Value: fmt.Sprint(len(db.Namespaces))},
		{Label: "Errors", Value: fmt.Sprint(errs)},
		{Label: "Warnings", Value: fmt.Sprint(warns)},
	}, "")

	if errs > 0 {
		return fmt.Errorf("check failed with %d error(s)", errs)
	}
	return nil
}
