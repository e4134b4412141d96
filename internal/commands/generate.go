// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nativewrappers/nativegen/internal/database"
	"github.com/nativewrappers/nativegen/internal/gen"
	"github.com/nativewrappers/nativegen/internal/prompts"
	"github.com/nativewrappers/nativegen/internal/session"
)

type generateOptions struct {
	formats []string
	output  string
	strict  bool
	workers int
}

func newGenerateCmd(emitters gen.Registry) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate code and data from the native documentation",
		Long: fmt.Sprintf(`Build the validated native database and run the selected emitters.

Available formats: %s`, strings.Join(emitters.Available(), ", ")),
		Example: `  # Use the formats from nativegen.yaml
  nativegen generate

  # Generate specific formats
  nativegen generate --format golang,jsondb

  # Generate to a custom output directory
  nativegen generate --format markdown --output ./docs-out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, emitters, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil,
		fmt.Sprintf("Output formats (%s)", strings.Join(emitters.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Parallel parse workers (0 = one per CPU)")

	return cmd
}

func runGenerate(cmd *cobra.Command, emitters gen.Registry, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	formats := opts.formats
	if len(formats) == 0 {
		formats = ctx.Config.Formats
	}
	if err := prompts.RunGenerateForm(&formats, emitters.Available()); err != nil {
		return err
	}

	selected := make([]gen.Emitter, len(formats))
	for i, f := range formats {
		e, err := emitters.Get(f)
		if err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(emitters.Available(), ", "))
		}
		selected[i] = e
	}

	output := opts.output
	if output == "" {
		output = ctx.Config.Output
	}
	if output == "" {
		output = "gen"
	}

	strict := opts.strict || ctx.Config.Strict

	// The bar writes ANSI redraws, so only show it on an interactive stderr.
	var progress func(done, total int)
	finish := func() {}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		bar := progressbar.Default(int64(len(ctx.Sources)), "parsing")
		progress = func(done, total int) {
			bar.Add(1) //nolint:errcheck
		}
		finish = func() {
			bar.Finish() //nolint:errcheck
		}
	}

	db, diags := database.Build(cmd.Context(), ctx.Sources, ctx.Enums, ctx.Structs, database.Options{
		Strict:   strict,
		Workers:  opts.workers,
		Progress: progress,
	})
	finish()
	if db == nil {
		return fmt.Errorf("generation aborted: %s", diags[0].Message)
	}

	regDiags := ctx.RegistryDiags
	if strict {
		regDiags = regDiags.Promote()
	}
	diags = append(regDiags, diags...)

	errs, warns := prompts.PrintDiagnostics(os.Stderr, diags)
	if errs > 0 {
		return fmt.Errorf("generation blocked by %d error(s)", errs)
	}

	for _, e := range selected {
		outDir := filepath.Join(output, e.Name())
		slog.Debug("running emitter", "name", e.Name(), "dir", outDir)
		if err := e.Emit(db, outDir); err != nil {
			return fmt.Errorf("emitter %s failed: %w", e.Name(), err)
		}
	}

	fields := []prompts.ResultField{
		{Label: "Natives", Value: fmt.Sprint(db.NativeCount())},
		{Label: "Namespaces", Value: fmt.Sprint(len(db.Namespaces))},
		{Label: "Formats", Value: strings.Join(formats, ", ")},
		{Label: "Output", Value: output},
	}
	if warns > 0 {
		fields = append(fields, prompts.ResultField{Label: "Warnings", Value: fmt.Sprint(warns)})
	}
	prompts.PrintResult(fields, "Generation completed")

	return nil
}
