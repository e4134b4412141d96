// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nativewrappers/nativegen/internal/config"
	"github.com/nativewrappers/nativegen/internal/gen"
	"github.com/nativewrappers/nativegen/internal/prompts"
)

type initOptions struct {
	docs           string
	enums          string
	structs        string
	output         string
	formats        []string
	strict         bool
	nonInteractive bool
}

func newInitCmd(emitters gen.Registry) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new nativegen project",
		Long: `Initialize a new nativegen project with a nativegen.yaml configuration
file pointing at the documentation and definition directories.`,
		Example: `  # Interactive mode
  nativegen init

  # Non-interactive
  nativegen init --docs ./docs --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts, emitters)
		},
	}

	cmd.Flags().StringVarP(&opts.docs, "docs", "d", "./docs", "Path to documentation folder")
	cmd.Flags().StringVar(&opts.enums, "enums", "./defs/enums", "Path to enum definitions")
	cmd.Flags().StringVar(&opts.structs, "structs", "./defs/structs", "Path to struct definitions")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "./gen", "Output directory")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "Default output formats")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions, emitters gen.Registry) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, "nativegen.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("nativegen.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.docs == "" {
			return errors.New("non-interactive mode requires --docs")
		}
	} else {
		if err := prompts.RunInitForm(
			&opts.docs,
			&opts.enums,
			&opts.structs,
			&opts.output,
			&opts.formats,
			&opts.strict,
			emitters.Available(),
		); err != nil {
			return err
		}
	}

	for _, f := range opts.formats {
		if _, err := emitters.Get(f); err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(emitters.Available(), ", "))
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Docs:    opts.docs,
		Enums:   opts.enums,
		Structs: opts.structs,
		Output:  opts.output,
		Formats: opts.formats,
		Strict:  opts.strict,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	for _, dir := range []string{opts.docs, opts.enums, opts.structs} {
		if dir == "" {
			continue
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cwd, dir)
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Docs", Value: opts.docs},
		{Label: "Enums", Value: opts.enums},
		{Label: "Structs", Value: opts.structs},
		{Label: "Output", Value: opts.output},
	}, "Initialization completed")

	return nil
}
