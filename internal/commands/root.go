// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package commands contains all CLI command definitions.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nativewrappers/nativegen/internal/gen"
	"github.com/nativewrappers/nativegen/internal/gen/golang"
	"github.com/nativewrappers/nativegen/internal/gen/jsondb"
	"github.com/nativewrappers/nativegen/internal/gen/markdown"
	"github.com/nativewrappers/nativegen/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	var verbose bool

	emitters := gen.Registry{}
	emitters.Add(&golang.Emitter{})
	emitters.Add(&jsondb.Emitter{})
	emitters.Add(&markdown.Emitter{})

	rootCmd := &cobra.Command{
		Use:          "nativegen",
		Short:        "Compile native function documentation into code and data",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newInitCmd(emitters))
	registerProjectCmds(rootCmd, emitters)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// registerProjectCmds adds the commands that need a loaded project context.
func registerProjectCmds(parent *cobra.Command, emitters gen.Registry) {
	for _, cmd := range []*cobra.Command{
		newCheckCmd(),
		newGenerateCmd(emitters),
	} {
		cmd.PreRunE = session.PreRunLoad
		parent.AddCommand(cmd)
	}
}
