// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nativewrappers/nativegen/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}
