// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package main is the entry point for the nativegen CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nativewrappers/nativegen/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
