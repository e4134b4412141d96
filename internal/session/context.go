// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nativewrappers/nativegen/internal/config"
	"github.com/nativewrappers/nativegen/internal/database"
	"github.com/nativewrappers/nativegen/internal/diag"
	"github.com/nativewrappers/nativegen/internal/registry"
)

var (
	// ErrNotInitialized indicates no nativegen.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a nativegen project (nativegen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoDocs indicates the docs directory holds no documentation files.
	ErrNoDocs = errors.New("no documentation files found")
)

// ConfigFileName is the name of the nativegen configuration file.
const ConfigFileName = "nativegen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration, the loaded definition
// registries and the documentation sources ready for a batch build.
type Context struct {
	Config *config.Config

	Enums   *registry.EnumRegistry
	Structs *registry.StructRegistry

	// RegistryDiags carries diagnostics produced while loading and
	// validating the definition registries. Commands merge these with the
	// batch diagnostics before reporting.
	RegistryDiags diag.Diagnostics

	// Sources are the documentation files under the docs directory, read up
	// front, sorted by path.
	Sources []database.Source
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the nativegen Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	enums, structs, regDiags := database.LoadRegistries(
		resolveDir(cwd, cfg.Enums), resolveDir(cwd, cfg.Structs))

	sources, err := readDocs(resolveDir(cwd, cfg.Docs))
	if err != nil {
		return nil, err
	}

	genCtx := &Context{
		Config:        cfg,
		Enums:         enums,
		Structs:       structs,
		RegistryDiags: regDiags,
		Sources:       sources,
	}

	return context.WithValue(ctx, contextKey{}, genCtx), nil
}

func resolveDir(cwd, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(cwd, dir)
}

// readDocs collects every .md file under dir recursively, in sorted order so
// batch results are deterministic.
func readDocs(dir string) ([]database.Source, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list docs in %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocs, dir)
	}
	sort.Strings(paths)

	sources := make([]database.Source, len(paths))
	for i, p := range paths {
		content, err := os.ReadFile(p) //nolint:gosec // path listed from config dir
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		sources[i] = database.Source{Path: p, Content: content}
	}
	return sources, nil
}

// From extracts the nativegen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if genCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return genCtx
	}
	return nil
}
