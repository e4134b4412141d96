// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package gen defines the emitter interface over the validated database and
// the registry the CLI selects emitters from.
package gen

import (
	"fmt"
	"sort"

	"github.com/nativewrappers/nativegen/internal/database"
)

// Emitter turns a validated NativeDatabase into files in an output
// directory. Emitters treat the database as immutable input.
type Emitter interface {
	// Name returns the emitter's identifier (e.g. "golang", "jsondb").
	Name() string

	// Emit writes the emitter's output for db under outDir.
	Emit(db *database.NativeDatabase, outDir string) error

	// FileExtension returns the extension of the files produced (e.g. ".go").
	FileExtension() string
}

// Registry maps emitter names to implementations. It is passed to commands
// explicitly rather than held in package state.
type Registry map[string]Emitter

// Add registers an emitter under its own name.
func (r Registry) Add(e Emitter) {
	r[e.Name()] = e
}

// Get retrieves an emitter by name.
func (r Registry) Get(name string) (Emitter, error) {
	e, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return e, nil
}

// Available returns all registered emitter names, sorted.
func (r Registry) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
