// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package database builds the validated NativeDatabase from a batch of
// documentation files: a parallel, stateless parse phase followed by a
// single-threaded reduction that validates, deduplicates and groups.
package database

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nativewrappers/nativegen/internal/diag"
	"github.com/nativewrappers/nativegen/internal/docparse"
	"github.com/nativewrappers/nativegen/internal/natives"
	"github.com/nativewrappers/nativegen/internal/registry"
	"github.com/nativewrappers/nativegen/internal/validate"
)

// Source is one documentation file, read up front so workers never block on
// I/O mid-computation.
type Source struct {
	Path    string
	Content []byte
}

// Options tunes a Build run.
type Options struct {
	// Strict promotes every warning to an error, uniformly at batch level.
	Strict bool
	// Workers caps the parallel parse phase; 0 means one per CPU.
	Workers int
	// Progress, when set, is called after each file finishes parsing.
	Progress func(done, total int)
}

// NativeDatabase is the validated model downstream emitters consume
// read-only. Emitters must never observe partially-validated definitions, so
// a database is only returned once the whole reduction has run.
type NativeDatabase struct {
	// Namespaces maps a namespace to its natives, sorted by name.
	Namespaces map[string][]*natives.NativeDefinition
	Enums      *registry.EnumRegistry
	Structs    *registry.StructRegistry
}

// NamespaceNames returns the namespaces in sorted order.
func (db *NativeDatabase) NamespaceNames() []string {
	names := make([]string, 0, len(db.Namespaces))
	for n := range db.Namespaces {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NativeCount returns the total number of natives across namespaces.
func (db *NativeDatabase) NativeCount() int {
	n := 0
	for _, defs := range db.Namespaces {
		n += len(defs)
	}
	return n
}

// parseResult is one worker's output: a definition (nil on hard errors) plus
// that file's local diagnostics.
type parseResult struct {
	index int
	def   *natives.NativeDefinition
	diags diag.Diagnostics
}

// Build parses all sources, validates the results against the registries and
// groups them into a NativeDatabase. One bad file never aborts the batch;
// its diagnostics are collected alongside everyone else's. The returned
// database is nil only when ctx was canceled between phases.
func Build(ctx context.Context, sources []Source, enums *registry.EnumRegistry, structs *registry.StructRegistry, opts Options) (*NativeDatabase, diag.Diagnostics) {
	results := parseAll(ctx, sources, opts)

	if err := ctx.Err(); err != nil {
		// Not attributable to a single file; report against the batch root.
		file := "."
		if len(sources) > 0 {
			file = filepath.Dir(sources[0].Path)
		}
		return nil, diag.Diagnostics{diag.Errorf(file, "build canceled: %v", err)}
	}

	db, diags := reduce(results, enums, structs)

	if opts.Strict {
		diags = diags.Promote()
	}
	return db, diags
}

// parseAll runs the embarrassingly parallel phase: one task per file, no
// shared mutable state, results collected in input order.
func parseAll(ctx context.Context, sources []Source, opts Options) []parseResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]parseResult, len(sources))
	resultCh := make(chan parseResult)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	go func() {
		for i, src := range sources {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() (err error) {
				res := parseResult{index: i}
				func() {
					// A panic in one worker becomes a diagnostic for its
					// file, converted at the orchestration boundary like any
					// other unexpected host failure.
					defer func() {
						if r := recover(); r != nil {
							res.def = nil
							res.diags = diag.Diagnostics{
								diag.Errorf(src.Path, "internal parse failure: %v", r),
							}
						}
					}()
					res.def, res.diags = docparse.Parser{}.Parse(src.Path, src.Content)
				}()
				resultCh <- res
				return nil
			})
		}
		g.Wait() //nolint:errcheck // workers only report through resultCh
		close(resultCh)
	}()

	done := 0
	for res := range resultCh {
		results[res.index] = res
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(sources))
		}
	}
	return results
}

// reduce is the single-threaded aggregation phase: it must not run
// concurrently with parsing or with itself, since it mutates shared
// collections (registries' UsedBy lists, the namespace map).
func reduce(results []parseResult, enums *registry.EnumRegistry, structs *registry.StructRegistry) (*NativeDatabase, diag.Diagnostics) {
	var diags diag.Diagnostics

	validator := validate.New(enums, structs)

	db := &NativeDatabase{
		Namespaces: make(map[string][]*natives.NativeDefinition),
		Enums:      enums,
		Structs:    structs,
	}

	byName := make(map[string][]*natives.NativeDefinition)
	byHash := make(map[string][]*natives.NativeDefinition)

	for _, res := range results {
		diags = append(diags, res.diags...)
		if res.def == nil || res.diags.HasErrors() {
			continue
		}

		vdiags := validator.ValidateNative(res.def)
		diags = append(diags, vdiags...)
		if vdiags.HasErrors() {
			continue
		}

		def := res.def
		byName[strings.ToUpper(def.Name)] = append(byName[strings.ToUpper(def.Name)], def)
		byHash[def.Hash] = append(byHash[def.Hash], def)
		db.Namespaces[def.Namespace] = append(db.Namespaces[def.Namespace], def)

		trackUsage(def, enums, structs)
	}

	// Cross-file errors are reported against every file involved, not just
	// the first one encountered.
	diags = append(diags, duplicateErrors(byName, "duplicate native name")...)
	diags = append(diags, duplicateErrors(byHash, "duplicate native hash")...)

	for ns := range db.Namespaces {
		sort.Slice(db.Namespaces[ns], func(i, j int) bool {
			return db.Namespaces[ns][i].Name < db.Namespaces[ns][j].Name
		})
	}

	return db, diags
}

func duplicateErrors(index map[string][]*natives.NativeDefinition, what string) diag.Diagnostics {
	var diags diag.Diagnostics

	keys := make([]string, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		defs := index[key]
		if len(defs) < 2 {
			continue
		}
		files := make([]string, len(defs))
		for i, d := range defs {
			files[i] = d.SourceFile
		}
		for _, d := range defs {
			diags = append(diags, diag.Errorf(d.SourceFile,
				"%s %q defined in %s", what, key, strings.Join(files, ", ")))
		}
	}
	return diags
}

// trackUsage appends the native's name to the UsedBy list of every enum and
// struct its signature references.
func trackUsage(def *natives.NativeDefinition, enums *registry.EnumRegistry, structs *registry.StructRegistry) {
	track := func(t natives.TypeInfo) {
		switch t.Category {
		case natives.CategoryEnum:
			if e := enums.Get(t.Name); e != nil && !containsString(e.UsedBy, def.Name) {
				e.UsedBy = append(e.UsedBy, def.Name)
			}
		case natives.CategoryStruct:
			if s := structs.Get(t.Name); s != nil && !containsString(s.UsedBy, def.Name) {
				s.UsedBy = append(s.UsedBy, def.Name)
			}
		}
	}

	for _, p := range def.Parameters {
		track(p.Type)
	}
	track(def.ReturnType)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// LoadRegistries builds both registries from their definition directories
// and validates every struct definition. This runs once, sequentially,
// before the parallel parse phase; the registries are read-only afterward
// and safe to share across workers without synchronization.
func LoadRegistries(enumsDir, structsDir string) (*registry.EnumRegistry, *registry.StructRegistry, diag.Diagnostics) {
	enums := registry.NewEnumRegistry()
	structs := registry.NewStructRegistry()

	var diags diag.Diagnostics
	diags = append(diags, enums.LoadEnums(enumsDir)...)
	diags = append(diags, structs.LoadStructs(structsDir)...)

	validator := validate.New(enums, structs)
	for _, name := range structs.Names() {
		diags = append(diags, validator.ValidateStruct(structs.Get(name), structs.SourceFile(name))...)
	}

	return enums, structs, diags
}
