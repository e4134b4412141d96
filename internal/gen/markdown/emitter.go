// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package markdown emits reference documentation for the validated
// database: one page per namespace plus an index.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/nativewrappers/nativegen/internal/database"
	"github.com/nativewrappers/nativegen/internal/natives"
)

//go:embed namespace.md.tmpl index.md.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("markdown").Funcs(template.FuncMap{
	"signature": signature,
	"join":      strings.Join,
}).ParseFS(tmplFS, "namespace.md.tmpl", "index.md.tmpl"))

// Emitter writes markdown reference pages.
type Emitter struct{}

// Name returns the emitter identifier.
func (e *Emitter) Name() string { return "markdown" }

// FileExtension returns the extension of the produced files.
func (e *Emitter) FileExtension() string { return ".md" }

type namespacePage struct {
	Namespace string
	Natives   []*natives.NativeDefinition
}

type indexPage struct {
	Namespaces []indexEntry
	Enums      []string
	Structs    []string
}

type indexEntry struct {
	Name  string
	Count int
	File  string
}

// Emit writes one page per namespace and an index.md linking them.
func (e *Emitter) Emit(db *database.NativeDatabase, outDir string) error {
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	index := indexPage{
		Enums:   db.Enums.Names(),
		Structs: db.Structs.Names(),
	}

	for _, ns := range db.NamespaceNames() {
		page := namespacePage{Namespace: ns, Natives: db.Namespaces[ns]}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "namespace.md.tmpl", page); err != nil {
			return fmt.Errorf("failed to render namespace %s: %w", ns, err)
		}

		file := strings.ToLower(ns) + ".md"
		if err := os.WriteFile(filepath.Join(outDir, file), buf.Bytes(), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", file, err)
		}

		index.Namespaces = append(index.Namespaces, indexEntry{
			Name:  ns,
			Count: len(page.Natives),
			File:  file,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index.md.tmpl", index); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.md"), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write index.md: %w", err)
	}

	return nil
}

// signature renders the documented C-like signature of a native.
func signature(def *natives.NativeDefinition) string {
	params := make([]string, len(def.Parameters))
	for i, p := range def.Parameters {
		s := p.Type.Name
		if p.Type.IsPointer {
			s += "*"
		}
		s += " " + p.Name
		if p.HasDefault() {
			s += " = " + p.DefaultValue
		}
		params[i] = s
	}
	ret := def.ReturnType.Name
	if def.ReturnType.IsPointer {
		ret += "*"
	}
	return fmt.Sprintf("%s %s(%s)", ret, def.Name, strings.Join(params, ", "))
}
