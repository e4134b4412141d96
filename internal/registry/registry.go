// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package registry loads and indexes enum and struct definitions. The
// registries are built once, sequentially, before the parallel parse phase,
// then shared read-only by the parser and validator.
package registry

import (
	"sort"

	"github.com/nativewrappers/nativegen/internal/natives"
)

// EnumRegistry is a read-only lookup of enum definitions by name.
type EnumRegistry struct {
	enums map[string]*natives.EnumDefinition
	files map[string]string // definition name → source file, for duplicates
}

// NewEnumRegistry creates an empty enum registry.
func NewEnumRegistry() *EnumRegistry {
	return &EnumRegistry{
		enums: make(map[string]*natives.EnumDefinition),
		files: make(map[string]string),
	}
}

// Contains reports whether an enum with the given name is registered.
func (r *EnumRegistry) Contains(name string) bool {
	_, ok := r.enums[name]
	return ok
}

// GetBaseType returns the underlying storage type of a registered enum.
func (r *EnumRegistry) GetBaseType(name string) (string, bool) {
	e, ok := r.enums[name]
	if !ok {
		return "", false
	}
	return e.BaseType, true
}

// Get returns the definition for name, or nil.
func (r *EnumRegistry) Get(name string) *natives.EnumDefinition {
	return r.enums[name]
}

// All returns the name → definition map. Callers must treat it as read-only.
func (r *EnumRegistry) All() map[string]*natives.EnumDefinition {
	return r.enums
}

// Names returns all registered enum names, sorted.
func (r *EnumRegistry) Names() []string {
	names := make([]string, 0, len(r.enums))
	for n := range r.enums {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Add registers a definition, replacing any previous one with the same name.
func (r *EnumRegistry) Add(def *natives.EnumDefinition) {
	r.enums[def.Name] = def
}

// StructRegistry is a read-only lookup of struct definitions by name.
type StructRegistry struct {
	structs map[string]*natives.StructDefinition
	files   map[string]string
}

// NewStructRegistry creates an empty struct registry.
func NewStructRegistry() *StructRegistry {
	return &StructRegistry{
		structs: make(map[string]*natives.StructDefinition),
		files:   make(map[string]string),
	}
}

// Contains reports whether a struct with the given name is registered.
func (r *StructRegistry) Contains(name string) bool {
	_, ok := r.structs[name]
	return ok
}

// Get returns the definition for name, or nil.
func (r *StructRegistry) Get(name string) *natives.StructDefinition {
	return r.structs[name]
}

// All returns the name → definition map. Callers must treat it as read-only.
func (r *StructRegistry) All() map[string]*natives.StructDefinition {
	return r.structs
}

// Names returns all registered struct names, sorted.
func (r *StructRegistry) Names() []string {
	names := make([]string, 0, len(r.structs))
	for n := range r.structs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Add registers a definition, replacing any previous one with the same name.
func (r *StructRegistry) Add(def *natives.StructDefinition) {
	r.structs[def.Name] = def
}

// SourceFile returns the definition file a struct was loaded from, or "".
func (r *StructRegistry) SourceFile(name string) string {
	return r.files[name]
}

// resolveNested marks fields whose type names refer to registered structs.
// Runs after every definition file in a directory has loaded, so forward
// references between files resolve.
func (r *StructRegistry) resolveNested() {
	for _, def := range r.structs {
		for i := range def.Fields {
			f := &def.Fields[i]
			if f.IsNestedStruct || f.Type.Category != natives.CategoryStruct {
				continue
			}
			if r.Contains(f.Type.Name) {
				f.IsNestedStruct = true
				f.NestedStructName = f.Type.Name
			}
		}
	}
}
