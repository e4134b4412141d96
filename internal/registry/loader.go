// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nativewrappers/nativegen/internal/diag"
	"github.com/nativewrappers/nativegen/internal/natives"
)

// rawEnumFile mirrors the on-disk enum definition format.
type rawEnumFile struct {
	Name     string          `yaml:"name"`
	BaseType string          `yaml:"basetype"`
	Members  []rawEnumMember `yaml:"members"`
}

type rawEnumMember struct {
	Name    string `yaml:"name"`
	Value   any    `yaml:"value,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

// rawStructFile mirrors the on-disk struct definition format.
type rawStructFile struct {
	Name      string           `yaml:"name"`
	Alignment uint32           `yaml:"alignment,omitempty"`
	Fields    []rawStructField `yaml:"fields"`
}

type rawStructField struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Array     uint32 `yaml:"array,omitempty"`
	Padding   bool   `yaml:"padding,omitempty"`
	Input     *bool  `yaml:"input,omitempty"`
	Output    *bool  `yaml:"output,omitempty"`
	Alignment uint32 `yaml:"alignment,omitempty"`
	Struct    string `yaml:"struct,omitempty"`
}

// LoadEnums reads every YAML enum definition in dir into the registry.
// Malformed files are reported as diagnostics against their file and never
// abort the rest of the directory.
func (r *EnumRegistry) LoadEnums(dir string) diag.Diagnostics {
	var diags diag.Diagnostics

	for _, path := range definitionFiles(dir, &diags) {
		data, err := os.ReadFile(path) //nolint:gosec // path comes from the configured definitions dir
		if err != nil {
			diags = append(diags, diag.Errorf(path, "failed to read enum definition: %v", err))
			continue
		}

		if err := validateDefinition(data, enumFileSchema); err != nil {
			diags = append(diags, diag.Errorf(path, "invalid enum definition: %v", err))
			continue
		}

		var raw rawEnumFile
		if err := yaml.Unmarshal(data, &raw); err != nil {
			diags = append(diags, diag.Errorf(path, "invalid enum definition: %v", err))
			continue
		}

		if prev, dup := r.files[raw.Name]; dup {
			diags = append(diags,
				diag.Errorf(prev, "duplicate enum definition %q (also defined in %s)", raw.Name, path),
				diag.Errorf(path, "duplicate enum definition %q (also defined in %s)", raw.Name, prev),
			)
			continue
		}

		def := &natives.EnumDefinition{
			Name:     raw.Name,
			BaseType: raw.BaseType,
		}
		if def.BaseType == "" {
			def.BaseType = "int"
		}
		for _, m := range raw.Members {
			member := natives.EnumMember{
				Name:    m.Name,
				Comment: m.Comment,
			}
			if m.Value != nil {
				member.Value = fmt.Sprint(m.Value)
			}
			def.Members = append(def.Members, member)
		}

		r.Add(def)
		r.files[raw.Name] = path
	}

	return diags
}

// LoadStructs reads every YAML struct definition in dir into the registry
// and resolves nested struct references once the whole directory is loaded.
func (r *StructRegistry) LoadStructs(dir string) diag.Diagnostics {
	var diags diag.Diagnostics

	for _, path := range definitionFiles(dir, &diags) {
		data, err := os.ReadFile(path) //nolint:gosec // path comes from the configured definitions dir
		if err != nil {
			diags = append(diags, diag.Errorf(path, "failed to read struct definition: %v", err))
			continue
		}

		if err := validateDefinition(data, structFileSchema); err != nil {
			diags = append(diags, diag.Errorf(path, "invalid struct definition: %v", err))
			continue
		}

		var raw rawStructFile
		if err := yaml.Unmarshal(data, &raw); err != nil {
			diags = append(diags, diag.Errorf(path, "invalid struct definition: %v", err))
			continue
		}

		if prev, dup := r.files[raw.Name]; dup {
			diags = append(diags,
				diag.Errorf(prev, "duplicate struct definition %q (also defined in %s)", raw.Name, path),
				diag.Errorf(path, "duplicate struct definition %q (also defined in %s)", raw.Name, prev),
			)
			continue
		}

		def := &natives.StructDefinition{
			Name:             raw.Name,
			DefaultAlignment: raw.Alignment,
		}
		for _, f := range raw.Fields {
			field := natives.StructField{
				Name:      f.Name,
				Type:      natives.ParseType(f.Type),
				IsInput:   true,
				IsOutput:  true,
				ArraySize: f.Array,
				IsPadding: f.Padding,
				Alignment: f.Alignment,
			}
			if field.ArraySize == 0 {
				field.ArraySize = field.Type.ArraySize
			}
			if f.Input != nil {
				field.IsInput = *f.Input
			}
			if f.Output != nil {
				field.IsOutput = *f.Output
			}
			if f.Struct != "" {
				field.IsNestedStruct = true
				field.NestedStructName = f.Struct
			}
			if field.IsPadding {
				field.IsInput = false
				field.IsOutput = false
			}
			def.Fields = append(def.Fields, field)
		}

		r.Add(def)
		r.files[raw.Name] = path
	}

	r.resolveNested()

	return diags
}

// definitionFiles lists the YAML files in dir in a stable order. A missing
// directory is not an error; an empty registry is a valid configuration.
func definitionFiles(dir string, diags *diag.Diagnostics) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			*diags = append(*diags, diag.Errorf(dir, "failed to read definitions directory: %v", err))
		}
		return nil
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths
}
