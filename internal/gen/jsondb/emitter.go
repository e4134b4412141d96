// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package jsondb exports the validated database as JSON files for consumers
// that load the catalogue without running the generator.
package jsondb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nativewrappers/nativegen/internal/database"
	"github.com/nativewrappers/nativegen/internal/natives"
)

// Emitter writes natives.json, enums.json and structs.json.
type Emitter struct{}

// Name returns the emitter identifier.
func (e *Emitter) Name() string { return "jsondb" }

// FileExtension returns the extension of the produced files.
func (e *Emitter) FileExtension() string { return ".json" }

type jsonParameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Pointer     bool   `json:"pointer,omitempty"`
	Default     string `json:"default,omitempty"`
	Output      bool   `json:"output,omitempty"`
	InOut       bool   `json:"inout,omitempty"`
	Description string `json:"description,omitempty"`
}

type jsonNative struct {
	Name       string          `json:"name"`
	Hash       string          `json:"hash"`
	Aliases    []string        `json:"aliases,omitempty"`
	ReturnType string          `json:"returnType"`
	Parameters []jsonParameter `json:"parameters"`
	APISet     string          `json:"apiset"`
	Deprecated string          `json:"deprecated,omitempty"`
}

type jsonEnumMember struct {
	Name    string `json:"name"`
	Value   string `json:"value,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type jsonEnum struct {
	Name     string           `json:"name"`
	BaseType string           `json:"basetype"`
	Members  []jsonEnumMember `json:"members"`
	UsedBy   []string         `json:"usedBy,omitempty"`
}

type jsonStructField struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Array     uint32 `json:"array,omitempty"`
	Padding   bool   `json:"padding,omitempty"`
	Alignment uint32 `json:"alignment,omitempty"`
}

type jsonStruct struct {
	Name      string            `json:"name"`
	Alignment uint32            `json:"alignment,omitempty"`
	Fields    []jsonStructField `json:"fields"`
	UsedBy    []string          `json:"usedBy,omitempty"`
}

// Emit writes the three database files under outDir.
func (e *Emitter) Emit(db *database.NativeDatabase, outDir string) error {
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	namespaces := make(map[string][]jsonNative, len(db.Namespaces))
	for _, ns := range db.NamespaceNames() {
		var defs []jsonNative
		for _, def := range db.Namespaces[ns] {
			defs = append(defs, toJSONNative(def))
		}
		namespaces[ns] = defs
	}
	if err := writeJSON(filepath.Join(outDir, "natives.json"), namespaces); err != nil {
		return err
	}

	enums := make(map[string]jsonEnum, len(db.Enums.All()))
	for _, name := range db.Enums.Names() {
		enums[name] = toJSONEnum(db.Enums.Get(name))
	}
	if err := writeJSON(filepath.Join(outDir, "enums.json"), enums); err != nil {
		return err
	}

	structs := make(map[string]jsonStruct, len(db.Structs.All()))
	for _, name := range db.Structs.Names() {
		structs[name] = toJSONStruct(db.Structs.Get(name))
	}
	return writeJSON(filepath.Join(outDir, "structs.json"), structs)
}

func toJSONNative(def *natives.NativeDefinition) jsonNative {
	out := jsonNative{
		Name:       def.Name,
		Hash:       def.Hash,
		Aliases:    def.Aliases,
		ReturnType: typeString(def.ReturnType),
		Parameters: []jsonParameter{},
		APISet:     def.APISet,
	}
	if def.Deprecated {
		out.Deprecated = def.DeprecatedMessage
		if out.Deprecated == "" {
			out.Deprecated = "deprecated"
		}
	}
	for _, p := range def.Parameters {
		out.Parameters = append(out.Parameters, jsonParameter{
			Name:        p.Name,
			Type:        typeString(p.Type),
			Pointer:     p.Type.IsPointer,
			Default:     p.DefaultValue,
			Output:      p.IsPureOutput(),
			InOut:       p.IsInOut(),
			Description: p.Description,
		})
	}
	return out
}

func toJSONEnum(def *natives.EnumDefinition) jsonEnum {
	out := jsonEnum{
		Name:     def.Name,
		BaseType: def.BaseType,
		Members:  []jsonEnumMember{},
		UsedBy:   def.UsedBy,
	}
	for _, m := range def.Members {
		out.Members = append(out.Members, jsonEnumMember(m))
	}
	return out
}

func toJSONStruct(def *natives.StructDefinition) jsonStruct {
	out := jsonStruct{
		Name:      def.Name,
		Alignment: def.DefaultAlignment,
		Fields:    []jsonStructField{},
		UsedBy:    def.UsedBy,
	}
	for _, f := range def.Fields {
		out.Fields = append(out.Fields, jsonStructField{
			Name:      f.Name,
			Type:      typeString(f.Type),
			Array:     f.ArraySize,
			Padding:   f.IsPadding,
			Alignment: f.Alignment,
		})
	}
	return out
}

func typeString(t natives.TypeInfo) string {
	s := t.Name
	if t.IsPointer {
		s += "*"
	}
	return s
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
