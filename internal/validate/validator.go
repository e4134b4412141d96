// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package validate post-processes parsed definitions: it resolves
// enum-vs-struct ambiguity against the registries, flags unknown types with
// suggestions, and checks default-value literals against their resolved type.
package validate

import (
	"fmt"
	"strings"

	"github.com/nativewrappers/nativegen/internal/diag"
	"github.com/nativewrappers/nativegen/internal/natives"
	"github.com/nativewrappers/nativegen/internal/registry"
)

// Validator checks definitions against the enum and struct registries. The
// registries are explicit dependencies so a validator is a pure function of
// its inputs; tests run it with swapped or partial registries.
type Validator struct {
	enums   *registry.EnumRegistry
	structs *registry.StructRegistry
}

// New creates a Validator over the given registries.
func New(enums *registry.EnumRegistry, structs *registry.StructRegistry) *Validator {
	return &Validator{enums: enums, structs: structs}
}

// ValidateNative resolves and checks every parameter type and the return
// type of def. Enum resolution mutates the definition's TypeInfos in place;
// this is the only mutation a definition sees after parsing.
//
// Resolution must run before the category checks: enum-vs-struct
// disambiguation depends on a registry that is only complete once every
// definition file has been scanned, and a single-pass check would reject
// legitimate forward references.
func (v *Validator) ValidateNative(def *natives.NativeDefinition) diag.Diagnostics {
	var diags diag.Diagnostics

	for i := range def.Parameters {
		p := &def.Parameters[i]
		p.Type.ResolveEnumType(v.enums.GetBaseType)
		v.checkType(def.SourceFile, fmt.Sprintf("parameter %q", p.Name), p.Type, &diags)

		if p.HasDefault() {
			v.checkDefault(def.SourceFile, p, &diags)
		}
	}

	def.ReturnType.ResolveEnumType(v.enums.GetBaseType)
	v.checkType(def.SourceFile, "return type", def.ReturnType, &diags)

	return diags
}

// ValidateStruct resolves and checks every field type of a struct
// definition, so definition files referencing unknown types get the same
// suggestion-bearing diagnostics as natives.
func (v *Validator) ValidateStruct(def *natives.StructDefinition, sourceFile string) diag.Diagnostics {
	var diags diag.Diagnostics

	for i := range def.Fields {
		f := &def.Fields[i]
		if f.IsPadding {
			continue
		}
		f.Type.ResolveEnumType(v.enums.GetBaseType)
		v.checkType(sourceFile, fmt.Sprintf("field %q of struct %q", f.Name, def.Name), f.Type, &diags)
	}

	return diags
}

// checkType reports unknown enum and struct type names. A type still in the
// struct category after resolution is only legal when the struct registry
// proves it.
func (v *Validator) checkType(file, subject string, t natives.TypeInfo, diags *diag.Diagnostics) {
	switch t.Category {
	case natives.CategoryEnum:
		if !v.enums.Contains(t.Name) {
			*diags = append(*diags, diag.Errorf(file, "%s references unknown enum type %q", subject, t.Name))
		}
	case natives.CategoryStruct:
		if !v.structs.Contains(t.Name) {
			msg := fmt.Sprintf("%s references unknown type %q", subject, t.Name)
			if suggestions := v.suggest(t.Name); len(suggestions) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
			}
			*diags = append(*diags, diag.Errorf(file, "%s", msg))
		}
	}
}
