// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativewrappers/nativegen/internal/natives"
	"github.com/nativewrappers/nativegen/internal/registry"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()

	enums := registry.NewEnumRegistry()
	enums.Add(&natives.EnumDefinition{
		Name:     "eWeaponType",
		BaseType: "int",
		Members:  []natives.EnumMember{{Name: "WEAPON_NONE", Value: "0"}},
	})

	structs := registry.NewStructRegistry()
	structs.Add(&natives.StructDefinition{
		Name:   "CameraInfo",
		Fields: []natives.StructField{{Name: "fov", Type: natives.ParseType("float")}},
	})

	return New(enums, structs)
}

func native(params ...natives.NativeParameter) *natives.NativeDefinition {
	return &natives.NativeDefinition{
		Name:       "TEST_NATIVE",
		Namespace:  "TEST",
		SourceFile: "test.md",
		ReturnType: natives.ParseType("void"),
		Parameters: params,
	}
}

func TestValidateNative_ResolvesEnums(t *testing.T) {
	v := newValidator(t)

	def := native(natives.NativeParameter{Name: "weapon", Type: natives.ParseType("eWeaponType")})
	diags := v.ValidateNative(def)
	require.Empty(t, diags)

	assert.Equal(t, natives.CategoryEnum, def.Parameters[0].Type.Category)
	assert.Equal(t, "int", def.Parameters[0].Type.EnumBaseType)
}

func TestValidateNative_KnownStruct(t *testing.T) {
	v := newValidator(t)

	def := native(natives.NativeParameter{Name: "info", Type: natives.ParseType("CameraInfo*")})
	assert.Empty(t, v.ValidateNative(def))
}

func TestValidateNative_UnknownStruct(t *testing.T) {
	v := newValidator(t)

	def := native(natives.NativeParameter{Name: "pos", Type: natives.ParseType("Vestor3")})
	diags := v.ValidateNative(def)
	require.Len(t, diags, 1)

	assert.Contains(t, diags[0].Message, `unknown type "Vestor3"`)
	assert.Contains(t, diags[0].Message, "did you mean Vector3?")
}

func TestValidateNative_UnknownStructSimilarity(t *testing.T) {
	v := newValidator(t)

	def := native(natives.NativeParameter{Name: "info", Type: natives.ParseType("CameraInfos")})
	diags := v.ValidateNative(def)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "did you mean CameraInfo?")
}

func TestValidateNative_UnknownReturnType(t *testing.T) {
	v := newValidator(t)

	def := native()
	def.ReturnType = natives.ParseType("Mystery")
	diags := v.ValidateNative(def)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "return type")
}

func TestValidateStruct(t *testing.T) {
	v := newValidator(t)

	def := &natives.StructDefinition{
		Name: "Outer",
		Fields: []natives.StructField{
			{Name: "cam", Type: natives.ParseType("CameraInfo")},
			{Name: "pad0", Type: natives.ParseType("byte"), IsPadding: true},
			{Name: "bad", Type: natives.ParseType("Nonexistent")},
		},
	}

	diags := v.ValidateStruct(def, "structs/outer.yaml")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `field "bad" of struct "Outer"`)
}

func TestCheckDefault(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		literal string
		wantErr string
	}{
		{"bool true", "BOOL", "true", ""},
		{"bool uppercase", "BOOL", "FALSE", ""},
		{"bool numeric", "BOOL", "0", ""},
		{"bool invalid", "BOOL", "yes", "invalid boolean default"},

		{"float plain", "float", "1.5", ""},
		{"float suffix", "float", "1.0f", ""},
		{"float exponent", "float", "1e3", ""},
		{"float leading dot", "float", ".5", ""},
		{"float negative", "float", "-0.25", ""},
		{"float invalid", "float", "1.2.3", "invalid float default"},

		{"int decimal", "int", "42", ""},
		{"int negative", "int", "-7", ""},
		{"int hex", "int", "0xFF", ""},
		{"int invalid", "int", "forty", "invalid integer default"},
		{"int float literal", "int", "1.5", "invalid integer default"},

		{"hash quoted", "Hash", `"WEAPON_PISTOL"`, ""},
		{"hash numeric", "Hash", "0xDEADBEEF", ""},
		{"hash invalid", "Hash", "WEAPON_PISTOL", "invalid hash default"},

		{"string quoted", "char*", `"hello"`, ""},
		{"string nullptr", "char*", "nullptr", ""},
		{"string NULL", "char*", "NULL", ""},
		{"string zero", "char*", "0", ""},
		{"string bare", "char*", "hello", "invalid string default"},

		{"enum numeric", "eWeaponType", "0", ""},
		{"enum member", "eWeaponType", "WEAPON_NONE", ""},
		{"enum invalid", "eWeaponType", `"none"`, "invalid enum default"},

		{"handle zero", "Ped", "0", ""},
		{"handle nullptr", "FireId", "nullptr", ""},
		{"handle invalid bare", "FireId", "5", "expected 0, nullptr or NULL"},
		{"class handle invalid", "Ped", "5", "canonical = 0 form"},

		{"pointer", "int*", "0", "pointer parameter"},
		{"vector", "Vector3", "0", "must not carry a default"},
		{"any", "Any", "0", "must not carry a default"},
		{"struct", "CameraInfo", "0", "must not carry a default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newValidator(t)

			def := native(natives.NativeParameter{
				Name:         "p",
				Type:         natives.ParseType(tt.typ),
				DefaultValue: tt.literal,
			})
			diags := v.ValidateNative(def)

			if tt.wantErr == "" {
				assert.Empty(t, diags)
			} else {
				require.NotEmpty(t, diags)
				assert.Contains(t, diags[0].Message, tt.wantErr)
			}
		})
	}
}

func TestSuggest_TypoTableFirst(t *testing.T) {
	v := newValidator(t)

	got := v.suggest("pedistrian")
	require.NotEmpty(t, got)
	assert.Equal(t, "Ped", got[0])
}

func TestSimilar(t *testing.T) {
	assert.True(t, similar("CameraInfos", "CameraInfo"))
	assert.True(t, similar("camerainfo", "CameraInfo"))
	assert.False(t, similar("CameraInfo", "eWeaponType"))
	assert.False(t, similar("ab", "abcdefgh"))
}
