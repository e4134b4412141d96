// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package natives

// EnumMember is one named constant of an enum. Value is the raw literal as
// written in the definition file; "" means implicit (previous + 1).
type EnumMember struct {
	Name    string
	Value   string
	Comment string
}

// EnumDefinition describes a named enum and its underlying storage type.
// Member order is significant for display but not semantics.
type EnumDefinition struct {
	Name     string
	BaseType string // underlying storage type, e.g. "int" or "Hash"
	Members  []EnumMember
	UsedBy   []string // native names, appended by usage tracking
}

// StructField is one field of a binary-compatible struct. IsInput and
// IsOutput control setter/getter generation and both default to true; a
// padding field never generates accessors but always advances the offset
// cursor.
type StructField struct {
	Name             string
	Type             TypeInfo
	IsInput          bool
	IsOutput         bool
	ArraySize        uint32 // 0 = scalar
	IsNestedStruct   bool
	NestedStructName string
	IsPadding        bool
	Alignment        uint32 // per-field override; 0 = unset
}

// StructDefinition describes a binary-compatible struct. Field order is the
// binary layout order. These mirror externally fixed memory layouts, not
// self-chosen ones.
type StructDefinition struct {
	Name             string
	Fields           []StructField
	DefaultAlignment uint32 // 0 = unset, fall back to the generator default
	UsedBy           []string
}
