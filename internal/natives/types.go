// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package natives defines the validated data model for native function
// definitions: type classification, parameters, natives, enums and structs.
package natives

import "strings"

// TypeCategory is the closed set of semantic kinds a type name maps to.
// Every name maps to exactly one category; unrecognized identifiers land in
// CategoryStruct and are later proven as structs or upgraded to enums.
type TypeCategory int

const (
	CategoryVoid TypeCategory = iota
	CategoryPrimitive
	CategoryHandle
	CategoryHash
	CategoryString
	CategoryVector2
	CategoryVector3
	CategoryVector4
	CategoryColor
	CategoryAny
	CategoryStruct
	CategoryEnum
)

var categoryNames = map[TypeCategory]string{
	CategoryVoid:      "void",
	CategoryPrimitive: "primitive",
	CategoryHandle:    "handle",
	CategoryHash:      "hash",
	CategoryString:    "string",
	CategoryVector2:   "vector2",
	CategoryVector3:   "vector3",
	CategoryVector4:   "vector4",
	CategoryColor:     "color",
	CategoryAny:       "any",
	CategoryStruct:    "struct",
	CategoryEnum:      "enum",
}

// String returns the lowercase category name.
func (c TypeCategory) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "unknown"
}

// specialTypes is the exact-name table checked before the primitive and
// handle sets. New type names must not collide with it unless they
// intentionally alias an entry.
var specialTypes = map[string]TypeCategory{
	"void":    CategoryVoid,
	"Hash":    CategoryHash,
	"Vector2": CategoryVector2,
	"Vector3": CategoryVector3,
	"Vector4": CategoryVector4,
	"Color":   CategoryColor,
	"Any":     CategoryAny,
	"string":  CategoryString,
}

var primitiveTypes = map[string]bool{
	"int":    true,
	"float":  true,
	"BOOL":   true,
	"bool":   true,
	"char":   true,
	"short":  true,
	"long":   true,
	"double": true,
	"uint":   true,
	"byte":   true,
}

var handleTypes = map[string]bool{
	"Entity":    true,
	"Ped":       true,
	"Vehicle":   true,
	"Object":    true,
	"Player":    true,
	"Cam":       true,
	"Blip":      true,
	"Pickup":    true,
	"FireId":    true,
	"Interior":  true,
	"ScrHandle": true,
}

// classHandleTypes are the handle kinds that receive a generated wrapper
// type. The rest are "bare" handles typed as plain integers.
var classHandleTypes = map[string]bool{
	"Entity":  true,
	"Ped":     true,
	"Vehicle": true,
	"Object":  true,
	"Player":  true,
	"Cam":     true,
	"Blip":    true,
	"Pickup":  true,
}

// TypeInfo is the atomic semantic unit consumed by every other component.
// Category is a pure function of (Name, IsPointer) at creation time, except
// for the one-shot Struct→Enum upgrade performed by ResolveEnumType.
type TypeInfo struct {
	Name         string
	IsPointer    bool
	Category     TypeCategory
	EnumBaseType string // set only when Category is CategoryEnum
	ArraySize    uint32 // fixed-size array sugar (int[3]); 0 = scalar
}

// ParseType classifies a raw type token into a TypeInfo. Classification
// always succeeds: unknown names degrade to CategoryStruct, never an error.
// Lookup order is a contract: the special-name table first, then primitives,
// then handles. A pointer to char or string lands in the String category:
// a string is the value itself, not a pointer you read back.
func ParseType(s string) TypeInfo {
	s = strings.TrimSpace(s)

	var arraySize uint32
	if open := strings.IndexByte(s, '['); open >= 0 {
		if close := strings.IndexByte(s, ']'); close > open {
			arraySize = parseArraySize(s[open+1 : close])
			s = strings.TrimSpace(s[:open])
		}
	}

	pointer := strings.HasSuffix(s, "*")
	if pointer {
		s = strings.TrimSpace(strings.TrimSuffix(s, "*"))
	}

	t := TypeInfo{
		Name:      s,
		IsPointer: pointer,
		ArraySize: arraySize,
		Category:  classify(s),
	}

	if pointer && (s == "char" || s == "string") {
		t.Category = CategoryString
	}

	return t
}

func classify(name string) TypeCategory {
	if c, ok := specialTypes[name]; ok {
		return c
	}
	if primitiveTypes[name] {
		return CategoryPrimitive
	}
	if handleTypes[name] {
		return CategoryHandle
	}
	return CategoryStruct
}

func parseArraySize(s string) uint32 {
	var n uint32
	for _, r := range strings.TrimSpace(s) {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + uint32(r-'0')
	}
	return n
}

// ResolveEnumType upgrades a Struct-categorized type to an enum when lookup
// knows its base type. Idempotent and safe to call speculatively before the
// registries are fully populated: a miss leaves the type untouched for a
// later retry, and the reverse transition never occurs.
func (t *TypeInfo) ResolveEnumType(lookup func(name string) (baseType string, ok bool)) {
	if t.Category != CategoryStruct {
		return
	}
	if base, ok := lookup(t.Name); ok {
		t.Category = CategoryEnum
		t.EnumBaseType = base
	}
}

// IsBool reports whether the type is one of the boolean primitives.
func (t TypeInfo) IsBool() bool {
	return t.Category == CategoryPrimitive && (t.Name == "BOOL" || t.Name == "bool")
}

// IsFloat reports whether the type is a floating-point primitive.
func (t TypeInfo) IsFloat() bool {
	return t.Category == CategoryPrimitive && (t.Name == "float" || t.Name == "double")
}

// IsVector reports whether the type is one of the vector categories.
func (t TypeInfo) IsVector() bool {
	switch t.Category {
	case CategoryVector2, CategoryVector3, CategoryVector4:
		return true
	}
	return false
}

// IsClassHandle reports whether the type is a handle kind that receives a
// generated wrapper type.
func (t TypeInfo) IsClassHandle() bool {
	return t.Category == CategoryHandle && classHandleTypes[t.Name]
}

// ComponentCount returns the number of scalar components: 2 for Vector2,
// 3 for Vector3, 4 for Vector4 and Color, 1 otherwise.
func (t TypeInfo) ComponentCount() int {
	switch t.Category {
	case CategoryVector2:
		return 2
	case CategoryVector3:
		return 3
	case CategoryVector4, CategoryColor:
		return 4
	}
	return 1
}
