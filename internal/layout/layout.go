// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package layout computes byte offsets, sizes, padding and endianness
// requirements for binary-compatible struct definitions.
package layout

import "github.com/nativewrappers/nativegen/internal/natives"

// DefaultAlignment is the generator default used when neither the field nor
// the struct specifies one. Eight bytes matches the native ABI the generated
// accessors target.
const DefaultAlignment = 8

// FieldLayout is the computed placement of one struct field.
type FieldLayout struct {
	Name      string
	Offset    uint32
	Size      uint32 // size of one element
	ArraySize uint32 // 0 = scalar
	IsPadding bool
	// NeedsEndianSwap is set for multi-byte primitive accessors whose target
	// runtime does not natively guarantee the platform's view semantics. It
	// is decided per primitive width, not per struct.
	NeedsEndianSwap bool
}

// StructLayout is the computed layout of a whole struct.
type StructLayout struct {
	Name      string
	Fields    []FieldLayout
	Size      uint32
	Alignment uint32
}

// Calculator computes struct layouts, resolving nested struct sizes through
// the definitions it was constructed with. Computed layouts are cached, so a
// nested struct's size is calculated once.
type Calculator struct {
	structs map[string]*natives.StructDefinition
	cache   map[string]*StructLayout
}

// NewCalculator creates a Calculator over the given struct definitions.
func NewCalculator(structs map[string]*natives.StructDefinition) *Calculator {
	return &Calculator{
		structs: structs,
		cache:   make(map[string]*StructLayout),
	}
}

// Calculate returns the layout for a registered struct name, or nil when the
// name is unknown.
func (c *Calculator) Calculate(name string) *StructLayout {
	if l, ok := c.cache[name]; ok {
		return l
	}
	def, ok := c.structs[name]
	if !ok {
		return nil
	}
	l := c.calculate(def)
	c.cache[name] = l
	return l
}

// CalculateDef computes the layout of a definition that need not be
// registered. This component never errors: a malformed field list simply
// produces a larger-than-expected layout.
func (c *Calculator) CalculateDef(def *natives.StructDefinition) *StructLayout {
	return c.calculate(def)
}

func (c *Calculator) calculate(def *natives.StructDefinition) *StructLayout {
	structAlign := def.DefaultAlignment
	if structAlign == 0 {
		structAlign = DefaultAlignment
	}

	l := &StructLayout{
		Name:      def.Name,
		Alignment: structAlign,
	}

	var cursor uint32
	for _, f := range def.Fields {
		size, natural := c.fieldSize(f)

		align := f.Alignment
		if align == 0 {
			align = structAlign
		}
		// A field never requires stricter alignment than its natural one;
		// the configured value only caps it.
		if natural < align {
			align = natural
		}
		if align == 0 {
			align = 1
		}

		cursor = roundUp(cursor, align)

		count := f.ArraySize
		if count == 0 {
			count = 1
		}

		l.Fields = append(l.Fields, FieldLayout{
			Name:            f.Name,
			Offset:          cursor,
			Size:            size,
			ArraySize:       f.ArraySize,
			IsPadding:       f.IsPadding,
			NeedsEndianSwap: needsEndianSwap(f, size),
		})

		cursor += size * count
	}

	// Round the total up so arrays of this struct stay aligned.
	l.Size = roundUp(cursor, structAlign)
	return l
}

// fieldSize returns the size of one element of the field and its natural
// alignment.
func (c *Calculator) fieldSize(f natives.StructField) (size, natural uint32) {
	if f.IsNestedStruct || (f.Type.Category == natives.CategoryStruct && !f.IsPadding) {
		name := f.NestedStructName
		if name == "" {
			name = f.Type.Name
		}
		if nested := c.Calculate(name); nested != nil {
			return nested.Size, nested.Alignment
		}
		// Unknown nested struct; treated as a pointer-sized blob.
		return 8, 8
	}

	w := primitiveWidth(f.Type)
	return w, w
}

func primitiveWidth(t natives.TypeInfo) uint32 {
	if t.IsPointer || t.Category == natives.CategoryString {
		return 8
	}

	switch t.Category {
	case natives.CategoryVector2:
		return 8
	case natives.CategoryVector3:
		return 12
	case natives.CategoryVector4, natives.CategoryColor:
		return 16
	case natives.CategoryHash, natives.CategoryHandle:
		return 4
	case natives.CategoryAny:
		return 8
	case natives.CategoryEnum:
		return baseTypeWidth(t.EnumBaseType)
	case natives.CategoryPrimitive:
		return baseTypeWidth(t.Name)
	}
	return baseTypeWidth(t.Name)
}

func baseTypeWidth(name string) uint32 {
	switch name {
	case "char", "byte", "bool":
		return 1
	case "short":
		return 2
	case "long", "double":
		return 8
	default:
		// int, uint, float, BOOL, Hash and enum bases all occupy four bytes.
		return 4
	}
}

// needsEndianSwap reports whether a generated accessor for the field must go
// through an endianness-aware view. Single-byte fields and nested structs
// never require one.
func needsEndianSwap(f natives.StructField, size uint32) bool {
	if f.IsNestedStruct || f.Type.Category == natives.CategoryStruct {
		return false
	}
	return size > 1
}

func roundUp(v, align uint32) uint32 {
	if align == 0 {
		return v
	}
	rem := v % align
	if rem == 0 {
		return v
	}
	return v + align - rem
}
