// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/nativewrappers/nativegen/internal/database"
	"github.com/nativewrappers/nativegen/internal/layout"
	"github.com/nativewrappers/nativegen/internal/natives"
)

// emitStructs writes a raw-memory-view type per struct definition: a byte
// slice wrapper with offset constants and getter/setter methods placed by
// the layout calculator. Multi-byte accessors go through encoding/binary's
// little-endian view; the external layouts these mirror are little-endian.
func emitStructs(pkg string, db *database.NativeDatabase) *jen.File {
	f := newFile(pkg)

	calc := layout.NewCalculator(db.Structs.All())

	for _, name := range db.Structs.Names() {
		def := db.Structs.Get(name)
		l := calc.Calculate(name)

		f.Commentf("%s is a raw view over a %d-byte buffer.", def.Name, l.Size)
		f.Type().Id(def.Name).Struct(jen.Id("buf").Index().Byte())
		f.Line()

		f.Commentf("%sSize is the byte size of %s.", def.Name, def.Name)
		f.Const().Id(def.Name + "Size").Op("=").Lit(int(l.Size))
		f.Line()

		f.Commentf("New%s wraps buf, which must hold at least %sSize bytes.", def.Name, def.Name)
		f.Func().Id("New"+def.Name).Params(jen.Id("buf").Index().Byte()).Id(def.Name).Block(
			jen.Return(jen.Id(def.Name).Values(jen.Dict{jen.Id("buf"): jen.Id("buf")})),
		)
		f.Line()

		for i, fl := range l.Fields {
			if fl.IsPadding {
				continue
			}
			field := def.Fields[i]
			emitAccessors(f, def.Name, field, fl)
		}
	}

	return f
}

func emitAccessors(f *jen.File, structName string, field natives.StructField, fl layout.FieldLayout) {
	accessor := ToPascalCase(field.Name)
	recv := jen.Id("v").Id(structName)
	off := int(fl.Offset)

	if field.IsNestedStruct {
		if field.IsOutput {
			f.Commentf("%s returns a view of the nested %s at offset %d.", accessor, field.NestedStructName, off)
			f.Func().Params(recv).Id(accessor).Params().Id(field.NestedStructName).Block(
				jen.Return(jen.Id("New" + field.NestedStructName).Call(
					jen.Id("v").Dot("buf").Index(jen.Lit(off), jen.Lit(off+int(fl.Size))),
				)),
			)
			f.Line()
		}
		return
	}

	if field.ArraySize > 0 || field.Type.IsPointer || field.Type.Category == natives.CategoryString {
		// Arrays and pointer-width fields only get their offset surfaced.
		f.Commentf("%s%sOffset is the byte offset of %s.", structName, accessor, field.Name)
		f.Const().Id(structName + accessor + "Offset").Op("=").Lit(off)
		f.Line()
		return
	}

	getter, setter := scalarAccessors(field.Type, off)
	if getter == nil {
		return
	}

	if field.IsOutput {
		f.Commentf("%s reads the %s field at offset %d.", accessor, field.Name, off)
		f.Func().Params(recv).Id(accessor).Params().Add(goScalarType(field.Type)).Block(
			jen.Return(getter),
		)
		f.Line()
	}
	if field.IsInput && setter != nil {
		f.Commentf("Set%s writes the %s field at offset %d.", accessor, field.Name, off)
		f.Func().Params(recv).Id("Set"+accessor).Params(jen.Id("x").Add(goScalarType(field.Type))).Block(
			setter,
		)
		f.Line()
	}
}

// scalarAccessors builds the read expression and write statement for one
// scalar field.
func scalarAccessors(t natives.TypeInfo, off int) (getter jen.Code, setter jen.Code) {
	buf := func() *jen.Statement { return jen.Id("v").Dot("buf") }
	le := func(fn string) *jen.Statement {
		return jen.Qual("encoding/binary", "LittleEndian").Dot(fn)
	}

	u32 := le("Uint32").Call(buf().Index(jen.Lit(off), jen.Empty()))
	put32 := func(val jen.Code) jen.Code {
		return le("PutUint32").Call(buf().Index(jen.Lit(off), jen.Empty()), val)
	}

	switch {
	case t.IsBool():
		if t.Name == "BOOL" {
			getter = jen.Add(u32).Op("!=").Lit(0)
			setter = jen.If(jen.Id("x")).Block(
				put32(jen.Lit(1)),
			).Else().Block(
				put32(jen.Lit(0)),
			)
			return getter, setter
		}
		getter = buf().Index(jen.Lit(off)).Op("!=").Lit(0)
		setter = boolByteSetter(off)
		return getter, setter

	case t.Category == natives.CategoryHash:
		return u32, put32(jen.Uint32().Call(jen.Id("x")))

	case t.Category == natives.CategoryHandle:
		getter = jen.Int32().Call(u32)
		return getter, put32(jen.Uint32().Call(jen.Id("x")))

	case t.Category == natives.CategoryEnum:
		getter = jen.Int32().Call(u32)
		return getter, put32(jen.Uint32().Call(jen.Id("x")))

	case t.IsVector(), t.Category == natives.CategoryColor:
		return vectorGetter(t, off), nil

	case t.Category == natives.CategoryPrimitive:
		return primitiveAccessors(t.Name, off)

	case t.Category == natives.CategoryAny:
		getter = le("Uint64").Call(buf().Index(jen.Lit(off), jen.Empty()))
		setter = le("PutUint64").Call(buf().Index(jen.Lit(off), jen.Empty()), jen.Id("x"))
		return getter, setter
	}
	return nil, nil
}

func primitiveAccessors(name string, off int) (jen.Code, jen.Code) {
	buf := func() *jen.Statement { return jen.Id("v").Dot("buf") }
	le := func(fn string) *jen.Statement {
		return jen.Qual("encoding/binary", "LittleEndian").Dot(fn)
	}
	slice := func() jen.Code { return buf().Index(jen.Lit(off), jen.Empty()) }

	switch name {
	case "char", "byte":
		getter := buf().Index(jen.Lit(off))
		setter := buf().Index(jen.Lit(off)).Op("=").Id("x")
		return getter, setter
	case "short":
		getter := jen.Int16().Call(le("Uint16").Call(slice()))
		setter := le("PutUint16").Call(slice(), jen.Uint16().Call(jen.Id("x")))
		return getter, setter
	case "long":
		getter := jen.Int64().Call(le("Uint64").Call(slice()))
		setter := le("PutUint64").Call(slice(), jen.Uint64().Call(jen.Id("x")))
		return getter, setter
	case "uint":
		getter := le("Uint32").Call(slice())
		setter := le("PutUint32").Call(slice(), jen.Id("x"))
		return getter, setter
	case "float":
		getter := jen.Qual("math", "Float32frombits").Call(le("Uint32").Call(slice()))
		setter := le("PutUint32").Call(slice(), jen.Qual("math", "Float32bits").Call(jen.Id("x")))
		return getter, setter
	case "double":
		getter := jen.Qual("math", "Float64frombits").Call(le("Uint64").Call(slice()))
		setter := le("PutUint64").Call(slice(), jen.Qual("math", "Float64bits").Call(jen.Id("x")))
		return getter, setter
	default: // int
		getter := jen.Int32().Call(le("Uint32").Call(slice()))
		setter := le("PutUint32").Call(slice(), jen.Uint32().Call(jen.Id("x")))
		return getter, setter
	}
}

func boolByteSetter(off int) jen.Code {
	return jen.If(jen.Id("x")).Block(
		jen.Id("v").Dot("buf").Index(jen.Lit(off)).Op("=").Lit(1),
	).Else().Block(
		jen.Id("v").Dot("buf").Index(jen.Lit(off)).Op("=").Lit(0),
	)
}

// vectorGetter loads each four-byte component in order.
func vectorGetter(t natives.TypeInfo, off int) jen.Code {
	comp := func(i int) jen.Code {
		return jen.Qual("math", "Float32frombits").Call(
			jen.Qual("encoding/binary", "LittleEndian").Dot("Uint32").Call(
				jen.Id("v").Dot("buf").Index(jen.Lit(off+i*4), jen.Empty()),
			),
		)
	}

	n := t.ComponentCount()
	fields := make(jen.Dict)
	names := []string{"X", "Y", "Z", "W"}
	if t.Category == natives.CategoryColor {
		names = []string{"R", "G", "B", "A"}
	}
	for i := 0; i < n; i++ {
		fields[jen.Id(names[i])] = comp(i)
	}
	return jen.Id(typeName(t)).Values(fields)
}

func typeName(t natives.TypeInfo) string {
	switch t.Category {
	case natives.CategoryVector2:
		return "Vector2"
	case natives.CategoryVector3:
		return "Vector3"
	case natives.CategoryVector4:
		return "Vector4"
	case natives.CategoryColor:
		return "Color"
	}
	return t.Name
}

// goScalarType maps a field type to the Go type its accessors use.
func goScalarType(t natives.TypeInfo) *jen.Statement {
	switch {
	case t.IsBool():
		return jen.Bool()
	case t.Category == natives.CategoryHash:
		return jen.Uint32()
	case t.Category == natives.CategoryHandle, t.Category == natives.CategoryEnum:
		return jen.Int32()
	case t.IsVector(), t.Category == natives.CategoryColor:
		return jen.Id(typeName(t))
	case t.Category == natives.CategoryAny:
		return jen.Uint64()
	}

	switch t.Name {
	case "char", "byte":
		return jen.Byte()
	case "short":
		return jen.Int16()
	case "long":
		return jen.Int64()
	case "uint":
		return jen.Uint32()
	case "float":
		return jen.Float32()
	case "double":
		return jen.Float64()
	default:
		return jen.Int32()
	}
}
