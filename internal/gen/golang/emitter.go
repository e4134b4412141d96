// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package golang emits Go source from the validated database: hash
// constants per namespace, typed enum constant blocks, and raw-memory-view
// struct accessors driven by the computed layouts.
package golang

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/nativewrappers/nativegen/internal/database"
	"github.com/nativewrappers/nativegen/internal/natives"
)

// Emitter writes Go sources. The output directory's base name becomes the
// package name.
type Emitter struct{}

// Name returns the emitter identifier.
func (e *Emitter) Name() string { return "golang" }

// FileExtension returns the extension of the produced files.
func (e *Emitter) FileExtension() string { return ".go" }

// Emit writes one file per namespace plus shared types, enums and structs.
func (e *Emitter) Emit(db *database.NativeDatabase, outDir string) error {
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	pkg := filepath.Base(outDir)

	if err := save(emitTypes(pkg), filepath.Join(outDir, "types.gen.go")); err != nil {
		return err
	}

	for _, ns := range db.NamespaceNames() {
		f := emitNamespace(pkg, ns, db.Namespaces[ns])
		name := strings.ToLower(ns) + ".gen.go"
		if err := save(f, filepath.Join(outDir, name)); err != nil {
			return err
		}
	}

	if len(db.Enums.All()) > 0 {
		if err := save(emitEnums(pkg, db), filepath.Join(outDir, "enums.gen.go")); err != nil {
			return err
		}
	}

	if len(db.Structs.All()) > 0 {
		if err := save(emitStructs(pkg, db), filepath.Join(outDir, "structs.gen.go")); err != nil {
			return err
		}
	}

	return nil
}

func save(f *jen.File, path string) error {
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by nativegen. DO NOT EDIT.")
	return f
}

// emitTypes writes the shared handle and vector types every namespace file
// refers to. Class handles get their own named type; bare handles stay
// plain integers in the signatures.
func emitTypes(pkg string) *jen.File {
	f := newFile(pkg)

	f.Comment("NativeHash identifies a native function.")
	f.Type().Id("NativeHash").Uint64()
	f.Line()

	for _, h := range []string{"Entity", "Ped", "Vehicle", "Object", "Player", "Cam", "Blip", "Pickup"} {
		f.Commentf("%s is a handle to a live %s.", h, strings.ToLower(h))
		f.Type().Id(h).Int32()
		f.Line()
	}

	f.Comment("Vector2 is a two-component float vector.")
	f.Type().Id("Vector2").Struct(
		jen.List(jen.Id("X"), jen.Id("Y")).Float32(),
	)
	f.Line()
	f.Comment("Vector3 is a three-component float vector.")
	f.Type().Id("Vector3").Struct(
		jen.List(jen.Id("X"), jen.Id("Y"), jen.Id("Z")).Float32(),
	)
	f.Line()
	f.Comment("Vector4 is a four-component float vector.")
	f.Type().Id("Vector4").Struct(
		jen.List(jen.Id("X"), jen.Id("Y"), jen.Id("Z"), jen.Id("W")).Float32(),
	)
	f.Line()
	f.Comment("Color is an RGBA color with float components.")
	f.Type().Id("Color").Struct(
		jen.List(jen.Id("R"), jen.Id("G"), jen.Id("B"), jen.Id("A")).Float32(),
	)

	return f
}

// emitNamespace writes the hash constants for one namespace. Each constant
// carries the documented signature so editors surface it on hover.
func emitNamespace(pkg, ns string, defs []*natives.NativeDefinition) *jen.File {
	f := newFile(pkg)

	var consts []jen.Code
	for _, def := range defs {
		c := jen.Comment(signatureComment(def)).Line()
		if def.Deprecated {
			msg := def.DeprecatedMessage
			if msg == "" {
				msg = "no replacement documented"
			}
			c = c.Comment("").Line().Comment("Deprecated: " + msg).Line()
		}
		consts = append(consts, c.Id(ToPascalCase(def.Name)).Id("NativeHash").Op("=").Id(def.Hash))
	}

	f.Commentf("Native hashes for the %s namespace.", ns)
	f.Const().Defs(consts...)
	return f
}

func signatureComment(def *natives.NativeDefinition) string {
	params := make([]string, len(def.Parameters))
	for i, p := range def.Parameters {
		params[i] = typeToken(p.Type) + " " + p.Name
	}
	return fmt.Sprintf("%s %s(%s)", typeToken(def.ReturnType), def.Name, strings.Join(params, ", "))
}

func typeToken(t natives.TypeInfo) string {
	s := t.Name
	if t.IsPointer && t.Category != natives.CategoryString {
		s += "*"
	}
	return s
}

// emitEnums writes one typed constant block per enum, keeping member order.
func emitEnums(pkg string, db *database.NativeDatabase) *jen.File {
	f := newFile(pkg)

	for _, name := range db.Enums.Names() {
		def := db.Enums.Get(name)

		f.Commentf("%s has underlying type %s.", def.Name, def.BaseType)
		f.Type().Id(def.Name).Add(baseType(def.BaseType))
		f.Line()

		var (
			consts []jen.Code
			next   int64
		)
		for _, m := range def.Members {
			c := jen.Id(m.Name).Id(def.Name)
			switch {
			case m.Value != "":
				c = c.Op("=").Id(m.Value)
				if v, ok := parseInt(m.Value); ok {
					next = v + 1
				}
			default:
				c = c.Op("=").Lit(int(next))
				next++
			}
			if m.Comment != "" {
				c = c.Comment(m.Comment)
			}
			consts = append(consts, c)
		}
		f.Const().Defs(consts...)
		f.Line()
	}

	return f
}

func baseType(name string) *jen.Statement {
	switch name {
	case "Hash":
		return jen.Uint32()
	case "long":
		return jen.Int64()
	case "short":
		return jen.Int16()
	case "char", "byte":
		return jen.Uint8()
	default:
		return jen.Int32()
	}
}

func parseInt(s string) (int64, bool) {
	var (
		v   int64
		neg bool
	)
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		for _, r := range s[2:] {
			switch {
			case r >= '0' && r <= '9':
				v = v*16 + int64(r-'0')
			case r >= 'a' && r <= 'f':
				v = v*16 + int64(r-'a'+10)
			case r >= 'A' && r <= 'F':
				v = v*16 + int64(r-'A'+10)
			default:
				return 0, false
			}
		}
	} else {
		for _, r := range s {
			if r < '0' || r > '9' {
				return 0, false
			}
			v = v*10 + int64(r-'0')
		}
	}
	if neg {
		v = -v
	}
	return v, true
}
