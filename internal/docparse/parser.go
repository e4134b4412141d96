// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package docparse parses one native documentation file into a
// NativeDefinition, cross-checking the embedded C-like signature against the
// hand-written parameter list.
package docparse

import (
	"strings"

	"github.com/nativewrappers/nativegen/internal/diag"
	"github.com/nativewrappers/nativegen/internal/natives"
)

// DefaultAPISet is assumed when the metadata block carries no apiset key.
const DefaultAPISet = "client"

// Parser parses native documentation files. It is stateless and safe to
// share across workers; configuration is injected per call.
type Parser struct{}

// Parse parses one documentation file. On hard errors the definition is nil
// and the diagnostics say why; warnings may accompany a valid definition.
// The parser performs no file I/O: content is the whole file, path is used
// only for diagnostics.
func (Parser) Parse(path string, content []byte) (*natives.NativeDefinition, diag.Diagnostics) {
	var diags diag.Diagnostics

	doc := splitLines(string(content))

	meta, ok := parseFrontmatter(path, doc, &diags)
	if !ok {
		return nil, diags
	}

	heading, headingLine, ok := findHeading(doc, meta.endLine)
	if !ok {
		diags = append(diags, diag.Errorf(path, "missing native heading (## NAME)"))
		return nil, diags
	}

	sig, ok := findSignatureBlock(path, doc, headingLine, &diags)
	if !ok {
		return nil, diags
	}

	hash, err := parseHashComment(sig.hashLine)
	if err != nil {
		diags = append(diags, diag.ErrorAt(path, sig.hashLineNo, 1, "%v", err))
		return nil, diags
	}

	decl, err := parseDeclaration(sig.declLine)
	if err != nil {
		diags = append(diags, diag.ErrorAt(path, sig.declLineNo, 1, "%v", err))
		return nil, diags
	}

	def := &natives.NativeDefinition{
		Namespace:         meta.namespace,
		Name:              heading,
		Hash:              hash,
		Aliases:           meta.aliases,
		ReturnType:        decl.ReturnType,
		Deprecated:        meta.deprecated,
		DeprecatedMessage: meta.deprecatedMessage,
		APISet:            meta.apiSet,
		SourceFile:        path,
	}

	if decl.Name != heading {
		diags = append(diags, diag.WarnAt(path, sig.declLineNo, 1,
			"signature name %q does not match heading %q", decl.Name, heading))
	}

	if !buildParameters(path, sig.declLineNo, decl, def, &diags) {
		return nil, diags
	}

	docs := parseParamDocs(doc, sig.endLine)
	if !crossCheckParams(path, decl, docs, def, &diags) {
		return nil, diags
	}

	if def.ReturnType.Category != natives.CategoryVoid && !hasReturnSection(doc, sig.endLine) {
		diags = append(diags, diag.Warnf(path,
			"native %q returns %s but documents no return value", def.Name, def.ReturnType.Name))
	}

	return def, diags
}

// buildParameters converts declared parameters into NativeParameters,
// checking attribute legality in context and the default-ordering invariant.
// Returns false when a hard error was emitted.
func buildParameters(path string, line int, decl *declaration, def *natives.NativeDefinition, diags *diag.Diagnostics) bool {
	var (
		thisName   string
		sawDefault string
		failed     bool
	)

	for _, dp := range decl.Params {
		p := natives.NativeParameter{
			Name:         dp.Name,
			Type:         dp.Type,
			DefaultValue: dp.Default,
		}

		for _, attr := range dp.Attributes {
			switch attr {
			case "@this":
				if thisName != "" {
					*diags = append(*diags, diag.ErrorAt(path, line, 1,
						"@this declared on both %q and %q, only one parameter may carry it", thisName, dp.Name))
					failed = true
					continue
				}
				thisName = dp.Name
				p.Flags |= natives.FlagThis
			case "@notnull":
				p.Flags |= natives.FlagNotNull
			case "@in":
				if !dp.Type.IsPointer {
					*diags = append(*diags, diag.ErrorAt(path, line, 1,
						"@in on non-pointer parameter %q", dp.Name))
					failed = true
					continue
				}
				if dp.Type.Category == natives.CategoryStruct {
					*diags = append(*diags, diag.ErrorAt(path, line, 1,
						"@in on struct pointer parameter %q, structs are always passed as buffers", dp.Name))
					failed = true
					continue
				}
				p.Flags |= natives.FlagIn
			default:
				*diags = append(*diags, diag.ErrorAt(path, line, 1,
					"unknown attribute %q on parameter %q", attr, dp.Name))
				failed = true
			}
		}

		// Output is derived, never written by hand: a pointer whose pointee
		// is neither string nor struct is written back. With @in also set
		// the parameter is in/out; without it, a pure output.
		if dp.Type.IsPointer &&
			dp.Type.Category != natives.CategoryString &&
			dp.Type.Category != natives.CategoryStruct {
			p.Flags |= natives.FlagOutput
		}

		if dp.Default == "" && sawDefault != "" {
			*diags = append(*diags, diag.ErrorAt(path, line, 1,
				"required parameter %q follows optional parameter %q", dp.Name, sawDefault))
			failed = true
		}
		if dp.Default != "" {
			sawDefault = dp.Name
		}

		def.Parameters = append(def.Parameters, p)
	}

	return !failed
}

// paramDoc is one `* **name**: description` entry in written order.
type paramDoc struct {
	name string
	desc string
	line int
}

// crossCheckParams validates the documented parameter list against the
// declaration and copies descriptions onto matching parameters.
func crossCheckParams(path string, decl *declaration, docs []paramDoc, def *natives.NativeDefinition, diags *diag.Diagnostics) bool {
	if len(docs) != len(decl.Params) {
		declared := make([]string, len(decl.Params))
		for i, p := range decl.Params {
			declared[i] = p.Name
		}
		documented := make([]string, len(docs))
		for i, d := range docs {
			documented[i] = d.name
		}
		*diags = append(*diags, diag.Errorf(path,
			"parameter count mismatch: signature declares %d (%s) but %d documented (%s)",
			len(decl.Params), strings.Join(declared, ", "),
			len(docs), strings.Join(documented, ", ")))
		return false
	}

	for i, d := range docs {
		declared := decl.Params[i].Name
		if d.name == declared {
			def.Parameters[i].Description = d.desc
			continue
		}

		// Same names in a different order is its own error, distinct from a
		// plain name mismatch.
		if declaredAt(decl, d.name) >= 0 && documentedAt(docs, declared) >= 0 {
			*diags = append(*diags, diag.ErrorAt(path, d.line, 1,
				"parameter order mismatch: %q documented at position %d where signature declares %q",
				d.name, i+1, declared))
		} else {
			*diags = append(*diags, diag.ErrorAt(path, d.line, 1,
				"parameter name mismatch at position %d: signature declares %q but %q documented",
				i+1, declared, d.name))
		}
		return false
	}

	return true
}

func declaredAt(decl *declaration, name string) int {
	for i, p := range decl.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func documentedAt(docs []paramDoc, name string) int {
	for i, d := range docs {
		if d.name == name {
			return i
		}
	}
	return -1
}
