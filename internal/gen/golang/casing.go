// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package golang

import "strings"

// Common Go acronyms that should be fully uppercased.
var acronyms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"http": "HTTP",
	"api":  "API",
	"json": "JSON",
	"xml":  "XML",
	"html": "HTML",
	"ip":   "IP",
	"uri":  "URI",
	"ai":   "AI",
	"fov":  "FOV",
	"lod":  "LOD",
	"rgb":  "RGB",
	"rgba": "RGBA",
}

// ToPascalCase converts a SHOUTING_SNAKE or snake_case native name to
// PascalCase, uppercasing known acronyms.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(lower[:1]) + lower[1:])
		}
	}

	return sb.String()
}
