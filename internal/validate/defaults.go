// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package validate

import (
	"regexp"
	"strings"

	"github.com/nativewrappers/nativegen/internal/diag"
	"github.com/nativewrappers/nativegen/internal/natives"
)

var (
	floatRe   = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?[fF]?$`)
	decimalRe = regexp.MustCompile(`^[+-]?\d+$`)
	hexRe     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
)

// checkDefault validates a parameter's default-value literal against its
// resolved type. The literal was captured raw by the parser; this is the
// single place its grammar is enforced.
func (v *Validator) checkDefault(file string, p *natives.NativeParameter, diags *diag.Diagnostics) {
	lit := p.DefaultValue

	// Pointers never default, except char* which follows the string rule.
	if p.Type.IsPointer && p.Type.Category != natives.CategoryString {
		*diags = append(*diags, diag.Errorf(file,
			"pointer parameter %q must not carry a default value (got %q)", p.Name, lit))
		return
	}

	switch {
	case p.Type.IsBool():
		if !isBoolLiteral(lit) {
			*diags = append(*diags, diag.Errorf(file,
				"invalid boolean default %q for parameter %q, expected true, false, TRUE, FALSE, 0 or 1", lit, p.Name))
		}

	case p.Type.IsFloat():
		if !floatRe.MatchString(lit) {
			*diags = append(*diags, diag.Errorf(file,
				"invalid float default %q for parameter %q", lit, p.Name))
		}

	case p.Type.Category == natives.CategoryPrimitive:
		if !isIntegerLiteral(lit) {
			*diags = append(*diags, diag.Errorf(file,
				"invalid integer default %q for parameter %q, expected decimal or 0x hex", lit, p.Name))
		}

	case p.Type.Category == natives.CategoryHash:
		// A quoted literal is hashed at runtime; numeric forms are taken as
		// the pre-computed hash.
		if !isQuoted(lit) && !isIntegerLiteral(lit) {
			*diags = append(*diags, diag.Errorf(file,
				"invalid hash default %q for parameter %q, expected a quoted string or numeric literal", lit, p.Name))
		}

	case p.Type.Category == natives.CategoryString:
		if !isQuoted(lit) && lit != "nullptr" && lit != "NULL" && lit != "0" {
			*diags = append(*diags, diag.Errorf(file,
				"invalid string default %q for parameter %q, expected a quoted literal, nullptr, NULL or 0", lit, p.Name))
		}

	case p.Type.Category == natives.CategoryEnum:
		if !isIntegerLiteral(lit) && !isIdentifier(lit) {
			*diags = append(*diags, diag.Errorf(file,
				"invalid enum default %q for parameter %q, expected a numeric literal or member name", lit, p.Name))
		}

	case p.Type.Category == natives.CategoryHandle:
		if lit != "0" && lit != "nullptr" && lit != "NULL" {
			msg := "invalid handle default %q for parameter %q, expected 0, nullptr or NULL"
			if p.Type.IsClassHandle() {
				msg = "invalid handle default %q for parameter %q: class handle defaults use the canonical = 0 form"
			}
			*diags = append(*diags, diag.Errorf(file, msg, lit, p.Name))
		}

	default:
		// Vector, Color, Struct, Any and Void types never carry defaults.
		*diags = append(*diags, diag.Errorf(file,
			"%s parameter %q must not carry a default value (got %q)", p.Type.Category, p.Name, lit))
	}
}

func isBoolLiteral(s string) bool {
	switch s {
	case "true", "false", "TRUE", "FALSE", "0", "1":
		return true
	}
	return false
}

func isIntegerLiteral(s string) bool {
	return decimalRe.MatchString(s) || hexRe.MatchString(s)
}

func isQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
