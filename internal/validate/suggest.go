// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package validate

import "strings"

// typoTable corrects common misspellings of built-in type names. Checked
// before the similarity scan so a known typo always surfaces its fix first.
var typoTable = map[string]string{
	"vestor2":    "Vector2",
	"vestor3":    "Vector3",
	"vestor4":    "Vector4",
	"vecotr2":    "Vector2",
	"vecotr3":    "Vector3",
	"vecotr4":    "Vector4",
	"pedistrian": "Ped",
	"vehical":    "Vehicle",
	"entitiy":    "Entity",
	"colour":     "Color",
	"boolean":    "BOOL",
	"interger":   "int",
	"flaot":      "float",
	"strng":      "string",
}

const maxSuggestions = 3

// suggest returns up to three likely corrections for an unknown type name:
// the typo table first, then a similarity scan over the registered struct
// and enum names.
func (v *Validator) suggest(name string) []string {
	var out []string

	if fix, ok := typoTable[strings.ToLower(name)]; ok {
		out = append(out, fix)
	}

	for _, candidate := range v.structs.Names() {
		if len(out) >= maxSuggestions {
			return out
		}
		if candidate != name && similar(name, candidate) && !contains(out, candidate) {
			out = append(out, candidate)
		}
	}
	for _, candidate := range v.enums.Names() {
		if len(out) >= maxSuggestions {
			return out
		}
		if candidate != name && similar(name, candidate) && !contains(out, candidate) {
			out = append(out, candidate)
		}
	}

	return out
}

// similar is the deliberately coarse heuristic the suggestion lists are
// specified against: two names match when their lengths differ by at most
// three and either one contains the other, or no more than two positions
// disagree once the shorter name is padded out. Suggestion lists are part of
// the observable diagnostic contract, so this stays as-is rather than being
// replaced by true edit distance.
func similar(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	delta := len(a) - len(b)
	if delta < 0 {
		delta = -delta
	}
	if delta > 3 {
		return false
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	mismatches := 0
	for i := 0; i < longest; i++ {
		switch {
		case i >= len(a) || i >= len(b):
			mismatches++
		case a[i] != b[i]:
			mismatches++
		}
	}
	return mismatches <= 2
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
