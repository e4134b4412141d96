// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package docparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nativewrappers/nativegen/internal/natives"
)

// declaration is the parsed form of the C-like signature line.
type declaration struct {
	ReturnType natives.TypeInfo
	Name       string
	Params     []declaredParam
}

type declaredParam struct {
	Attributes []string // @-tokens in written order
	Type       natives.TypeInfo
	Name       string
	Default    string // raw literal, "" = none
}

var hashRe = regexp.MustCompile(`^//\s*(0[xX][0-9a-fA-F]{1,16})\s*$`)

// parseHashComment extracts and normalizes the hash from a `// 0x...` line.
func parseHashComment(line string) (string, error) {
	m := hashRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", fmt.Errorf("malformed hash comment %q, expected // 0x<hex>", strings.TrimSpace(line))
	}
	return "0x" + strings.ToUpper(m[1][2:]), nil
}

// parseDeclaration parses `ReturnType NAME(Type1 a = lit, Type2 b, ...)`.
// A trailing semicolon is tolerated. Attribute tokens are collected verbatim
// here; their legality is checked in context by the parser.
func parseDeclaration(line string) (*declaration, error) {
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ";"))

	open := strings.IndexByte(line, '(')
	if open < 0 || !strings.HasSuffix(line, ")") {
		return nil, fmt.Errorf("unparsable declaration %q", line)
	}

	head := strings.TrimSpace(line[:open])
	body := line[open+1 : len(line)-1]

	// The function name is the last identifier of the head; everything
	// before it (including a pointer marker) is the return type.
	cut := strings.LastIndexAny(head, " \t*")
	if cut < 0 {
		return nil, fmt.Errorf("declaration %q is missing a return type", line)
	}
	name := strings.TrimSpace(head[cut+1:])
	retStr := strings.TrimSpace(head[:cut+1])
	if name == "" || retStr == "" {
		return nil, fmt.Errorf("declaration %q is missing a return type or name", line)
	}
	if !isIdentifier(name) {
		return nil, fmt.Errorf("invalid function name %q", name)
	}

	decl := &declaration{
		ReturnType: natives.ParseType(retStr),
		Name:       name,
	}

	for _, part := range splitParams(body) {
		p, err := parseDeclaredParam(part)
		if err != nil {
			return nil, err
		}
		decl.Params = append(decl.Params, p)
	}

	return decl, nil
}

func parseDeclaredParam(s string) (declaredParam, error) {
	var p declaredParam

	s = strings.TrimSpace(s)
	if eq := indexUnquoted(s, '='); eq >= 0 {
		p.Default = strings.TrimSpace(s[eq+1:])
		s = strings.TrimSpace(s[:eq])
		if p.Default == "" {
			return p, fmt.Errorf("parameter %q has an empty default value", s)
		}
	}

	tokens := strings.Fields(s)
	for len(tokens) > 0 && strings.HasPrefix(tokens[0], "@") {
		p.Attributes = append(p.Attributes, tokens[0])
		tokens = tokens[1:]
	}
	if len(tokens) < 2 {
		return p, fmt.Errorf("unparsable parameter %q, expected type and name", s)
	}

	// `Type* name`, `Type *name` and `Type * name` all mean a pointer.
	p.Name = tokens[len(tokens)-1]
	typeStr := strings.Join(tokens[:len(tokens)-1], " ")
	if strings.HasPrefix(p.Name, "*") {
		p.Name = strings.TrimPrefix(p.Name, "*")
		typeStr += "*"
	}
	if !isIdentifier(p.Name) {
		return p, fmt.Errorf("invalid parameter name %q", p.Name)
	}

	p.Type = natives.ParseType(typeStr)
	return p, nil
}

// splitParams splits the parameter list body on commas, honoring double
// quotes so a quoted default like "a, b" survives intact.
func splitParams(body string) []string {
	if strings.TrimSpace(body) == "" || strings.TrimSpace(body) == "void" {
		return nil
	}

	var (
		parts    []string
		start    int
		inQuotes bool
	)
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, body[start:])
	return parts
}

// indexUnquoted returns the index of the first c outside double quotes.
func indexUnquoted(s string, c byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"':
			inQuotes = !inQuotes
		case s[i] == c && !inQuotes:
			return i
		}
	}
	return -1
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
