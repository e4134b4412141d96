// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package diag provides the diagnostic types shared by the parser,
// validator and database layers.
package diag

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	// Warning marks a non-fatal finding. Strict mode promotes warnings to errors.
	Warning Severity = iota
	// Error marks a finding that aborts generation for the affected definition.
	Error
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is a single finding attached to a source file. Line and column
// are best-effort and default to 1,1 when no precise span is available; the
// message text is the authoritative content and quotes offending identifiers
// verbatim.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	Severity Severity
	Message  string
}

// String formats the diagnostic as file:line:col: severity: message.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Severity, d.Message)
}

// Errorf creates an Error diagnostic with no precise source span.
func Errorf(file, format string, args ...any) Diagnostic {
	return ErrorAt(file, 1, 1, format, args...)
}

// ErrorAt creates an Error diagnostic at the given position.
func ErrorAt(file string, line, col int, format string, args ...any) Diagnostic {
	return Diagnostic{
		File:     file,
		Line:     line,
		Column:   col,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Warnf creates a Warning diagnostic with no precise source span.
func Warnf(file, format string, args ...any) Diagnostic {
	return WarnAt(file, 1, 1, format, args...)
}

// WarnAt creates a Warning diagnostic at the given position.
func WarnAt(file string, line, col int, format string, args ...any) Diagnostic {
	return Diagnostic{
		File:     file,
		Line:     line,
		Column:   col,
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Diagnostics is an ordered collection of diagnostics.
type Diagnostics []Diagnostic

// HasErrors reports whether the collection contains at least one Error.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the Error diagnostics.
func (ds Diagnostics) Errors() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == Error {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only the Warning diagnostics.
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == Warning {
			out = append(out, d)
		}
	}
	return out
}

// Promote returns a copy with every Warning raised to Error. Used by strict
// mode, which applies uniformly at the batch level.
func (ds Diagnostics) Promote() Diagnostics {
	out := make(Diagnostics, len(ds))
	for i, d := range ds {
		d.Severity = Error
		out[i] = d
	}
	return out
}
