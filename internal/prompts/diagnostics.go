// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package prompts

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/nativewrappers/nativegen/internal/diag"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f56")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24")).Bold(true)
	fileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
)

// PrintDiagnostics writes every diagnostic to w, one per line, errors first
// styled red and warnings yellow. It returns the error and warning counts.
func PrintDiagnostics(w io.Writer, diags diag.Diagnostics) (errs, warns int) {
	for _, d := range diags {
		var tag string
		switch d.Severity {
		case diag.Error:
			tag = errorStyle.Render("error")
			errs++
		default:
			tag = warnStyle.Render("warning")
			warns++
		}
		fmt.Fprintf(w, "%s %s %s\n", fileStyle.Render(location(d)), tag, d.Message)
	}
	return errs, warns
}

func location(d diag.Diagnostic) string {
	loc := d.File
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, d.Line)
		if d.Column > 0 {
			loc = fmt.Sprintf("%s:%d", loc, d.Column)
		}
	}
	return loc
}
