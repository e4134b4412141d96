// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package docparse

import (
	"regexp"
	"strings"

	"github.com/nativewrappers/nativegen/internal/diag"
)

// line pairs a line's text with its 1-based position.
type line struct {
	text string
	no   int
}

func splitLines(content string) []line {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	raw := strings.Split(content, "\n")
	lines := make([]line, len(raw))
	for i, t := range raw {
		lines[i] = line{text: t, no: i + 1}
	}
	return lines
}

// metadata is the decoded frontmatter block.
type metadata struct {
	namespace         string
	aliases           []string
	apiSet            string
	deprecated        bool
	deprecatedMessage string
	endLine           int // index just past the closing fence
}

// parseFrontmatter decodes the `---` fenced key/value header. Missing or
// malformed metadata is a hard error and parsing stops.
func parseFrontmatter(path string, doc []line, diags *diag.Diagnostics) (metadata, bool) {
	meta := metadata{apiSet: DefaultAPISet}

	start := 0
	for start < len(doc) && strings.TrimSpace(doc[start].text) == "" {
		start++
	}
	if start >= len(doc) || strings.TrimSpace(doc[start].text) != "---" {
		*diags = append(*diags, diag.Errorf(path, "missing metadata block, expected --- frontmatter"))
		return meta, false
	}

	end := -1
	for i := start + 1; i < len(doc); i++ {
		if strings.TrimSpace(doc[i].text) == "---" {
			end = i
			break
		}

		text := strings.TrimSpace(doc[i].text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, found := strings.Cut(text, ":")
		if !found {
			*diags = append(*diags, diag.ErrorAt(path, doc[i].no, 1,
				"malformed metadata line %q, expected key: value", text))
			return meta, false
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "ns":
			meta.namespace = value
		case "aliases":
			meta.aliases = parseInlineList(value)
		case "apiset":
			if value != "" {
				meta.apiSet = value
			}
		case "deprecated":
			meta.deprecated = true
			meta.deprecatedMessage = strings.Trim(value, `"`)
		default:
			// Unknown keys are tolerated; documentation authors attach
			// housekeeping metadata the generator does not consume.
		}
	}
	if end < 0 {
		*diags = append(*diags, diag.ErrorAt(path, doc[start].no, 1, "unterminated metadata block"))
		return meta, false
	}
	if meta.namespace == "" {
		*diags = append(*diags, diag.Errorf(path, "metadata is missing the required ns key"))
		return meta, false
	}

	meta.endLine = end + 1
	return meta, true
}

// parseInlineList decodes `["A", "B"]`, `[A, B]` or a bare single value.
func parseInlineList(s string) []string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

var headingRe = regexp.MustCompile(`^##\s+(\S+)\s*$`)

// findHeading locates the first `## NAME` line at or after start and returns
// the documented name and the line's index.
func findHeading(doc []line, start int) (string, int, bool) {
	for i := start; i < len(doc); i++ {
		if m := headingRe.FindStringSubmatch(doc[i].text); m != nil {
			if strings.EqualFold(m[1], "Parameters") || isReturnHeading(doc[i].text) {
				continue
			}
			return m[1], i, true
		}
	}
	return "", 0, false
}

// signatureBlock carries the two significant lines of the fenced code block.
type signatureBlock struct {
	hashLine   string
	hashLineNo int
	declLine   string
	declLineNo int
	endLine    int // index just past the closing fence
}

// findSignatureBlock locates the fenced code block after the heading: a hash
// comment line immediately followed by the declaration.
func findSignatureBlock(path string, doc []line, headingIdx int, diags *diag.Diagnostics) (signatureBlock, bool) {
	var sig signatureBlock

	open := -1
	for i := headingIdx + 1; i < len(doc); i++ {
		if strings.HasPrefix(strings.TrimSpace(doc[i].text), "```") {
			open = i
			break
		}
	}
	if open < 0 || open+2 >= len(doc) {
		*diags = append(*diags, diag.Errorf(path, "missing signature block"))
		return sig, false
	}

	sig.hashLine = doc[open+1].text
	sig.hashLineNo = doc[open+1].no
	sig.declLine = doc[open+2].text
	sig.declLineNo = doc[open+2].no

	closing := -1
	for i := open + 3; i < len(doc); i++ {
		if strings.TrimSpace(doc[i].text) == "```" {
			closing = i
			break
		}
	}
	if closing < 0 {
		*diags = append(*diags, diag.ErrorAt(path, doc[open].no, 1, "unterminated signature block"))
		return sig, false
	}

	sig.endLine = closing + 1
	return sig, true
}

var paramDocRe = regexp.MustCompile(`^\*\s+\*\*([A-Za-z_][A-Za-z0-9_]*)\*\*\s*:\s*(.*)$`)

// parseParamDocs collects the `* **name**: description` entries after the
// signature block, in written order.
func parseParamDocs(doc []line, start int) []paramDoc {
	var docs []paramDoc
	for i := start; i < len(doc); i++ {
		text := strings.TrimSpace(doc[i].text)
		if isReturnHeading(text) {
			break
		}
		if m := paramDocRe.FindStringSubmatch(text); m != nil {
			docs = append(docs, paramDoc{name: m[1], desc: strings.TrimSpace(m[2]), line: doc[i].no})
		}
	}
	return docs
}

// hasReturnSection reports whether a `## Return value` heading follows the
// signature block.
func hasReturnSection(doc []line, start int) bool {
	for i := start; i < len(doc); i++ {
		if isReturnHeading(strings.TrimSpace(doc[i].text)) {
			return true
		}
	}
	return false
}

func isReturnHeading(text string) bool {
	if !strings.HasPrefix(text, "##") {
		return false
	}
	rest := strings.TrimSpace(strings.TrimLeft(text, "#"))
	return strings.EqualFold(rest, "Return value") || strings.EqualFold(rest, "Returns")
}
