package wildpat

import (
	"bytes"
)

// normalizeContent prepares a template list for line splitting. Lists saved
// by Windows editors start with a BOM and end lines in CRLF; left in place,
// the BOM would become part of the first template name and a trailing CR part
// of every template, so none of them would match.
//
// Normalization steps (applied in order):
//  1. Strip UTF-8 BOM if present (EF BB BF) - loops for idempotency
//  2. Normalize CRLF to LF (Windows line endings)
//  3. Normalize standalone CR to LF (old Mac format)
func normalizeContent(content []byte) []byte {
	if len(content) == 0 {
		return content
	}

	// Step 1: Strip UTF-8 BOM
	for len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	// Step 2: CRLF to LF
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	// Step 3: Standalone CR
	content = bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))

	return content
}

// trimSpace removes leading and trailing spaces and tabs.
func trimSpace(s string) string {
	start := 0
	for start < len(s) && isBlank(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isBlank(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
