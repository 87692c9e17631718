package wildpat

import (
	"strings"
)

// ParseWarning represents a warning from parsing one line of a template list.
type ParseWarning struct {
	Name    string // Template name, if one could be determined
	Line    int    // Line number (1-indexed)
	Text    string // The problematic line, trimmed
	Message string // Human-readable warning message
}

// entry is a parsed template list line.
type entry struct {
	name     string
	template string
	line     int
}

// parseTemplates parses a template list into entries.
//
// Each non-blank, non-comment line is either "name = template" or a bare
// template, which is then named after itself. The first '=' separates the
// name, so templates containing '=' need an explicit name.
func parseTemplates(content []byte) ([]entry, []ParseWarning) {
	content = normalizeContent(content)

	lines := strings.Split(string(content), "\n")
	var entries []entry
	var warnings []ParseWarning

	for i, line := range lines {
		e, warning := parseTemplateLine(line, i+1)
		if warning != nil {
			warnings = append(warnings, *warning)
		}
		if e != nil {
			entries = append(entries, *e)
		}
	}

	return entries, warnings
}

// parseTemplateLine parses a single line of a template list.
// Returns nil entry for blank lines, comments, and malformed lines.
func parseTemplateLine(line string, lineNum int) (*entry, *ParseWarning) {
	line = trimSpace(line)

	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	name, template, named := strings.Cut(line, "=")
	if !named {
		return &entry{name: line, template: line, line: lineNum}, nil
	}

	name = trimSpace(name)
	template = trimSpace(template)

	if name == "" {
		return nil, &ParseWarning{
			Line:    lineNum,
			Text:    line,
			Message: "template name is empty",
		}
	}
	if template == "" {
		return nil, &ParseWarning{
			Name:    name,
			Line:    lineNum,
			Text:    line,
			Message: "template is empty",
		}
	}

	return &entry{name: name, template: template, line: lineNum}, nil
}
