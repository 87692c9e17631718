//go:build ignore

// This program generates template list fixtures with specific encodings.
// Run with: go run fixtures_gen.go
//
// It creates:
//   - crlf.tmpl: Windows line endings (CRLF)
//   - with-bom.tmpl: UTF-8 BOM prefix
//   - large.tmpl: 100+ named templates for benchmarking

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	generators := []struct {
		name string
		fn   func() []byte
	}{
		{"crlf.tmpl", generateCRLF},
		{"with-bom.tmpl", generateWithBOM},
		{"large.tmpl", generateLarge},
	}

	for _, g := range generators {
		path := filepath.Join(dir, g.name)
		content := g.fn()
		if err := os.WriteFile(path, content, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			continue
		}
		fmt.Printf("Generated: %s (%d bytes)\n", path, len(content))
	}
}

// generateCRLF creates a template list with Windows CRLF line endings
func generateCRLF() []byte {
	lines := []string{
		"# Windows line endings test",
		"logs = C:/logs/*.log",
		"",
		"dumps = C:/dumps/*/*.dmp",
	}

	var content []byte
	for _, line := range lines {
		content = append(content, []byte(line)...)
		content = append(content, '\r', '\n')
	}
	return content
}

// generateWithBOM creates a template list with a UTF-8 BOM prefix
func generateWithBOM() []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte(`# UTF-8 BOM test file
# The BOM (EF BB BF) should be stripped during parsing

logs = /var/log/*.log
données = /srv/données/*.csv
`)
	return append(bom, content...)
}

// generateLarge creates 100+ named templates for benchmark testing
func generateLarge() []byte {
	content := []byte("# Large template list for benchmark testing\n")
	for i := 0; i < 120; i++ {
		content = append(content, []byte(fmt.Sprintf("svc%d = /srv/svc%d/*/*.log\n", i, i))...)
	}
	return content
}
