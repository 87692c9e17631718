// Package wildpat matches and formats strings against single-wildcard templates.
//
// A template is literal text with zero or more occurrences of one reserved
// marker byte ('*' by default). Every occurrence stands for the same value,
// so "/var/*/*.log" describes "/var/api/api.log" but not "/var/api/web.log".
// The package has two complementary operations:
//
//   - Format substitutes a value into every marker occurrence.
//   - Match aligns a concrete string with the template and returns the
//     value the markers stand for.
//
// # Basic Usage
//
//	name, _ := wildpat.Format("/tmp/*.log", "service")
//	// name == "/tmp/service.log"
//
//	capture, ok := wildpat.Match("/tmp/*.log", name)
//	// ok == true, capture.String() == "service"
//
// # Matching Rules
//
// Matching is positional, not a search. Each occurrence absorbs the same
// number of bytes, so the value's length must exceed the template's literal
// length by a multiple of the marker count. Then:
//
//   - Literal bytes must be equal, case-sensitively: "ABC*" does not match "abcXYZ".
//   - The text under every occurrence must equal the first capture under ASCII
//     case folding: "a*-*b" matches "axx-XXb" with capture "xx".
//
// A template without markers matches only itself and captures nothing; use
// Pattern.MatchWithResult to tell "captured the empty string" apart from
// "captured nothing".
//
// # Custom Markers
//
// The marker cannot be escaped. Templates whose literal text needs '*' can
// pick another marker:
//
//	p := wildpat.CompileWithOptions("backup-%.tar.*z", wildpat.Options{Marker: '%'})
//
// # Template Sets
//
// A Set holds named templates and reports the first one a value matches.
// Sets can be loaded from template lists ("name = template" per line) or from
// a YAML config, see LoadConfig.
//
// # Thread Safety
//
// Pattern and View are immutable. Set is safe for concurrent use.
package wildpat
