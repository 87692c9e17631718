package wildpat

import (
	"strconv"
)

// DefaultMarker is the wildcard marker used when Options.Marker is zero.
const DefaultMarker byte = '*'

// DefaultMaxOutputLen is the default upper bound, in bytes, for a string
// produced by Format. Can be overridden via Options.
const DefaultMaxOutputLen = 64 << 20

// Options configures how a template is compiled.
type Options struct {
	// Marker is the reserved wildcard byte. There is no escape for it.
	// Default: DefaultMarker ('*').
	Marker byte

	// MaxOutputLen limits the size of strings built by Format.
	// Default: DefaultMaxOutputLen. Set to -1 for no limit besides int overflow.
	MaxOutputLen int
}

// withDefaults fills zero-valued fields.
func (o Options) withDefaults() Options {
	if o.Marker == 0 {
		o.Marker = DefaultMarker
	}
	if o.MaxOutputLen == 0 {
		o.MaxOutputLen = DefaultMaxOutputLen
	}
	return o
}

// MarkerFromString converts a one-byte string into a marker.
// The empty string selects DefaultMarker.
func MarkerFromString(s string) (byte, error) {
	switch len(s) {
	case 0:
		return DefaultMarker, nil
	case 1:
		return s[0], nil
	default:
		return 0, &MarkerError{Marker: s}
	}
}

// MarkerError describes a marker string that is not a single byte.
type MarkerError struct {
	Marker string
}

func (e *MarkerError) Error() string {
	return "invalid marker " + strconv.Quote(e.Marker) + ": " + ErrInvalidMarker.Error()
}

func (e *MarkerError) Unwrap() error { return ErrInvalidMarker }

// Pattern is a compiled template: literal bytes interleaved with zero or
// more occurrences of one wildcard marker. Every occurrence stands for the
// same value.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	template string
	markers  int
	opts     Options
}

// Compile compiles template with default options.
func Compile(template string) *Pattern {
	return CompileWithOptions(template, Options{})
}

// CompileWithOptions compiles template with custom options.
func CompileWithOptions(template string, opts Options) *Pattern {
	opts = opts.withDefaults()
	return &Pattern{
		template: template,
		markers:  countMarkers(template, opts.Marker),
		opts:     opts,
	}
}

// countMarkers counts occurrences of the marker byte in template.
func countMarkers(template string, marker byte) int {
	n := 0
	for i := 0; i < len(template); i++ {
		if template[i] == marker {
			n++
		}
	}
	return n
}

// Template returns the source template.
func (p *Pattern) Template() string {
	return p.template
}

// Marker returns the wildcard byte of the pattern.
func (p *Pattern) Marker() byte {
	return p.opts.Marker
}

// MarkerCount returns how many marker occurrences the template contains.
func (p *Pattern) MarkerCount() int {
	return p.markers
}

// literalLen returns the number of non-marker bytes in the template.
func (p *Pattern) literalLen() int {
	return len(p.template) - p.markers
}

// String returns a debug representation of the pattern.
func (p *Pattern) String() string {
	s := p.template
	if p.opts.Marker != DefaultMarker {
		s += " [marker=" + strconv.QuoteRune(rune(p.opts.Marker)) + "]"
	}
	return s
}
