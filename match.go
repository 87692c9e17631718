package wildpat

import (
	"fmt"
)

// Result provides detailed information about a match attempt.
type Result struct {
	// Capture is the text every marker occurrence decoded to.
	// Meaningful only when Captured is true. It refers to the first occurrence.
	Capture View

	// Matched indicates whether the value aligned with the template.
	Matched bool

	// Captured indicates whether a marker was seen, i.e. whether Capture holds
	// a value. A template without markers matches with Captured == false.
	// Captured == true with Capture.Len() == 0 means the empty string was captured.
	Captured bool
}

// Match aligns value against template using DefaultMarker and returns the capture.
// The boolean is false when the value does not match.
func Match(template, value string) (View, bool) {
	return Compile(template).Match(value)
}

// Match aligns value against the pattern and returns the capture.
// The boolean is false when the value does not match. For a template without
// markers the capture is the empty View and the boolean reports equality.
func (p *Pattern) Match(value string) (View, bool) {
	r := p.MatchWithResult(value)
	return r.Capture, r.Matched
}

// Capture is like Match but reports failure as an error wrapping ErrNoMatch.
func (p *Pattern) Capture(value string) (View, error) {
	r := p.MatchWithResult(value)
	if !r.Matched {
		return View{}, fmt.Errorf("matching %q against %q: %w", value, p.template, ErrNoMatch)
	}
	return r.Capture, nil
}

// MatchWithResult aligns value against the pattern.
//
// Every marker occurrence absorbs the same number of bytes:
//
//	slot = (len(value) - literalLen) / markers
//
// which must be a non-negative whole number. Literal bytes are compared
// case-sensitively; the text under each later occurrence must equal the first
// capture under ASCII folding. Nothing is allocated.
func (p *Pattern) MatchWithResult(value string) Result {
	// Step 1: Templates without markers are a plain comparison
	if p.markers == 0 {
		return Result{Matched: value == p.template}
	}

	// Step 2: Derive the per-occurrence slot length
	extra := len(value) - p.literalLen()
	if extra < 0 || extra%p.markers != 0 {
		return Result{}
	}
	slot := extra / p.markers

	// Step 3: Walk template and value in lock-step
	var (
		capture  View
		captured bool
		v        int
	)
	marker := p.opts.Marker
	for i := 0; i < len(p.template); i++ {
		c := p.template[i]
		if c != marker {
			if value[v] != c {
				return Result{}
			}
			v++
			continue
		}

		candidate := ViewRange(value, v, v+slot)
		if !captured {
			capture = candidate
			captured = true
		} else if !capture.Equal(candidate) {
			return Result{}
		}
		v += slot
	}

	return Result{Capture: capture, Matched: true, Captured: true}
}
