package wildpat

import (
	"fmt"
	"math"
	"strings"
)

// Format substitutes value into every occurrence of DefaultMarker in template.
func Format(template, value string) (string, error) {
	return Compile(template).Format(value)
}

// Format substitutes value into every marker occurrence of the pattern.
//
// A template without markers is returned unchanged and value is ignored.
// An empty value is valid and produces a string shorter than the template.
// The output is built in a single allocation of exactly the final size;
// if that size overflows int or exceeds Options.MaxOutputLen, Format returns
// an error wrapping ErrAllocation and no partial output.
func (p *Pattern) Format(value string) (string, error) {
	if p.markers == 0 {
		return p.template, nil
	}

	size, err := p.formattedLen(len(value))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(size)
	marker := p.opts.Marker
	for i := 0; i < len(p.template); i++ {
		if p.template[i] == marker {
			b.WriteString(value)
		} else {
			b.WriteByte(p.template[i])
		}
	}
	return b.String(), nil
}

// formattedLen computes len(template) + markers*(vlen-1) with overflow checks.
// Each marker byte is replaced by vlen bytes, so the growth per marker is
// vlen-1, which is -1 for an empty value.
func (p *Pattern) formattedLen(vlen int) (int, error) {
	grow := vlen - 1
	if grow > 0 && p.markers > (math.MaxInt-len(p.template))/grow {
		return 0, fmt.Errorf("formatting %q with %d-byte value: size overflows int: %w",
			p.template, vlen, ErrAllocation)
	}

	size := len(p.template) + p.markers*grow
	if p.opts.MaxOutputLen >= 0 && size > p.opts.MaxOutputLen {
		return 0, fmt.Errorf("formatting %q with %d-byte value: %d bytes exceeds limit of %d: %w",
			p.template, vlen, size, p.opts.MaxOutputLen, ErrAllocation)
	}
	return size, nil
}
