package wildpat

import (
	"errors"
)

var (
	// ErrNoMatch is returned when a value cannot be aligned with a template.
	// It is expected during normal use, e.g. when probing several templates.
	ErrNoMatch = errors.New("value does not match template")

	// ErrAllocation is returned by Format when the expanded string cannot be
	// allocated: its size overflows int or exceeds Options.MaxOutputLen.
	ErrAllocation = errors.New("cannot allocate formatted output")

	// ErrInvalidMarker is returned for a marker that is not exactly one byte.
	ErrInvalidMarker = errors.New("marker must be a single byte")

	// ErrUnknownTemplate is returned when a Set has no template with the given name.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrDuplicateName is returned when a Set already holds a template with the given name.
	ErrDuplicateName = errors.New("duplicate template name")
)
