package strfun

import (
	"errors"
	"fmt"

	"github.com/Sriram-PR/go-wildpat"
)

// ErrInvalidHex is returned for bytes that are not hexadecimal digits.
var ErrInvalidHex = errors.New("invalid hex digit")

// ParseHexDigit returns the value of a single hex digit, in either case.
func ParseHexDigit(c byte) (int, error) {
	switch c := wildpat.Fold(c); {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, c)
	}
}

// ParseHexByte parses the first two bytes of s as a hex byte, e.g. "7F" or "7f".
func ParseHexByte(s string) (byte, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q is shorter than two digits", ErrInvalidHex, s)
	}
	hi, err := ParseHexDigit(s[0])
	if err != nil {
		return 0, err
	}
	lo, err := ParseHexDigit(s[1])
	if err != nil {
		return 0, err
	}
	return byte(hi<<4 | lo), nil
}
