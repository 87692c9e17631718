package strfun

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder is the verb that Sprintf and Sscanf substitute.
const Placeholder = "%s"

// ErrPlaceholder is returned when a pattern does not contain exactly one Placeholder.
var ErrPlaceholder = errors.New("pattern must contain exactly one %s")

// Sprintf replaces the single %s in pattern with arg. No other verbs are
// interpreted, so "100%" in the surrounding text is copied as is.
func Sprintf(pattern, arg string) (string, error) {
	prefix, suffix, err := splitPlaceholder(pattern)
	if err != nil {
		return "", err
	}
	return prefix + arg + suffix, nil
}

// Sscanf is the inverse of Sprintf: it returns the text of s that stands in
// place of the single %s in pattern. The text around the placeholder must
// match exactly; the suffix is compared with ASCII folding.
func Sscanf(s, pattern string) (string, bool) {
	prefix, suffix, err := splitPlaceholder(pattern)
	if err != nil {
		return "", false
	}
	if len(s) < len(prefix)+len(suffix) {
		return "", false
	}
	if !strings.HasPrefix(s, prefix) || !HasSuffixFold(s, suffix) {
		return "", false
	}
	return s[len(prefix) : len(s)-len(suffix)], true
}

// splitPlaceholder returns the text before and after the only %s in pattern.
func splitPlaceholder(pattern string) (prefix, suffix string, err error) {
	if n := strings.Count(pattern, Placeholder); n != 1 {
		return "", "", fmt.Errorf("%w: %q has %d", ErrPlaceholder, pattern, n)
	}
	prefix, suffix, _ = strings.Cut(pattern, Placeholder)
	return prefix, suffix, nil
}
