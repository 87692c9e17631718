package strfun

import (
	"github.com/Sriram-PR/go-wildpat"
)

// CutPrefixFold reports whether s begins with prefix under ASCII folding and
// returns the remainder of s after it.
func CutPrefixFold(s, prefix string) (rest string, ok bool) {
	if len(s) < len(prefix) {
		return s, false
	}
	if !wildpat.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// HasSuffixFold reports whether s ends with suffix under ASCII folding.
func HasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return wildpat.EqualFold(s[len(s)-len(suffix):], suffix)
}

// CompareDir compares two paths under ASCII folding. When one path runs out
// where the other continues with '/', they compare equal, so a path equals
// each of its parent directories: CompareDir("a/b/c", "A/B") == 0.
// Returns a negative number, zero or a positive number.
func CompareDir(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && wildpat.Fold(a[i]) == wildpat.Fold(b[i]) {
		i++
	}

	switch {
	case i == len(a) && i == len(b):
		return 0
	case i == len(b) && a[i] == '/':
		return 0
	case i == len(a) && b[i] == '/':
		return 0
	}

	return int(at(a, i)) - int(at(b, i))
}

// at returns the folded byte at i, or 0 past the end.
func at(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return wildpat.Fold(s[i])
}
