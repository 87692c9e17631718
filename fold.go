package wildpat

// Fold returns the ASCII lowercase form of c.
// Bytes outside 'A'..'Z' are returned unchanged; no Unicode or locale rules apply.
func Fold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// CompareFold compares a and b byte-wise under Fold.
// Returns -1, 0 or +1. When one string is a folded prefix of the other,
// the shorter one is less.
func CompareFold(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		x, y := Fold(a[i]), Fold(b[i])
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a) == len(b):
		return 0
	case len(a) < len(b):
		return -1
	default:
		return 1
	}
}

// EqualFold reports whether a and b are equal under ASCII folding.
// Unlike strings.EqualFold it never applies Unicode simple folding.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if Fold(a[i]) != Fold(b[i]) {
			return false
		}
	}
	return true
}
