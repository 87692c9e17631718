package wildpat

import (
	"io"
)

// View is a read-only view over a range of a string, compared case-insensitively.
//
// A View never copies: it shares the backing storage of the string it was
// built from. The zero View is empty. Views are safe for concurrent reads.
type View struct {
	s string
}

// ViewOf returns a View over all of s.
func ViewOf(s string) View {
	return View{s: s}
}

// ViewN returns a View over the first n bytes of s.
// It panics if n is out of range, like slicing does.
func ViewN(s string, n int) View {
	return View{s: s[:n]}
}

// ViewRange returns a View over s[begin:end].
// It panics if the bounds are out of range, like slicing does.
func ViewRange(s string, begin, end int) View {
	return View{s: s[begin:end]}
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return len(v.s)
}

// NonEmpty reports whether the view has a non-zero length.
// An empty view and the zero View are indistinguishable here.
func (v View) NonEmpty() bool {
	return len(v.s) != 0
}

// String returns the viewed bytes as a string without copying.
func (v View) String() string {
	return v.s
}

// Compare orders v and other lexicographically under ASCII folding.
// Returns -1, 0 or +1; a folded prefix sorts before the longer view.
func (v View) Compare(other View) int {
	return CompareFold(v.s, other.s)
}

// Equal reports whether v and other have the same length and fold to the same bytes.
func (v View) Equal(other View) bool {
	return EqualFold(v.s, other.s)
}

func (v View) Less(other View) bool           { return v.Compare(other) < 0 }
func (v View) LessOrEqual(other View) bool    { return v.Compare(other) <= 0 }
func (v View) Greater(other View) bool        { return v.Compare(other) > 0 }
func (v View) GreaterOrEqual(other View) bool { return v.Compare(other) >= 0 }

// WriteTo writes the viewed bytes to w.
func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.s)
	return int64(n), err
}
