package wildpat

import (
	"testing"
)

func TestFold(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		want := b
		if b >= 'A' && b <= 'Z' {
			want = b + 32
		}
		if got := Fold(b); got != want {
			t.Errorf("Fold(%q) = %q, want %q", b, got, want)
		}
	}
}

func TestCompareFold(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "ABC", 0},
		{"abc", "abd", -1},
		{"ABD", "abc", 1},
		{"ab", "ABC", -1},
		{"abc", "AB", 1},
		{"", "a", -1},
		{"a", "", 1},
		// '_' (0x5F) sits between 'Z' and 'a'; folding decides the order
		{"_", "A", -1},
		{"_", "a", -1},
		{"[", "a", -1},
	}

	for _, tt := range tests {
		if got := CompareFold(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareFold(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"", "", true},
		{"Service", "sERVICE", true},
		{"abc", "abcd", false},
		{"a-b", "A-B", true},
		{"@", "`", false},
		// no Unicode folding
		{"\u212a", "k", false},
		{"\u00c9", "\u00e9", false},
	}

	for _, tt := range tests {
		if got := EqualFold(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
