package strfun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCutPrefixFold(t *testing.T) {
	tests := []struct {
		s, prefix string
		rest      string
		ok        bool
	}{
		{"Content-Type: text", "content-type:", " text", true},
		{"abc", "", "abc", true},
		{"abc", "ABC", "", true},
		{"ab", "abc", "ab", false},
		{"abd", "abc", "abd", false},
	}
	for _, tt := range tests {
		rest, ok := CutPrefixFold(tt.s, tt.prefix)
		assert.Equal(t, tt.ok, ok, "CutPrefixFold(%q, %q)", tt.s, tt.prefix)
		assert.Equal(t, tt.rest, rest, "CutPrefixFold(%q, %q)", tt.s, tt.prefix)
	}
}

func TestHasSuffixFold(t *testing.T) {
	assert.True(t, HasSuffixFold("report.PDF", ".pdf"))
	assert.True(t, HasSuffixFold("x", ""))
	assert.False(t, HasSuffixFold("pdf", ".pdf"))
	assert.False(t, HasSuffixFold("report.pdx", ".pdf"))
}

func TestCompareDir(t *testing.T) {
	tests := []struct {
		a, b string
		want int // sign only
	}{
		{"a/b/c", "A/B", 0},
		{"a/b", "a/b/c", 0},
		{"usr/lib", "USR/LIB", 0},
		{"", "", 0},
		{"a/b", "a/bc", -1},
		{"a/bc", "a/b", 1},
		{"abc", "abd", -1},
		{"b", "a", 1},
		{"", "a", -1},
	}
	for _, tt := range tests {
		got := CompareDir(tt.a, tt.b)
		switch {
		case tt.want == 0:
			assert.Zero(t, got, "CompareDir(%q, %q)", tt.a, tt.b)
		case tt.want < 0:
			assert.Negative(t, got, "CompareDir(%q, %q)", tt.a, tt.b)
		default:
			assert.Positive(t, got, "CompareDir(%q, %q)", tt.a, tt.b)
		}
	}
}
