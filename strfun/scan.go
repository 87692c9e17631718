package strfun

// SkipSpace returns s without its leading spaces and tabs.
func SkipSpace(s string) string {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return s[i:]
}

// SkipWord skips leading blanks and then one word, returning the rest of s
// starting at the blank that ended the word.
func SkipWord(s string) string {
	s = SkipSpace(s)
	i := 0
	for i < len(s) && !isBlank(s[i]) {
		i++
	}
	return s[i:]
}

// CountWords returns the number of blank-separated words in s.
// Trailing blanks do not start a word.
func CountWords(s string) int {
	words := 0
	for s = SkipSpace(s); s != ""; s = SkipSpace(s) {
		s = SkipWord(s)
		words++
	}
	return words
}

// ParseFloat parses a decimal number leniently: leading blanks, an optional
// '-', digits and at most one '.'. Parsing stops at the first other byte or
// at a second '.', and whatever was read so far is returned. No exponent,
// no '+' sign.
func ParseFloat(s string) float64 {
	var (
		ret      float64
		mult     = 1.0
		fraction bool
	)
	sign := 1.0

	s = SkipSpace(s)
	if s != "" && s[0] == '-' {
		sign = -1
		s = s[1:]
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			d := float64(c - '0')
			if !fraction {
				ret = ret*10 + d
			} else {
				mult /= 10
				ret += d * mult
			}
		case c == '.' && !fraction:
			fraction = true
		default:
			return ret * sign
		}
	}
	return ret * sign
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
