package naming

import "strings"

// substr returns the byte range of s starting at start with the given length,
// using clamping rules instead of panicking: a negative start counts from the
// end of s, a negative length stops that many bytes before the end, and ranges
// running past either end are clipped.
func substr(s string, start int, length ...int) string {
	n := len(s)
	if start > n {
		return ""
	}
	if start < 0 {
		start = max(n+start, 0)
	}
	end := n
	if len(length) > 0 {
		l := length[0]
		if l < 0 {
			end = n + l
		} else {
			end = min(start+l, n)
		}
	}
	if end <= start {
		return ""
	}
	return s[start:end]
}

// lastN returns the last n bytes of s, the same way substr(s, len(s)-n) would.
func lastN(s string, n int) string {
	return substr(s, len(s)-n)
}

// dropLast removes the last n bytes of s and trims trailing spaces.
func dropLast(s string, n int) string {
	return rtrim(substr(s, 0, len(s)-n))
}

func rtrim(s string) string {
	return strings.TrimRight(s, " \t\n\r\x00\x0B")
}

// leadingInt reads the integer prefix of s, ignoring leading whitespace.
// It returns 0 when s does not start with a number.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\x0B\f")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	v := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + int(s[i]-'0')
	}
	if neg {
		return -v
	}
	return v
}

// hasCloseParen mirrors the legacy check for a language token: a ")" anywhere
// except at the very first byte.
func hasCloseParen(s string) bool {
	return strings.Index(s, ")") > 0
}
