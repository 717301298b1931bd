package nested

// Balanced reports whether s contains a non-negative, zero-ending depth
// of L/R pairs — i.e. whether Reduce(s, L, R, f) would find no
// remaining unmatched L. Used wherever the core needs to know "is this
// span closed yet?" without mutating it
// to ensure brace/bracket balance before declaring closure — not a raw
// suffix match").
func Balanced(s, L, R string) bool {
	depth := 0
	i := 0
	for i < len(s) {
		li := indexFrom(s, L, i)
		ri := indexFrom(s, R, i)
		switch {
		case li == -1 && ri == -1:
			return depth == 0
		case li != -1 && (ri == -1 || li < ri):
			depth++
			i = li + len(L)
		default:
			depth--
			if depth < 0 {
				return false
			}
			i = ri + len(R)
		}
	}
	return depth == 0
}

// TopLevelSplit splits s on sep, skipping any sep that falls inside a
// {…}, […], or nested {{…}}/[[…]] span — used by the template reducer
// to split a template body on top-level '|' without being
// fooled by a parameter value that itself contains a template or a
// link.
func TopLevelSplit(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '[':
			depth++
		case '}', ']':
			if depth > 0 {
				depth--
			}
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
