package nested

import "strings"

// reduceIterationCap bounds the number of outer passes Reduce performs.
// It guards against adversarial input; on trip, Reduce
// returns whatever it has rewritten so far, unmodified further.
const reduceIterationCap = 50000

// Reduce is the generic innermost-first bracket reducer used throughout
// the wiki transformer for {{…}}, [[…]], […], {|…|}, and <tag …>…tag>
// regions with arbitrary nesting.
//
// Semantics: repeatedly locate an innermost occurrence — the leftmost
// position where L is followed (before any further L) by a matching R —
// and replace the enclosed content (excluding delimiters) with f(content).
// The loop terminates when no L remains or the iteration cap trips.
func Reduce(s, L, R string, f func(content string) string) string {
	for iter := 0; ; iter++ {
		if iter >= reduceIterationCap {
			return s
		}

		openIdx, closeIdx := findInnermost(s, L, R)
		if openIdx == -1 {
			return s
		}

		contentStart := openIdx + len(L)
		content := s[contentStart:closeIdx]
		replacement := f(content)
		s = s[:openIdx] + replacement + s[closeIdx+len(R):]
	}
}

// findInnermost implements a left-to-right, depth-first scan: scan from
// position 0; at each L advance; if another L is found before the next
// R, jump forward to that inner L; once a pair with no intervening L is
// found, return it.
func findInnermost(s, L, R string) (openIdx, closeIdx int) {
	pos := 0
	open := -1
	ri, searched := -1, false

	for pos <= len(s) {
		li := indexFrom(s, L, pos)

		if open == -1 {
			if li == -1 {
				return -1, -1
			}
			open = li
			pos = li + len(L)
			continue
		}

		// The next R only changes once pos has moved past it, so it is
		// searched for again only then, not at every nested L.
		if !searched || (ri != -1 && ri < pos) {
			ri = indexFrom(s, R, pos)
			searched = true
		}
		if li != -1 && (ri == -1 || li < ri) {
			open = li
			pos = li + len(L)
			continue
		}
		if ri != -1 {
			return open, ri
		}
		return -1, -1
	}
	return -1, -1
}

func indexFrom(s, sub string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], sub)
	if i == -1 {
		return -1
	}
	return from + i
}
