package wikitext

import (
	"strings"

	"github.com/yohasebe/wp2txt-sub000/internal/wikitext/nested"
)

// delimBalanced is a thin alias kept local to this package for
// readability; the real implementation is shared with the template
// reducer via internal/wikitext/nested.
func delimBalanced(s, L, R string) bool {
	return nested.Balanced(s, L, R)
}

// isolatedBalancedTag reports whether the trimmed line is exactly one
// HTML-ish element <tag ...>...</tag> (or a self-closed <tag .../>),
// fully contained on a single line. Go's RE2 engine cannot express the
// opening/closing tag-name backreference directly, so this is a small
// hand-written scanner instead of a regex.
func isolatedBalancedTag(line string) bool {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "<") || !strings.HasSuffix(t, ">") {
		return false
	}
	name, rest, ok := readTagName(t[1:])
	if !ok || name == "" {
		return false
	}
	if strings.HasSuffix(rest, "/>") {
		return true
	}
	closer := "</" + name + ">"
	return strings.HasSuffix(t, closer) && len(t) > len(closer)
}

// readTagName reads a tag name starting at s (just past '<') and returns
// it along with the remainder of the tag-opening text.
func readTagName(s string) (name string, rest string, ok bool) {
	i := 0
	for i < len(s) && (isAlnum(s[i]) || s[i] == '-') {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	return s[:i], s[i:], true
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// openTagOnly reports whether the trimmed line opens `tagName` (e.g.
// "<source lang=\"go\">") without a matching closer on the same line,
// and inlineTag reports whether it is a fully self-contained
// <tagName ...>...</tagName> on one line. Both ignore case in the tag
// name match.
func openTagOnly(line, tagName string) (isOpen bool) {
	t := strings.TrimSpace(line)
	lower := strings.ToLower(t)
	open := "<" + tagName
	if !strings.HasPrefix(lower, open) {
		return false
	}
	closer := "</" + tagName + ">"
	return !strings.Contains(lower, closer)
}

func inlineTag(line, tagName string) bool {
	t := strings.TrimSpace(line)
	lower := strings.ToLower(t)
	open := "<" + tagName
	closer := "</" + tagName + ">"
	return strings.HasPrefix(lower, open) && strings.HasSuffix(lower, closer)
}
