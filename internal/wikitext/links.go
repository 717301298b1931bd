package wikitext

import (
	"regexp"
	"strings"

	"github.com/yohasebe/wp2txt-sub000/internal/wikitext/nested"
)

var (
	pxSizeRegex      = regexp.MustCompile(`(?i)^\d+\s*x?\d*\s*px$`)
	disambigSuffixRe = regexp.MustCompile(`\s*\([^()]*\)\s*$`)
	trailingCommaRe  = regexp.MustCompile(`\s*,.*$`)
	nsPrefixRe       = regexp.MustCompile(`^[^:]+:`)
)

// ResolveLinks runs Phase D of the wiki transformer: every double- and
// single-bracket span is reduced innermost-first to its resolved display
// text.
func ResolveLinks(text string) string {
	text = nested.Reduce(text, "[[", "]]", resolveDoubleBracket)
	text = nested.Reduce(text, "[", "]", resolveSingleBracket)
	return text
}

func resolveDoubleBracket(content string) string {
	segs := nested.TopLevelSplit(strings.ReplaceAll(content, "\n", "|"), '|')

	first := strings.TrimSpace(segs[0])
	ns := strings.ToLower(nsColonPrefix(first))
	if categoryAliases[ns] {
		return ""
	}
	if fileNamespaces[ns] {
		return resolveFileCaption(segs)
	}

	switch len(segs) {
	case 1:
		return first
	case 2:
		if strings.TrimSpace(segs[1]) == "" {
			return pipeTrick(first)
		}
		return strings.Join(segs[1:], "|")
	default:
		return strings.Join(segs[1:], "|")
	}
}

// nsColonPrefix returns the namespace portion of "NS:Rest", or "" if
// there is no colon.
func nsColonPrefix(s string) string {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(s[:i])
}

// resolveFileCaption scans a File/Image link's segments right-to-left
// for the first one that looks like a caption rather than a known
// parameter, size spec, or key=value pair.
func resolveFileCaption(segs []string) string {
	for i := len(segs) - 1; i >= 1; i-- {
		s := strings.TrimSpace(segs[i])
		if s == "" {
			continue
		}
		if strings.Contains(s, "=") {
			continue
		}
		if pxSizeRegex.MatchString(s) {
			continue
		}
		if imageParamKeywords[strings.ToLower(s)] {
			continue
		}
		return s
	}
	return ""
}

// pipeTrick implements the `[[NS:Target (disambig), remainder|]]` pipe
// trick: strip any namespace prefix, trailing parenthetical, and
// trailing comma clause from target, yielding the residue.
func pipeTrick(target string) string {
	t := nsPrefixRe.ReplaceAllString(target, "")
	t = disambigSuffixRe.ReplaceAllString(t, "")
	t = trailingCommaRe.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

func resolveSingleBracket(content string) string {
	if strings.TrimSpace(content) != content && strings.TrimSpace(content) != "" {
		return " " + strings.TrimSpace(content) + " "
	}
	parts := strings.SplitN(strings.TrimSpace(content), " ", 2)
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[1]
}
