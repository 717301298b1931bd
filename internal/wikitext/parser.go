package wikitext

import (
	"regexp"
	"strings"
)

var (
	headingRegex        = regexp.MustCompile(`^(=+)(.*?)(=+)\s*$`)
	bracketedLinkRegex  = regexp.MustCompile(`^\s*\[[^\[\]]*\]\s*$`)
	leadingMarkersRegex = regexp.MustCompile(`^[*#;:]+\s*`)
	leadingSpaceRegex   = regexp.MustCompile(`^ +`)
)

// ParseOptions configures the block parser's handling of list markers.
type ParseOptions struct {
	// StripMarkers removes the leading marker run (*, #, ;, :, or the
	// run of leading spaces) from list/definition/preformatted payloads.
	StripMarkers bool
}

// Parse consumes an article's scrubbed UTF-8 wikitext line-by-line and
// returns its ordered elements together with extracted categories.
// Malformed markup never raises: a mode left open at EOF simply
// produces a final element whose payload is everything after its opener.
func Parse(title, text string, opts ParseOptions) *Article {
	art := &Article{Title: title}
	cats := newCategorySet()

	openIdx := -1
	var openKind ElementKind

	for _, line := range splitLines(text) {
		for _, cat := range extractCategoriesFromLine(line) {
			cats.add(cat)
		}

		if openIdx != -1 {
			art.Elements[openIdx].Payload += line + "\n"
			if modeClosed(openKind, art.Elements[openIdx].Payload, line) {
				openIdx = -1
			}
			continue
		}

		el, opens := classifyLine(line, opts)
		art.Elements = append(art.Elements, el)
		if opens {
			openIdx = len(art.Elements) - 1
			openKind = el.Kind
		}
	}

	art.Categories = cats.order
	return art
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// classifyLine applies the line-classification rules in order; first
// match wins. opens reports whether the returned element enters one of
// the distinguished open modes.
func classifyLine(line string, opts ParseOptions) (el Element, opens bool) {
	trimmed := strings.TrimSpace(line)

	// 1. Isolated template.
	if strings.HasPrefix(trimmed, "{{") && strings.HasSuffix(trimmed, "}}") &&
		delimBalanced(trimmed, "{{", "}}") {
		return Element{Kind: IsolatedTemplate, Payload: line + "\n"}, false
	}

	// 2. Isolated balanced-tag line.
	if isolatedBalancedTag(line) {
		return Element{Kind: IsolatedTag, Payload: line + "\n"}, false
	}

	// 3. Blank line.
	if trimmed == "" {
		return Element{Kind: Blank, Payload: "\n"}, false
	}

	// 4. Redirect directive.
	if hasRedirectKeyword(line) {
		return Element{Kind: Redirect, Payload: line + "\n"}, false
	}

	// 5. Heading.
	if m := headingRegex.FindStringSubmatch(trimmed); m != nil && len(m[1]) > 0 && len(m[3]) > 0 {
		text := strings.TrimSpace(m[2])
		level := len(m[1])
		if len(m[3]) < level {
			level = len(m[3])
		}
		return Element{Kind: Heading, Payload: "\n" + text + "\n", Level: level}, false
	}

	// 6. Inline <inputbox>…</inputbox>.
	if inlineTag(line, "inputbox") {
		return Element{Kind: InputBox, Payload: line + "\n"}, false
	}

	// 7. Unmatched {{ without balancing }} on the same line.
	if strings.Contains(line, "{{") && !delimBalanced(line, "{{", "}}") {
		return Element{Kind: MultiLineTemplate, Payload: line + "\n"}, true
	}

	// 8. Unmatched [[ without balancing ]].
	if strings.Contains(line, "[[") && !delimBalanced(line, "[[", "]]") {
		return Element{Kind: MultiLineLink, Payload: line + "\n"}, true
	}

	// 9. Open-without-close <inputbox>.
	if openTagOnly(line, "inputbox") {
		return Element{Kind: InputBox, Payload: line + "\n"}, true
	}

	// 10. Inline / open variants of <source>, <math>, <table>.
	for tag, kind := range map[string]ElementKind{
		"source": Source,
		"math":   Math,
		"table":  HTMLTable,
	} {
		if inlineTag(line, tag) {
			return Element{Kind: kind, Payload: line + "\n"}, false
		}
		if openTagOnly(line, tag) {
			return Element{Kind: kind, Payload: line + "\n"}, true
		}
	}

	// 11. Wiki table opener.
	if isTableOpener(trimmed) {
		return Element{Kind: Table, Payload: line + "\n"}, true
	}

	// 12. List items.
	switch {
	case strings.HasPrefix(trimmed, "*"):
		return Element{Kind: UnorderedItem, Payload: stripListMarker(line, opts) + "\n"}, false
	case strings.HasPrefix(trimmed, "#"):
		return Element{Kind: OrderedItem, Payload: stripListMarker(line, opts) + "\n"}, false
	case strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, ":"):
		return Element{Kind: DefinitionItem, Payload: stripListMarker(line, opts) + "\n"}, false
	case strings.HasPrefix(line, " "):
		return Element{Kind: PreformattedLine, Payload: stripPreformattedMarker(line, opts) + "\n"}, false
	}

	// 13. Bracketed (single-bracket) link line.
	if bracketedLinkRegex.MatchString(line) {
		return Element{Kind: Link, Payload: line + "\n"}, false
	}

	// 14. Otherwise: paragraph.
	return Element{Kind: Paragraph, Payload: "\n" + line + "\n"}, false
}

func isTableOpener(trimmed string) bool {
	i := 0
	for i < len(trimmed) && !isWordByte(trimmed[i]) && trimmed[i] != '{' {
		i++
	}
	return strings.HasPrefix(trimmed[i:], "{|")
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

func stripListMarker(line string, opts ParseOptions) string {
	if !opts.StripMarkers {
		return line
	}
	return leadingMarkersRegex.ReplaceAllString(line, "")
}

func stripPreformattedMarker(line string, opts ParseOptions) string {
	if !opts.StripMarkers {
		return line
	}
	return leadingSpaceRegex.ReplaceAllString(line, "")
}

// modeClosed evaluates the mode-specific close pattern for an open
// element. MultiLineTemplate/MultiLineLink use the nested-structure
// balance check; the other open modes use a direct
// close-tag/close-marker match against the most recently appended line.
func modeClosed(kind ElementKind, payloadSoFar, lastLine string) bool {
	switch kind {
	case MultiLineTemplate:
		return delimBalanced(payloadSoFar, "{{", "}}")
	case MultiLineLink:
		return delimBalanced(payloadSoFar, "[[", "]]")
	case Table:
		return strings.Contains(lastLine, "|}")
	case InputBox:
		return strings.Contains(strings.ToLower(lastLine), "</inputbox>")
	case Source:
		return strings.Contains(strings.ToLower(lastLine), "</source>")
	case Math:
		return strings.Contains(strings.ToLower(lastLine), "</math>")
	case HTMLTable:
		return strings.Contains(strings.ToLower(lastLine), "</table>")
	default:
		return true
	}
}
