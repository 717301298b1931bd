package wikitext

import "regexp"

var (
	boldItalicRegex = regexp.MustCompile(`'''''(.+?)'''''`)
	boldRegex       = regexp.MustCompile(`'''(.+?)'''`)
	italicRegex     = regexp.MustCompile(`''(.+?)''`)
)

// stripEmphasis removes wikitext emphasis markers ('', ''', ''''') around
// their content, keeping the content itself.
func stripEmphasis(text string) string {
	text = boldItalicRegex.ReplaceAllString(text, "$1")
	text = boldRegex.ReplaceAllString(text, "$1")
	text = italicRegex.ReplaceAllString(text, "$1")
	return text
}
