package wikitext

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags removes HTML-entity tags left in the text after link and
// template reduction, keeping only their text
// content; <nowiki-N> protection tokens are kept as written so that the
// nowiki restore step can find them. It tolerates malformed fragments: golang.org/x/net/html's
// tokenizer never errors on bad markup, it just emits ErrorToken and
// stops, so whatever text was already collected survives.
func StripTags(text string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			tagName, _ := z.TagName()
			switch string(tagName) {
			case "br":
				b.WriteByte('\n')
			case "p":
				if tt == html.EndTagToken {
					b.WriteByte('\n')
				}
			default:
				if strings.HasPrefix(string(tagName), "nowiki-") {
					b.Write(z.Raw())
				}
			}
		}
	}
}
