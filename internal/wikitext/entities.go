package wikitext

import "html"

// DecodeEntities decodes HTML/XML entity references in text. It is the
// first phase of Format and runs before
// any marker or link logic so that e.g. "&lt;math&gt;" inside a citation
// does not get mistaken for an actual <math> tag.
func DecodeEntities(text string) string {
	return html.UnescapeString(text)
}
