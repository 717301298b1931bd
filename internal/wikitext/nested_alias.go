package wikitext

import "github.com/yohasebe/wp2txt-sub000/internal/wikitext/nested"

// Reduce re-exports the shared nested-structure processor
// for callers of this package; internal/wikitext/template uses the
// nested package directly to avoid an import cycle.
func Reduce(s, L, R string, f func(content string) string) string {
	return nested.Reduce(s, L, R, f)
}

func topLevelSplit(s string, sep byte) []string {
	return nested.TopLevelSplit(s, sep)
}
