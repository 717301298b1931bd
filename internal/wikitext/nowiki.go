package wikitext

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var nowikiRegex = regexp.MustCompile(`(?is)<nowiki>(.*?)</nowiki>`)

// nowikiTable is a per-call scope object: rather than mutable state hung
// off a shared transformer, each Format call builds its own table,
// passes it through the transformation, and restores original content
// at the end. The table's id is a uuid purely for log correlation
// across a worker pool, never used for control flow.
type nowikiTable struct {
	id      string
	entries map[string]string
	next    int
}

func newNowikiTable() *nowikiTable {
	return &nowikiTable{id: uuid.NewString(), entries: make(map[string]string)}
}

// protect wraps each <nowiki>…</nowiki> region in text with a unique
// token keyed by this call's table, so link/template reduction cannot
// see inside it.
func (t *nowikiTable) protect(text string) string {
	return nowikiRegex.ReplaceAllStringFunc(text, func(match string) string {
		inner := nowikiRegex.FindStringSubmatch(match)[1]
		key := fmt.Sprintf("<nowiki-%d>", t.next)
		t.next++
		t.entries[key] = inner
		return key
	})
}

// restore substitutes every protection token back to its original
// content, after link/template reduction has finished (Phase F).
func (t *nowikiTable) restore(text string) string {
	for key, original := range t.entries {
		text = regexpQuoteReplace(text, key, original)
	}
	return text
}

func regexpQuoteReplace(text, literal, replacement string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(literal))
	return re.ReplaceAllLiteralString(text, replacement)
}
