// Package section implements the section extractor: an
// optional layer on top of the block parser that selects named
// sections, handles the unnamed lead ("summary") specially, and applies
// a case-insensitive alias table.
package section

import (
	"strings"

	"github.com/yohasebe/wp2txt-sub000/internal/wikitext"
)

// SummaryKey is the reserved request name for the lead section.
const SummaryKey = "summary"

// Options configures one extraction run.
type Options struct {
	Names      []string
	Aliases    map[string]string // heading text → requested name it counts as
	MinLength  int
	ShouldSkip bool
}

// Extract walks art.Elements and returns a map with exactly one entry
// per requested name, present or not; skip reports whether the article
// should be suppressed entirely under ShouldSkip mode, when every
// requested section came back absent.
func Extract(art *wikitext.Article, opts Options) (sections map[string]*string, skip bool) {
	sections = make(map[string]*string, len(opts.Names))
	for _, n := range opts.Names {
		sections[n] = nil
	}
	lookup := buildLookup(opts.Names, opts.Aliases)

	var active string
	activeLevel := 0
	haveActive := false
	var buf strings.Builder

	flush := func() {
		if !haveActive {
			return
		}
		setIfLongEnough(sections, active, buf.String(), opts.MinLength)
		haveActive = false
		buf.Reset()
	}

	var summaryBuf strings.Builder
	seenFirstHeading := false

	for _, el := range art.Elements {
		if el.Kind == wikitext.Heading {
			seenFirstHeading = true
			if haveActive && el.Level <= activeLevel {
				flush()
			}

			name := strings.ToLower(strings.TrimSpace(el.Payload))
			if canonical, ok := lookup[name]; ok && !haveActive {
				active = canonical
				activeLevel = el.Level
				haveActive = true
			}
			continue
		}

		if !seenFirstHeading {
			summaryBuf.WriteString(el.Payload)
		}
		if haveActive {
			buf.WriteString(el.Payload)
		}
	}
	flush()

	if _, want := sections[SummaryKey]; want {
		setIfLongEnough(sections, SummaryKey, summaryBuf.String(), opts.MinLength)
	}

	if opts.ShouldSkip {
		skip = true
		for _, v := range sections {
			if v != nil {
				skip = false
				break
			}
		}
	}
	return sections, skip
}

func setIfLongEnough(sections map[string]*string, key, raw string, minLength int) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}
	if minLength > 0 && len(text) < minLength {
		return
	}
	sections[key] = &text
}

// buildLookup maps every matchable heading text (lowercased) — the
// requested name itself, plus any alias pointing at it — to the
// canonical requested name.
func buildLookup(names []string, aliases map[string]string) map[string]string {
	lookup := make(map[string]string, len(names)+len(aliases))
	for _, n := range names {
		lookup[strings.ToLower(n)] = n
	}
	for alias, canonical := range aliases {
		lookup[strings.ToLower(alias)] = canonical
	}
	return lookup
}
