// Package template implements the template reducer: it
// consumes `{{…}}` bodies left after link resolution and reduces each
// to plain text via a name-dispatch table, a safe parser-function
// expression language, magic words, and a small template expander.
//
// It lives apart from internal/wikitext so that package can call into
// it without the reverse import this package would otherwise need for
// the shared nested-structure processor.
package template

import (
	"strings"
	"time"

	"github.com/yohasebe/wp2txt-sub000/internal/config"
	"github.com/yohasebe/wp2txt-sub000/internal/wikitext/nested"
)

const maxPasses = 10

// Context carries the page identity and reference time the expander
// needs for magic words and date templates.
type Context struct {
	Title         string
	Namespace     string
	ReferenceDate time.Time
}

// Params is a parsed template body: Positional in order of appearance,
// Named by key, and raw preserving the original segment sequence after
// the name (the default heuristic uses it to find the first named value
// in order of appearance).
type Params struct {
	Positional []string
	Named      map[string]string
	raw        []string
}

// Pos returns the 1-indexed positional argument, or "" if absent.
func (p Params) Pos(n int) string {
	if n < 1 || n > len(p.Positional) {
		return ""
	}
	return p.Positional[n-1]
}

// Named lookup with a default.
func (p Params) Get(key, def string) string {
	if v, ok := p.Named[key]; ok {
		return v
	}
	return def
}

// isIdentLike reports whether s matches `\A[\w\s]+\z` and contains no
// markup characters, the test used to decide whether a `key=value`
// segment is a named parameter.
func isIdentLike(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ' ':
		default:
			return false
		}
	}
	return true
}

// parseBody splits a template body on top-level '|' and classifies each
// segment after the first (the name) as positional or named.
func parseBody(body string) (name string, params Params) {
	segs := nested.TopLevelSplit(body, '|')
	name = strings.ToLower(strings.TrimSpace(segs[0]))
	params.Named = make(map[string]string)
	for _, seg := range segs[1:] {
		params.raw = append(params.raw, seg)
		if i := strings.IndexByte(seg, '='); i >= 0 {
			key := strings.TrimSpace(seg[:i])
			if isIdentLike(key) {
				params.Named[strings.ToLower(key)] = strings.TrimSpace(seg[i+1:])
				continue
			}
		}
		params.Positional = append(params.Positional, strings.TrimSpace(seg))
	}
	return name, params
}

// Reduce runs the template reducer over text: innermost {{…}} first,
// repeating until convergence or maxPasses.
func Reduce(text string, ctx Context, cfg *config.Transform) string {
	for i := 0; i < maxPasses; i++ {
		next := nested.Reduce(text, "{{", "}}", func(body string) string {
			return expand(body, ctx, cfg)
		})
		if next == text {
			return next
		}
		text = next
	}
	return text
}

// expand dispatches a single template body to its replacement text,
// trying parser functions and magic words before the name-dispatch
// table.
func expand(body string, ctx Context, cfg *config.Transform) string {
	if strings.HasPrefix(strings.TrimSpace(body), "#") {
		return evalParserFunction(body, ctx, cfg)
	}

	name, params := parseBody(body)
	if v, ok := magicWord(name, ctx); ok {
		return v
	}
	return dispatch(name, params, cfg)
}
