package wikitext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yohasebe/wp2txt-sub000/internal/config"
)

// marker returns the Unicode-private placeholder for kind: "uncommon guillemets to avoid collision with article text".
func marker(kind config.MarkerKind) string {
	return fmt.Sprintf("«« %s »»", strings.ToUpper(string(kind)))
}

// tagMarkerDefs pairs a bare HTML/extension tag name with the
// MarkerKind it represents, for the tag-pair branch of Phase A.
var tagMarkerDefs = []struct {
	tag  string
	kind config.MarkerKind
}{
	{"math", config.MarkerMath},
	{"syntaxhighlight", config.MarkerCodeBlock},
	{"source", config.MarkerCodeBlock},
	{"pre", config.MarkerCodeBlock},
	{"code", config.MarkerCode},
	{"chem", config.MarkerChem},
	{"score", config.MarkerScore},
	{"timeline", config.MarkerTimeline},
	{"graph", config.MarkerGraph},
	{"gallery", config.MarkerGallery},
	{"mapframe", config.MarkerMapframe},
	{"imagemap", config.MarkerImagemap},
}

var selfClosingReferencesRegex = regexp.MustCompile(`(?i)<references\s*/>`)
var pairedReferencesTagRegex = regexp.MustCompile(`(?is)<references[^>]*>.*?</references>`)
var refBeginEndRegex = regexp.MustCompile(`(?is)\{\{\s*refbegin[^}]*\}\}.*?\{\{\s*refend\s*\}\}`)

// heldOpen and heldClose stand in for the braces of a template that a
// {{…}} reducer pass keeps, so the pass moves on to the next template
// instead of finding the same one again; heldBraces puts the braces back.
const (
	heldOpen  = ""
	heldClose = ""
)

var heldBraces = strings.NewReplacer(heldOpen, "{{", heldClose, "}}")

// templateMarkerKind maps a lowercase template name prefix test to the
// MarkerKind it represents, for the template-name branch of Phase A.
func templateMarkerKind(name string) (config.MarkerKind, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case n == "math" || n == "mvar":
		return config.MarkerMath, true
	case n == "chem" || n == "ce":
		return config.MarkerChem, true
	case n == "reflist":
		return config.MarkerReferences, true
	case matchesIPAName(n):
		return config.MarkerIPA, true
	case hasAnyPrefix(n, []string{"infobox"}):
		return config.MarkerInfobox, true
	case hasAnyPrefix(n, []string{"navbox"}):
		return config.MarkerNavbox, true
	case hasAnyPrefix(n, []string{"sidebar"}):
		return config.MarkerSidebar, true
	}
	return "", false
}

var ipaNameRegex = regexp.MustCompile(`^ipa(c)?(-[a-z]+)?$`)

func matchesIPAName(n string) bool {
	return ipaNameRegex.MatchString(n)
}

// ApplyMarkers runs Phase A of the wiki transformer: every occurrence of
// a MarkerKind's source construct is replaced with its placeholder if
// the kind is enabled in cfg, or deleted if disabled.
func ApplyMarkers(text string, cfg *config.Transform) string {
	// Tag-paired constructs (<math>…</math>, <code>…</code>, …). See
	// balance.go / reduce.go doc comments for why L="<tag", R="tag>" is
	// sufficient to consume an entire tag pair even though the scanned
	// "content" passed to f is not the clean inner text — Phase A never
	// looks at that content, it only decides to mark or delete.
	for _, def := range tagMarkerDefs {
		text = Reduce(text, "<"+def.tag, def.tag+">", func(string) string {
			return replacementFor(cfg, def.kind)
		})
	}

	// References: self-closing tag, paired tag, and {{refbegin}}…{{refend}}.
	text = selfClosingReferencesRegex.ReplaceAllStringFunc(text, func(string) string {
		return replacementFor(cfg, config.MarkerReferences)
	})
	text = pairedReferencesTagRegex.ReplaceAllStringFunc(text, func(string) string {
		return replacementFor(cfg, config.MarkerReferences)
	})
	text = refBeginEndRegex.ReplaceAllStringFunc(text, func(string) string {
		return replacementFor(cfg, config.MarkerReferences)
	})

	// Wiki tables: any balanced {|…|}.
	text = Reduce(text, "{|", "|}", func(content string) string {
		return replacementFor(cfg, config.MarkerTable)
	})

	// Template-named constructs: math/mvar, chem/ce, reflist, IPA*,
	// Infobox*/Navbox*/Sidebar*. Every other template is left
	// reconstructed unchanged for the later template-reduction phase.
	text = Reduce(text, "{{", "}}", func(content string) string {
		name := templateName(content)
		if kind, ok := templateMarkerKind(name); ok {
			return replacementFor(cfg, kind)
		}
		return heldOpen + content + heldClose
	})

	return heldBraces.Replace(text)
}

func replacementFor(cfg *config.Transform, kind config.MarkerKind) string {
	if cfg.MarkerEnabled(kind) {
		return marker(kind)
	}
	return ""
}

// templateName extracts the template's name — the first top-level
// segment before '|', lowercased and trimmed — from a {{…}} body.
func templateName(body string) string {
	seg := topLevelSplit(body, '|')
	if len(seg) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(seg[0]))
}
