package wikitext

import (
	"time"

	"github.com/yohasebe/wp2txt-sub000/internal/cleanup"
	"github.com/yohasebe/wp2txt-sub000/internal/config"
	"github.com/yohasebe/wp2txt-sub000/internal/wikitext/template"
)

// FormatOptions carries the page identity the template expander needs
// for magic words, in addition to the semantic transform
// configuration.
type FormatOptions struct {
	Title         string
	Namespace     string
	ReferenceDate time.Time
	Transform     *config.Transform
}

// Format runs the wiki transformer's fixed phase order end to end:
// entity decoding, marker substitution, complex-pattern cleanup,
// nowiki protection, link resolution, template reduction, HTML-tag
// stripping, emphasis/directive removal, nowiki restoration, and final
// cleanup.
func Format(text string, opts FormatOptions) string {
	cfg := opts.Transform
	if cfg == nil {
		cfg = config.Default()
	}

	text = DecodeEntities(text)
	text = ApplyMarkers(text, cfg)
	text = complexPatternCleanup(text)

	nw := newNowikiTable()
	text = nw.protect(text)

	text = ResolveLinks(text)

	ctx := template.Context{
		Title:         opts.Title,
		Namespace:     opts.Namespace,
		ReferenceDate: refDate(opts.ReferenceDate),
	}
	text = template.Reduce(text, ctx, cfg)

	text = StripTags(text)
	if cfg.StripEmphasis {
		text = stripEmphasis(text)
	}

	text = nw.restore(text)

	return cleanup.Clean(text)
}

func refDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
