package template

import (
	"strings"
	"time"
)

// acceptedTimeLayouts are the date formats `{{#time:}}` parses its
// second argument with: ISO `YYYY-MM-DD`, `D Month YYYY`, and
// `Month D, YYYY`.
var acceptedTimeLayouts = []string{
	"2006-01-02",
	"2 January 2006",
	"January 2, 2006",
}

// formatTimeSpec evaluates `{{#time:format|date}}`: format is a strftime-
// like mini-language (Y, m, d, F, n, j supported); date defaults to ref
// when absent or unparseable.
func formatTimeSpec(spec string, ref time.Time) string {
	parts := strings.SplitN(spec, "|", 2)
	format := parts[0]
	when := ref
	if len(parts) == 2 {
		if t, ok := parseAnyDate(strings.TrimSpace(parts[1])); ok {
			when = t
		}
	}
	return renderTimeFormat(format, when)
}

func parseAnyDate(s string) (time.Time, bool) {
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func renderTimeFormat(format string, t time.Time) string {
	var b strings.Builder
	for _, r := range format {
		switch r {
		case 'Y':
			b.WriteString(t.Format("2006"))
		case 'm':
			b.WriteString(t.Format("01"))
		case 'd':
			b.WriteString(t.Format("02"))
		case 'j':
			b.WriteString(t.Format("2"))
		case 'n':
			b.WriteString(t.Format("1"))
		case 'F':
			b.WriteString(t.Format("January"))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
