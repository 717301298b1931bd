package wikitext

import (
	"regexp"

	"github.com/yohasebe/wp2txt-sub000/internal/wikitext/nested"
)

// removeTemplateNames is the curated set of administrative template
// names removed outright in Phase B when not already markered.
var removeTemplateNames = []string{
	"infobox", "sfn", "reflist", "columns-list", "formatnum",
	"see also", "efn", "notelist", "main", "portal",
}

var fileImageLineRegex = regexp.MustCompile(`(?im)^\s*\[\[(?:` +
	`File|Image|Archivo|Datei|Fichier|Immagine|Ficheiro` +
	`)\s*:[^\n]*\]\]\s*$`)

var doubleAngleRegex = regexp.MustCompile(`<<\s*([^<>]+?)\s*>>`)

// complexPatternCleanup is Phase B, run before link resolution: it
// removes File/Image link blocks that stand alone on one line, strips a
// curated set of administrative templates that Phase A's marker pass
// left alone, and rewrites the guillemet escape convention `<<X>>` to
// `《X》`.
func complexPatternCleanup(text string) string {
	text = fileImageLineRegex.ReplaceAllString(text, "")
	text = nested.Reduce(text, "{{", "}}", func(content string) string {
		name := templateName(content)
		for _, rm := range removeTemplateNames {
			if name == rm {
				return ""
			}
		}
		return heldOpen + content + heldClose
	})
	text = heldBraces.Replace(text)
	text = doubleAngleRegex.ReplaceAllString(text, "《$1》")
	return text
}
