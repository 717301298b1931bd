package wikitext

import "strings"

// Process-wide immutable lookup tables, compiled/initialised once at
// package load.

// categoryAliases is the curated set of localised namespace aliases for
// "Category:" recognised by the block parser and the link resolver.
var categoryAliases = map[string]bool{
	"category": true, "categoria": true, "catégorie": true,
	"categoría": true, "kategorie": true, "kategoria": true,
	"категория": true,
}

// fileNamespaces is the curated set of localised namespace aliases for
// "File:"/"Image:" recognised by the link resolver's caption-extraction
// rule.
var fileNamespaces = map[string]bool{
	"file": true, "image": true, "archivo": true, "datei": true,
	"fichier": true, "immagine": true, "ficheiro": true,
}

// imageParamKeywords are the known non-caption positional parameters a
// File/Image link may carry.
var imageParamKeywords = map[string]bool{
	"thumb": true, "thumbnail": true, "frame": true, "frameless": true,
	"border": true, "left": true, "right": true, "center": true,
	"none": true, "baseline": true, "sub": true, "super": true,
	"top": true, "text-top": true, "middle": true, "bottom": true,
	"text-bottom": true, "upright": true, "link": true, "alt": true,
	"page": true, "class": true, "lang": true,
}

// redirectKeywords is the curated localised redirect-directive keyword
// list, matched case-insensitively.
var redirectKeywords = []string{
	"#redirect", "#redirección", "#redireccion", "#redirection",
	"#weiterleitung", "#rinvia", "#redirecionamento", "#перенаправление",
}

func hasRedirectKeyword(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	for _, kw := range redirectKeywords {
		if strings.HasPrefix(l, kw) {
			return true
		}
	}
	return false
}

// infoboxLikePrefixes names template-name prefixes that are always
// treated as Infobox/Navbox/Sidebar markers regardless of exact name
//.
var infoboxLikePrefixes = []string{"infobox", "navbox", "sidebar"}

func hasAnyPrefix(s string, prefixes []string) bool {
	s = strings.ToLower(s)
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
