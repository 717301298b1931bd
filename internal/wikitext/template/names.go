package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yohasebe/wp2txt-sub000/internal/config"
)

var (
	ipaNameRe  = regexp.MustCompile(`^ipac?(-[a-z]+)?$`)
	langNameRe = regexp.MustCompile(`^lang(-[a-z]{2,3})?$`)
	flagLikeRe = regexp.MustCompile(`^[A-Z]{2,3}$`)
)

var citationNames = map[string]bool{
	"cite book": true, "cite journal": true, "cite news": true,
	"cite web": true, "citation": true, "cite magazine": true,
}

var removeNames = map[string]bool{
	"sfn": true, "efn": true, "refn": true, "reflist": true,
	"notelist": true, "main": true, "see also": true, "portal": true,
}

var flagTemplateNames = map[string]bool{
	"flag": true, "flagicon": true, "flagdeco": true,
}

var rubyTextNames = map[string]bool{
	"ruby": true,
}

var interwikiLinkNames = map[string]bool{
	"ill": true, "仮リンク": true,
}

var formattingNames = map[string]bool{
	"small": true, "nowrap": true, "nbsp": true,
}

var convertNames = map[string]bool{
	"convert": true, "cvt": true,
}

// dispatch implements the first-match-wins template name-dispatch
// table.
func dispatch(name string, p Params, cfg *config.Transform) string {
	switch {
	case ipaNameRe.MatchString(name):
		if cfg != nil && cfg.MarkerEnabled(config.MarkerIPA) {
			return fmt.Sprintf("«« %s »»", strings.ToUpper(string(config.MarkerIPA)))
		}
		return p.Pos(1)

	case langNameRe.MatchString(name) || name == "fontsize" || name == "langwithname":
		return langVisibleText(name, p)

	case name == "math" || name == "mvar" || name == "chem" || name == "ce":
		kind := config.MarkerMath
		if name == "chem" || name == "ce" {
			kind = config.MarkerChem
		}
		if cfg != nil && cfg.MarkerEnabled(kind) {
			return fmt.Sprintf("«« %s »»", strings.ToUpper(string(kind)))
		}
		return p.Pos(1)

	case citationNames[name]:
		if cfg != nil && cfg.ExtractCitations {
			return formatCitation(p)
		}
		return ""

	case removeNames[name]:
		return ""

	case flagTemplateNames[name] || flagLikeRe.MatchString(name):
		return ""

	case rubyTextNames[name]:
		return fmt.Sprintf("%s（%s）", p.Pos(1), p.Pos(2))

	case interwikiLinkNames[name]:
		return p.Pos(1)

	case name == "nihongo":
		return nihongo(p)

	case name == "transl":
		return p.Pos(len(p.Positional))

	case convertNames[name]:
		return convert(p)

	case formattingNames[name]:
		if name == "nbsp" {
			return " "
		}
		return p.Pos(1)

	case isDateTemplateName(name):
		return expandDateTemplate(name, p)

	case name == "circa":
		return "c. " + p.Pos(1)

	default:
		return defaultHeuristic(p)
	}
}

// langVisibleText extracts the visible-text positional for lang/fontsize/
// langwithname variants (2nd positional normally, 3rd for langwithname).
func langVisibleText(name string, p Params) string {
	if name == "langwithname" {
		return p.Pos(3)
	}
	if v := p.Pos(2); v != "" {
		return v
	}
	return p.Pos(1)
}

func formatCitation(p Params) string {
	author := p.Get("author", p.Get("last", ""))
	title := p.Get("title", "")
	year := p.Get("year", p.Get("date", ""))
	return fmt.Sprintf("%s. \"%s.\" %s.", author, title, year)
}

func nihongo(p Params) string {
	text := p.Pos(1)
	kanji := p.Pos(2)
	romaji := p.Pos(3)
	var extra []string
	if kanji != "" {
		extra = append(extra, kanji)
	}
	if romaji != "" {
		extra = append(extra, romaji)
	}
	if len(extra) == 0 {
		return text
	}
	return fmt.Sprintf("%s (%s)", text, strings.Join(extra, ", "))
}

// defaultHeuristic implements the fallback rule: first non-"="
// positional after the name; else the first named value; else "".
func defaultHeuristic(p Params) string {
	if len(p.Positional) > 0 {
		return p.Positional[0]
	}
	for _, seg := range p.raw {
		if i := strings.IndexByte(seg, '='); i >= 0 {
			return strings.TrimSpace(seg[i+1:])
		}
	}
	return ""
}
