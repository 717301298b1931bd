// Package cleanup implements the final fixed-order regex pass applied
// after the wiki transformer: a sequence of targeted
// substitutions that mop up artefacts link/template reduction leaves
// behind rather than one monolithic expression.
package cleanup

import (
	"regexp"
	"strings"
)

var (
	emptyRefPairRegex     = regexp.MustCompile(`(?s)\[ref\]\s*\[/ref\]`)
	badLinePrefixRegex    = regexp.MustCompile(`(?m)^\s*(?:File:|\||\{\{|\{\||\}\}|\|\}).*$\n?`)
	threeNewlinesRegex    = regexp.MustCompile(`(?:[ \t]*\n){3,}`)
	midLineSpacesRegex    = regexp.MustCompile(`([^\n \t])[ \t]{2,}`)
	emptyParensRegex      = regexp.MustCompile(`\(\s*\)|（\s*）`)
	orphanPipeRunRegex    = regexp.MustCompile(`\|{2,}`)
	trailingPipeRegex     = regexp.MustCompile(`(?m)\|[ \t]*$`)
	pipeOnlyLineRegex     = regexp.MustCompile(`(?m)^\|.*$\n?`)
	infoboxRemnantRegex   = regexp.MustCompile(`(?m)^(?:[\w\s]+=[^\n|]*\|)+[\w\s]+=[^\n|]*$\n?`)
	brokenImageLineRegex  = regexp.MustCompile(`(?mi)^\s*(?:File|Image):[^\n\[\]]*\|[^\n\[\]]*$\n?`)
	incompleteOpenerRegex = regexp.MustCompile(`(?m)^\s*\[\[[^\]\n]*$\n?`)
	orphanCaptionRegex    = regexp.MustCompile(`(?m)^([^\n\[]*)\]\]\s*$`)
	standaloneCloseRegex  = regexp.MustCompile(`(?m)^\s*\]\]\s*$\n?`)
	orphanPipeCloseRegex  = regexp.MustCompile(`(\w+)\|(\w+)\]\]`)
	magicWordLineRegex    = regexp.MustCompile(`(?mi)^\s*(?:DEFAULTSORT:[^\n]*|DISPLAYTITLE:[^\n]*|__[A-Z]+__)\s*$\n?`)
	interwikiPrefixRegex  = regexp.MustCompile(`(?m):[a-z]{2,3}(?:-[a-z]+)?:(\S)`)
	normdatenRegex        = regexp.MustCompile(`(?mi)^.*\b(?:Normdaten|Authority control|Persondata)\b.*$\n?`)
	categoryLineRegex     = regexp.MustCompile(`(?mi)^\s*\[\[(?:Category|Categoría|Catégorie|Kategorie)\s*:[^\]\n]*\]\]\s*$\n?`)
	sisterProjectRegex    = regexp.MustCompile(`(?mi)^\s*\[\[(?:Commons|Wikiquote|Wikisource|Wiktionary|wikt)\s*:[^\]\n]*\]\]\s*$\n?`)
	loneStarLineRegex     = regexp.MustCompile(`(?m)^\s*\*\s*$\n?`)
)

var templateRemnantLineRegex = regexp.MustCompile(`(?m)^\s*(?:sfn|efn|reflist|see also|portal|notelist|columns-list)\s*$\n?`)

// Clean applies a fixed-order sequence of cosmetic substitutions meant
// to run once link and template reduction have already produced the
// final prose.
func Clean(text string) string {
	text = emptyRefPairRegex.ReplaceAllString(text, "")
	text = badLinePrefixRegex.ReplaceAllString(text, "")
	text = threeNewlinesRegex.ReplaceAllString(text, "\n\n")
	text = midLineSpacesRegex.ReplaceAllString(text, "$1 ")
	text = emptyParensRegex.ReplaceAllString(text, "")
	text = orphanPipeRunRegex.ReplaceAllString(text, "")
	text = trailingPipeRegex.ReplaceAllString(text, "")
	text = pipeOnlyLineRegex.ReplaceAllString(text, "")
	text = infoboxRemnantRegex.ReplaceAllString(text, "")
	text = templateRemnantLineRegex.ReplaceAllString(text, "")
	text = brokenImageLineRegex.ReplaceAllString(text, "")
	text = incompleteOpenerRegex.ReplaceAllString(text, "")
	text = orphanCaptionRegex.ReplaceAllString(text, "$1")
	text = standaloneCloseRegex.ReplaceAllString(text, "")
	text = orphanPipeCloseRegex.ReplaceAllString(text, "$1$2")
	text = magicWordLineRegex.ReplaceAllString(text, "")
	text = interwikiPrefixRegex.ReplaceAllString(text, "$1")
	text = normdatenRegex.ReplaceAllString(text, "")
	text = categoryLineRegex.ReplaceAllString(text, "")
	text = sisterProjectRegex.ReplaceAllString(text, "")
	text = loneStarLineRegex.ReplaceAllString(text, "")
	text = threeNewlinesRegex.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text) + "\n\n"
	return text
}
