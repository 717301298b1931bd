package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yohasebe/wp2txt-sub000/internal/config"
)

func TestFormatEndToEndPlainParagraph(t *testing.T) {
	got := Format("Hello '''world''', see [[Go (programming language)|Go]].", FormatOptions{
		Title:     "Example",
		Transform: config.Default(),
	})
	assert.Contains(t, got, "Hello world")
	assert.Contains(t, got, "Go")
	assert.NotContains(t, got, "[[")
	assert.NotContains(t, got, "'''")
}

func TestFormatNowikiContentSurvivesTemplateAndLinkPhases(t *testing.T) {
	got := Format("<nowiki>[[Not A Link]]</nowiki>", FormatOptions{Transform: config.Default()})
	assert.Contains(t, got, "[[Not A Link]]")
}

func TestFormatExpandsPagenameMagicWord(t *testing.T) {
	got := Format("This is {{PAGENAME}}.", FormatOptions{Title: "My Page", Transform: config.Default()})
	assert.Contains(t, got, "My Page")
}

func TestFormatDefaultsTransformWhenNil(t *testing.T) {
	got := Format("Plain text.", FormatOptions{})
	assert.Contains(t, got, "Plain text.")
}
