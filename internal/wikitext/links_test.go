package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLinksFileCaption(t *testing.T) {
	got := ResolveLinks("[[File:Foo.jpg|thumb|200px|right|The caption]]")
	assert.Equal(t, "The caption", got)
}

func TestResolveLinksPipeTrickDisambig(t *testing.T) {
	got := ResolveLinks("[[Tokyo (city)|]]")
	assert.Equal(t, "Tokyo", got)
}

func TestResolveLinksPipeTrickComma(t *testing.T) {
	got := ResolveLinks("[[X, Y|]]")
	assert.Equal(t, "X", got)
}

func TestResolveLinksCategoryYieldsEmpty(t *testing.T) {
	got := ResolveLinks("[[Category:People]]")
	assert.Equal(t, "", got)
}

func TestResolveLinksSingleSegment(t *testing.T) {
	got := ResolveLinks("[[Article]]")
	assert.Equal(t, "Article", got)
}

func TestResolveLinksDropsFirstSegmentWhenDisplayTextGiven(t *testing.T) {
	got := ResolveLinks("[[Article|Display Text]]")
	assert.Equal(t, "Display Text", got)
}

func TestResolveSingleBracketExternalLink(t *testing.T) {
	got := ResolveLinks("[http://example.com Example Site]")
	assert.Equal(t, "Example Site", got)
}
