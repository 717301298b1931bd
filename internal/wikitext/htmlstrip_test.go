package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTagsRemovesTagsKeepsText(t *testing.T) {
	got := StripTags("<span class=\"x\">hello</span> world")
	assert.Equal(t, "hello world", got)
}

func TestStripTagsBrBecomesNewline(t *testing.T) {
	got := StripTags("line one<br>line two")
	assert.Equal(t, "line one\nline two", got)
}

func TestStripTagsParagraphEndBecomesNewline(t *testing.T) {
	got := StripTags("<p>first</p><p>second</p>")
	assert.Equal(t, "first\nsecond\n", got)
}

func TestStripTagsTolerantOfMalformedMarkup(t *testing.T) {
	got := StripTags("fine text <unclosed")
	assert.Contains(t, got, "fine text")
}
