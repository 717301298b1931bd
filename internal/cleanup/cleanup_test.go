package cleanup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCollapsesExcessNewlines(t *testing.T) {
	got := Clean("a\n\n\n\nb")
	assert.Equal(t, "a\n\nb\n\n", got)
}

func TestCleanCollapsesMidLineSpaces(t *testing.T) {
	got := Clean("word1    word2")
	assert.True(t, strings.Contains(got, "word1 word2"))
}

func TestCleanRemovesEmptyParens(t *testing.T) {
	got := Clean("Name ()  was born")
	assert.NotContains(t, got, "()")
}

func TestCleanIdempotent(t *testing.T) {
	input := "Text with   spaces\n\n\n\nand [[File:x|thumb]]\n* \n"
	once := Clean(input)
	twice := Clean(once)
	assert.Equal(t, once, twice)
}

func TestCleanRemovesLoneStarLines(t *testing.T) {
	got := Clean("Line one\n*\nLine two\n")
	assert.NotContains(t, got, "\n*\n")
}

func TestCleanStripsMagicWordLines(t *testing.T) {
	got := Clean("Intro\n__NOTOC__\nDEFAULTSORT:Smith, John\nMore text\n")
	assert.NotContains(t, got, "__NOTOC__")
	assert.NotContains(t, got, "DEFAULTSORT")
}
