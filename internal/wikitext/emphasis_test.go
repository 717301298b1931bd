package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripEmphasisBoldItalic(t *testing.T) {
	assert.Equal(t, "hello", stripEmphasis("'''''hello'''''"))
}

func TestStripEmphasisBold(t *testing.T) {
	assert.Equal(t, "hello", stripEmphasis("'''hello'''"))
}

func TestStripEmphasisItalic(t *testing.T) {
	assert.Equal(t, "hello", stripEmphasis("''hello''"))
}

func TestStripEmphasisMixedInSentence(t *testing.T) {
	got := stripEmphasis("The '''quick''' brown ''fox''.")
	assert.Equal(t, "The quick brown fox.", got)
}
