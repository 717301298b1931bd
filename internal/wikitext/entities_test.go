package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntitiesHandlesCommonRefs(t *testing.T) {
	assert.Equal(t, `<math>`, DecodeEntities("&lt;math&gt;"))
	assert.Equal(t, "café", DecodeEntities("caf&eacute;"))
	assert.Equal(t, "A & B", DecodeEntities("A &amp; B"))
}
