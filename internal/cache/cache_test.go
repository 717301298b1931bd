package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexCacheKeyIncludesAllComponents(t *testing.T) {
	key := IndexCacheKey("/data/dump.xml.bz2", 12345, 1700000000, 2)
	assert.Equal(t, "/data/dump.xml.bz2\x1f12345\x1f1700000000\x1f2", key)
}

func TestIndexCacheKeyDiffersOnAnyComponent(t *testing.T) {
	base := IndexCacheKey("/data/dump.xml.bz2", 12345, 1700000000, 2)
	other := IndexCacheKey("/data/dump.xml.bz2", 12346, 1700000000, 2)
	assert.NotEqual(t, base, other)
}
