package categorycache

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cats.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c := open(t)
	require.NoError(t, c.Put("Category:Animals", []byte(`["Cat","Dog"]`)))

	got, ok, err := c.Get("Category:Animals")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["Cat","Dog"]`, string(got))
}

func TestGetMissingKeyReturnsNotOK(t *testing.T) {
	c := open(t)
	_, ok, err := c.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetExpiredEntryReturnsNotOK(t *testing.T) {
	c := open(t)
	require.NoError(t, c.PutWithTTL("stale", []byte("v"), -time.Hour))

	_, ok, err := c.Get("stale")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutUpsertsExistingKey(t *testing.T) {
	c := open(t)
	require.NoError(t, c.Put("k", []byte("first")))
	require.NoError(t, c.Put("k", []byte("second")))

	got, ok, err := c.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", string(got))
}
