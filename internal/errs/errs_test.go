package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesKindThroughWrapping(t *testing.T) {
	base := IO("dump.xml.bz2", errors.New("disk full"))
	wrapped := fmt.Errorf("extract: %w", base)

	assert.True(t, Is(wrapped, KindIO))
	assert.False(t, Is(wrapped, KindXML))
}

func TestIsFalseForPlainError(t *testing.T) {
	assert.False(t, Is(errors.New("plain"), KindParse))
}

func TestErrorMessageIncludesPath(t *testing.T) {
	e := Parse("Some Title", errors.New("unexpected token"))
	assert.Contains(t, e.Error(), "Some Title")
	assert.Contains(t, e.Error(), "unexpected token")
}

func TestErrorMessageOmitsPathWhenEmpty(t *testing.T) {
	e := Network("", errors.New("timeout"))
	assert.NotContains(t, e.Error(), "()")
}

func TestUnwrapExposesUnderlyingError(t *testing.T) {
	underlying := errors.New("root cause")
	e := Bz2Validation("x", underlying)
	assert.ErrorIs(t, e, underlying)
}
