package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToInfoAndText(t *testing.T) {
	l := New("", "")
	assert.True(t, l.Enabled(nil, slog.LevelInfo))
	assert.False(t, l.Enabled(nil, slog.LevelDebug))
}

func TestNewParsesDebugLevel(t *testing.T) {
	l := New("debug", "text")
	assert.True(t, l.Enabled(nil, slog.LevelDebug))
}

func TestNewParsesWarnAndErrorLevels(t *testing.T) {
	l := New("warn", "text")
	assert.False(t, l.Enabled(nil, slog.LevelInfo))
	assert.True(t, l.Enabled(nil, slog.LevelWarn))

	l = New("ERROR", "text")
	assert.False(t, l.Enabled(nil, slog.LevelWarn))
	assert.True(t, l.Enabled(nil, slog.LevelError))
}

func TestNopDiscardsEverything(t *testing.T) {
	l := Nop()
	assert.False(t, l.Enabled(nil, slog.LevelError))
}
