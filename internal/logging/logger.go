// Package logging sets up the process-wide structured logger: a single
// *slog.Logger built once at startup, JSON in production, text in
// development, rather than ad-hoc fmt.Printf calls scattered through
// the pipeline.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New builds a *slog.Logger from a level string (DEBUG, INFO, WARN,
// ERROR) and a format string ("json" or "text"). Unknown values fall
// back to INFO/text.
func New(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Nop returns a logger that discards everything, for tests and for
// callers that have not wired a logger in yet.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(nopWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
