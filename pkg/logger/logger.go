// Package logger builds the JSON slog logger shared by the desktop shell and
// the Wails runtime.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel converts a textual level ("debug", "info", "warn", "error") into
// a slog level. Empty or unknown values yield fallback.
func ParseLevel(s string, fallback slog.Level) slog.Level {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(s)); err != nil {
		return fallback
	}
	return parsed
}

// New returns a JSON logger writing to w. LOG_LEVEL in the environment
// overrides level when set to a valid value.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	level = ParseLevel(os.Getenv("LOG_LEVEL"), level)
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
