package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug", slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN ", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, ParseLevel("", slog.LevelInfo))
	assert.Equal(t, slog.LevelError, ParseLevel("loud", slog.LevelError), "unknown level should fall back")
}

func TestNewWritesJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	lg := New(&buf, slog.LevelInfo)
	lg.Debug("hidden")
	lg.Info("shown", "k", "v")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "v", rec["k"])
}

func TestNewHonoursLogLevelEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	var buf bytes.Buffer
	New(&buf, slog.LevelError).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestWailsLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	wl := NewWailsLogger(base)

	wl.Warning("careful")
	wl.Error("broken")

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"component":"wails"`)
}

func TestWailsLoggerFatalExits(t *testing.T) {
	orig := exitProcess
	defer func() { exitProcess = orig }()

	code := -1
	exitProcess = func(c int) { code = c }

	NewWailsLogger(Discard()).Fatal("boom")
	assert.Equal(t, 1, code)
}

func TestWailsLevel(t *testing.T) {
	assert.Equal(t, wailslogger.DEBUG, WailsLevel(slog.LevelDebug))
	assert.Equal(t, wailslogger.INFO, WailsLevel(slog.LevelInfo))
	assert.Equal(t, wailslogger.WARNING, WailsLevel(slog.LevelWarn))
	assert.Equal(t, wailslogger.ERROR, WailsLevel(slog.LevelError))
}
