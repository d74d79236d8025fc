package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "desktop.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "http://127.0.0.1:8000/health", cfg.Backend.HealthURL)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[backend]
health_url = "http://127.0.0.1:9000/health"

[window]
title = "Fatture"
width = 1600
height = 900

[log]
level = "DEBUG"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/health", cfg.Backend.HealthURL)
	assert.Equal(t, WindowConfig{Title: "Fatture", Width: 1600, Height: 900}, cfg.Window)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[window]\nwidth = 1024\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, DefaultHeight, cfg.Window.Height)
	assert.Equal(t, DefaultTitle, cfg.Window.Title)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
[backend]
health_url = "ftp://backend"

[window]
title = "   "
width = 100
height = 99999

[log]
level = "chatty"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000/health", cfg.Backend.HealthURL)
	assert.Equal(t, DefaultTitle, cfg.Window.Title)
	assert.Equal(t, minWidth, cfg.Window.Width)
	assert.Equal(t, maxHeight, cfg.Window.Height)
	assert.Empty(t, cfg.Log.Level)
}

func TestLoadCorruptFileReturnsDefaultsAndError(t *testing.T) {
	path := writeConfig(t, "[window\nwidth = = 3")
	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "desktop.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Window, cfg.Window)
	assert.Equal(t, Default().Backend, cfg.Backend)
	assert.Equal(t, "info", cfg.Log.Level)

	err = WriteDefault(path)
	assert.True(t, errors.Is(err, ErrExists))
}
