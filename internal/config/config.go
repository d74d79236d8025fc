// Package config loads the desktop shell settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fatturaanalyzer/fattura-desktop/internal/backend"
)

const (
	configDir  = ".fattura-analyzer"
	configFile = "desktop.toml"

	DefaultTitle  = "FatturaAnalyzer v2"
	DefaultWidth  = 1280
	DefaultHeight = 800

	minWidth, maxWidth   = 640, 7680
	minHeight, maxHeight = 480, 4320
)

// ErrExists is returned by WriteDefault when the file is already there.
var ErrExists = errors.New("config file already exists")

// Config is the whole desktop.toml.
type Config struct {
	Backend BackendConfig `toml:"backend"`
	Window  WindowConfig  `toml:"window"`
	Log     LogConfig     `toml:"log"`
}

// BackendConfig locates the local API process.
type BackendConfig struct {
	HealthURL string `toml:"health_url"`
}

// WindowConfig is the main window geometry and title.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// LogConfig holds the log level ("debug", "info", "warn", "error").
// Empty means the build default.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Backend: BackendConfig{HealthURL: backend.DefaultHealthURL},
		Window:  WindowConfig{Title: DefaultTitle, Width: DefaultWidth, Height: DefaultHeight},
	}
}

// DefaultPath returns ~/.fattura-analyzer/desktop.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("warning: could not determine home directory, using temp dir: %v", err)
		return filepath.Join(os.TempDir(), configDir, configFile)
	}
	return filepath.Join(home, configDir, configFile)
}

// Load reads path over the defaults. A missing file is not an error. An
// unparseable file yields the defaults together with the parse error so the
// caller can warn and carry on.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces invalid values with defaults and clamps window size.
func (c *Config) normalize() {
	if !validHealthURL(c.Backend.HealthURL) {
		c.Backend.HealthURL = backend.DefaultHealthURL
	}

	c.Window.Title = strings.TrimSpace(c.Window.Title)
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	c.Window.Width = clamp(c.Window.Width, DefaultWidth, minWidth, maxWidth)
	c.Window.Height = clamp(c.Window.Height, DefaultHeight, minHeight, maxHeight)

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		c.Log.Level = ""
	}
}

func validHealthURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// clamp returns def for zero, otherwise v bounded to [lo, hi].
func clamp(v, def, lo, hi int) int {
	switch {
	case v == 0:
		return def
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// WriteDefault writes the default settings to path, creating its directory.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	cfg.Log.Level = "info"
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
