package logger

import (
	"log/slog"
	"os"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// exitProcess is replaced in tests.
var exitProcess = os.Exit

// WailsLogger routes Wails runtime log output into a slog logger.
type WailsLogger struct {
	log *slog.Logger
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

// NewWailsLogger wraps l; runtime lines are tagged with component=wails.
func NewWailsLogger(l *slog.Logger) *WailsLogger {
	return &WailsLogger{log: l.With("component", "wails")}
}

func (w *WailsLogger) Print(message string)   { w.log.Info(message) }
func (w *WailsLogger) Trace(message string)   { w.log.Debug(message, "trace", true) }
func (w *WailsLogger) Debug(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.log.Info(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.log.Error(message) }

// Fatal logs at error level and exits, mirroring the Wails default logger.
func (w *WailsLogger) Fatal(message string) {
	w.log.Error(message, "fatal", true)
	exitProcess(1)
}

// WailsLevel maps a slog level onto the closest Wails log level.
func WailsLevel(level slog.Level) wailslogger.LogLevel {
	switch {
	case level < slog.LevelInfo:
		return wailslogger.DEBUG
	case level < slog.LevelWarn:
		return wailslogger.INFO
	case level < slog.LevelError:
		return wailslogger.WARNING
	default:
		return wailslogger.ERROR
	}
}
