package desktop

import (
	"io/fs"
	"log/slog"

	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/fatturaanalyzer/fattura-desktop/internal/config"
	"github.com/fatturaanalyzer/fattura-desktop/pkg/logger"
)

// NewOptions assembles the Wails application options around app.
func NewOptions(app *App, assets fs.FS, cfg config.Config, level slog.Level) *options.App {
	return &options.App{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		MinWidth:  640,
		MinHeight: 480,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnBeforeClose:    app.beforeClose,
		OnShutdown:       app.shutdown,
		Bind: []any{
			app,
		},
		Logger:             logger.NewWailsLogger(app.log),
		LogLevel:           logger.WailsLevel(level),
		LogLevelProduction: logger.WailsLevel(level),
		Debug: options.Debug{
			OpenInspectorOnStartup: DevBuild,
		},
	}
}
