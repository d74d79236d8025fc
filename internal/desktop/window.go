package desktop

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/fatturaanalyzer/fattura-desktop/internal/lifecycle"
)

// wailsWindow adapts the Wails runtime to lifecycle.Window.
type wailsWindow struct {
	ctx context.Context
}

func wailsWindowFromContext(ctx context.Context) (lifecycle.Window, error) {
	if ctx == nil {
		return nil, lifecycle.ErrNoWindow
	}
	return &wailsWindow{ctx: ctx}, nil
}

func (w *wailsWindow) SetTitle(title string) error {
	wailsRuntime.WindowSetTitle(w.ctx, title)
	return nil
}

// OpenDevTools is a no-op: Wails opens the inspector on startup when
// options.Debug.OpenInspectorOnStartup is set, which NewOptions does for
// dev builds.
func (w *wailsWindow) OpenDevTools() {}

func (w *wailsWindow) Close() error {
	wailsRuntime.Quit(w.ctx)
	return nil
}
