// Package desktop provides the native desktop shell for FatturaAnalyzer.
package desktop

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatturaanalyzer/fattura-desktop/internal/backend"
	"github.com/fatturaanalyzer/fattura-desktop/internal/command"
	"github.com/fatturaanalyzer/fattura-desktop/internal/config"
	"github.com/fatturaanalyzer/fattura-desktop/internal/lifecycle"
	"github.com/fatturaanalyzer/fattura-desktop/internal/shell"
	"github.com/fatturaanalyzer/fattura-desktop/internal/sysinfo"
)

// Version is set at build time via ldflags
var Version = "2.0.0-dev"

// AppName is reported by get_app_info.
const AppName = "FatturaAnalyzer v2"

// Package-level hooks for testing. In production, these use the real implementations.
var (
	acquireWindow = wailsWindowFromContext
	exitProcess   = os.Exit
)

// App is bound to the frontend; every exported method is a UI command.
type App struct {
	ctx        context.Context
	log        *slog.Logger
	commands   *command.Dispatcher
	controller *lifecycle.Controller
}

// NewApp creates the application struct from loaded settings.
func NewApp(cfg config.Config, l *slog.Logger) *App {
	if l == nil {
		l = slog.Default()
	}
	return &App{
		log: l,
		commands: command.NewDispatcher(command.Options{
			AppName:  AppName,
			Version:  Version,
			Debug:    DevBuild,
			Prober:   backend.NewProber(cfg.Backend.HealthURL),
			Opener:   shell.NewOpener(),
			Notifier: shell.NewNotifier(l),
			Host:     sysinfo.HostReader{},
			Logger:   l,
		}),
		controller: lifecycle.NewController(cfg.Window.Title, DevBuild, l),
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	w, err := acquireWindow(ctx)
	if err == nil {
		err = a.controller.Boot(w)
	}
	if err != nil {
		a.fatal("startup failed", err)
	}
}

// beforeClose intercepts the window close request.
func (a *App) beforeClose(ctx context.Context) bool {
	prevent, err := a.controller.HandleCloseRequest()
	if err != nil {
		a.fatal("shutdown failed", err)
	}
	return prevent
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	a.log.Info("shutdown", "state", a.state())
}

func (a *App) fatal(msg string, err error) {
	a.log.Error(msg, "err", err)
	exitProcess(1)
}

// context returns the runtime context, or Background before startup.
func (a *App) context() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// state returns the lifecycle state name.
func (a *App) state() string {
	return a.controller.State().String()
}

// run sends one typed call through the dispatcher, so every bound method
// gets the same logging and panic recovery as Invoke.
func (a *App) run(c command.Command, args ...string) command.Result {
	return a.commands.Dispatch(a.context(), command.Call(c, args...))
}

// unwrap converts a Result into the (value, error) pair Wails expects.
func unwrap[T any](res command.Result) (T, error) {
	var zero T
	if res.Failed() {
		return zero, invokeError(res.Error())
	}
	v, _ := res.Value().(T)
	return v, nil
}

// AppReady confirms the frontend finished loading.
func (a *App) AppReady() (string, error) {
	return unwrap[string](a.run(command.AppReady))
}

// TestBackendConnection probes the backend health endpoint once.
func (a *App) TestBackendConnection() (string, error) {
	return unwrap[string](a.run(command.TestBackendConnection))
}

// GetAppInfo returns name, version and build facts.
func (a *App) GetAppInfo() (sysinfo.AppInfo, error) {
	return unwrap[sysinfo.AppInfo](a.run(command.GetAppInfo))
}

// OpenExternalURL opens url in the default browser.
func (a *App) OpenExternalURL(url string) error {
	_, err := unwrap[any](a.run(command.OpenExternalURL, url))
	return err
}

// ShowNotification records a notification.
func (a *App) ShowNotification(title, body string) error {
	_, err := unwrap[any](a.run(command.ShowNotification, title, body))
	return err
}

// GetSystemInfo returns platform constants.
func (a *App) GetSystemInfo() (sysinfo.SystemInfo, error) {
	return unwrap[sysinfo.SystemInfo](a.run(command.GetSystemInfo))
}

// GetHostStatus returns live host facts.
func (a *App) GetHostStatus() (sysinfo.HostStatus, error) {
	return unwrap[sysinfo.HostStatus](a.run(command.GetHostStatus))
}

// Invoke runs a command by its snake_case name, e.g. "get_app_info".
func (a *App) Invoke(name string, args []string) (any, error) {
	return unwrap[any](a.commands.Invoke(a.context(), name, args))
}

// invokeError carries a command's error message to the frontend unchanged.
type invokeError string

func (e invokeError) Error() string { return string(e) }
