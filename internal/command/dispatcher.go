package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fatturaanalyzer/fattura-desktop/internal/sysinfo"
)

// ReadyMessage is returned by app_ready.
const ReadyMessage = "App initialized successfully"

// Prober checks the backend.
type Prober interface {
	Probe(ctx context.Context) (string, error)
}

// URLOpener hands a URL to the OS.
type URLOpener interface {
	Open(url string) error
}

// Notifier shows (or records) a user notification.
type Notifier interface {
	Notify(title, body string)
}

// HostReporter reads live host facts.
type HostReporter interface {
	HostStatus(ctx context.Context) (sysinfo.HostStatus, error)
}

// Options configures a Dispatcher.
type Options struct {
	AppName string
	Version string
	Debug   bool

	Prober   Prober
	Opener   URLOpener
	Notifier Notifier
	Host     HostReporter
	Logger   *slog.Logger
}

// Dispatcher routes invocations to handlers. Handlers share no mutable
// state, so one Dispatcher serves concurrent invocations.
type Dispatcher struct {
	opts Options
	log  *slog.Logger
}

// NewDispatcher builds a Dispatcher. Prober, Opener, Notifier and Host must be set.
func NewDispatcher(opts Options) *Dispatcher {
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}
	return &Dispatcher{opts: opts, log: l.With("component", "commands")}
}

// Dispatch runs inv and converts the outcome into a Result. A panicking
// handler yields an error result.
func (d *Dispatcher) Dispatch(ctx context.Context, inv Invocation) (res Result) {
	start := time.Now()
	log := d.log.With("command", inv.Command.String(), "invocation", inv.ID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("command panicked", "panic", r)
			res = Fail(fmt.Errorf("%s: internal error", inv.Command))
		}
		if res.Failed() {
			log.Warn("command failed", "err", res.Error(), "elapsed", time.Since(start))
			return
		}
		log.Debug("command done", "elapsed", time.Since(start))
	}()

	if len(inv.Args) != inv.Command.Arity() {
		return Fail(fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrInvalidArguments, inv.Command, inv.Command.Arity(), len(inv.Args)))
	}

	switch inv.Command {
	case AppReady:
		return Ok(d.appReady())
	case TestBackendConnection:
		msg, err := d.testBackendConnection(ctx)
		return fromPair(msg, err)
	case GetAppInfo:
		return Ok(d.appInfo())
	case OpenExternalURL:
		if err := d.openExternalURL(inv.Args[0]); err != nil {
			return Fail(err)
		}
		return Ok(nil)
	case ShowNotification:
		d.showNotification(inv.Args[0], inv.Args[1])
		return Ok(nil)
	case GetSystemInfo:
		return Ok(d.systemInfo())
	case GetHostStatus:
		status, err := d.hostStatus(ctx)
		return fromPair(status, err)
	default:
		return Fail(fmt.Errorf("%w: %s", ErrUnknownCommand, inv.Command))
	}
}

// Invoke parses name and args and dispatches the result.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args []string) Result {
	inv, err := NewInvocation(name, args)
	if err != nil {
		d.log.Warn("rejected invocation", "command", name, "err", err)
		return Fail(err)
	}
	return d.Dispatch(ctx, inv)
}

func fromPair[T any](v T, err error) Result {
	if err != nil {
		return Fail(err)
	}
	return Ok(v)
}

// appReady acknowledges that the UI finished loading.
func (d *Dispatcher) appReady() string {
	d.log.Info("app ready")
	return ReadyMessage
}

// testBackendConnection probes the backend once.
func (d *Dispatcher) testBackendConnection(ctx context.Context) (string, error) {
	return d.opts.Prober.Probe(ctx)
}

// appInfo is recomputed on every call.
func (d *Dispatcher) appInfo() sysinfo.AppInfo {
	return sysinfo.App(d.opts.AppName, d.opts.Version, d.opts.Debug)
}

// openExternalURL opens url in the default browser.
func (d *Dispatcher) openExternalURL(url string) error {
	return d.opts.Opener.Open(url)
}

// showNotification forwards to the notifier; it cannot fail.
func (d *Dispatcher) showNotification(title, body string) {
	d.opts.Notifier.Notify(title, body)
}

// systemInfo is recomputed on every call.
func (d *Dispatcher) systemInfo() sysinfo.SystemInfo {
	return sysinfo.System()
}

// hostStatus reads live host facts.
func (d *Dispatcher) hostStatus(ctx context.Context) (sysinfo.HostStatus, error) {
	return d.opts.Host.HostStatus(ctx)
}
