// Package lifecycle drives the main window from boot to termination.
package lifecycle

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// State is the lifecycle position of the application.
type State int

const (
	Starting State = iota
	Running
	ClosingRequested
	Terminated
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case ClosingRequested:
		return "closing_requested"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrNoWindow is returned by Boot when the main window is unavailable.
	ErrNoWindow = errors.New("main window unavailable")
	// ErrAlreadyBooted is returned when Boot runs twice.
	ErrAlreadyBooted = errors.New("already booted")
)

// Window is the main window as seen by the controller.
type Window interface {
	SetTitle(title string) error
	OpenDevTools()
	Close() error
}

// Controller owns the boot and close transitions. Close requests may arrive
// more than once; only the first one closes the window.
type Controller struct {
	title    string
	devBuild bool
	log      *slog.Logger

	mu     sync.Mutex
	state  State
	window Window
}

// NewController returns a controller in the Starting state.
func NewController(title string, devBuild bool, l *slog.Logger) *Controller {
	if l == nil {
		l = slog.Default()
	}
	return &Controller{
		title:    title,
		devBuild: devBuild,
		log:      l.With("component", "lifecycle"),
		state:    Starting,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Boot configures w and moves to Running. Any error is fatal to the caller;
// the controller stays in Starting.
func (c *Controller) Boot(w Window) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Starting {
		return fmt.Errorf("%w: state is %s", ErrAlreadyBooted, c.state)
	}
	c.log.Info("starting", "title", c.title)
	if w == nil {
		return ErrNoWindow
	}
	if err := w.SetTitle(c.title); err != nil {
		return fmt.Errorf("set window title: %w", err)
	}
	if c.devBuild {
		c.log.Info("development mode enabled")
		w.OpenDevTools()
	}

	c.window = w
	c.state = Running
	c.log.Info("setup completed")
	return nil
}

// HandleCloseRequest reacts to a close request on the main window. It
// returns prevent=true when it has taken over the close itself; the caller
// must then suppress the runtime's default close. Later requests return
// prevent=false and never close the window again. A non-nil error means the
// forced close failed and the process cannot continue.
func (c *Controller) HandleCloseRequest() (prevent bool, err error) {
	c.mu.Lock()
	switch c.state {
	case Running:
		c.state = ClosingRequested
	case Starting:
		c.state = Terminated
		c.mu.Unlock()
		c.log.Info("close requested before startup finished")
		return false, nil
	default:
		state := c.state
		c.mu.Unlock()
		c.log.Debug("close already in progress", "state", state.String())
		return false, nil
	}
	w := c.window
	c.mu.Unlock()

	c.log.Info("app closing")

	// The window is closed outside the lock: the runtime may deliver a
	// second close request while Close runs.
	if err := w.Close(); err != nil {
		return true, fmt.Errorf("close main window: %w", err)
	}

	c.mu.Lock()
	c.state = Terminated
	c.mu.Unlock()
	return true, nil
}
