// Package command defines the closed set of operations the UI may invoke and
// dispatches each invocation to its handler.
package command

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnknownCommand is returned for names outside the command table.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidArguments is returned when the argument count does not match.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Command enumerates the UI-callable operations.
type Command int

const (
	AppReady Command = iota
	TestBackendConnection
	GetAppInfo
	OpenExternalURL
	ShowNotification
	GetSystemInfo
	GetHostStatus
	numCommands
)

// entry holds the wire name and argument count of a command.
type entry struct {
	name  string
	arity int
}

var table = [numCommands]entry{
	AppReady:              {"app_ready", 0},
	TestBackendConnection: {"test_backend_connection", 0},
	GetAppInfo:            {"get_app_info", 0},
	OpenExternalURL:       {"open_external_url", 1},
	ShowNotification:      {"show_notification", 2},
	GetSystemInfo:         {"get_system_info", 0},
	GetHostStatus:         {"get_host_status", 0},
}

func (c Command) valid() bool { return c >= 0 && c < numCommands }

// String returns the wire name of c.
func (c Command) String() string {
	if !c.valid() {
		return fmt.Sprintf("command(%d)", int(c))
	}
	return table[c].name
}

// Arity is the number of string arguments c takes.
func (c Command) Arity() int {
	if !c.valid() {
		return 0
	}
	return table[c].arity
}

// All lists every command in table order.
func All() []Command {
	out := make([]Command, 0, numCommands)
	for c := Command(0); c < numCommands; c++ {
		out = append(out, c)
	}
	return out
}

// Parse resolves a wire name.
func Parse(name string) (Command, error) {
	for c := Command(0); c < numCommands; c++ {
		if table[c].name == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Invocation is a single request from the UI. It lives for one dispatch.
type Invocation struct {
	ID      string
	Command Command
	Args    []string
}

// NewInvocation parses name and checks args against the command's arity.
func NewInvocation(name string, args []string) (Invocation, error) {
	c, err := Parse(name)
	if err != nil {
		return Invocation{}, err
	}
	if len(args) != c.Arity() {
		return Invocation{}, fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrInvalidArguments, c, c.Arity(), len(args))
	}
	return Invocation{ID: uuid.NewString(), Command: c, Args: args}, nil
}

// Call builds an invocation for a command that is already known, e.g. from a
// typed binding. Arity is checked at dispatch.
func Call(c Command, args ...string) Invocation {
	return Invocation{ID: uuid.NewString(), Command: c, Args: args}
}
