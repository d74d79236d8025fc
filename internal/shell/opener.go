// Package shell hands requests from the UI over to the operating system.
package shell

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// ErrInvalidURL is returned for URLs the opener refuses to pass on.
var ErrInvalidURL = errors.New("invalid url")

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// Opener opens URLs with the user's default handler.
type Opener struct {
	open func(string) error
}

// NewOpener returns an Opener backed by the system browser.
func NewOpener() *Opener {
	return &Opener{open: browser.OpenURL}
}

// Open validates raw and hands it to the OS.
func (o *Opener) Open(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !allowedSchemes[scheme] {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if (scheme == "http" || scheme == "https") && u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	if err := o.open(u.String()); err != nil {
		return fmt.Errorf("open %s: %w", u.Redacted(), err)
	}
	return nil
}
