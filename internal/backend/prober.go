// Package backend checks that the local FatturaAnalyzer API process is up.
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// DefaultHealthURL is where the backend serves its liveness endpoint.
const DefaultHealthURL = "http://127.0.0.1:8000/health"

var (
	// ErrUnreachable is returned when no HTTP response was received.
	ErrUnreachable = errors.New("connection failed")
	// ErrBadStatus is returned for any non-2xx response.
	ErrBadStatus = errors.New("backend returned status")
	// ErrUnreadableBody is returned when a 2xx body cannot be read as text.
	ErrUnreadableBody = errors.New("unreadable health response")
)

// Prober performs one-shot health checks. It keeps no state between calls,
// so a single Prober may be shared by concurrent callers.
type Prober struct {
	client *http.Client
	url    string
}

// NewProber returns a prober for url using the default HTTP client: no
// timeout, no retries. An empty url selects DefaultHealthURL.
func NewProber(url string) *Prober {
	if url == "" {
		url = DefaultHealthURL
	}
	return &Prober{client: http.DefaultClient, url: url}
}

// URL returns the endpoint being probed.
func (p *Prober) URL() string {
	return p.url
}

// Probe issues a single GET and returns "Backend connected: <body>" on a 2xx
// response. Every failure is wrapped in one of the package sentinel errors.
func (p *Prober) Probe(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableBody, err)
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: body is not valid UTF-8", ErrUnreadableBody)
	}

	return "Backend connected: " + string(body), nil
}
