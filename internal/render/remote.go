package render

import (
	"context"
	"io"
	"net/http"
	"time"
)

// remoteTimeout bounds the single fetch attempt. The transport default
// would be no timeout at all; a hung endpoint should degrade to the
// fallback locator instead of stalling the tool call.
const remoteTimeout = 10 * time.Second

// Remote renders by fetching from an external endpoint. Transport
// failures and non-2xx statuses are not surfaced as errors: the caller
// gets the locator back as a fallback, which is itself a usable,
// directly-renderable reference.
type Remote struct {
	Endpoint string
	Client   *http.Client
}

// NewRemote creates a remote renderer against the given endpoint, or the
// default public endpoint if empty.
func NewRemote(endpoint string) *Remote {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Remote{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: remoteTimeout},
	}
}

// Render fetches the rendered expression. One attempt, no retry.
func (r *Remote) Render(ctx context.Context, expr string, style Style) (*Result, error) {
	locator := BuildLocatorURL(r.Endpoint, expr, style.DPI, style.Foreground)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return &Result{Fallback: locator}, nil
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return &Result{Fallback: locator}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Result{Fallback: locator}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return &Result{Fallback: locator}, nil
	}

	return &Result{Image: body, MIMEType: "image/png"}, nil
}
