package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// userAgent identifies versionator to upstreams that reject anonymous
// clients (GitHub, MetaCPAN).
const userAgent = "versionator/1.0 (Package Version Query Tool)"

// maxErrorBody caps how much of an upstream error body is carried into an
// error message.
const maxErrorBody = 512

// Client is the shared HTTP helper adapters use to query upstream APIs.
// A single pooled http.Client serves all adapters; requests against the
// same or different registries may run in parallel.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: every failure is a *Error classified by the package sentinels.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client with a pooled transport. Timeouts are applied
// per request through the context, not on the http.Client, so each
// resolution is bounded independently.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Transport: http.DefaultTransport},
	}
}

// GetJSON issues one GET against url and decodes the JSON response into out.
// It classifies the outcome per the error taxonomy: 404 is
// ErrPackageNotFound, any other non-2xx status or transport failure is
// ErrRegistryUnavailable, a body that fails to decode is
// ErrRegistryUnavailable. There is no retry at this layer.
//
// registryKey and pkg provide error context only; headers may be nil.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, registryKey, pkg string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewUnavailable(registryKey, pkg, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewUnavailable(registryKey, pkg, 0, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return NewNotFound(registryKey, pkg)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return NewUnavailable(registryKey, pkg, resp.StatusCode, fmt.Errorf("upstream error: %s", readErrorBody(resp.Body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewUnavailable(registryKey, pkg, resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// readErrorBody reads a truncated, whitespace-normalized snippet of an
// upstream error body for diagnostics.
func readErrorBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(b) == 0 {
		return "(no body)"
	}
	return strings.Join(strings.Fields(string(b)), " ")
}
