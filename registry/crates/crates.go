// Package crates resolves latest crate versions from crates.io, the Rust
// package registry.
package crates

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://crates.io"

// Registry is the crates.io adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a crates.io adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "crates" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"cargo", "rust"} }

type crateResponse struct {
	Crate struct {
		NewestVersion string `json:"newest_version"`
		Description   string `json:"description"`
		Homepage      string `json:"homepage"`
	} `json:"crate"`
}

// Latest resolves the newest published version of a crate. The crate
// endpoint carries no license metadata.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/api/v1/crates/%s", r.baseURL, name)

	var resp crateResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if resp.Crate.NewestVersion == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response missing crate.newest_version field"))
	}

	return registry.Record{
		Name:        name,
		Version:     resp.Crate.NewestVersion,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: resp.Crate.Description,
		Homepage:    resp.Crate.Homepage,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
