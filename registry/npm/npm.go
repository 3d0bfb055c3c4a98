// Package npm resolves latest package versions from the npm registry
// (registry.npmjs.org).
package npm

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://registry.npmjs.org"

// Registry is the npm adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates an npm adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "npm" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"node", "nodejs"} }

type latestResponse struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Homepage    string `json:"homepage"`
	License     string `json:"license"`
}

// Latest resolves the newest published version of an npm package via the
// dist-tag endpoint.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/%s/latest", r.baseURL, name)

	var resp latestResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if resp.Version == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response missing version field"))
	}

	return registry.Record{
		Name:        name,
		Version:     resp.Version,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: resp.Description,
		Homepage:    resp.Homepage,
		License:     resp.License,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
