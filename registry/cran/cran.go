// Package cran resolves latest R package versions from CRAN via the crandb
// mirror API (crandb.r-pkg.org).
package cran

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://crandb.r-pkg.org"

// Registry is the CRAN adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a CRAN adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "cran" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"r"} }

// crandb serves DESCRIPTION fields verbatim, hence the capitalized keys.
type packageResponse struct {
	Version     string `json:"Version"`
	Description string `json:"Description"`
	URL         string `json:"URL"`
	License     string `json:"License"`
}

// Latest resolves the newest published version of a CRAN package. CRAN
// version strings are arbitrary (e.g. "1.1-3"), not semver.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/%s", r.baseURL, name)

	var resp packageResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if resp.Version == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response missing Version field"))
	}

	return registry.Record{
		Name:        name,
		Version:     resp.Version,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: resp.Description,
		Homepage:    resp.URL,
		License:     resp.License,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
