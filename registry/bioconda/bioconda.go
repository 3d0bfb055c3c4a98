// Package bioconda resolves latest package versions from the Bioconda
// channel on anaconda.org.
package bioconda

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://api.anaconda.org"

// Registry is the Bioconda adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Bioconda adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "bioconda" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"conda"} }

type packageResponse struct {
	LatestVersion string `json:"latest_version"`
	Summary       string `json:"summary"`
	Home          string `json:"home"`
	License       string `json:"license"`
}

// Latest resolves the newest published version of a Bioconda package.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/package/bioconda/%s", r.baseURL, name)

	var resp packageResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if resp.LatestVersion == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response missing latest_version field"))
	}

	return registry.Record{
		Name:        name,
		Version:     resp.LatestVersion,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: resp.Summary,
		Homepage:    resp.Home,
		License:     resp.License,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
