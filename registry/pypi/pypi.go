// Package pypi resolves latest package versions from the Python Package
// Index (pypi.org).
package pypi

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://pypi.org"

// Registry is the PyPI adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a PyPI adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "pypi" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"pip", "python"} }

type projectResponse struct {
	Info struct {
		Version    string `json:"version"`
		Summary    string `json:"summary"`
		HomePage   string `json:"home_page"`
		ProjectURL string `json:"project_url"`
		License    string `json:"license"`
	} `json:"info"`
}

// Latest resolves the newest published version of a PyPI project.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/pypi/%s/json", r.baseURL, name)

	var resp projectResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if resp.Info.Version == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response missing info.version field"))
	}

	homepage := resp.Info.HomePage
	if homepage == "" {
		homepage = resp.Info.ProjectURL
	}

	return registry.Record{
		Name:        name,
		Version:     resp.Info.Version,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: resp.Info.Summary,
		Homepage:    homepage,
		License:     resp.Info.License,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
