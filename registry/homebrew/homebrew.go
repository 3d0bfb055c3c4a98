// Package homebrew resolves latest formula versions from the Homebrew
// formulae API (formulae.brew.sh).
package homebrew

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://formulae.brew.sh"

// Registry is the Homebrew adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Homebrew adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "homebrew" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"brew"} }

type formulaResponse struct {
	Versions struct {
		Stable string `json:"stable"`
	} `json:"versions"`
	Desc     string `json:"desc"`
	Homepage string `json:"homepage"`
	License  string `json:"license"`
}

// Latest resolves the newest stable version of a Homebrew formula.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/api/formula/%s.json", r.baseURL, name)

	var resp formulaResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if resp.Versions.Stable == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("formula has no stable version"))
	}

	return registry.Record{
		Name:        name,
		Version:     resp.Versions.Stable,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: resp.Desc,
		Homepage:    resp.Homepage,
		License:     resp.License,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
