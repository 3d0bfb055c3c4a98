// Package rubygems resolves latest gem versions from rubygems.org.
package rubygems

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://rubygems.org"

// Registry is the RubyGems adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a RubyGems adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "rubygems" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"gem", "ruby"} }

type latestResponse struct {
	Version string `json:"version"`
}

// Latest resolves the newest published version of a Ruby gem. The latest.json
// endpoint carries no description, homepage, or license metadata.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/api/v1/versions/%s/latest.json", r.baseURL, name)

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
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
