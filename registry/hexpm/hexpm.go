// Package hexpm resolves latest package versions from Hex.pm, the Elixir
// package registry.
package hexpm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://hex.pm"

// Registry is the Hex.pm adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Hex.pm adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "hex" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"elixir", "hex.pm"} }

type packageResponse struct {
	Releases []struct {
		Version string `json:"version"`
	} `json:"releases"`
	Meta struct {
		Description string            `json:"description"`
		Licenses    []string          `json:"licenses"`
		Links       map[string]string `json:"links"`
	} `json:"meta"`
}

// Latest resolves the newest published version of a Hex package. The
// releases array is ordered newest-first by the API.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/api/packages/%s", r.baseURL, name)

	var resp packageResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if len(resp.Releases) == 0 || resp.Releases[0].Version == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response has no releases"))
	}

	return registry.Record{
		Name:        name,
		Version:     resp.Releases[0].Version,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: resp.Meta.Description,
		Homepage:    resp.Meta.Links["GitHub"],
		License:     strings.Join(resp.Meta.Licenses, ", "),
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
