// Package terraform resolves latest provider versions from the Terraform
// Registry (registry.terraform.io). Providers are identified by
// namespace/name, e.g. hashicorp/aws.
package terraform

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://registry.terraform.io"

// Registry is the Terraform Registry adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Terraform Registry adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "terraform" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"tf"} }

type providerResponse struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// Latest resolves the newest published version of a Terraform provider.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/v1/providers/%s", r.baseURL, name)

	var resp providerResponse
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
		Homepage:    resp.Source,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
