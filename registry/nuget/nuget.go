// Package nuget resolves latest package versions from the NuGet flat
// container API (api.nuget.org).
package nuget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://api.nuget.org"

// Registry is the NuGet adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a NuGet adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "nuget" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"dotnet", ".net"} }

type indexResponse struct {
	Versions []string `json:"versions"`
}

// Latest resolves the newest published version of a NuGet package. The
// flat container index lists versions oldest-first and requires the
// lowercased package ID; an empty list is this API's not-found signal.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/v3-flatcontainer/%s/index.json", r.baseURL, strings.ToLower(name))

	var resp indexResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if len(resp.Versions) == 0 {
		return registry.Record{}, registry.NewNotFound(r.Key(), name)
	}

	latest := resp.Versions[len(resp.Versions)-1]
	if latest == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response has empty version entry"))
	}

	return registry.Record{
		Name:        name,
		Version:     latest,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: fmt.Sprintf(".NET package %s", name),
		Homepage:    "https://www.nuget.org/packages/" + name,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
