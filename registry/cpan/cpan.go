// Package cpan resolves latest Perl module versions from CPAN via the
// MetaCPAN API (fastapi.metacpan.org).
package cpan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://fastapi.metacpan.org"

// Registry is the CPAN adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a CPAN adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "cpan" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"perl"} }

// moduleVersion tolerates both JSON encodings MetaCPAN uses for module
// versions: a string ("2.11") or a bare number (2.11).
type moduleVersion string

func (v *moduleVersion) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = moduleVersion(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = moduleVersion(n.String())
	return nil
}

type moduleResponse struct {
	Version  moduleVersion `json:"version"`
	Abstract string        `json:"abstract"`
}

// Latest resolves the newest published version of a CPAN module.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	url := fmt.Sprintf("%s/v1/module/%s", r.baseURL, name)

	var resp moduleResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if resp.Version == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response missing version field"))
	}

	return registry.Record{
		Name:        name,
		Version:     string(resp.Version),
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: resp.Abstract,
		Homepage:    "https://metacpan.org/pod/" + name,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
