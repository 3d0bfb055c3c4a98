// Package swift resolves latest Swift package versions through the GitHub
// releases API. Swift packages are identified by owner/repo.
package swift

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://api.github.com"

var githubHeaders = map[string]string{
	"Accept": "application/vnd.github.v3+json",
}

// Registry is the Swift Package Manager adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Swift adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "swift" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"spm"} }

type releaseResponse struct {
	TagName string `json:"tag_name"`
	Body    string `json:"body"`
}

// Latest resolves the newest release tag of a Swift package.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	owner, repo, ok := strings.Cut(name, "/")
	if !ok || owner == "" || repo == "" {
		return registry.Record{}, registry.NewInvalidName(r.Key(), name,
			fmt.Errorf("package name must be in 'owner/repo' format"))
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", r.baseURL, owner, repo)

	var resp releaseResponse
	if err := r.client.GetJSON(ctx, url, githubHeaders, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if resp.TagName == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response missing tag_name field"))
	}

	return registry.Record{
		Name:        name,
		Version:     resp.TagName,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: resp.Body,
		Homepage:    "https://github.com/" + name,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
