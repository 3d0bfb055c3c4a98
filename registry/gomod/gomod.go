// Package gomod resolves latest Go module versions through the GitHub
// releases API.
//
// Known limitation: only github.com-hosted modules are supported. The
// adapter maps a module path like github.com/owner/repo to that
// repository's latest release; module paths on other hosts (or modules
// that tag releases without the GitHub releases API) cannot be resolved
// and are rejected before any network call.
package gomod

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://api.github.com"

// githubHeaders requests the stable GitHub REST media type.
var githubHeaders = map[string]string{
	"Accept": "application/vnd.github.v3+json",
}

// Registry is the Go modules adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Go modules adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "go" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"golang"} }

type releaseResponse struct {
	TagName string `json:"tag_name"`
	Body    string `json:"body"`
}

// Latest resolves the newest release tag of a github.com-hosted Go module.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	parts := strings.Split(name, "/")
	if parts[0] != "github.com" || len(parts) < 3 || parts[1] == "" || parts[2] == "" {
		return registry.Record{}, registry.NewInvalidName(r.Key(), name,
			fmt.Errorf("only github.com/owner/repo module paths are supported"))
	}
	owner, repo := parts[1], parts[2]

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
		Homepage:    "https://pkg.go.dev/" + name,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
