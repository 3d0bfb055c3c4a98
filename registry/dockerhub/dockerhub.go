// Package dockerhub resolves latest image tags from Docker Hub
// (hub.docker.com). Official images without a namespace are queried under
// the library namespace.
package dockerhub

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://hub.docker.com"

// Registry is the Docker Hub adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Docker Hub adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "dockerhub" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"docker"} }

type tagsResponse struct {
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// Latest resolves the newest tag of a Docker Hub repository. The tags
// endpoint returns newest-first; an empty result set is this API's
// not-found signal.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	namespace, repo, ok := strings.Cut(name, "/")
	if !ok {
		namespace, repo = "library", name
	}

	url := fmt.Sprintf("%s/v2/repositories/%s/%s/tags", r.baseURL, namespace, repo)

	var resp tagsResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if len(resp.Results) == 0 {
		return registry.Record{}, registry.NewNotFound(r.Key(), name)
	}
	if resp.Results[0].Name == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response missing tag name field"))
	}

	homepage := fmt.Sprintf("https://hub.docker.com/r/%s/%s", namespace, repo)
	if namespace == "library" {
		homepage = fmt.Sprintf("https://hub.docker.com/_/%s", repo)
	}

	return registry.Record{
		Name:        name,
		Version:     resp.Results[0].Name,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: fmt.Sprintf("Docker image %s", name),
		Homepage:    homepage,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
