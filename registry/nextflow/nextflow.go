// Package nextflow resolves latest Nextflow pipeline versions from the
// nf-core organization's GitHub releases.
package nextflow

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

// Registry is the Nextflow pipeline adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Nextflow adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "nextflow" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"nf-core"} }

type releaseResponse struct {
	TagName string `json:"tag_name"`
	Body    string `json:"body"`
}

// Latest resolves the newest release tag of a Nextflow pipeline. Bare
// pipeline names are assumed to live under the nf-core organization.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	repoPath := name
	if !strings.HasPrefix(repoPath, "nf-core/") {
		repoPath = "nf-core/" + repoPath
	}

	url := fmt.Sprintf("%s/repos/%s/releases/latest", r.baseURL, repoPath)

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
		Homepage:    "https://github.com/" + repoPath,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
