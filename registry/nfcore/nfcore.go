// Package nfcore resolves latest versions of nf-core modules and
// subworkflows. Both live in the nf-core/modules monorepo and are not
// individually tagged, so the version of a component is the short SHA of
// the last commit touching its path.
package nfcore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://api.github.com"

var githubHeaders = map[string]string{
	"Accept": "application/vnd.github.v3+json",
}

// Registry resolves one nf-core component kind (modules or subworkflows).
type Registry struct {
	client     *registry.Client
	baseURL    string
	key        string
	aliases    []string
	pathPrefix string
}

// NewModule creates the nf-core module adapter.
func NewModule(c *registry.Client) *Registry {
	return &Registry{
		client:     c,
		baseURL:    defaultBaseURL,
		key:        "nf-core-module",
		aliases:    []string{"nfcore-module", "nf-module"},
		pathPrefix: "modules/nf-core",
	}
}

// NewSubworkflow creates the nf-core subworkflow adapter.
func NewSubworkflow(c *registry.Client) *Registry {
	return &Registry{
		client:     c,
		baseURL:    defaultBaseURL,
		key:        "nf-core-subworkflow",
		aliases:    []string{"nfcore-subworkflow", "nf-subworkflow"},
		pathPrefix: "subworkflows/nf-core",
	}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return r.key }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return r.aliases }

type commit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
	} `json:"commit"`
}

// Latest resolves the newest commit touching a component's path. An empty
// commit list means no component exists at that path.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	componentPath := fmt.Sprintf("%s/%s", r.pathPrefix, name)
	requestURL := fmt.Sprintf("%s/repos/nf-core/modules/commits?path=%s&per_page=1",
		r.baseURL, url.QueryEscape(componentPath))

	var commits []commit
	if err := r.client.GetJSON(ctx, requestURL, githubHeaders, r.key, name, &commits); err != nil {
		return registry.Record{}, err
	}
	if len(commits) == 0 {
		return registry.Record{}, registry.NewNotFound(r.key, name)
	}
	if len(commits[0].SHA) < 7 {
		return registry.Record{}, registry.NewUnavailable(r.key, name, 0, fmt.Errorf("response has malformed commit sha"))
	}

	subject, _, _ := strings.Cut(commits[0].Commit.Message, "\n")

	return registry.Record{
		Name:        "nf-core/" + name,
		Version:     commits[0].SHA[:7],
		Registry:    r.key,
		RegistryURL: requestURL,
		QueryTime:   time.Now().UTC(),
		Description: subject,
		Homepage:    "https://github.com/nf-core/modules/tree/master/" + componentPath,
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
