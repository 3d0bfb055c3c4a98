// Package maven resolves latest artifact versions from Maven Central via
// its Solr search API (search.maven.org).
package maven

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://search.maven.org"

// Registry is the Maven Central adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Maven Central adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "maven" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"mvn"} }

type searchResponse struct {
	Response struct {
		Docs []struct {
			LatestVersion string `json:"latestVersion"`
		} `json:"docs"`
	} `json:"response"`
}

// Latest resolves the newest published version of a Maven artifact.
// The identifier must be in groupId:artifactId form. An empty result set
// from the search endpoint is this API's not-found signal.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	groupID, artifactID, ok := strings.Cut(name, ":")
	if !ok || groupID == "" || artifactID == "" {
		return registry.Record{}, registry.NewInvalidName(r.Key(), name,
			fmt.Errorf("artifact name must be in 'groupId:artifactId' format"))
	}

	requestURL := fmt.Sprintf("%s/solrsearch/select?q=g:%s+AND+a:%s&rows=1&wt=json",
		r.baseURL, url.QueryEscape(groupID), url.QueryEscape(artifactID))

	var resp searchResponse
	if err := r.client.GetJSON(ctx, requestURL, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if len(resp.Response.Docs) == 0 {
		return registry.Record{}, registry.NewNotFound(r.Key(), name)
	}
	if resp.Response.Docs[0].LatestVersion == "" {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response missing latestVersion field"))
	}

	return registry.Record{
		Name:        name,
		Version:     resp.Response.Docs[0].LatestVersion,
		Registry:    r.Key(),
		RegistryURL: requestURL,
		QueryTime:   time.Now().UTC(),
		Description: fmt.Sprintf("Maven artifact %s", name),
		Homepage:    fmt.Sprintf("https://search.maven.org/artifact/%s/%s", groupID, artifactID),
	}, nil
}

var _ registry.Registry = (*Registry)(nil)
