// Package composer resolves latest PHP package versions from Packagist
// (packagist.org).
package composer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonwraymond/versionator/registry"
)

const defaultBaseURL = "https://packagist.org"

// Registry is the Packagist adapter.
type Registry struct {
	client  *registry.Client
	baseURL string
}

// New creates a Packagist adapter backed by the shared client.
func New(c *registry.Client) *Registry {
	return &Registry{client: c, baseURL: defaultBaseURL}
}

// Key returns the canonical registry key.
func (r *Registry) Key() string { return "composer" }

// Aliases returns alternate accepted names.
func (r *Registry) Aliases() []string { return []string{"php", "packagist"} }

type versionInfo struct {
	Description string   `json:"description"`
	Homepage    string   `json:"homepage"`
	License     []string `json:"license"`
}

type packageResponse struct {
	Package struct {
		Versions map[string]versionInfo `json:"versions"`
	} `json:"package"`
}

// Latest resolves the newest published version of a Composer package.
// Stable versions are preferred over dev versions; within the candidate
// set the lexicographically greatest version key is chosen.
func (r *Registry) Latest(ctx context.Context, name string) (registry.Record, error) {
	vendor, pkg, ok := strings.Cut(name, "/")
	if !ok || vendor == "" || pkg == "" {
		return registry.Record{}, registry.NewInvalidName(r.Key(), name,
			fmt.Errorf("package name must be in 'vendor/package' format"))
	}

	url := fmt.Sprintf("%s/packages/%s.json", r.baseURL, name)

	var resp packageResponse
	if err := r.client.GetJSON(ctx, url, nil, r.Key(), name, &resp); err != nil {
		return registry.Record{}, err
	}
	if len(resp.Package.Versions) == 0 {
		return registry.Record{}, registry.NewUnavailable(r.Key(), name, 0, fmt.Errorf("response has no versions"))
	}

	latest := pickLatest(resp.Package.Versions)
	info := resp.Package.Versions[latest]

	var license string
	if len(info.License) > 0 {
		license = info.License[0]
	}

	return registry.Record{
		Name:        name,
		Version:     latest,
		Registry:    r.Key(),
		RegistryURL: url,
		QueryTime:   time.Now().UTC(),
		Description: info.Description,
		Homepage:    info.Homepage,
		License:     license,
	}, nil
}

// pickLatest chooses the version key to report: the greatest stable
// version, falling back to the greatest dev version when no stable
// release exists. Packagist encodes dev versions two ways, branch
// versions as "dev-main" and branch aliases as "1.x-dev".
func pickLatest(versions map[string]versionInfo) string {
	stable := make([]string, 0, len(versions))
	all := make([]string, 0, len(versions))
	for v := range versions {
		all = append(all, v)
		if !strings.HasSuffix(v, "-dev") && !strings.HasPrefix(v, "dev-") {
			stable = append(stable, v)
		}
	}

	candidates := stable
	if len(candidates) == 0 {
		candidates = all
	}
	sort.Sort(sort.Reverse(sort.StringSlice(candidates)))
	return candidates[0]
}

var _ registry.Registry = (*Registry)(nil)
