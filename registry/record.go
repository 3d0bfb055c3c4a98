package registry

import "time"

// Record is the uniform result of a successful version query.
// A Record is only constructed after a successful upstream response;
// Name, Version, Registry, and RegistryURL are always non-empty.
type Record struct {
	// Name is the package identifier as queried.
	Name string `json:"name"`

	// Version is the latest published version. The format is
	// registry-defined and not normalized (semver for npm, arbitrary
	// for CRAN, a short commit SHA for nf-core modules).
	Version string `json:"version"`

	// Registry is the canonical registry key, never the alias the
	// caller used.
	Registry string `json:"registry"`

	// RegistryURL is the exact upstream URL that was queried.
	RegistryURL string `json:"registry_url"`

	// QueryTime is when the version was resolved, set at adapter
	// completion. Serializes as an RFC 3339 timestamp.
	QueryTime time.Time `json:"query_time"`

	// Optional metadata. Empty string when the upstream omits it.
	Description string `json:"description"`
	Homepage    string `json:"homepage"`
	License     string `json:"license"`
}
