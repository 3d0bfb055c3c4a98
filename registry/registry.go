package registry

import "context"

// Registry is the adapter contract one upstream package registry satisfies.
// Each adapter encodes a single upstream API's URL shape, status-code
// semantics, and response-field extraction behind this interface.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//   - Context: Latest must honor cancellation and deadlines.
//   - Errors: failures must be *Error values classified by the package sentinels.
//   - Records: Latest must never return a Record with an empty version;
//     an expected field missing despite a success status is ErrRegistryUnavailable.
type Registry interface {
	// Key returns the canonical registry key (e.g. "npm", "pypi").
	Key() string

	// Aliases returns alternate accepted names for this registry
	// (e.g. "pip" and "python" for pypi). May be empty.
	Aliases() []string

	// Latest resolves the newest published version of the named package.
	// The name has already been trimmed and validated non-empty by the
	// Resolver.
	Latest(ctx context.Context, name string) (Record, error)
}
