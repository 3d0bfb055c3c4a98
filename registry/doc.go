// Package registry provides the package-registry resolution core.
//
// This package defines the shared types every upstream adapter produces and
// the dispatch infrastructure that routes a query to the right adapter:
//
//   - Registry interface for upstream adapters (npm, PyPI, crates.io, ...)
//   - Record, the uniform result of a successful version query
//   - Resolver, the alias-table dispatcher
//   - Client, the shared HTTP helper adapters query upstreams with
//
// # Adapters
//
// Each supported upstream lives in its own sub-package and implements the
// Registry interface. Adapters are mutually independent: they share no
// mutable state, so a failure or outage in one upstream never affects
// another.
//
// # Resolver
//
// The Resolver owns a read-only alias table built once at startup. Every
// accepted name (canonical key or alias, case-insensitive) maps to exactly
// one adapter:
//
//	resolver, err := registry.NewResolver(adapters, 30*time.Second)
//	record, err := resolver.Resolve(ctx, "python", "django") // routes to pypi
//
// Input validation happens before any network access, and adapter outcomes
// are forwarded to the caller unchanged.
//
// # Errors
//
// Failures are *Error values classified by four sentinels:
// ErrInvalidPackageName and ErrUnknownRegistry for precondition failures,
// ErrPackageNotFound for a definitive upstream 404 (or equivalent), and
// ErrRegistryUnavailable for everything else. No error is downgraded,
// defaulted, or retried; callers match with errors.Is.
package registry
