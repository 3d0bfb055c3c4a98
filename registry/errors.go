package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for failure classification.
var (
	// ErrInvalidPackageName indicates an empty or malformed package
	// identifier. Raised before any network access.
	ErrInvalidPackageName = errors.New("invalid package name")

	// ErrUnknownRegistry indicates the registry name matched no
	// canonical key or alias. Raised before any adapter is invoked.
	ErrUnknownRegistry = errors.New("unknown registry")

	// ErrPackageNotFound indicates the upstream definitively reported
	// that the package does not exist (404 or equivalent).
	ErrPackageNotFound = errors.New("package not found")

	// ErrRegistryUnavailable indicates any other upstream failure:
	// non-2xx status, unexpected response shape, timeout, or transport
	// error.
	ErrRegistryUnavailable = errors.New("registry unavailable")
)

// Error is a classified resolution failure. It carries the registry key
// and package identifier that were being resolved, and the upstream HTTP
// status where one was received.
type Error struct {
	// Registry is the canonical key of the registry involved, or the
	// caller-supplied name for ErrUnknownRegistry.
	Registry string

	// Package is the package identifier being resolved, if known.
	Package string

	// Status is the upstream HTTP status code. Zero when the failure
	// happened before or below the HTTP layer.
	Status int

	// Kind is the taxonomy sentinel this failure classifies as.
	Kind error

	// Cause is the underlying error, if any: a transport failure,
	// context deadline, decode error, or a shape description.
	Cause error
}

// Error returns the failure message including registry and package context.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Registry, e.Kind)
	if e.Package != "" {
		msg += fmt.Sprintf(": package %q", e.Package)
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether this error classifies as the target sentinel.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// NewNotFound builds a PackageNotFound failure for the given registry and
// package.
func NewNotFound(registry, pkg string) *Error {
	return &Error{Registry: registry, Package: pkg, Kind: ErrPackageNotFound}
}

// NewUnavailable builds a RegistryUnavailable failure. status is the
// upstream HTTP status, or zero for transport-level failures. cause is
// optional.
func NewUnavailable(registry, pkg string, status int, cause error) *Error {
	return &Error{Registry: registry, Package: pkg, Status: status, Kind: ErrRegistryUnavailable, Cause: cause}
}

// NewInvalidName builds an InvalidPackageName failure. cause describes the
// expected identifier shape.
func NewInvalidName(registry, pkg string, cause error) *Error {
	return &Error{Registry: registry, Package: pkg, Kind: ErrInvalidPackageName, Cause: cause}
}
