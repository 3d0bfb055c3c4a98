package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultTimeout bounds each upstream call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Resolver dispatches version queries to the adapter selected by registry
// name or alias. The alias table is built once at construction and never
// mutated, so a Resolver is safe for concurrent use without locking.
type Resolver struct {
	table     map[string]Registry
	canonical []Registry
	timeout   time.Duration
}

// NewResolver builds a Resolver over a fixed adapter set. Every adapter
// contributes its canonical key plus its aliases to the table; a name
// claimed twice is a construction error, never a silent pick. timeout
// bounds each adapter call; zero or negative means DefaultTimeout.
func NewResolver(registries []Registry, timeout time.Duration) (*Resolver, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	r := &Resolver{
		table:   make(map[string]Registry),
		timeout: timeout,
	}
	for _, reg := range registries {
		if err := r.add(reg.Key(), reg); err != nil {
			return nil, err
		}
		for _, alias := range reg.Aliases() {
			if err := r.add(alias, reg); err != nil {
				return nil, err
			}
		}
		r.canonical = append(r.canonical, reg)
	}
	sort.Slice(r.canonical, func(i, j int) bool {
		return r.canonical[i].Key() < r.canonical[j].Key()
	})
	return r, nil
}

func (r *Resolver) add(name string, reg Registry) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("registry %q: empty name", reg.Key())
	}
	if _, exists := r.table[name]; exists {
		return fmt.Errorf("registry name %q registered twice", name)
	}
	r.table[name] = reg
	return nil
}

// Resolve turns (registry name or alias, package identifier) into exactly
// one of a Record or a classified *Error. Both inputs are trimmed; the
// registry name is matched case-insensitively. Invalid inputs fail before
// any network access. The selected adapter runs under the configured
// timeout and its outcome is returned unchanged: no retry, no conversion,
// no default substitution.
func (r *Resolver) Resolve(ctx context.Context, name, pkg string) (Record, error) {
	reg, ok := r.Lookup(name)
	if !ok {
		return Record{}, &Error{
			Registry: strings.TrimSpace(name),
			Kind:     ErrUnknownRegistry,
			Cause:    fmt.Errorf("valid options: %s", strings.Join(r.Names(), ", ")),
		}
	}

	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return Record{}, &Error{
			Registry: reg.Key(),
			Kind:     ErrInvalidPackageName,
			Cause:    fmt.Errorf("package name cannot be empty"),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return reg.Latest(ctx, pkg)
}

// Lookup returns the adapter for a registry name or alias,
// case-insensitively.
func (r *Resolver) Lookup(name string) (Registry, bool) {
	reg, ok := r.table[strings.ToLower(strings.TrimSpace(name))]
	return reg, ok
}

// Names returns every accepted name, canonical keys and aliases, sorted.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.table))
	for name := range r.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registries returns the adapters sorted by canonical key.
func (r *Resolver) Registries() []Registry {
	out := make([]Registry, len(r.canonical))
	copy(out, r.canonical)
	return out
}

// Timeout returns the per-call timeout applied to adapter invocations.
func (r *Resolver) Timeout() time.Duration {
	return r.timeout
}
