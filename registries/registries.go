// Package registries wires every adapter into a ready-to-use resolver.
// It exists so the server and CLI share one registry set without either
// importing the adapter packages directly.
package registries

import (
	"time"

	"github.com/jonwraymond/versionator/registry"
	"github.com/jonwraymond/versionator/registry/bioconda"
	"github.com/jonwraymond/versionator/registry/composer"
	"github.com/jonwraymond/versionator/registry/cpan"
	"github.com/jonwraymond/versionator/registry/cran"
	"github.com/jonwraymond/versionator/registry/crates"
	"github.com/jonwraymond/versionator/registry/dockerhub"
	"github.com/jonwraymond/versionator/registry/gomod"
	"github.com/jonwraymond/versionator/registry/hexpm"
	"github.com/jonwraymond/versionator/registry/homebrew"
	"github.com/jonwraymond/versionator/registry/maven"
	"github.com/jonwraymond/versionator/registry/nextflow"
	"github.com/jonwraymond/versionator/registry/nfcore"
	"github.com/jonwraymond/versionator/registry/npm"
	"github.com/jonwraymond/versionator/registry/nuget"
	"github.com/jonwraymond/versionator/registry/pypi"
	"github.com/jonwraymond/versionator/registry/rubygems"
	"github.com/jonwraymond/versionator/registry/swift"
	"github.com/jonwraymond/versionator/registry/terraform"
)

// All returns one instance of every adapter, sharing a single HTTP client.
func All(c *registry.Client) []registry.Registry {
	return []registry.Registry{
		npm.New(c),
		rubygems.New(c),
		pypi.New(c),
		hexpm.New(c),
		crates.New(c),
		maven.New(c),
		gomod.New(c),
		swift.New(c),
		homebrew.New(c),
		cran.New(c),
		dockerhub.New(c),
		bioconda.New(c),
		cpan.New(c),
		nuget.New(c),
		composer.New(c),
		terraform.New(c),
		nextflow.New(c),
		nfcore.NewModule(c),
		nfcore.NewSubworkflow(c),
	}
}

// NewResolver builds a resolver over the full adapter set. The adapter
// set is static and its names are disjoint, so construction cannot fail;
// a conflict introduced by a new adapter is caught by the package tests.
func NewResolver(timeout time.Duration) (*registry.Resolver, error) {
	return registry.NewResolver(All(registry.NewClient()), timeout)
}
