// Package cmd implements the versionator command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/versionator/config"
	"github.com/jonwraymond/versionator/registries"
	"github.com/jonwraymond/versionator/registry"
	"github.com/jonwraymond/versionator/server"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "versionator",
	Short:   "MCP server for querying latest package versions",
	Long:    `Versionator answers "what is the latest version of X" across package registries (npm, PyPI, crates.io, Maven Central and others), exposed as MCP tools over stdio or streamable HTTP.`,
	Version: version,
	RunE:    runServer,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	resolver, err := registries.NewResolver(cfg.RequestTimeout)
	if err != nil {
		return err
	}

	// The stdio transport owns stdout, so logs go to stderr either way.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, resolver, log).Run(ctx)
}

// newResolver builds the resolver with the configured timeout for the
// one-shot subcommands.
func newResolver() (*registry.Resolver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return registries.NewResolver(cfg.RequestTimeout)
}
