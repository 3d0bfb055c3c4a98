// Package server exposes the resolver as an MCP server. Every registry
// gets a dedicated tool, plus a generic get_package_version tool that
// dispatches by registry name or alias.
package server

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/versionator/config"
	"github.com/jonwraymond/versionator/registry"
)

const (
	serverName    = "versionator-mcp-server"
	serverVersion = "1.0.0"
)

// Server is the versionator MCP server.
type Server struct {
	cfg      config.Config
	resolver *registry.Resolver
	log      *slog.Logger
	mcp      *mcp.Server
}

// New creates a Server with every tool registered. log may be nil, in
// which case slog.Default is used.
func New(cfg config.Config, res *registry.Resolver, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		cfg:      cfg,
		resolver: res,
		log:      log,
	}
	s.mcp = mcp.NewServer(
		&mcp.Implementation{Name: serverName, Version: serverVersion},
		&mcp.ServerOptions{Instructions: s.instructions()},
	)
	s.registerTools()
	return s
}

// instructions builds the guidance sent to clients during initialization.
func (s *Server) instructions() string {
	var b strings.Builder
	b.WriteString("You are connected to the Versionator MCP server. Use the package registry tools to get ")
	b.WriteString("the latest versions of packages. Follow these rules:\n\n")
	b.WriteString("1) Use get_package_version(package_manager, package_name) for general package queries.\n")
	b.WriteString("2) Use specific registry tools for targeted queries:\n")
	for _, t := range boundTools {
		fmt.Fprintf(&b, "   - %s(%s) for %s\n", t.name, t.argName, t.subject)
	}
	fmt.Fprintf(&b, "3) Supported package managers: %s\n", strings.Join(s.resolver.Names(), ", "))
	b.WriteString("4) Always specify the exact package name you want to query.\n")
	b.WriteString("5) Present version information clearly with package name, version, and registry.\n")
	return b.String()
}
