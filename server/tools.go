package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/versionator/registry"
)

// boundTool describes a tool pinned to one registry. The argument name
// varies per tool so each reads naturally for its ecosystem.
type boundTool struct {
	name     string
	registry string
	argName  string
	argDesc  string
	subject  string
}

var boundTools = []boundTool{
	{"get_npm_package", "npm", "package_name", "The npm package name", "npm packages"},
	{"get_ruby_gem", "rubygems", "gem_name", "The RubyGems package name", "Ruby gems"},
	{"get_python_package", "pypi", "package_name", "The PyPI package name", "PyPI packages"},
	{"get_elixir_package", "hex", "package_name", "The Hex package name", "Hex packages"},
	{"get_rust_crate", "crates", "crate_name", "The crate name", "Rust crates"},
	{"get_bioconda_package", "bioconda", "package_name", "The Bioconda package name", "Bioconda packages"},
	{"get_r_package", "cran", "package_name", "The CRAN package name", "R/CRAN packages"},
	{"get_terraform_provider", "terraform", "provider_path", `The provider path (e.g., "hashicorp/aws")`, "Terraform providers"},
	{"get_docker_image", "dockerhub", "image_name", `The Docker image name (e.g., "nginx", "grafana/loki")`, "Docker images"},
	{"get_perl_module", "cpan", "module_name", "The CPAN module name", "Perl/CPAN modules"},
	{"get_go_module", "go", "module_path", `The Go module path (e.g., "github.com/gin-gonic/gin")`, "Go modules"},
	{"get_php_package", "composer", "package_name", `The Composer package name (vendor/package)`, "PHP/Composer packages"},
	{"get_dotnet_package", "nuget", "package_name", "The NuGet package ID", ".NET/NuGet packages"},
	{"get_homebrew_formula", "homebrew", "formula_name", "The Homebrew formula name", "Homebrew formulas"},
	{"get_nextflow_pipeline", "nextflow", "pipeline_name", `The pipeline name (e.g., "nf-core/rnaseq")`, "Nextflow pipelines"},
	{"get_nfcore_module", "nf-core-module", "module_name", `The module name (e.g., "fastqc", "bwa/mem")`, "nf-core modules"},
	{"get_nfcore_subworkflow", "nf-core-subworkflow", "subworkflow_name", `The subworkflow name (e.g., "bam_sort_stats_samtools")`, "nf-core subworkflows"},
	{"get_swift_package", "swift", "package_name", `The Swift package (owner/repo)`, "Swift packages"},
	{"get_maven_artifact", "maven", "artifact_name", "The Maven artifact (groupId:artifactId)", "Maven artifacts"},
}

// registerTools adds the generic dispatcher, one tool per registry, and
// the health check.
func (s *Server) registerTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_package_version",
		Description: "Get the latest version of a package from the specified registry.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"package_manager": map[string]any{
					"type":        "string",
					"description": "The package manager/registry name or alias",
				},
				"package_name": map[string]any{
					"type":        "string",
					"description": "The name of the package to query",
				},
			},
			"required": []any{"package_manager", "package_name"},
		},
	}, s.handleGetPackageVersion)

	for _, t := range boundTools {
		s.mcp.AddTool(&mcp.Tool{
			Name:        t.name,
			Description: fmt.Sprintf("Get the latest version of %s.", t.subject),
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					t.argName: map[string]any{
						"type":        "string",
						"description": t.argDesc,
					},
				},
				"required": []any{t.argName},
			},
		}, s.boundHandler(t))
	}

	s.mcp.AddTool(&mcp.Tool{
		Name:        "health_check",
		Description: "Health check endpoint for Docker and monitoring",
		InputSchema: map[string]any{"type": "object"},
	}, s.handleHealthCheck)
}

// handleGetPackageVersion dispatches a query by registry name or alias.
func (s *Server) handleGetPackageVersion(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decodeArgs(req)
	if err != nil {
		return errorResult(err), nil
	}
	return s.resolve(ctx, args["package_manager"], args["package_name"]), nil
}

// boundHandler builds the handler for a tool pinned to one registry.
func (s *Server) boundHandler(t boundTool) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArgs(req)
		if err != nil {
			return errorResult(err), nil
		}
		return s.resolve(ctx, t.registry, args[t.argName]), nil
	}
}

func (s *Server) handleHealthCheck(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"status":    "healthy",
		"service":   serverName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}), nil
}

// resolve runs one query and serializes the outcome, success or failure,
// as a tool result.
func (s *Server) resolve(ctx context.Context, name, pkg string) *mcp.CallToolResult {
	rec, err := s.resolver.Resolve(ctx, name, pkg)
	if err != nil {
		s.log.Warn("resolution failed", "registry", name, "package", pkg, "error", err)
		return errorResult(err)
	}
	s.log.Info("resolved", "registry", rec.Registry, "package", rec.Name, "version", rec.Version)
	return jsonResult(rec)
}

func decodeArgs(req *mcp.CallToolRequest) (map[string]string, error) {
	args := make(map[string]string)
	if len(req.Params.Arguments) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return args, nil
}

// jsonResult serializes v as the single text content of a success result.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(fmt.Errorf("encoding result: %w", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

// errorPayload is the wire shape of a failed resolution.
type errorPayload struct {
	Message  string `json:"message"`
	Registry string `json:"registry,omitempty"`
	Package  string `json:"package,omitempty"`
}

// errorResult serializes err as a tool error. Classified resolver errors
// carry their registry and package context onto the wire.
func errorResult(err error) *mcp.CallToolResult {
	payload := errorPayload{Message: err.Error()}
	var rerr *registry.Error
	if errors.As(err, &rerr) {
		payload.Registry = rerr.Registry
		payload.Package = rerr.Package
	}
	data, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}
