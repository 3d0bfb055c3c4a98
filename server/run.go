package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/versionator/config"
)

// shutdownGrace bounds how long in-flight HTTP requests may run after
// the context is cancelled.
const shutdownGrace = 5 * time.Second

// Run serves MCP over the configured transport until ctx is cancelled or
// the transport fails.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("versionator MCP server starting",
		"transport", s.cfg.Transport,
		"registries", len(s.resolver.Registries()),
		"request_timeout", s.resolver.Timeout(),
	)

	if s.cfg.Transport == config.TransportStdio {
		return s.mcp.Run(ctx, &mcp.StdioTransport{})
	}
	return s.runHTTP(ctx)
}

// runHTTP serves the streamable HTTP transport on the /mcp endpoint.
func (s *Server) runHTTP(ctx context.Context) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)

	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: mux,
	}

	s.log.Info("listening",
		"addr", s.cfg.Addr(),
		"endpoint", fmt.Sprintf("http://%s:%d/mcp", s.cfg.ExternalIP, s.cfg.Port),
	)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
