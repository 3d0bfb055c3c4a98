// Package config loads server configuration from the environment. It is
// read once at startup; the resulting Config is never mutated afterwards.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrConfiguration indicates an invalid or inconsistent configuration.
var ErrConfiguration = errors.New("configuration error")

// Transport selects how the MCP server is exposed.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds the configuration for the versionator server.
type Config struct {
	// RequestTimeout bounds each upstream registry call.
	RequestTimeout time.Duration

	// Transport is the MCP transport, TransportStdio or TransportHTTP.
	Transport string

	// Host is the listen address for the HTTP transport.
	Host string

	// Port is the listen port for the HTTP transport.
	Port int

	// ExternalIP is the address advertised in the startup banner. It has
	// no effect on what the server binds to.
	ExternalIP string
}

// Load reads configuration from the environment:
//
//	VERSIONATOR_REQUEST_TIMEOUT  upstream timeout in seconds (default 30)
//	MCP_TRANSPORT                stdio or http (default http)
//	MCP_HOST                     HTTP listen address (default 0.0.0.0)
//	MCP_PORT                     HTTP listen port (default 8083)
//	EXTERNAL_IP                  advertised address (default localhost)
//
// The returned Config is validated.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("versionator_request_timeout", 30)
	v.SetDefault("mcp_transport", TransportHTTP)
	v.SetDefault("mcp_host", "0.0.0.0")
	v.SetDefault("mcp_port", 8083)
	v.SetDefault("external_ip", "localhost")

	cfg := Config{
		RequestTimeout: time.Duration(v.GetInt("versionator_request_timeout")) * time.Second,
		Transport:      v.GetString("mcp_transport"),
		Host:           v.GetString("mcp_host"),
		Port:           v.GetInt("mcp_port"),
		ExternalIP:     v.GetString("external_ip"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all fields hold usable values.
// Returns ErrConfiguration on the first violation.
func (c *Config) Validate() error {
	if c.RequestTimeout < time.Second {
		return fmt.Errorf("%w: request timeout must be at least 1s, got %s",
			ErrConfiguration, c.RequestTimeout)
	}
	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		return fmt.Errorf("%w: transport must be %q or %q, got %q",
			ErrConfiguration, TransportStdio, TransportHTTP, c.Transport)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port must be in 1-65535, got %d",
			ErrConfiguration, c.Port)
	}
	if c.Host == "" {
		return fmt.Errorf("%w: host cannot be empty", ErrConfiguration)
	}
	return nil
}

// Addr returns the host:port the HTTP transport listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
