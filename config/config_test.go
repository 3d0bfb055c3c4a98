package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8083, cfg.Port)
	assert.Equal(t, "localhost", cfg.ExternalIP)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("VERSIONATOR_REQUEST_TIMEOUT", "5")
	t.Setenv("MCP_TRANSPORT", "stdio")
	t.Setenv("MCP_HOST", "127.0.0.1")
	t.Setenv("MCP_PORT", "9000")
	t.Setenv("EXTERNAL_IP", "10.0.0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "10.0.0.5", cfg.ExternalIP)
}

func TestLoad_InvalidTransport(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "websocket")

	_, err := Load()
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "transport")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("MCP_PORT", "70000")

	_, err := Load()
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "port")
}

func TestLoad_TimeoutTooSmall(t *testing.T) {
	t.Setenv("VERSIONATOR_REQUEST_TIMEOUT", "0")

	_, err := Load()
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "timeout")
}

func TestValidate(t *testing.T) {
	valid := Config{
		RequestTimeout: time.Second,
		Transport:      TransportHTTP,
		Host:           "0.0.0.0",
		Port:           8083,
	}
	require.NoError(t, valid.Validate())

	noHost := valid
	noHost.Host = ""
	assert.ErrorIs(t, noHost.Validate(), ErrConfiguration)
}

func TestAddr(t *testing.T) {
	cfg := Config{Host: "0.0.0.0", Port: 8083}
	assert.Equal(t, "0.0.0.0:8083", cfg.Addr())
}
