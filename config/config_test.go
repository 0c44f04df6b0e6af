package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.False(t, cfg.Server.TLS)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("POKERHAND_LOG_LEVEL", "debug")
	t.Setenv("POKERHAND_SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("POKERHAND_SERVER_TLS", "true")
	t.Setenv("POKERHAND_SERVER_SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("POKERHAND_OUTPUT_FORMAT", "json")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.True(t, cfg.Server.TLS)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerhand.yaml")
	content := []byte("log:\n  level: warn\nserver:\n  address: localhost:9999\noutput:\n  format: json\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "localhost:9999", cfg.Server.Address)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout, "unset keys keep their defaults")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerhand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))
	t.Setenv("POKERHAND_LOG_LEVEL", "error")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown log level", map[string]string{"POKERHAND_LOG_LEVEL": "verbose"}},
		{"unknown format", map[string]string{"POKERHAND_OUTPUT_FORMAT": "xml"}},
		{"address without port", map[string]string{"POKERHAND_SERVER_ADDRESS": "localhost"}},
		{"zero shutdown timeout", map[string]string{"POKERHAND_SERVER_SHUTDOWN_TIMEOUT": "0s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(New(), "")
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
		})
	}
}
