package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
dev = true

[log]
level = "debug"
format = "json"

[server]
addr = ":9000"

[hub]
base_url = "http://example.com/api"
every = "500ms"

[auth.github]
client_id = "abc123"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.True(t, cfg.Dev)
	require.Equal(t, LogFormatJSON, cfg.Log.Format)
	require.Equal(t, ":9000", cfg.Server.Addr)
	require.Equal(t, "http://example.com/api", cfg.Hub.BaseURL)
	require.Equal(t, 500*time.Millisecond, time.Duration(cfg.Hub.Every))
	require.Equal(t, "abc123", cfg.Auth.GitHub.ClientID)

	// Unset fields keep their defaults.
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 3, cfg.Hub.MaxRetries)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestConfigStringMasksPassword(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.Password = "hunter2"

	require.NotContains(t, cfg.String(), "hunter2")
}
