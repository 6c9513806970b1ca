package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromHCL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "poker-server.hcl")
	hcl := `
server {
  address   = "0.0.0.0"
  port      = 9000
  log_level = "debug"
}

table {
  big_blind      = 40
  seats          = 4
  remote_players = 2
}
`
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 40, cfg.Table.BigBlind)
	assert.Equal(t, 4, cfg.Table.Seats)
	assert.Equal(t, 2, cfg.Table.RemotePlayers)
	assert.Equal(t, 30, cfg.Table.TimeoutSeconds, "timeout defaults when omitted")
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("table {"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"big blind too small", func(c *Config) { c.Table.BigBlind = 1 }},
		{"too few seats", func(c *Config) { c.Table.Seats = 1 }},
		{"too many seats", func(c *Config) { c.Table.Seats = 11 }},
		{"remote players exceed seats", func(c *Config) { c.Table.RemotePlayers = 7 }},
		{"bad timeout", func(c *Config) { c.Table.TimeoutSeconds = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
