// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "0.0.0.0:3001", cfg.Server.Addr())
	assert.Equal(t, 300*time.Second, cfg.Cache.DefaultTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: "",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database.path",
		},
		{
			name:    "non-positive query timeout",
			mutate:  func(c *Config) { c.Database.QueryTimeout = 0 },
			wantErr: "database.query_timeout",
		},
		{
			name:    "cache db out of range",
			mutate:  func(c *Config) { c.Cache.DB = 16 },
			wantErr: "cache.db",
		},
		{
			name:    "cache addr empty when enabled",
			mutate:  func(c *Config) { c.Cache.Addr = "" },
			wantErr: "cache.addr",
		},
		{
			name: "cache settings ignored when disabled",
			mutate: func(c *Config) {
				c.Cache.Enabled = false
				c.Cache.Addr = ""
				c.Cache.DB = 99
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"ECONOSCOPE_SERVER_PORT", "server.port"},
		{"ECONOSCOPE_SERVER_READ_TIMEOUT", "server.read_timeout"},
		{"ECONOSCOPE_DATABASE_PATH", "database.path"},
		{"ECONOSCOPE_DATABASE_QUERY_TIMEOUT", "database.query_timeout"},
		{"ECONOSCOPE_CACHE_DEFAULT_TTL", "cache.default_ttl"},
		{"ECONOSCOPE_LOGGING_LEVEL", "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envTransform(tt.env))
		})
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 4000
database:
  path: /tmp/econ-test.duckdb
cache:
  enabled: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0o600))

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("ECONOSCOPE_SERVER_PORT", "5001")
	t.Setenv("ECONOSCOPE_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Server.Port, "env must override file")
	assert.Equal(t, "/tmp/econ-test.duckdb", cfg.Database.Path, "file must override defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "2GB", cfg.Database.MaxMemory, "defaults survive when unset")
}

func TestLoadCORSOriginsFromEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("database:\n  path: /tmp/econ.duckdb\n"), 0o600))

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("ECONOSCOPE_SERVER_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}
