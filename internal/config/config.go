// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

// Package config defines the Econoscope configuration and loads it from
// layered sources (struct defaults, optional YAML file, environment).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Econoscope server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	// RateLimitReqs is the per-IP request budget per RateLimitWindow.
	// 0 disables rate limiting.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds settings for the embedded DuckDB analytical store.
// The store is produced by the offline preprocessing pipeline and is opened
// strictly read-only by this service.
type DatabaseConfig struct {
	// Path is the location of the single-file DuckDB database.
	Path string `koanf:"path"`
	// MaxMemory caps DuckDB's memory usage (e.g. "2GB").
	MaxMemory string `koanf:"max_memory"`
	// Threads is the DuckDB thread count. 0 = runtime.NumCPU().
	Threads int `koanf:"threads"`
	// QueryTimeout bounds a single analytical query.
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// CacheConfig holds settings for the Redis cache tier. The cache is a
// latency optimization only; the service stays correct with Enabled=false
// or with an unreachable Redis.
type CacheConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Addr         string        `koanf:"addr"`
	Password     string        `koanf:"password"`
	DB           int           `koanf:"db"`
	DefaultTTL   time.Duration `koanf:"default_ttl"`
	DialTimeout  time.Duration `koanf:"dial_timeout"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	PoolSize     int           `koanf:"pool_size"`
	// ProbeInterval is how often the background availability probe pings Redis.
	ProbeInterval time.Duration `koanf:"probe_interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3001,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   300,
			RateLimitWindow: time.Minute,
		},
		Database: DatabaseConfig{
			Path:         "/data/economic.duckdb",
			MaxMemory:    "2GB",
			Threads:      0, // 0 = use runtime.NumCPU()
			QueryTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:       true,
			Addr:          "localhost:6379",
			Password:      "",
			DB:            0,
			DefaultTTL:    300 * time.Second,
			DialTimeout:   5 * time.Second,
			ReadTimeout:   3 * time.Second,
			WriteTimeout:  3 * time.Second,
			PoolSize:      10,
			ProbeInterval: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for values that cannot work at runtime.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path cannot be empty")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be positive, got %v", c.Database.QueryTimeout)
	}
	if c.Cache.Enabled {
		if c.Cache.Addr == "" {
			return fmt.Errorf("cache.addr cannot be empty when cache is enabled")
		}
		if c.Cache.DB < 0 || c.Cache.DB > 15 {
			return fmt.Errorf("cache.db must be between 0 and 15, got %d", c.Cache.DB)
		}
		if c.Cache.DefaultTTL <= 0 {
			return fmt.Errorf("cache.default_ttl must be positive, got %v", c.Cache.DefaultTTL)
		}
		if c.Cache.PoolSize <= 0 {
			return fmt.Errorf("cache.pool_size must be positive, got %d", c.Cache.PoolSize)
		}
	}
	return nil
}
