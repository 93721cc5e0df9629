// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

// Econoscope serves the analytics API over a simulation dataset published
// by the offline preprocessing pipeline as a DuckDB file.
//
// Configuration is layered: built-in defaults, then an optional YAML file
// (CONFIG_PATH or ./config.yaml), then ECONOSCOPE_* environment variables.
//
//	ECONOSCOPE_DATABASE_PATH=/data/economic.duckdb \
//	ECONOSCOPE_CACHE_ADDR=localhost:6379 \
//	econoscope
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/econoscope/econoscope/internal/analytics"
	"github.com/econoscope/econoscope/internal/api"
	"github.com/econoscope/econoscope/internal/cache"
	"github.com/econoscope/econoscope/internal/config"
	"github.com/econoscope/econoscope/internal/database"
	"github.com/econoscope/econoscope/internal/logging"
	"github.com/econoscope/econoscope/internal/supervisor"
	"github.com/econoscope/econoscope/internal/supervisor/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("Starting Econoscope")

	// The analytical store connects lazily; a missing data file at boot is
	// a warning, not a crash, so the service can come up before the
	// pipeline publishes its first dataset.
	db := database.NewManager(&cfg.Database)
	if err := db.Connect(context.Background()); err != nil {
		logging.Warn().Err(err).Msg("Analytical store not reachable yet, will retry on demand")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing analytical store")
		}
	}()

	cacheManager := cache.New(&cfg.Cache)
	defer func() {
		if err := cacheManager.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache")
		}
	}()
	if cfg.Cache.Enabled {
		logging.Info().Str("addr", cfg.Cache.Addr).Msg("Redis cache enabled")
	} else {
		logging.Info().Msg("Cache disabled, queries go straight to the store")
	}

	service := analytics.NewService(db, cacheManager)
	handler := api.NewHandler(service, db, cacheManager, version)
	router := api.NewRouter(&cfg.Server, handler)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if cacheManager.Enabled() {
		tree.AddMaintenanceService(cache.NewProbeService(cacheManager, cfg.Cache.ProbeInterval))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Serving analytics API")
	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
	}

	logging.Info().Msg("Shutdown complete")
}
