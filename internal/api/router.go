// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/econoscope/econoscope/internal/config"
	"github.com/econoscope/econoscope/internal/middleware"
)

// NewRouter assembles the full route tree with the global middleware
// stack: request IDs, real client IPs, panic recovery, CORS, rate
// limiting, and per-route Prometheus instrumentation.
func NewRouter(cfg *config.ServerConfig, handler *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	rateWindow := cfg.RateLimitWindow
	if rateWindow <= 0 {
		rateWindow = time.Minute
	}

	// Health endpoints get a generous limit so monitors can poll freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, rateWindow))
		r.Get("/", handler.Health)
		r.Get("/live", handler.HealthLive)
		r.Get("/ready", handler.HealthReady)
	})

	r.Route("/api/v1/analytics", func(r chi.Router) {
		if cfg.RateLimitReqs > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimitReqs, rateWindow))
		}
		r.Use(middleware.PrometheusMetrics)

		r.Route("/business", func(r chi.Router) {
			r.Get("/trends", handler.BusinessTrends)
			r.Get("/venues", handler.BusinessVenues)
			r.Get("/patterns", handler.BusinessPatterns)
		})
		r.Route("/financial", func(r chi.Router) {
			r.Get("/trajectories", handler.FinancialTrajectories)
			r.Get("/wages", handler.FinancialWages)
			r.Get("/cost-of-living", handler.FinancialCostOfLiving)
		})
		r.Route("/employment", func(r chi.Router) {
			r.Get("/employers", handler.EmploymentEmployers)
			r.Get("/turnover", handler.EmploymentTurnover)
			r.Get("/stability", handler.EmploymentStability)
		})
		r.Route("/summary", func(r chi.Router) {
			r.Get("/overview", handler.SummaryOverview)
			r.Get("/monthly", handler.SummaryMonthly)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown endpoint", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	return r
}
