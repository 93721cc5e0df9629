// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

// Package api provides the HTTP surface of the dashboard backend: chi
// routing, the shared query executor, and the health endpoints.
package api

import (
	"context"
	"net/http"

	"github.com/econoscope/econoscope/internal/analytics"
	"github.com/econoscope/econoscope/internal/database"
)

// CacheStatus is what the health endpoints need from the cache tier.
type CacheStatus interface {
	Enabled() bool
	IsAvailable(ctx context.Context) bool
}

// StoreStatus is what the health endpoints need from the database manager.
type StoreStatus interface {
	State() database.State
	HealthCheck(ctx context.Context) bool
}

// Handler owns the dependencies of every route.
type Handler struct {
	service *analytics.Service
	db      StoreStatus
	cache   CacheStatus
	version string
}

// NewHandler wires a handler to its services.
func NewHandler(service *analytics.Service, db StoreStatus, cache CacheStatus, version string) *Handler {
	return &Handler{
		service: service,
		db:      db,
		cache:   cache,
		version: version,
	}
}

// Business endpoints.

func (h *Handler) BusinessTrends(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.BusinessTrends)
}

func (h *Handler) BusinessVenues(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.BusinessVenues)
}

func (h *Handler) BusinessPatterns(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.BusinessPatterns)
}

// Financial endpoints.

func (h *Handler) FinancialTrajectories(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.FinancialTrajectories)
}

func (h *Handler) FinancialWages(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.FinancialWages)
}

func (h *Handler) FinancialCostOfLiving(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.FinancialCostOfLiving)
}

// Employment endpoints.

func (h *Handler) EmploymentEmployers(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.EmploymentEmployers)
}

func (h *Handler) EmploymentTurnover(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.EmploymentTurnover)
}

func (h *Handler) EmploymentStability(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.EmploymentStability)
}

// Summary endpoints.

func (h *Handler) SummaryMonthly(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.service.SummaryMonthly)
}

func (h *Handler) SummaryOverview(w http.ResponseWriter, r *http.Request) {
	h.executeUnfiltered(w, r, func(ctx context.Context) (interface{}, bool, error) {
		return h.service.SummaryOverview(ctx)
	})
}
