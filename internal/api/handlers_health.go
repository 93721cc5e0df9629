// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package api

import (
	"net/http"
	"time"

	"github.com/econoscope/econoscope/internal/models"
)

// HealthLive is the liveness probe: the process is up and serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady is the readiness probe: 200 only when the analytical store
// answers queries. An unready instance is pulled from rotation rather than
// serving DATA_UNAVAILABLE to every request.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.db.HealthCheck(r.Context()) {
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE",
			"Analytical store is not ready", nil)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "ready"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Health is the full diagnostic payload: store state, cache availability,
// and dataset coverage. Always 200; the body carries the degradation
// detail so dashboards can render a status banner.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reachable := h.db.HealthCheck(ctx)

	status := models.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Database: models.DatabaseHealth{
			State:     h.db.State().String(),
			Reachable: reachable,
		},
		Cache: models.CacheHealth{
			Enabled:   h.cache.Enabled(),
			Available: h.cache.IsAvailable(ctx),
		},
	}

	if !reachable {
		status.Status = "degraded"
	} else if status.Cache.Enabled && !status.Cache.Available {
		status.Status = "degraded"
	}

	if reachable {
		if coverage, err := h.service.DatasetCoverage(ctx); err == nil && coverage != nil {
			status.Dataset = datasetSummary(coverage)
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     status,
		Metadata: models.Metadata{Timestamp: status.Timestamp},
	})
}

// datasetSummary converts the coverage row into the health payload shape.
func datasetSummary(coverage map[string]interface{}) *models.DatasetSummary {
	summary := &models.DatasetSummary{}
	if v, ok := coverage["latest_month"].(string); ok {
		summary.LatestMonth = v
	}
	summary.MonthCount = asInt64(coverage["month_count"])
	summary.BusinessRows = asInt64(coverage["business_rows"])
	summary.FinancialRows = asInt64(coverage["financial_rows"])
	return summary
}

// asInt64 reads a normalized numeric column.
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	default:
		return 0
	}
}
