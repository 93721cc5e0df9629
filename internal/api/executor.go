// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/econoscope/econoscope/internal/analytics"
	"github.com/econoscope/econoscope/internal/logging"
	"github.com/econoscope/econoscope/internal/models"
)

// queryFunc is a filtered analytics service call.
type queryFunc func(ctx context.Context, f analytics.Filter) (*analytics.Result, error)

// execute is the shared request path for filtered analytics endpoints:
// parse and validate filters, run the service call, time it, and map the
// error taxonomy onto HTTP statuses. Handlers stay one-liners.
func (h *Handler) execute(w http.ResponseWriter, r *http.Request, query queryFunc) {
	filter, verr := analytics.ParseFilter(r.URL.Query())
	if verr != nil {
		apiErr := verr.ToAPIError()
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			},
		})
		return
	}

	start := time.Now()
	result, err := query(r.Context(), filter)
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	metadata := models.Metadata{Timestamp: time.Now(), Cached: result.Cached}
	if !result.Cached {
		metadata.QueryTimeMS = time.Since(start).Milliseconds()
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     result.Rows,
		Metadata: metadata,
	})
}

// executeUnfiltered serves endpoints that take no query filters.
func (h *Handler) executeUnfiltered(w http.ResponseWriter, r *http.Request, query func(ctx context.Context) (interface{}, bool, error)) {
	start := time.Now()
	data, cached, err := query(r.Context())
	if err != nil {
		h.respondQueryError(w, r, err)
		return
	}

	metadata := models.Metadata{Timestamp: time.Now(), Cached: cached}
	if !cached {
		metadata.QueryTimeMS = time.Since(start).Milliseconds()
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: metadata,
	})
}

// respondQueryError maps service errors to API errors without leaking
// internals to clients. The cause is logged with the request ID.
func (h *Handler) respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.Ctx(r.Context())
	logger.Error().Err(err).
		Str("path", r.URL.Path).
		Msg("Analytics query failed")

	if errors.Is(err, analytics.ErrDataUnavailable) {
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE",
			"Analytics data is temporarily unavailable", nil)
		return
	}
	respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
		"Failed to execute analytics query", nil)
}
