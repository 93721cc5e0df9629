// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

// Package models defines the wire types shared by the API handlers.
package models

import "time"

// APIResponse is the envelope for every analytics endpoint.
//
// Status is "success" or "error". Data carries the endpoint payload and is
// null on errors; Error is set only on errors.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata reports when and how a response was produced. QueryTimeMS is the
// database execution time in milliseconds and stays 0 for cache hits.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a structured error payload.
//
// Codes used by this service:
//   - VALIDATION_ERROR: invalid request parameters
//   - DATA_UNAVAILABLE: the analytical store cannot serve the query
//   - DATABASE_ERROR: query execution failed
//   - NOT_FOUND: unknown route
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the full /api/v1/health payload.
type HealthStatus struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Version   string          `json:"version"`
	Database  DatabaseHealth  `json:"database"`
	Cache     CacheHealth     `json:"cache"`
	Dataset   *DatasetSummary `json:"dataset,omitempty"`
}

// DatabaseHealth reports analytical store connectivity.
type DatabaseHealth struct {
	State     string `json:"state"`
	Reachable bool   `json:"reachable"`
}

// CacheHealth reports Redis cache state. A disabled cache is healthy: the
// service degrades to direct queries.
type CacheHealth struct {
	Enabled   bool `json:"enabled"`
	Available bool `json:"available"`
}

// DatasetSummary describes the loaded simulation dataset, for dashboards to
// label their time axis and detect a stale data file.
type DatasetSummary struct {
	LatestMonth   string `json:"latest_month"`
	MonthCount    int64  `json:"month_count"`
	BusinessRows  int64  `json:"business_rows"`
	FinancialRows int64  `json:"financial_rows"`
}
