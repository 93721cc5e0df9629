// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

// Package metrics exposes Prometheus instrumentation for the analytics
// data path: DuckDB query performance, connection recovery, cache
// efficiency and HTTP endpoint latency.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database metrics
	DBQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"class"}, // "connection" or "query"
	)

	DBReconnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "duckdb_reconnects_total",
			Help: "Total number of reconnect-and-retry cycles",
		},
	)

	DBConnectFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "duckdb_connect_failures_total",
			Help: "Total number of failed connection attempts",
		},
	)

	// Cache metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"namespace"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"namespace"},
	)

	CacheErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_errors_total",
			Help: "Total number of swallowed cache backend errors",
		},
	)

	CacheAvailable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_available",
			Help: "Whether the cache backend is currently reachable (1) or not (0)",
		},
	)

	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"path", "method", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(path, method string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// SetCacheAvailable reflects the cache breaker state into the gauge.
func SetCacheAvailable(available bool) {
	if available {
		CacheAvailable.Set(1)
		return
	}
	CacheAvailable.Set(0)
}
