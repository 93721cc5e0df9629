// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

// Package analytics implements the dashboard query services over the
// simulation dataset: business activity, participant finances, employment
// dynamics, and cross-domain summaries. Every read goes through a shared
// cache-aside path so equivalent requests hit DuckDB once per TTL window.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/econoscope/econoscope/internal/cache"
	"github.com/econoscope/econoscope/internal/database"
	"github.com/econoscope/econoscope/internal/serialize"
)

// ErrDataUnavailable reports that the analytical store cannot serve the
// query right now. The route layer maps it to 503.
var ErrDataUnavailable = errors.New("analytics: data unavailable")

// Store is the read interface the services need from the database manager.
type Store interface {
	Query(ctx context.Context, query string, args ...interface{}) ([]database.Row, error)
	QueryOne(ctx context.Context, query string, args ...interface{}) (database.Row, error)
}

// Cacher is the subset of the cache manager the services use.
type Cacher interface {
	GetJSON(ctx context.Context, key string, dest interface{}) bool
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) bool
}

// Result is a materialized endpoint payload. Cached reports whether it was
// served from the cache tier.
type Result struct {
	Rows   []map[string]interface{}
	Cached bool
}

// Service answers the analytics queries for all four dashboard domains.
type Service struct {
	store Store
	cache Cacher
}

// NewService wires a service to its store and cache.
func NewService(store Store, cache Cacher) *Service {
	return &Service{store: store, cache: cache}
}

// Endpoint TTLs. Simulation data only changes when the offline pipeline
// republishes, so these trade a few minutes of staleness for load.
const (
	ttlTrends  = 10 * time.Minute
	ttlDetail  = 15 * time.Minute
	ttlSummary = 20 * time.Minute
)

// rows runs the shared cache-aside read path. On a hit the cached payload
// is returned unchanged. On a miss the query runs through the store, the
// rows are normalized for JSON, and the result is cached best-effort.
func (s *Service) rows(ctx context.Context, namespace string, ttl time.Duration, f Filter, query string, args []interface{}) (*Result, error) {
	key := cache.GenerateKey(namespace, f.Params())

	var cached []map[string]interface{}
	if s.cache.GetJSON(ctx, key, &cached) {
		return &Result{Rows: cached, Cached: true}, nil
	}

	raw, err := s.store.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyStoreError(err)
	}

	normalized := serialize.Rows(raw)
	s.cache.SetJSON(ctx, key, normalized, ttl)
	return &Result{Rows: normalized}, nil
}

// classifyStoreError separates "the store is down" from "the query is
// wrong". Connection-class failures become ErrDataUnavailable; anything
// else is a genuine query error and keeps its cause.
func classifyStoreError(err error) error {
	if errors.Is(err, database.ErrConnect) ||
		errors.Is(err, database.ErrConnectionLost) ||
		errors.Is(err, database.ErrNotConnected) {
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return err
}

// monthRange appends month bound conditions for the given column.
func monthRange(conditions []string, args []interface{}, column string, f Filter) ([]string, []interface{}) {
	if f.FromMonth != "" {
		conditions = append(conditions, column+" >= ?")
		args = append(args, f.FromMonth)
	}
	if f.ToMonth != "" {
		conditions = append(conditions, column+" <= ?")
		args = append(args, f.ToMonth)
	}
	return conditions, args
}

// whereClause joins conditions into a WHERE clause, or returns "" when
// unfiltered.
func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}
