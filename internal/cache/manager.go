// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/econoscope/econoscope/internal/config"
	"github.com/econoscope/econoscope/internal/logging"
	"github.com/econoscope/econoscope/internal/metrics"
)

// Manager is the best-effort cache facade used by the analytics services.
// A nil-store (disabled) manager is fully functional: every read misses and
// every write is a no-op.
type Manager struct {
	store   store
	breaker *gobreaker.CircuitBreaker[[]byte]
	ttl     time.Duration
}

// New connects a cache manager to the Redis instance in cfg. The connection
// is lazy; the first operation or availability probe establishes it.
func New(cfg *config.CacheConfig) *Manager {
	if !cfg.Enabled {
		return NewDisabled()
	}
	return newWithStore(newRedisStore(cfg), cfg.DefaultTTL)
}

// NewDisabled returns a manager with no backing store. All reads miss and
// all writes are dropped, which keeps call sites free of enabled checks.
func NewDisabled() *Manager {
	return &Manager{}
}

func newWithStore(s store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	m := &Manager{store: s, ttl: ttl}
	m.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "redis-cache",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			// A miss is a healthy answer, not a Redis failure.
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Cache circuit breaker state changed")
			metrics.SetCacheAvailable(to == gobreaker.StateClosed)
		},
	})
	return m
}

// Enabled reports whether a backing store is configured.
func (m *Manager) Enabled() bool {
	return m.store != nil
}

// Get returns the cached bytes for key. The second return is false on a
// miss, a Redis failure, or an open breaker.
func (m *Manager) Get(ctx context.Context, key string) ([]byte, bool) {
	if m.store == nil {
		return nil, false
	}
	data, err := m.breaker.Execute(func() ([]byte, error) {
		return m.store.Get(ctx, key)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			metrics.CacheMisses.WithLabelValues(namespaceOf(key)).Inc()
		} else {
			m.recordError(err, "get", key)
		}
		return nil, false
	}
	metrics.CacheHits.WithLabelValues(namespaceOf(key)).Inc()
	return data, true
}

// GetJSON reads key and unmarshals it into dest. Returns false on a miss or
// when the stored payload does not decode; a poison value is deleted so the
// next request repopulates it.
func (m *Manager) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	data, ok := m.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
		m.Delete(ctx, key)
		return false
	}
	return true
}

// Set stores value under key with the given TTL and reports whether the
// write is believed to have reached Redis. A non-positive ttl uses the
// configured default. Failures are absorbed and reported as false.
func (m *Manager) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if m.store == nil {
		return false
	}
	if ttl <= 0 {
		ttl = m.ttl
	}
	_, err := m.breaker.Execute(func() ([]byte, error) {
		return nil, m.store.Set(ctx, key, value, ttl)
	})
	if err != nil {
		m.recordError(err, "set", key)
		return false
	}
	return true
}

// SetJSON marshals v and stores it under key, reporting write success. An
// unmarshalable value is logged and skipped.
func (m *Manager) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) bool {
	if m.store == nil {
		return false
	}
	data, err := json.Marshal(v)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Failed to marshal value for cache")
		return false
	}
	return m.Set(ctx, key, data, ttl)
}

// Delete removes the given keys and reports whether the removal reached
// Redis. Failures are absorbed and reported as false.
func (m *Manager) Delete(ctx context.Context, keys ...string) bool {
	if m.store == nil || len(keys) == 0 {
		return false
	}
	_, err := m.breaker.Execute(func() ([]byte, error) {
		return nil, m.store.Del(ctx, keys...)
	})
	if err != nil {
		m.recordError(err, "del", keys[0])
		return false
	}
	return true
}

// ClearPrefix invalidates every key in a namespace, e.g. after the offline
// pipeline republishes a dataset. Returns the number of keys removed.
func (m *Manager) ClearPrefix(ctx context.Context, prefix string) int {
	if m.store == nil {
		return 0
	}
	var cleared int
	_, err := m.breaker.Execute(func() ([]byte, error) {
		keys, err := m.store.ScanKeys(ctx, prefix+":*")
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, nil
		}
		if err := m.store.Del(ctx, keys...); err != nil {
			return nil, err
		}
		cleared = len(keys)
		return nil, nil
	})
	if err != nil {
		m.recordError(err, "clear", prefix)
		return 0
	}
	if cleared > 0 {
		logging.Info().Str("prefix", prefix).Int("keys", cleared).Msg("Cleared cache namespace")
	}
	return cleared
}

// IsAvailable reports whether Redis currently answers PING. Disabled
// managers report false.
func (m *Manager) IsAvailable(ctx context.Context) bool {
	if m.store == nil {
		return false
	}
	_, err := m.breaker.Execute(func() ([]byte, error) {
		return nil, m.store.Ping(ctx)
	})
	metrics.SetCacheAvailable(err == nil)
	return err == nil
}

// Close releases the Redis connection pool.
func (m *Manager) Close() error {
	if m.store == nil {
		return nil
	}
	return m.store.Close()
}

func (m *Manager) recordError(err error, op, key string) {
	metrics.CacheErrors.Inc()
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		// Breaker is shedding load; the state change was already logged.
		return
	}
	logging.Warn().Err(err).Str("op", op).Str("key", key).Msg("Cache operation failed")
}
