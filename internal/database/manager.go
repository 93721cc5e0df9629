// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package database

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/econoscope/econoscope/internal/config"
	"github.com/econoscope/econoscope/internal/logging"
	"github.com/econoscope/econoscope/internal/metrics"
)

// State describes the connection lifecycle.
type State int32

// Connection states. Failed and Disconnected are both re-enterable via
// Connect; Connected transitions back to Disconnected on a connection-class
// query error.
const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateFailed
)

// String returns the lowercase state name for logs and health payloads.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// openFunc opens a database handle for the given DSN. Swappable in tests.
type openFunc func(dsn string) (*sql.DB, error)

// Manager owns the lifecycle of the single embedded DuckDB connection and
// provides Query/QueryOne with reconnect-and-retry on connection loss.
type Manager struct {
	cfg *config.DatabaseConfig

	mu       sync.Mutex
	state    State
	conn     *sql.DB
	inflight chan struct{} // non-nil while a connection attempt is running
	lastErr  error         // outcome of the last finished attempt

	// dispatchMu serializes query dispatch on the single shared connection.
	dispatchMu sync.Mutex

	open openFunc
}

// NewManager creates a manager for the store at cfg.Path. No connection is
// opened until Connect or the first Query.
func NewManager(cfg *config.DatabaseConfig) *Manager {
	return &Manager{
		cfg:   cfg,
		state: StateDisconnected,
		open:  openDuckDB,
	}
}

func openDuckDB(dsn string) (*sql.DB, error) {
	return sql.Open("duckdb", dsn)
}

// dsn builds the DuckDB connection string. The store is always opened
// read-only: this service never writes, only the offline pipeline does.
func (m *Manager) dsn() string {
	threads := m.cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return fmt.Sprintf("%s?access_mode=read_only&threads=%d&max_memory=%s",
		m.cfg.Path, threads, m.cfg.MaxMemory)
}

// State returns the current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connect opens the embedded store if it is not already open. It is
// idempotent: when a connection attempt is already in flight, the caller
// joins that attempt and receives its result rather than racing to open a
// duplicate connection.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	if m.state == StateConnected {
		m.mu.Unlock()
		return nil
	}
	if m.inflight != nil {
		ch := m.inflight
		m.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.state == StateConnected {
			return nil
		}
		return m.lastErr
	}

	ch := make(chan struct{})
	m.inflight = ch
	m.state = StateConnecting
	m.mu.Unlock()

	conn, err := m.openAndVerify(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight = nil
	defer close(ch)

	if err != nil {
		m.state = StateFailed
		m.lastErr = fmt.Errorf("%w: %v", ErrConnect, err)
		metrics.DBConnectFailures.Inc()
		logging.Error().Err(err).Str("path", m.cfg.Path).Msg("Failed to open analytical store")
		return m.lastErr
	}

	m.conn = conn
	m.state = StateConnected
	m.lastErr = nil
	logging.Info().Str("path", m.cfg.Path).Msg("Analytical store connected")
	return nil
}

// openAndVerify opens a handle and pings it before handing it out.
func (m *Manager) openAndVerify(ctx context.Context) (*sql.DB, error) {
	conn, err := m.open(m.dsn())
	if err != nil {
		return nil, err
	}

	// One physical connection. Each statement then runs in its own implicit
	// transaction, which is required because DuckDB rejects overlapping
	// explicit transactions from concurrent callers on a shared handle.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, err
	}
	return conn, nil
}

// markDisconnected drops the current connection after a connection-class
// error so the retry path can re-enter Connect.
func (m *Manager) markDisconnected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn != nil {
		closeQuietly(m.conn)
		m.conn = nil
	}
	m.state = StateDisconnected
}

// HealthCheck issues a trivial query and reports whether it succeeded.
// Used by health endpoints, never by the query path itself.
func (m *Manager) HealthCheck(ctx context.Context) bool {
	_, err := m.QueryOne(ctx, "SELECT 1")
	return err == nil
}

// Close releases the connection. Safe to call when already closed.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		m.state = StateDisconnected
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	m.state = StateDisconnected
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// closeQuietly closes a handle, logging (not returning) any error.
func closeQuietly(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logging.Warn().Err(err).Msg("Error closing database handle")
	}
}
