// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/econoscope/econoscope/internal/logging"
	"github.com/econoscope/econoscope/internal/metrics"
)

// Row is a single result row keyed by column name.
type Row = map[string]interface{}

// Query executes a parameterized read query and returns all rows.
//
// A connection is established on demand. Dispatch is exclusive: only one
// query runs on the shared connection at a time, so overlapping callers
// queue on the mutex instead of triggering DuckDB transaction conflicts.
//
// On a connection-class error the manager reconnects and retries the same
// query exactly once. A second connection failure surfaces as
// ErrConnectionLost; every other error class is returned without retry.
func (m *Manager) Query(ctx context.Context, query string, args ...interface{}) ([]Row, error) {
	if err := m.Connect(ctx); err != nil {
		return nil, err
	}

	m.dispatchMu.Lock()
	defer m.dispatchMu.Unlock()

	rows, err := m.run(ctx, query, args)
	if err == nil {
		return rows, nil
	}
	if !isConnectionError(err) {
		metrics.DBQueryErrors.WithLabelValues("query").Inc()
		return nil, fmt.Errorf("query failed: %w", err)
	}

	logging.Warn().Err(err).Msg("Connection-class query failure, reconnecting once")
	metrics.DBQueryErrors.WithLabelValues("connection").Inc()
	metrics.DBReconnects.Inc()
	m.markDisconnected()

	if cerr := m.Connect(ctx); cerr != nil {
		return nil, cerr
	}
	rows, err = m.run(ctx, query, args)
	if err != nil {
		if isConnectionError(err) {
			m.markDisconnected()
			return nil, fmt.Errorf("%w: %v", ErrConnectionLost, err)
		}
		metrics.DBQueryErrors.WithLabelValues("query").Inc()
		return nil, fmt.Errorf("query failed after reconnect: %w", err)
	}
	return rows, nil
}

// QueryOne executes a query and returns its first row, or nil when the
// result set is empty. Zero rows is not an error.
func (m *Manager) QueryOne(ctx context.Context, query string, args ...interface{}) (Row, error) {
	rows, err := m.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// run dispatches a single query against the current connection.
func (m *Manager) run(ctx context.Context, query string, args []interface{}) ([]Row, error) {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return nil, ErrNotConnected
	}

	timeout := m.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	rows, err := conn.QueryContext(qctx, query, args...)
	metrics.DBQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Error closing result rows")
		}
	}()

	return scanRows(rows)
}

// scanRows materializes a sql.Rows cursor into generic rows.
func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	out := make([]Row, 0, 16)
	values := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			// The driver hands TEXT columns back as []byte.
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}
	return out, nil
}
