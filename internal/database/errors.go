// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package database

import (
	"errors"
	"strings"
)

// Error taxonomy for the connection manager.
var (
	// ErrConnect reports that opening the embedded store failed (bad path,
	// lock contention). Recoverable: the next Query call retries Connect.
	ErrConnect = errors.New("database connect failed")

	// ErrConnectionLost reports that a query failed because the connection
	// became invalid mid-use and a single reconnect-and-retry also failed.
	ErrConnectionLost = errors.New("database connection lost")

	// ErrNotConnected reports a dispatch attempt without a live connection.
	// Internal consistency guard; callers should never observe it.
	ErrNotConnected = errors.New("database not connected")
)

// connectionErrorMarkers enumerates the driver and database/sql error texts
// that indicate the connection itself is gone, as opposed to a query-level
// failure. Matching a single code is not enough: the duckdb driver surfaces
// several distinct messages for a dead handle, and missing one would
// silently disable the retry path.
var connectionErrorMarkers = []string{
	"driver: bad connection",
	"bad connection",
	"database is closed",
	"sql: database is closed",
	"connection refused",
	"connection reset",
	"broken pipe",
	"database has been invalidated",
}

// isConnectionError reports whether err indicates the database connection
// is lost or invalid, i.e. whether reconnect-and-retry can help.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range connectionErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
