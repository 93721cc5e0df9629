// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"sync"
)

// Scripted database/sql driver used to exercise the connection manager
// without a real DuckDB file. Each fakeConn answers queries from a
// caller-supplied function, so tests can simulate connection loss,
// query errors and result sets deterministically.

type queryFunc func(query string, args []driver.NamedValue) (driver.Rows, error)

type fakeConn struct {
	query   queryFunc
	pingErr error
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (c *fakeConn) Close() error                        { return nil }
func (c *fakeConn) Begin() (driver.Tx, error)           { return nil, driver.ErrSkip }

func (c *fakeConn) Ping(context.Context) error { return c.pingErr }

func (c *fakeConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	return c.query(query, args)
}

type fakeConnector struct {
	conn       *fakeConn
	connectErr error
}

func (f *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	if f.connectErr != nil {
		return nil, f.connectErr
	}
	return f.conn, nil
}

func (f *fakeConnector) Driver() driver.Driver { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) { return nil, driver.ErrSkip }

type fakeRows struct {
	cols []string
	vals [][]driver.Value
	pos  int
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.vals) {
		return io.EOF
	}
	copy(dest, r.vals[r.pos])
	r.pos++
	return nil
}

// staticRows builds a one-shot cursor over the given values.
func staticRows(cols []string, vals ...[]driver.Value) *fakeRows {
	return &fakeRows{cols: cols, vals: vals}
}

// fakeDB wraps a scripted connection in a *sql.DB.
func fakeDB(conn *fakeConn) *sql.DB {
	return sql.OpenDB(&fakeConnector{conn: conn})
}

// openCounter wraps a sequence of open outcomes and counts invocations.
type openCounter struct {
	mu    sync.Mutex
	calls int
	next  func(attempt int) (*sql.DB, error)
	gate  chan struct{} // when non-nil, open blocks until the gate closes
}

func (o *openCounter) open(string) (*sql.DB, error) {
	o.mu.Lock()
	o.calls++
	attempt := o.calls
	gate := o.gate
	o.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return o.next(attempt)
}

func (o *openCounter) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}
