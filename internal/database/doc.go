// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

// Package database manages the single read-only connection to the embedded
// DuckDB analytical store.
//
// The store is a single file produced by the offline preprocessing pipeline
// (schemas business, financial, employment, summaries). This package owns
// exactly one connection to it for the process lifetime and provides
// resilient query execution on top:
//
//   - Concurrent Connect calls join a single in-flight connection attempt,
//     so at most one physical connection is ever opened.
//   - Query dispatch is serialized with a mutex. DuckDB rejects overlapping
//     statements on one connection as transaction conflicts; exclusive
//     dispatch is the correctness boundary for a single shared handle.
//   - A query that fails with a connection-class error is retried exactly
//     once after a reconnect. Any other failure is surfaced immediately:
//     retrying a genuine SQL error would only hide bugs.
package database
