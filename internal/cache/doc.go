// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

// Package cache provides a best-effort Redis-backed query cache.
//
// Every operation is total: a cache failure is recorded and absorbed, never
// propagated to the caller. Dashboard endpoints treat the cache as an
// optimization, so an unavailable Redis degrades latency, not correctness.
// A circuit breaker stops hammering a dead Redis between availability probes.
package cache
