// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package cache

import (
	"context"
	"time"

	"github.com/econoscope/econoscope/internal/logging"
)

// ProbeService periodically pings Redis and publishes the result to the
// availability gauge. Running it under the supervisor keeps the health
// endpoint's cache status fresh even when no requests are flowing.
type ProbeService struct {
	manager  *Manager
	interval time.Duration
}

// NewProbeService creates a probe for the given manager. A non-positive
// interval defaults to 30 seconds.
func NewProbeService(manager *Manager, interval time.Duration) *ProbeService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ProbeService{manager: manager, interval: interval}
}

// Serve implements suture.Service. It probes once immediately, then on
// every tick, and returns when the context is canceled.
func (p *ProbeService) Serve(ctx context.Context) error {
	p.probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *ProbeService) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if !p.manager.IsAvailable(probeCtx) {
		logging.Debug().Msg("Cache availability probe failed")
	}
}

func (p *ProbeService) String() string {
	return "cache-probe"
}
