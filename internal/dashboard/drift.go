// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package dashboard

import (
	"context"
	"time"

	"github.com/tomtom215/intentpulse/internal/clock"
	"github.com/tomtom215/intentpulse/internal/logging"
	"github.com/tomtom215/intentpulse/internal/metrics"
	"github.com/tomtom215/intentpulse/internal/realtime"
)

// DriftService nudges the optimistic counters on a fixed interval for the
// lifetime of the process, regardless of the active view.
type DriftService struct {
	store    *Store
	clock    clock.Clock
	rng      realtime.Random
	interval time.Duration
}

// NewDriftService creates a drift task. rng is only used from the store loop.
func NewDriftService(store *Store, clk clock.Clock, rng realtime.Random, interval time.Duration) *DriftService {
	if interval <= 0 {
		interval = realtime.DefaultDriftInterval
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &DriftService{store: store, clock: clk, rng: rng, interval: interval}
}

// Serve ticks until ctx is cancelled.
func (d *DriftService) Serve(ctx context.Context) error {
	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()

	logging.Debug().Dur("interval", d.interval).Msg("Realtime drift started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			if err := d.tick(ctx); err != nil {
				return err
			}
		}
	}
}

func (d *DriftService) tick(ctx context.Context) error {
	err := d.store.Update(ctx, func(s *State) {
		s.Realtime = realtime.Drift(s.Realtime, d.rng)
	})
	if err == nil {
		metrics.DriftTicks.Inc()
	}
	return err
}

func (d *DriftService) String() string {
	return "realtime-drift"
}
