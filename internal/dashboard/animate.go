// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package dashboard

import (
	"context"
	"time"

	"github.com/tomtom215/intentpulse/internal/animation"
	"github.com/tomtom215/intentpulse/internal/clock"
	"github.com/tomtom215/intentpulse/internal/logging"
)

// AnimationService advances the counter animation one frame per tick while
// an animation is running. Idle ticks do not touch the store.
type AnimationService struct {
	store    *Store
	clock    clock.Clock
	steps    int
	interval time.Duration
}

// NewAnimationService creates an animation task that spreads steps frames
// over duration.
func NewAnimationService(store *Store, clk clock.Clock, steps int, duration time.Duration) *AnimationService {
	if steps <= 0 {
		steps = animation.DefaultSteps
	}
	if duration <= 0 {
		duration = animation.DefaultDuration
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &AnimationService{
		store:    store,
		clock:    clk,
		steps:    steps,
		interval: animation.Interval(duration, steps),
	}
}

// Serve ticks until ctx is cancelled.
func (a *AnimationService) Serve(ctx context.Context) error {
	ticker := a.clock.NewTicker(a.interval)
	defer ticker.Stop()

	logging.Debug().Dur("frame_interval", a.interval).Int("steps", a.steps).Msg("Counter animation started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			if err := a.tick(ctx); err != nil {
				return err
			}
		}
	}
}

func (a *AnimationService) tick(ctx context.Context) error {
	if snap := a.store.Snapshot(); !snap.Animation.Active {
		return nil
	}
	return a.store.Update(ctx, func(s *State) {
		if s.Animation.Active {
			s.Animated = s.Animation.Advance(a.steps)
		}
	})
}

func (a *AnimationService) String() string {
	return "counter-animation"
}
