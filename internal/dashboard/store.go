// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/intentpulse/internal/logging"
	"github.com/tomtom215/intentpulse/internal/metrics"
)

// updateQueueSize bounds how many mutations may wait for the store loop.
const updateQueueSize = 64

// Update claim states. Whichever side moves an update out of
// updateQueued first decides whether fn runs.
const (
	updateQueued int32 = iota
	updateApplied
	updateAbandoned
)

type update struct {
	fn    func(*State)
	done  chan struct{}
	claim *atomic.Int32
}

// Store serializes every mutation of the dashboard State through a single
// goroutine (Serve). Readers take copies with Snapshot.
type Store struct {
	updates chan update

	mu    sync.RWMutex
	state State

	hooksMu sync.RWMutex
	hooks   []func(State)
}

// NewStore creates a store holding initial.
func NewStore(initial State) *Store {
	return &Store{
		updates: make(chan update, updateQueueSize),
		state:   initial,
	}
}

// Serve applies queued updates one at a time until ctx is cancelled.
func (s *Store) Serve(ctx context.Context) error {
	logging.Debug().Msg("Dashboard store started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u := <-s.updates:
			s.apply(u)
		}
	}
}

func (s *Store) apply(u update) {
	if !u.claim.CompareAndSwap(updateQueued, updateApplied) {
		metrics.StoreUpdatesAbandoned.Inc()
		return
	}
	start := time.Now()

	s.mu.Lock()
	next := s.state
	u.fn(&next)
	next.Version++
	s.state = next
	s.mu.Unlock()

	close(u.done)

	metrics.StoreUpdateDuration.Observe(time.Since(start).Seconds())
	metrics.RecordBufferLengths(len(next.History), len(next.Activity))
	metrics.LiveUsers.Set(float64(next.Realtime.LiveUsers))

	s.hooksMu.RLock()
	hooks := s.hooks
	s.hooksMu.RUnlock()
	for _, h := range hooks {
		h(next)
	}
}

// Update queues fn and waits until it has been applied. fn receives a copy
// of the current state and must replace slices rather than edit them.
//
// fn runs if and only if Update returns nil. When ctx ends while fn is still
// queued, the update is abandoned and the store loop skips it.
func (s *Store) Update(ctx context.Context, fn func(*State)) error {
	u := update{fn: fn, done: make(chan struct{}), claim: new(atomic.Int32)}

	select {
	case s.updates <- u:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-u.done:
		return nil
	case <-ctx.Done():
		if u.claim.CompareAndSwap(updateQueued, updateAbandoned) {
			return ctx.Err()
		}
		// The loop already took it.
		<-u.done
		return nil
	}
}

// Snapshot returns the latest committed state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// OnChange registers fn to be called from the store loop after every update.
// fn must not call Update.
func (s *Store) OnChange(fn func(State)) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.hooks = append(s.hooks, fn)
}
