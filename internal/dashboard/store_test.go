// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/intentpulse/internal/buffer"
	"github.com/tomtom215/intentpulse/internal/models"
)

func TestNewState(t *testing.T) {
	t.Parallel()

	s := NewState(models.View("nope"))
	if s.View != models.ViewDashboard {
		t.Errorf("View = %q, want dashboard for invalid input", s.View)
	}
	if s.Realtime.LiveUsers != 1 {
		t.Errorf("LiveUsers = %d, want 1", s.Realtime.LiveUsers)
	}
	if !s.Animation.Active || s.Animation.Target.Total != 156 {
		t.Errorf("Animation = %+v, want running toward defaults", s.Animation)
	}
	if s.History == nil || s.Activity == nil {
		t.Error("buffers should be empty, not nil")
	}
}

func TestStore_UpdatesAreSerialized(t *testing.T) {
	t.Parallel()

	store := NewStore(NewState(models.ViewDashboard))
	startStore(t, store)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Update(context.Background(), func(s *State) {
				s.Realtime.TodayPredictions++
			}); err != nil {
				t.Errorf("Update() error = %v", err)
			}
		}()
	}
	wg.Wait()

	snap := store.Snapshot()
	if snap.Realtime.TodayPredictions != workers {
		t.Errorf("TodayPredictions = %d, want %d", snap.Realtime.TodayPredictions, workers)
	}
	if snap.Version != workers {
		t.Errorf("Version = %d, want %d", snap.Version, workers)
	}
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	t.Parallel()

	store := NewStore(NewState(models.ViewDashboard))
	startStore(t, store)

	push := func(p float64) {
		if err := store.Update(context.Background(), func(s *State) {
			s.History = buffer.Push(s.History, record(1, p), 3)
		}); err != nil {
			t.Fatal(err)
		}
	}

	push(0.1)
	before := store.Snapshot()
	push(0.2)
	push(0.3)
	push(0.4)

	if len(before.History) != 1 || before.History[0].Probability != 0.1 {
		t.Errorf("earlier snapshot changed: %+v", before.History)
	}
	after := store.Snapshot()
	if len(after.History) != 3 || after.History[0].Probability != 0.4 {
		t.Errorf("History = %+v", after.History)
	}
}

func TestStore_OnChange(t *testing.T) {
	t.Parallel()

	store := NewStore(NewState(models.ViewDashboard))
	seen := make(chan uint64, 4)
	store.OnChange(func(s State) { seen <- s.Version })
	startStore(t, store)

	if err := store.Update(context.Background(), func(s *State) { s.PredictError = "x" }); err != nil {
		t.Fatal(err)
	}

	select {
	case v := <-seen:
		if v != 1 {
			t.Errorf("hook saw version %d, want 1", v)
		}
	case <-time.After(time.Second):
		t.Fatal("OnChange hook not called")
	}
}

func TestStore_UpdateHonoursContext(t *testing.T) {
	t.Parallel()

	// No Serve loop: the update is queued but never applied.
	store := NewStore(NewState(models.ViewDashboard))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := store.Update(ctx, func(*State) {})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Update() error = %v, want DeadlineExceeded", err)
	}
}

func TestStore_UpdateAbandonedWhileQueued(t *testing.T) {
	t.Parallel()

	store := NewStore(NewState(models.ViewDashboard))
	ctx, cancel := context.WithCancel(context.Background())

	ran := false
	errCh := make(chan error, 1)
	go func() {
		errCh <- store.Update(ctx, func(s *State) {
			ran = true
			s.Pending++
		})
	}()

	waitFor(t, func() bool { return len(store.updates) == 1 })
	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("Update() error = %v, want Canceled", err)
	}

	startStore(t, store)
	if err := store.Update(context.Background(), func(*State) {}); err != nil {
		t.Fatal(err)
	}

	snap := store.Snapshot()
	if ran || snap.Pending != 0 {
		t.Errorf("abandoned update applied: ran=%v Pending=%d", ran, snap.Pending)
	}
	if snap.Version != 1 {
		t.Errorf("Version = %d, want 1 (abandoned update must not count)", snap.Version)
	}
}
