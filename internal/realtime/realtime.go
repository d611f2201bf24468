// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

// Package realtime maintains the optimistic local counters shown beside the
// authoritative metrics. The counters are a display approximation: they
// grow from observed predictions and from a periodic simulated drift, and
// are never reconciled with the scoring service.
package realtime

import (
	"math/rand"
	"time"

	"github.com/tomtom215/intentpulse/internal/models"
)

// DefaultDriftInterval is how often simulated drift is applied.
const DefaultDriftInterval = 5 * time.Second

// Drift parameters.
const (
	driftPredictionsMax = 3
	driftConversionsMax = 2
	driftLatencyBaseMs  = 120
	driftLatencySpanMs  = 50
)

// Random is the randomness source used by Drift. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// NewRandom returns a Random seeded with seed. A zero seed picks one from
// the current time.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Drift applies one step of simulated background activity and returns the
// new counters. LiveUsers never drops below 1.
func Drift(stats models.RealtimeStats, rng Random) models.RealtimeStats {
	stats.TodayPredictions += rng.Intn(driftPredictionsMax)
	stats.TodayConversions += rng.Intn(driftConversionsMax)
	stats.AvgResponseTimeMs = driftLatencyBaseMs + rng.Float64()*driftLatencySpanMs

	delta := -1
	if rng.Float64() > 0.5 {
		delta = 1
	}
	stats.LiveUsers += delta
	if stats.LiveUsers < 1 {
		stats.LiveUsers = 1
	}
	return stats
}

// ApplyOutcome folds one observed prediction into the counters. The
// latency overwrites AvgResponseTimeMs.
func ApplyOutcome(stats models.RealtimeStats, prediction int, latency time.Duration) models.RealtimeStats {
	stats.TodayPredictions++
	if prediction == models.OutcomePurchase {
		stats.TodayConversions++
	}
	stats.AvgResponseTimeMs = float64(latency) / float64(time.Millisecond)
	if stats.LiveUsers < 1 {
		stats.LiveUsers = 1
	}
	return stats
}
