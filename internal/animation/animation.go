// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

// Package animation interpolates the headline counters from zero toward
// a target in a fixed number of evenly spaced ticks.
package animation

import (
	"math"
	"time"

	"github.com/tomtom215/intentpulse/internal/models"
)

// Default timing.
const (
	DefaultSteps    = 60
	DefaultDuration = 1000 * time.Millisecond
)

// DefaultTarget is shown when there is no history to derive a target from.
var DefaultTarget = models.AnimatedStats{Total: 156, HighIntent: 54, ConversionRate: 68.2}

// Interval returns the tick spacing for an animation of the given length.
func Interval(duration time.Duration, steps int) time.Duration {
	if steps <= 0 {
		return duration
	}
	return duration / time.Duration(steps)
}

// TargetFromHistory derives the animation target from the prediction history.
func TargetFromHistory(history []models.PredictionRecord) models.AnimatedStats {
	if len(history) == 0 {
		return DefaultTarget
	}
	var highIntent, purchases int
	for i := range history {
		if history[i].IsHighIntent() {
			highIntent++
		}
		if history[i].IsPurchase() {
			purchases++
		}
	}
	return models.AnimatedStats{
		Total:          len(history),
		HighIntent:     highIntent,
		ConversionRate: round1(float64(purchases) / float64(len(history)) * 100),
	}
}

// Frame returns the displayed value after n of steps ticks. Integer
// counters are floored and the rate is rounded to one decimal. Once n
// reaches steps the target is returned exactly.
func Frame(target models.AnimatedStats, n, steps int) models.AnimatedStats {
	if steps <= 0 || n >= steps {
		return target
	}
	if n <= 0 {
		return models.AnimatedStats{}
	}
	p := float64(n) / float64(steps)
	return models.AnimatedStats{
		Total:          int(math.Floor(float64(target.Total) * p)),
		HighIntent:     int(math.Floor(float64(target.HighIntent) * p)),
		ConversionRate: round1(target.ConversionRate * p),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// State tracks one in-flight animation.
type State struct {
	Target models.AnimatedStats `json:"target"`
	Step   int                  `json:"step"`
	Active bool                 `json:"active"`
}

// Restart begins a new animation toward target from zero, abandoning any
// animation in progress.
func (s *State) Restart(target models.AnimatedStats) {
	s.Target = target
	s.Step = 0
	s.Active = true
}

// Advance moves the animation forward one tick and returns the frame to
// display. After the final tick the state deactivates. Advancing an inactive
// animation returns the target.
func (s *State) Advance(steps int) models.AnimatedStats {
	if !s.Active {
		return s.Target
	}
	s.Step++
	if s.Step >= steps {
		s.Active = false
		return s.Target
	}
	return Frame(s.Target, s.Step, steps)
}
