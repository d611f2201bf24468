// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package dashboard

import (
	"github.com/tomtom215/intentpulse/internal/animation"
	"github.com/tomtom215/intentpulse/internal/buffer"
	"github.com/tomtom215/intentpulse/internal/models"
	"github.com/tomtom215/intentpulse/internal/realtime"
)

// PredictErrorMessage is shown after a failed prediction request.
const PredictErrorMessage = "Connection failed. Check backend is running."

// Limits bounds the history and activity buffers.
type Limits struct {
	HistoryCapacity  int
	ActivityCapacity int
}

// DefaultLimits returns the standard buffer sizes.
func DefaultLimits() Limits {
	return Limits{
		HistoryCapacity:  buffer.HistoryCapacity,
		ActivityCapacity: buffer.ActivityCapacity,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.HistoryCapacity <= 0 {
		l.HistoryCapacity = d.HistoryCapacity
	}
	if l.ActivityCapacity <= 0 {
		l.ActivityCapacity = d.ActivityCapacity
	}
	return l
}

// State is the dashboard aggregate. Values are replaced, never edited in
// place: buffers are copy-on-write, so a State handed to a reader stays
// valid after later updates.
type State struct {
	History        []models.PredictionRecord `json:"history"`
	Activity       []models.ActivityEvent    `json:"activity"`
	Realtime       models.RealtimeStats      `json:"realtime"`
	Animation      animation.State           `json:"animation"`
	Animated       models.AnimatedStats      `json:"animated"`
	LastPrediction *models.PredictionRecord  `json:"last_prediction"`
	PredictError   string                    `json:"predict_error,omitempty"`
	Pending        int                       `json:"pending"`
	View           models.View               `json:"view"`
	NextActivityID uint64                    `json:"-"`
	Version        uint64                    `json:"version"`
}

// NewState returns the startup state with the counter animation running
// toward the default targets.
func NewState(view models.View) State {
	if !view.Valid() {
		view = models.ViewDashboard
	}
	s := State{
		History:  []models.PredictionRecord{},
		Activity: []models.ActivityEvent{},
		Realtime: models.InitialRealtimeStats(),
		View:     view,
	}
	s.Animation.Restart(animation.TargetFromHistory(s.History))
	return s
}

// Loading reports whether any prediction request is in flight.
func (s *State) Loading() bool {
	return s.Pending > 0
}

// recordPrediction applies a successful prediction as one step.
func (s *State) recordPrediction(rec *models.PredictionRecord, limits Limits) {
	s.History = buffer.Push(s.History, *rec, limits.HistoryCapacity)

	s.NextActivityID++
	s.Activity = buffer.Push(s.Activity, models.NewActivityEvent(s.NextActivityID, rec), limits.ActivityCapacity)

	s.Realtime = realtime.ApplyOutcome(s.Realtime, rec.Prediction, rec.ResponseTime)
	s.LastPrediction = rec
	s.PredictError = ""
	s.Animation.Restart(animation.TargetFromHistory(s.History))
}
