// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package dashboard

import (
	"fmt"
	"math"

	"github.com/tomtom215/intentpulse/internal/models"
)

// TrendLength is the number of history records in the probability trend.
const TrendLength = 10

// DisplayStats are the headline counters as shown to the user.
type DisplayStats struct {
	Total          int     `json:"total"`
	HighIntent     int     `json:"high_intent"`
	ConversionRate float64 `json:"conversion_rate"`
}

// Overview is the dashboard read model.
type Overview struct {
	Display        DisplayStats             `json:"display"`
	Animated       models.AnimatedStats     `json:"animated"`
	Animating      bool                     `json:"animating"`
	Realtime       models.RealtimeStats     `json:"realtime"`
	Activity       []models.ActivityEvent   `json:"activity"`
	Trend          []models.TrendPoint      `json:"trend"`
	LastPrediction *models.PredictionRecord `json:"last_prediction"`
	HistorySize    int                      `json:"history_size"`
	Loading        bool                     `json:"loading"`
	Error          string                   `json:"error,omitempty"`
	View           models.View              `json:"view"`
	Version        uint64                   `json:"version"`
	Charts         models.ReferenceCharts   `json:"charts"`
}

// BuildOverview derives the read model from s.
func BuildOverview(s State) Overview {
	return Overview{
		Display:        Display(s.Animated, s.Realtime),
		Animated:       s.Animated,
		Animating:      s.Animation.Active,
		Realtime:       s.Realtime,
		Activity:       s.Activity,
		Trend:          Trend(s.History),
		LastPrediction: s.LastPrediction,
		HistorySize:    len(s.History),
		Loading:        s.Loading(),
		Error:          s.PredictError,
		View:           s.View,
		Version:        s.Version,
		Charts:         models.DefaultReferenceCharts(),
	}
}

// Display picks the shown counters: the animated value, or the realtime
// counter while the animated value is still zero.
func Display(animated models.AnimatedStats, rt models.RealtimeStats) DisplayStats {
	d := DisplayStats{
		Total:          animated.Total,
		HighIntent:     animated.HighIntent,
		ConversionRate: animated.ConversionRate,
	}
	if d.Total == 0 {
		d.Total = rt.TodayPredictions
	}
	if d.HighIntent == 0 {
		d.HighIntent = rt.TodayConversions
	}
	return d
}

// Trend returns the newest TrendLength records, oldest first, as whole
// percentages. An empty history yields the default series.
func Trend(history []models.PredictionRecord) []models.TrendPoint {
	if len(history) == 0 {
		return models.DefaultTrend()
	}
	n := len(history)
	if n > TrendLength {
		n = TrendLength
	}
	points := make([]models.TrendPoint, n)
	for idx := 0; idx < n; idx++ {
		rec := history[n-1-idx]
		points[idx] = models.TrendPoint{
			Label:       fmt.Sprintf("%dm ago", idx),
			Probability: math.Round(rec.Probability * 100),
		}
	}
	return points
}
