// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package models

// View identifies the page the presentation layer is showing.
type View string

// Known views. Only ViewMonitoring activates metrics polling.
const (
	ViewDashboard  View = "dashboard"
	ViewPredictor  View = "predictor"
	ViewHistory    View = "history"
	ViewMonitoring View = "monitoring"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewPredictor, ViewHistory, ViewMonitoring:
		return true
	}
	return false
}

// TrendPoint is one point of the probability trend chart.
type TrendPoint struct {
	Label       string  `json:"time"`
	Probability float64 `json:"probability"`
}

// DefaultTrend is shown while no predictions have been made.
func DefaultTrend() []TrendPoint {
	return []TrendPoint{
		{Label: "10m", Probability: 65},
		{Label: "9m", Probability: 72},
		{Label: "8m", Probability: 58},
		{Label: "7m", Probability: 81},
		{Label: "6m", Probability: 45},
		{Label: "5m", Probability: 90},
		{Label: "4m", Probability: 68},
		{Label: "3m", Probability: 75},
		{Label: "2m", Probability: 82},
		{Label: "1m", Probability: 70},
	}
}
