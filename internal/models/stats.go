// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package models

// RealtimeStats holds the locally-owned running counters.
//
// AvgResponseTimeMs is the latest measured (or simulated) response time,
// not a true average. LiveUsers never drops below 1.
type RealtimeStats struct {
	TodayPredictions  int     `json:"today_predictions"`
	TodayConversions  int     `json:"today_conversions"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	LiveUsers         int     `json:"live_users"`
}

// InitialRealtimeStats returns the counters at process start.
func InitialRealtimeStats() RealtimeStats {
	return RealtimeStats{LiveUsers: 1}
}

// AnimatedStats is the derived display state of the headline counters.
type AnimatedStats struct {
	Total          int     `json:"total"`
	HighIntent     int     `json:"high_intent"`
	ConversionRate float64 `json:"conversion_rate"`
}
