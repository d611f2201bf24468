// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package models

// Risk levels reported in the scoring service's request log.
const (
	RiskCritical = "CRITICAL"
	RiskHigh     = "HIGH"
	RiskMedium   = "MEDIUM"
	RiskLow      = "LOW"
)

// RequestLogEntry is one row of the scoring service's recent request log.
// Timestamp is kept as the server sent it.
type RequestLogEntry struct {
	Timestamp      string  `json:"timestamp"`
	RiskLevel      string  `json:"risk_level"`
	Model          string  `json:"model"`
	ResponseTimeMs float64 `json:"response_time_ms"`
}

// MetricsSnapshot is the authoritative operational read model returned by
// GET /api/metrics. It is replaced wholesale on every committed poll.
type MetricsSnapshot struct {
	TotalRequests     int64             `json:"total_requests"`
	AvgResponseTimeMs float64           `json:"avg_response_time_ms"`
	ErrorRate         float64           `json:"error_rate"`
	Uptime            string            `json:"uptime"`
	RiskDistribution  map[string]int64  `json:"risk_distribution"`
	RequestsByModel   map[string]int64  `json:"requests_by_model"`
	RecentRequests    []RequestLogEntry `json:"recent_requests"`
}

// RecentRequestsNewestFirst returns up to n of the most recent log entries,
// newest first. The server appends to the log, so the tail is newest.
func (m *MetricsSnapshot) RecentRequestsNewestFirst(n int) []RequestLogEntry {
	if m == nil || n <= 0 || len(m.RecentRequests) == 0 {
		return []RequestLogEntry{}
	}
	start := len(m.RecentRequests) - n
	if start < 0 {
		start = 0
	}
	tail := m.RecentRequests[start:]
	out := make([]RequestLogEntry, len(tail))
	for i := range tail {
		out[i] = tail[len(tail)-1-i]
	}
	return out
}

// Clone returns a deep copy so readers never share maps or slices with the
// scheduler's copy.
func (m *MetricsSnapshot) Clone() *MetricsSnapshot {
	if m == nil {
		return nil
	}
	out := *m
	if m.RiskDistribution != nil {
		out.RiskDistribution = make(map[string]int64, len(m.RiskDistribution))
		for k, v := range m.RiskDistribution {
			out.RiskDistribution[k] = v
		}
	}
	if m.RequestsByModel != nil {
		out.RequestsByModel = make(map[string]int64, len(m.RequestsByModel))
		for k, v := range m.RequestsByModel {
			out.RequestsByModel[k] = v
		}
	}
	if m.RecentRequests != nil {
		out.RecentRequests = append([]RequestLogEntry(nil), m.RecentRequests...)
	}
	return &out
}
