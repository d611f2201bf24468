// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package models

import "time"

// APIResponse is the envelope every host API endpoint responds with.
//
//	{"success": true, "data": {...}, "meta": {"timestamp": "..."}}
//	{"success": false, "error": {"code": "CONNECTION_FAILED", "message": "..."}, "meta": {...}}
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    Metadata    `json:"meta"`
}

// Metadata carries per-response bookkeeping.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Count     *int      `json:"count,omitempty"`
}

// APIError is a machine-readable error code plus a human-readable message.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the body of the readiness probe.
type HealthStatus struct {
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	ScoringBreaker   string  `json:"scoring_breaker"`
	PollingState     string  `json:"polling_state"`
	WebSocketClients int     `json:"websocket_clients"`
	Uptime           float64 `json:"uptime_seconds"`
}
