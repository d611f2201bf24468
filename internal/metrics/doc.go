// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Prediction Metrics:
  - predict_requests_total: Prediction requests (counter)
    Labels: model, result (purchase, abandon, error, invalid)
  - predict_duration_seconds: Measured prediction latency (histogram)
    Labels: model
  - predict_pending: Requests awaiting a response (gauge)

Polling Metrics:
  - metrics_polls_total: Committed polls (counter)
    Labels: result (success, failure)
  - metrics_polls_stale_total: Poll results discarded after their session ended (counter)
    Labels: result
  - polling_sessions_started_total: Polling sessions started (counter)
  - polling_active: 1 while polling, 0 while idle (gauge)

Dashboard Metrics:
  - dashboard_buffer_length: Entries in a bounded buffer (gauge)
    Labels: buffer (history, activity)
  - dashboard_live_users: Optimistic live user count (gauge)
  - dashboard_drift_ticks_total: Simulated drift steps (counter)
  - dashboard_animations_started_total: Counter animations started (counter)
  - dashboard_store_update_duration_seconds: Serialized update time (histogram)
  - dashboard_store_updates_abandoned_total: Updates skipped after the caller gave up (counter)

API Metrics:
  - api_requests_total: Requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

WebSocket Metrics:
  - websocket_connections: Connected clients (gauge)
  - websocket_messages_sent_total / websocket_messages_received_total (counters)
  - websocket_errors_total: Errors (counter)
    Labels: error_type

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
    Labels: name
  - circuit_breaker_requests_total: Requests (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total (counter)
    Labels: name, from_state, to_state

# Usage

	metrics.RecordPrediction(models.ModelXGBoost, "purchase", latency)
	metrics.RecordPoll(err, false)
	metrics.RecordAPIRequest("GET", "/api/v1/dashboard", "200", time.Since(start))
*/
package metrics
