// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Prediction requests to the scoring service
// - Metrics polling sessions
// - Local dashboard state (buffers, live users, animation)
// - API endpoint latency and throughput
// - WebSocket connections
// - Circuit breaker state

var (
	// Prediction Metrics
	PredictRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predict_requests_total",
			Help: "Total number of prediction requests by model and result",
		},
		[]string{"model", "result"}, // result: "purchase", "abandon", "error", "invalid"
	)

	PredictDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "predict_duration_seconds",
			Help:    "Measured latency of successful prediction requests",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"model"},
	)

	PredictPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "predict_pending",
			Help: "Current number of prediction requests awaiting a response",
		},
	)

	// Polling Metrics
	MetricsPolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metrics_polls_total",
			Help: "Total number of metrics polls by result",
		},
		[]string{"result"}, // result: "success", "failure"
	)

	MetricsPollsStale = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metrics_polls_stale_total",
			Help: "Poll results discarded because their session had ended",
		},
		[]string{"result"},
	)

	PollingSessions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "polling_sessions_started_total",
			Help: "Total number of polling sessions started",
		},
	)

	PollingActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "polling_active",
			Help: "Whether metrics polling is running (1) or idle (0)",
		},
	)

	// Dashboard State Metrics
	BufferLength = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_buffer_length",
			Help: "Current number of entries in a bounded buffer",
		},
		[]string{"buffer"}, // "history", "activity"
	)

	LiveUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_live_users",
			Help: "Current optimistic live user count",
		},
	)

	DriftTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_drift_ticks_total",
			Help: "Total number of simulated drift steps applied",
		},
	)

	AnimationsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_animations_started_total",
			Help: "Total number of counter animations started",
		},
	)

	StoreUpdateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_store_update_duration_seconds",
			Help:    "Time spent applying one serialized state update",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
	)

	StoreUpdatesAbandoned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_store_updates_abandoned_total",
			Help: "Queued state updates skipped because the caller gave up first",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSMessagesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_received_total",
			Help: "Total number of WebSocket messages received",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordPrediction records the outcome of one prediction request.
// A zero duration is not observed (failed and rejected requests).
func RecordPrediction(model, result string, duration time.Duration) {
	PredictRequests.WithLabelValues(model, result).Inc()
	if duration > 0 {
		PredictDuration.WithLabelValues(model).Observe(duration.Seconds())
	}
}

// RecordPoll records a committed or discarded metrics poll.
func RecordPoll(err error, stale bool) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	if stale {
		MetricsPollsStale.WithLabelValues(result).Inc()
		return
	}
	MetricsPolls.WithLabelValues(result).Inc()
}

// SetPollingActive updates the polling gauge.
func SetPollingActive(active bool) {
	if active {
		PollingActive.Set(1)
	} else {
		PollingActive.Set(0)
	}
}

// RecordBufferLengths updates the buffer length gauges.
func RecordBufferLengths(history, activity int) {
	BufferLength.WithLabelValues("history").Set(float64(history))
	BufferLength.WithLabelValues("activity").Set(float64(activity))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
