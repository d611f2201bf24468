// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package api exposes the dashboard engine and the monitoring scheduler over
HTTP using the chi router.

# Endpoints

	GET    /api/v1/health/live              liveness probe
	GET    /api/v1/health/ready             503 while the scoring breaker is open
	GET    /api/v1/dashboard                dashboard overview
	DELETE /api/v1/dashboard/error          dismiss the prediction error
	GET    /api/v1/history?limit=N          prediction records, newest first
	GET    /api/v1/activity                 activity feed, newest first
	POST   /api/v1/predict?model_name=M     score a SessionFeatures body
	GET    /api/v1/scenarios                example scenarios
	POST   /api/v1/scenarios/{id}/apply     overlay a scenario onto a base
	GET    /api/v1/features/default         predictor form defaults
	PUT    /api/v1/view                     {"view": "dashboard|predictor|history|monitoring"}
	GET    /api/v1/monitoring               authoritative metrics read model
	PUT    /api/v1/monitoring/view          {"active": bool}
	PUT    /api/v1/monitoring/auto-refresh  {"enabled": bool}
	POST   /api/v1/monitoring/refresh       fetch metrics now
	GET    /api/v1/ws                       WebSocket push channel
	GET    /metrics                         Prometheus

# Response Format

Every endpoint answers with models.APIResponse:

	{"success": true, "data": {...}, "meta": {"timestamp": "...", "request_id": "..."}}
	{"success": false, "error": {"code": "CONNECTION_FAILED", "message": "..."}, "meta": {...}}

Error codes: VALIDATION_ERROR and INVALID_JSON (400), NOT_FOUND (404),
RATE_LIMITED (429), CONNECTION_FAILED (502) when the scoring service cannot
be reached or its breaker is open, SERVICE_UNAVAILABLE and REQUEST_TIMEOUT
(503), INTERNAL_ERROR (500).

# Middleware

Request IDs (X-Request-Id) and correlation IDs are attached to the logging
context, CORS comes from go-chi/cors with CORS_ORIGINS, per-IP rate
limits from go-chi/httprate, and request metrics are recorded under the
chi route pattern.
*/
package api
