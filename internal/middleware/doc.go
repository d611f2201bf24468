// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

// Package middleware provides HTTP middleware shared by the API router.
//
// PrometheusMetrics records api_requests_total, api_request_duration_seconds
// and api_active_requests, labelled by chi route pattern:
//
//	r.Group(func(r chi.Router) {
//	    r.Use(middleware.PrometheusMetrics)
//	    r.Get("/dashboard", h.Dashboard)
//	})
package middleware
