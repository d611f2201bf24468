// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/intentpulse/internal/config"
	"github.com/tomtom215/intentpulse/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. cfg may be nil in tests.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	var server *config.ServerConfig
	if cfg != nil {
		server = &cfg.Server
	}
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromServer(server)),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(RequestLogging())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Group(func(r chi.Router) {
			r.Use(middleware.PrometheusMetrics)

			r.Get("/dashboard", router.handler.Dashboard)
			r.Delete("/dashboard/error", router.handler.ClearPredictError)
			r.Get("/history", router.handler.History)
			r.Get("/activity", router.handler.Activity)
			r.With(router.chiMiddleware.RateLimitCustom(RateLimitPredict)).Post("/predict", router.handler.Predict)

			r.Get("/scenarios", router.handler.Scenarios)
			r.Post("/scenarios/{id}/apply", router.handler.ApplyScenario)
			r.Get("/features/default", router.handler.DefaultFeatures)
			r.Put("/view", router.handler.SetView)

			r.Route("/monitoring", func(r chi.Router) {
				r.Get("/", router.handler.Monitoring)
				r.Put("/view", router.handler.SetMonitoringView)
				r.Put("/auto-refresh", router.handler.SetAutoRefresh)
				r.Post("/refresh", router.handler.RefreshMonitoring)
			})
		})

		// Outside the metrics group: the connection outlives the request.
		r.With(router.chiMiddleware.RateLimitCustom(RateLimitWebSocket)).Get("/ws", router.handler.WebSocket)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
