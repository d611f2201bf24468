// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/intentpulse/internal/config"
	"github.com/tomtom215/intentpulse/internal/dashboard"
	"github.com/tomtom215/intentpulse/internal/logging"
	"github.com/tomtom215/intentpulse/internal/monitoring"
	ws "github.com/tomtom215/intentpulse/internal/websocket"
)

// BreakerState reports the scoring circuit breaker state for readiness.
type BreakerState interface {
	State() string
}

// Handler contains dependencies for API handlers.
//
//   - handlers.go: Handler struct, constructor, WebSocket upgrade
//   - handlers_helpers.go: response envelope and request decoding
//   - handlers_health.go: liveness and readiness probes
//   - handlers_dashboard.go: dashboard, history, predict, scenarios, view
//   - handlers_monitoring.go: metrics read model and polling controls
type Handler struct {
	engine    *dashboard.Engine
	scheduler *monitoring.Scheduler
	breaker   BreakerState
	wsHub     *ws.Hub
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates the API handler. breaker and wsHub may be nil.
//
//	handler := api.NewHandler(engine, scheduler, scorer, hub, cfg, version)
//	router := api.NewRouter(handler, cfg)
func NewHandler(engine *dashboard.Engine, scheduler *monitoring.Scheduler, breaker BreakerState, wsHub *ws.Hub, cfg *config.Config, version string) *Handler {
	return &Handler{
		engine:    engine,
		scheduler: scheduler,
		breaker:   breaker,
		wsHub:     wsHub,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins against the
// configured CORS origins.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// Browsers always send Origin on WebSocket upgrades; an empty one would
	// bypass CORS entirely.
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	if h.config == nil {
		return true
	}

	for _, allowedOrigin := range h.config.Server.CORSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

// WebSocket upgrades the connection and attaches it to the hub.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable, "WebSocket hub not available", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	h.wsHub.Register <- client
	client.Start()
}
