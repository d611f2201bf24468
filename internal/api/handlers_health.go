// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/intentpulse/internal/models"
)

// HealthLive reports that the process is up, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 while the scoring circuit breaker is not open and
// 503 otherwise. The body is the same in both cases.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:         "ready",
		Version:        h.version,
		ScoringBreaker: "unknown",
		Uptime:         time.Since(h.startTime).Seconds(),
	}
	if h.breaker != nil {
		health.ScoringBreaker = h.breaker.State()
	}
	if h.scheduler != nil {
		health.PollingState = h.scheduler.State().String()
	}
	if h.wsHub != nil {
		health.WebSocketClients = h.wsHub.GetClientCount()
	}

	status := http.StatusOK
	if health.ScoringBreaker == "open" {
		health.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, &models.APIResponse{
		Success: status == http.StatusOK,
		Data:    health,
		Meta:    meta(r),
	})
}
