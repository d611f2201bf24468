// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package api

import (
	"net/http"

	"github.com/tomtom215/intentpulse/internal/models"
	"github.com/tomtom215/intentpulse/internal/monitoring"
)

// MonitoringViewRequest marks the monitoring view active or inactive.
type MonitoringViewRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// AutoRefreshRequest toggles periodic polling.
type AutoRefreshRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// Monitoring returns the authoritative metrics read model.
func (h *Handler) Monitoring(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, h.scheduler.View())
}

// SetMonitoringView is the standalone toggle for the monitoring view. It
// also moves the engine's active view so both read models agree.
func (h *Handler) SetMonitoringView(w http.ResponseWriter, r *http.Request) {
	var req MonitoringViewRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	current := h.engine.Snapshot().View
	target := current
	switch {
	case *req.Active:
		target = models.ViewMonitoring
	case current == models.ViewMonitoring:
		target = models.ViewDashboard
	}

	if target != current {
		if err := h.engine.SetView(r.Context(), target); err != nil {
			respondEngineError(w, r, err)
			return
		}
	}
	h.scheduler.SetViewActive(*req.Active)
	respondData(w, r, h.scheduler.View())
}

// SetAutoRefresh turns periodic polling on or off.
func (h *Handler) SetAutoRefresh(w http.ResponseWriter, r *http.Request) {
	var req AutoRefreshRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}
	h.scheduler.SetAutoRefresh(*req.Enabled)
	respondData(w, r, h.scheduler.View())
}

// RefreshMonitoring fetches metrics immediately. A failed fetch returns 502
// but the read model keeps the last good snapshot.
func (h *Handler) RefreshMonitoring(w http.ResponseWriter, r *http.Request) {
	view, err := h.scheduler.RefreshNow(r.Context())
	if err != nil {
		respondError(w, r, http.StatusBadGateway, CodeConnectionFailed, monitoring.UnavailableMessage, err)
		return
	}
	respondData(w, r, view)
}
