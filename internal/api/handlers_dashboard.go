// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/intentpulse/internal/models"
	"github.com/tomtom215/intentpulse/internal/validation"
)

// SetViewRequest switches the active view.
type SetViewRequest struct {
	View string `json:"view" validate:"required,dashview"`
}

// Dashboard returns the dashboard overview.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, h.engine.Overview())
}

// History returns prediction records, newest first. ?limit= trims the list.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	history := h.engine.Snapshot().History

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondError(w, r, http.StatusBadRequest, CodeValidation, "limit must be a positive integer", nil)
			return
		}
		if limit < len(history) {
			history = history[:limit]
		}
	}
	respondList(w, r, history)
}

// Activity returns the activity feed, newest first.
func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	respondList(w, r, h.engine.Snapshot().Activity)
}

// Predict scores the posted SessionFeatures with ?model_name= (default
// model when absent). Scoring failures return 502 CONNECTION_FAILED.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	modelName := r.URL.Query().Get("model_name")
	if verr := validation.ValidateVar(modelName, "model_name", "omitempty,modelname"); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	var features models.SessionFeatures
	if !decodeAndValidate(w, r, &features, false) {
		return
	}

	rec, err := h.engine.Predict(r.Context(), features, modelName)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	if h.wsHub != nil {
		h.wsHub.BroadcastPrediction(rec)
	}
	respondData(w, r, rec)
}

// ClearPredictError dismisses the prediction error message.
func (h *Handler) ClearPredictError(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ClearError(r.Context()); err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondData(w, r, h.engine.Overview())
}

// Scenarios lists the example scenarios.
func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
	respondList(w, r, models.ExampleScenarios())
}

// ApplyScenario overlays scenario {id} onto the posted features (or the
// defaults when the body is empty) and returns the result.
func (h *Handler) ApplyScenario(w http.ResponseWriter, r *http.Request) {
	base := models.DefaultSessionFeatures()
	if err := decodeJSON(r, &base, true); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON body", err)
		return
	}

	features, err := h.engine.LoadScenario(r.Context(), base, chi.URLParam(r, "id"))
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondData(w, r, features)
}

// DefaultFeatures returns the feature vector the predictor form starts with.
func (h *Handler) DefaultFeatures(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, models.DefaultSessionFeatures())
}

// SetView records the active view. Entering the monitoring view starts
// metrics polling; leaving it stops polling.
func (h *Handler) SetView(w http.ResponseWriter, r *http.Request) {
	var req SetViewRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}
	if err := h.engine.SetView(r.Context(), models.View(req.View)); err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondData(w, r, map[string]string{"view": req.View})
}
