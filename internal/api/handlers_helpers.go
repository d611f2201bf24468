// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/intentpulse/internal/dashboard"
	"github.com/tomtom215/intentpulse/internal/logging"
	"github.com/tomtom215/intentpulse/internal/models"
	"github.com/tomtom215/intentpulse/internal/scoring"
	"github.com/tomtom215/intentpulse/internal/validation"
)

// maxRequestBodySize caps JSON request bodies.
const maxRequestBodySize = 64 * 1024

// sanitizeLogValue replaces control characters so user input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes response with the given status.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func meta(r *http.Request) models.Metadata {
	return models.Metadata{
		Timestamp: time.Now().UTC(),
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
}

// respondData writes a success envelope around data.
func respondData(w http.ResponseWriter, r *http.Request, data interface{}) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta(r),
	})
}

// respondList writes a success envelope with the item count in meta.
func respondList[T any](w http.ResponseWriter, r *http.Request, items []T) {
	if items == nil {
		items = []T{}
	}
	m := meta(r)
	n := len(items)
	m.Count = &n
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Success: true,
		Data:    items,
		Meta:    m,
	})
}

// respondError writes an error envelope. err is logged, never returned to
// the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Success: false,
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
		Meta: meta(r),
	})
}

// respondValidationError renders validation failures with field details.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Success: false,
		Error: &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
		Meta: meta(r),
	})
}

// respondEngineError maps engine errors onto status codes.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		respondValidationError(w, r, verr)
	case errors.Is(err, dashboard.ErrInvalidRequest):
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
	case errors.Is(err, dashboard.ErrScenarioNotFound):
		respondError(w, r, http.StatusNotFound, CodeNotFound, err.Error(), nil)
	case errors.Is(err, scoring.ErrConnectionFailure):
		respondError(w, r, http.StatusBadGateway, CodeConnectionFailed, dashboard.PredictErrorMessage, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		respondError(w, r, http.StatusServiceUnavailable, CodeTimeout, "Request did not complete in time", err)
	default:
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Internal server error", err)
	}
}

// decodeJSON reads a size-limited JSON body into dst. An empty body leaves
// dst untouched when allowEmpty is set.
func decodeJSON(r *http.Request, dst interface{}, allowEmpty bool) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize+1))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxRequestBodySize {
		return fmt.Errorf("request body exceeds %d bytes", maxRequestBodySize)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		if allowEmpty {
			return nil
		}
		return errors.New("request body is empty")
	}
	return json.Unmarshal(body, dst)
}

// decodeAndValidate decodes the body into dst and runs struct validation,
// writing the error response itself. It returns false when the handler
// should stop.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}, allowEmpty bool) bool {
	if err := decodeJSON(r, dst, allowEmpty); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON body", err)
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		respondValidationError(w, r, verr)
		return false
	}
	return true
}
