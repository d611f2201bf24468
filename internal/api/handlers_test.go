// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/intentpulse/internal/config"
	"github.com/tomtom215/intentpulse/internal/dashboard"
	"github.com/tomtom215/intentpulse/internal/models"
	"github.com/tomtom215/intentpulse/internal/monitoring"
)

func TestHealthLive(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/health/live", nil)
	if rec.Code != http.StatusOK || !body.Success {
		t.Fatalf("status = %d success = %v", rec.Code, body.Success)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		breaker    BreakerState
		wantStatus int
		wantState  string
	}{
		{"closed breaker", fixedBreaker("closed"), http.StatusOK, "ready"},
		{"half-open breaker", fixedBreaker("half-open"), http.StatusOK, "ready"},
		{"open breaker", fixedBreaker("open"), http.StatusServiceUnavailable, "degraded"},
		{"no breaker", nil, http.StatusOK, "ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			env.handler.breaker = tt.breaker

			rec, body := env.do(t, http.MethodGet, "/api/v1/health/ready", nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var health models.HealthStatus
			decodeData(t, body, &health)
			if health.Status != tt.wantState {
				t.Errorf("status field = %q, want %q", health.Status, tt.wantState)
			}
			if health.PollingState != "idle" {
				t.Errorf("polling_state = %q, want idle", health.PollingState)
			}
		})
	}
}

func TestPredict_Success(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/v1/predict?model_name=random_forest", models.DefaultSessionFeatures())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var got models.PredictionRecord
	decodeData(t, body, &got)
	if got.Model != models.ModelRandomForest || got.Probability != 0.82 || got.ID == "" {
		t.Errorf("record = %+v", got)
	}

	_, body = env.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	var overview dashboard.Overview
	decodeData(t, body, &overview)
	if overview.HistorySize != 1 || overview.Realtime.TodayConversions != models.InitialRealtimeStats().TodayConversions+1 {
		t.Errorf("overview after predict = %+v", overview)
	}
	if overview.LastPrediction == nil || overview.LastPrediction.ID != got.ID {
		t.Errorf("last prediction = %+v", overview.LastPrediction)
	}
}

func TestPredict_DefaultModel(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, body := env.do(t, http.MethodPost, "/api/v1/predict", models.DefaultSessionFeatures())
	var got models.PredictionRecord
	decodeData(t, body, &got)
	if got.Model != models.ModelXGBoost {
		t.Errorf("model = %q, want default %q", got.Model, models.ModelXGBoost)
	}
}

func TestPredict_Errors(t *testing.T) {
	t.Parallel()

	bad := models.DefaultSessionFeatures()
	bad.BounceRates = 2

	tests := []struct {
		name       string
		path       string
		body       interface{}
		scoreErr   error
		wantStatus int
		wantCode   string
	}{
		{"connection failure", "/api/v1/predict", models.DefaultSessionFeatures(), connectionError(), http.StatusBadGateway, CodeConnectionFailed},
		{"unknown model", "/api/v1/predict?model_name=gpt", models.DefaultSessionFeatures(), nil, http.StatusBadRequest, CodeValidation},
		{"malformed json", "/api/v1/predict", `{"ProductRelated":`, nil, http.StatusBadRequest, CodeInvalidJSON},
		{"empty body", "/api/v1/predict", nil, nil, http.StatusBadRequest, CodeInvalidJSON},
		{"out of range feature", "/api/v1/predict", bad, nil, http.StatusBadRequest, CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			if tt.scoreErr != nil {
				env.scorer.set(nil, tt.scoreErr)
			}

			rec, body := env.do(t, http.MethodPost, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if body.Success || body.Error == nil || body.Error.Code != tt.wantCode {
				t.Fatalf("error = %+v, want code %s", body.Error, tt.wantCode)
			}
			if snap := env.engine.Snapshot(); len(snap.History) != 0 {
				t.Errorf("history changed on failure: %d records", len(snap.History))
			}
		})
	}
}

func TestPredict_FailureSurfacesMessage(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.scorer.set(nil, connectionError())

	_, body := env.do(t, http.MethodPost, "/api/v1/predict", models.DefaultSessionFeatures())
	if body.Error.Message != dashboard.PredictErrorMessage {
		t.Errorf("message = %q", body.Error.Message)
	}

	_, body = env.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	var overview dashboard.Overview
	decodeData(t, body, &overview)
	if overview.Error != dashboard.PredictErrorMessage {
		t.Errorf("overview error = %q", overview.Error)
	}

	rec, body := env.do(t, http.MethodDelete, "/api/v1/dashboard/error", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear error status = %d", rec.Code)
	}
	// Error is omitted once empty, so decode into a fresh value.
	var cleared dashboard.Overview
	decodeData(t, body, &cleared)
	if cleared.Error != "" {
		t.Errorf("error not cleared: %q", cleared.Error)
	}
}

func TestPredict_ValidationDetails(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	bad := models.DefaultSessionFeatures()
	bad.VisitorType = "Robot"

	_, body := env.do(t, http.MethodPost, "/api/v1/predict", bad)
	if body.Error == nil || body.Error.Details["field"] != "VisitorType" {
		t.Errorf("details = %+v", body.Error)
	}
}

func TestHistoryAndActivity(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		if rec, _ := env.do(t, http.MethodPost, "/api/v1/predict", models.DefaultSessionFeatures()); rec.Code != http.StatusOK {
			t.Fatalf("predict %d status = %d", i, rec.Code)
		}
	}

	_, body := env.do(t, http.MethodGet, "/api/v1/history", nil)
	var history []models.PredictionRecord
	decodeData(t, body, &history)
	if len(history) != 3 || body.Meta.Count == nil || *body.Meta.Count != 3 {
		t.Fatalf("history len = %d, meta = %+v", len(history), body.Meta)
	}

	_, body = env.do(t, http.MethodGet, "/api/v1/history?limit=2", nil)
	decodeData(t, body, &history)
	if len(history) != 2 {
		t.Errorf("limited history len = %d, want 2", len(history))
	}

	rec, _ := env.do(t, http.MethodGet, "/api/v1/history?limit=zero", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", rec.Code)
	}

	_, body = env.do(t, http.MethodGet, "/api/v1/activity", nil)
	var activity []models.ActivityEvent
	decodeData(t, body, &activity)
	if len(activity) != 3 || activity[0].ID != 3 {
		t.Errorf("activity = %+v, want newest (id 3) first", activity)
	}
}

func TestScenarios(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, body := env.do(t, http.MethodGet, "/api/v1/scenarios", nil)
	var scenarios []models.Scenario
	decodeData(t, body, &scenarios)
	if len(scenarios) != 3 {
		t.Fatalf("scenarios = %d, want 3", len(scenarios))
	}

	t.Run("apply onto defaults", func(t *testing.T) {
		rec, body := env.do(t, http.MethodPost, "/api/v1/scenarios/browser/apply", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var features models.SessionFeatures
		decodeData(t, body, &features)
		if features.ProductRelated != 3 || features.VisitorType != models.VisitorNew || features.Region != 1 {
			t.Errorf("features = %+v", features)
		}
	})

	t.Run("apply onto posted base", func(t *testing.T) {
		base := models.DefaultSessionFeatures()
		base.Region = 7
		_, body := env.do(t, http.MethodPost, "/api/v1/scenarios/high-intent/apply", base)
		var features models.SessionFeatures
		decodeData(t, body, &features)
		if features.Region != 7 || features.ProductRelated != 25 {
			t.Errorf("features = %+v", features)
		}
	})

	t.Run("unknown scenario", func(t *testing.T) {
		rec, body := env.do(t, http.MethodPost, "/api/v1/scenarios/nope/apply", nil)
		if rec.Code != http.StatusNotFound || body.Error.Code != CodeNotFound {
			t.Errorf("status = %d error = %+v", rec.Code, body.Error)
		}
	})
}

func TestDefaultFeatures(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, body := env.do(t, http.MethodGet, "/api/v1/features/default", nil)
	var features models.SessionFeatures
	decodeData(t, body, &features)
	if features != models.DefaultSessionFeatures() {
		t.Errorf("features = %+v", features)
	}
}

func TestSetView(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec, _ := env.do(t, http.MethodPut, "/api/v1/view", SetViewRequest{View: "monitoring"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !env.scheduler.View().ViewActive {
		t.Error("entering the monitoring view should activate the scheduler")
	}
	if env.engine.Snapshot().View != models.ViewMonitoring {
		t.Errorf("engine view = %q", env.engine.Snapshot().View)
	}

	env.do(t, http.MethodPut, "/api/v1/view", SetViewRequest{View: "history"})
	if env.scheduler.View().ViewActive {
		t.Error("leaving the monitoring view should deactivate the scheduler")
	}

	rec, body := env.do(t, http.MethodPut, "/api/v1/view", SetViewRequest{View: "settings"})
	if rec.Code != http.StatusBadRequest || body.Error.Code != CodeValidation {
		t.Errorf("invalid view: status = %d error = %+v", rec.Code, body.Error)
	}
}

func TestMonitoringControls(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPut, "/api/v1/monitoring/auto-refresh", `{"enabled": false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("auto-refresh status = %d", rec.Code)
	}
	var view monitoring.ReadModel
	decodeData(t, body, &view)
	if view.AutoRefresh {
		t.Error("auto-refresh should be off")
	}

	_, body = env.do(t, http.MethodPut, "/api/v1/monitoring/view", `{"active": true}`)
	decodeData(t, body, &view)
	if !view.ViewActive || env.engine.Snapshot().View != models.ViewMonitoring {
		t.Errorf("view active = %v, engine view = %q", view.ViewActive, env.engine.Snapshot().View)
	}

	_, body = env.do(t, http.MethodPut, "/api/v1/monitoring/view", `{"active": false}`)
	decodeData(t, body, &view)
	if view.ViewActive || env.engine.Snapshot().View != models.ViewDashboard {
		t.Errorf("view active = %v, engine view = %q", view.ViewActive, env.engine.Snapshot().View)
	}

	rec, body = env.do(t, http.MethodPut, "/api/v1/monitoring/auto-refresh", `{}`)
	if rec.Code != http.StatusBadRequest || body.Error.Code != CodeValidation {
		t.Errorf("missing field: status = %d error = %+v", rec.Code, body.Error)
	}
}

func TestMonitoringRefresh(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/v1/monitoring/refresh", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var view monitoring.ReadModel
	decodeData(t, body, &view)
	if view.Metrics == nil || view.Metrics.TotalRequests != 3 || view.Loading {
		t.Fatalf("view = %+v", view)
	}
	if len(view.RecentRequests) != 2 || view.RecentRequests[0].Timestamp != "10:00:05" {
		t.Errorf("recent requests = %+v, want newest first", view.RecentRequests)
	}

	env.fetcher.set(nil, connectionError())
	rec, body = env.do(t, http.MethodPost, "/api/v1/monitoring/refresh", nil)
	if rec.Code != http.StatusBadGateway || body.Error.Message != monitoring.UnavailableMessage {
		t.Fatalf("failure: status = %d error = %+v", rec.Code, body.Error)
	}

	_, body = env.do(t, http.MethodGet, "/api/v1/monitoring", nil)
	decodeData(t, body, &view)
	if !view.Unavailable || view.Metrics == nil || view.Metrics.TotalRequests != 3 {
		t.Errorf("after failure view = %+v, want unavailable with last snapshot kept", view)
	}
}

func TestCheckWebSocketOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    *config.Config
		origin string
		want   bool
	}{
		{"missing origin", &config.Config{}, "", false},
		{"allowed origin", &config.Config{Server: config.ServerConfig{CORSOrigins: []string{"http://a.example"}}}, "http://a.example", true},
		{"wildcard", &config.Config{Server: config.ServerConfig{CORSOrigins: []string{"*"}}}, "http://any.example", true},
		{"unlisted origin", &config.Config{Server: config.ServerConfig{CORSOrigins: []string{"http://a.example"}}}, "http://evil.example", false},
		{"nil config", nil, "http://any.example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{config: tt.cfg}
			req := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if got := h.checkWebSocketOrigin(req); got != tt.want {
				t.Errorf("checkWebSocketOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWebSocket_NoHub(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/ws", nil)
	if rec.Code != http.StatusServiceUnavailable || body.Error.Code != CodeServiceUnavailable {
		t.Errorf("status = %d error = %+v", rec.Code, body.Error)
	}
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/nothing", nil)
	if rec.Code != http.StatusNotFound || body.Error.Code != CodeNotFound {
		t.Errorf("not found: status = %d error = %+v", rec.Code, body.Error)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/history", nil)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("method: status = %d, want 405", rec.Code)
	}
}

func TestRouter_RequestID(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "req-123" {
		t.Errorf("X-Request-Id = %q, want req-123", got)
	}
	if !strings.Contains(rec.Body.String(), `"request_id":"req-123"`) {
		t.Errorf("meta does not carry the request id: %s", rec.Body.String())
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "predict_pending") {
		t.Errorf("status = %d, metrics body missing predict_pending", rec.Code)
	}
}
