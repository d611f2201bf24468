// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package scoring

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/intentpulse/internal/config"
	"github.com/tomtom215/intentpulse/internal/models"
)

func testConfig(url string) *config.ScoringConfig {
	return &config.ScoringConfig{URL: url, Timeout: 2 * time.Second}
}

func TestClient_Predict(t *testing.T) {
	t.Parallel()

	var (
		mu          sync.Mutex
		gotModel    string
		gotFeatures models.SessionFeatures
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotModel = r.URL.Query().Get("model_name")
		if err := json.NewDecoder(r.Body).Decode(&gotFeatures); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":1,"probability":0.87,"confidence":"High",` +
			`"top_features":[{"feature":"PageValues","importance":0.42},{"feature":"ProductRelated","importance":0.18}],` +
			`"recommendation":"Offer free shipping"}`))
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL + "/"))
	resp, err := c.Predict(context.Background(), models.DefaultSessionFeatures(), models.ModelRandomForest)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if gotModel != models.ModelRandomForest {
		t.Errorf("model_name = %q, want %q", gotModel, models.ModelRandomForest)
	}
	if gotFeatures.Month != "Nov" || gotFeatures.PageValues != 15 {
		t.Errorf("features not forwarded: %+v", gotFeatures)
	}
	if resp.Prediction != models.OutcomePurchase || resp.Probability != 0.87 {
		t.Errorf("resp = %+v", resp)
	}
	if len(resp.TopFeatures) != 2 || resp.TopFeatures[0].Feature != "PageValues" {
		t.Errorf("TopFeatures = %+v", resp.TopFeatures)
	}
}

func TestClient_PredictErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "model not loaded", http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				var se *StatusError
				if !errors.As(err, &se) {
					t.Fatalf("error = %v, want *StatusError", err)
				}
				if se.StatusCode != http.StatusInternalServerError || !strings.Contains(se.Body, "model not loaded") {
					t.Errorf("StatusError = %+v", se)
				}
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"prediction":`))
			},
			check: func(t *testing.T, err error) {
				if !strings.Contains(err.Error(), "decode") {
					t.Errorf("error = %v, want decode failure", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := NewClient(testConfig(server.URL)).Predict(context.Background(), models.DefaultSessionFeatures(), models.ModelXGBoost)
			if err == nil {
				t.Fatal("expected error")
			}
			tt.check(t, err)
		})
	}
}

func TestClient_FetchMetrics(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/metrics" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"total_requests":42,"avg_response_time_ms":131.5,"error_rate":0.02,"uptime":"1h 3m",` +
			`"risk_distribution":{"HIGH":3,"LOW":39},"requests_by_model":{"xgboost":40,"logistic":2},` +
			`"recent_requests":[{"timestamp":"10:00:00","risk_level":"LOW","model":"xgboost","response_time_ms":120}]}`))
	}))
	defer server.Close()

	snap, err := NewClient(testConfig(server.URL)).FetchMetrics(context.Background())
	if err != nil {
		t.Fatalf("FetchMetrics() error = %v", err)
	}
	if snap.TotalRequests != 42 || snap.Uptime != "1h 3m" {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.RequestsByModel["xgboost"] != 40 || snap.RiskDistribution["HIGH"] != 3 {
		t.Errorf("maps not decoded: %+v", snap)
	}
	if len(snap.RecentRequests) != 1 || snap.RecentRequests[0].ResponseTimeMs != 120 {
		t.Errorf("RecentRequests = %+v", snap.RecentRequests)
	}
}

func TestClient_RateLimitWaitCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"prediction":0,"probability":0.1}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	c := NewClient(cfg)

	if _, err := c.Predict(context.Background(), models.DefaultSessionFeatures(), models.ModelXGBoost); err != nil {
		t.Fatalf("first Predict() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.Predict(ctx, models.DefaultSessionFeatures(), models.ModelXGBoost); err == nil {
		t.Fatal("second Predict() should fail waiting on the limiter")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server saw %d calls, want 1", n)
	}
}

func TestReadBodyForError_Truncates(t *testing.T) {
	t.Parallel()

	body := readBodyForError(strings.NewReader(strings.Repeat("x", maxErrorBodySize+10)))
	if !strings.HasSuffix(string(body), "... (truncated)") {
		t.Error("expected truncation marker")
	}

	short := readBodyForError(strings.NewReader("oops"))
	if string(short) != "oops" {
		t.Errorf("readBodyForError() = %q", short)
	}
}
