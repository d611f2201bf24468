// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/intentpulse/internal/clock"
	"github.com/tomtom215/intentpulse/internal/config"
	"github.com/tomtom215/intentpulse/internal/dashboard"
	"github.com/tomtom215/intentpulse/internal/models"
	"github.com/tomtom215/intentpulse/internal/monitoring"
	"github.com/tomtom215/intentpulse/internal/scoring"
)

// fakeScorer returns a canned response or error.
type fakeScorer struct {
	mu    sync.Mutex
	resp  *models.PredictResponse
	err   error
	calls int
}

func (f *fakeScorer) Predict(_ context.Context, _ models.SessionFeatures, _ string) (*models.PredictResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.resp, f.err
}

func (f *fakeScorer) set(resp *models.PredictResponse, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resp, f.err = resp, err
}

// fakeFetcher returns a canned metrics snapshot or error.
type fakeFetcher struct {
	mu   sync.Mutex
	snap *models.MetricsSnapshot
	err  error
}

func (f *fakeFetcher) FetchMetrics(_ context.Context) (*models.MetricsSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap.Clone(), f.err
}

func (f *fakeFetcher) set(snap *models.MetricsSnapshot, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap, f.err = snap, err
}

type fixedBreaker string

func (b fixedBreaker) State() string { return string(b) }

type testEnv struct {
	router    http.Handler
	handler   *Handler
	engine    *dashboard.Engine
	scheduler *monitoring.Scheduler
	scorer    *fakeScorer
	fetcher   *fakeFetcher
}

func purchaseResponse() *models.PredictResponse {
	return &models.PredictResponse{
		Prediction:     models.OutcomePurchase,
		Probability:    0.82,
		Confidence:     "high",
		TopFeatures:    []models.FeatureImportance{{Feature: "PageValues", Importance: 0.41}},
		Recommendation: "Offer free shipping",
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	store := dashboard.NewStore(dashboard.NewState(models.ViewDashboard))
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = store.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	scorer := &fakeScorer{resp: purchaseResponse()}
	fetcher := &fakeFetcher{snap: &models.MetricsSnapshot{
		TotalRequests: 3,
		RecentRequests: []models.RequestLogEntry{
			{Timestamp: "10:00:00", Model: models.ModelXGBoost},
			{Timestamp: "10:00:05", Model: models.ModelLogistic},
		},
	}}

	engine := dashboard.NewEngine(store, scorer, clock.Real(), dashboard.DefaultLimits(), models.ModelXGBoost)
	scheduler := monitoring.NewScheduler(fetcher, clock.Real(), time.Hour, true)
	engine.OnViewChange(scheduler.SetView)

	cfg := &config.Config{Server: config.ServerConfig{CORSOrigins: []string{"http://allowed.example"}}}
	handler := NewHandler(engine, scheduler, fixedBreaker("closed"), nil, cfg, "test")

	return &testEnv{
		router:    NewRouter(handler, cfg).SetupChi(),
		handler:   handler,
		engine:    engine,
		scheduler: scheduler,
		scorer:    scorer,
		fetcher:   fetcher,
	}
}

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *models.APIError `json:"error"`
	Meta    models.Metadata  `json:"meta"`
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: response is not an envelope: %v (%s)", method, path, err, rec.Body.String())
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (%s)", err, env.Data)
	}
}

func connectionError() error {
	return errors.Join(scoring.ErrConnectionFailure, errors.New("dial tcp: connection refused"))
}
