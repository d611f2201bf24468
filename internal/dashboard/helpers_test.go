// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tomtom215/intentpulse/internal/models"
)

// startStore runs the store loop for the duration of the test.
func startStore(t *testing.T, s *Store) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

// waitTickers blocks until clk has exactly n live tickers.
func waitTickers(t *testing.T, clk *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := clk.BlockUntilContext(ctx, n); err != nil {
		t.Fatalf("waiting for %d tickers: %v", n, err)
	}
}

type scorerFunc func(ctx context.Context, features models.SessionFeatures, model string) (*models.PredictResponse, error)

func (f scorerFunc) Predict(ctx context.Context, features models.SessionFeatures, model string) (*models.PredictResponse, error) {
	return f(ctx, features, model)
}

// scriptedRandom replays fixed values.
type scriptedRandom struct {
	ints   []int
	floats []float64
}

func (r *scriptedRandom) Intn(n int) int {
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRandom) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func record(prediction int, probability float64) models.PredictionRecord {
	return models.PredictionRecord{Prediction: prediction, Probability: probability}
}
