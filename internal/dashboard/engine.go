// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/intentpulse/internal/clock"
	"github.com/tomtom215/intentpulse/internal/logging"
	"github.com/tomtom215/intentpulse/internal/metrics"
	"github.com/tomtom215/intentpulse/internal/models"
	"github.com/tomtom215/intentpulse/internal/scoring"
	"github.com/tomtom215/intentpulse/internal/validation"
)

// commitTimeout bounds how long a finished request waits for the store.
const commitTimeout = 5 * time.Second

var (
	// ErrInvalidRequest is returned when the model name or features fail validation.
	ErrInvalidRequest = errors.New("invalid prediction request")

	// ErrScenarioNotFound is returned for an unknown example scenario ID.
	ErrScenarioNotFound = errors.New("scenario not found")
)

// Scorer calls the remote prediction endpoint.
type Scorer interface {
	Predict(ctx context.Context, features models.SessionFeatures, model string) (*models.PredictResponse, error)
}

// Engine is the request orchestrator: it turns prediction requests into
// store updates and exposes the dashboard's user operations.
type Engine struct {
	store        *Store
	scorer       Scorer
	clock        clock.Clock
	limits       Limits
	defaultModel string
	newID        func() string

	viewMu    sync.RWMutex
	viewHooks []func(models.View)
}

// NewEngine creates an orchestrator writing to store.
func NewEngine(store *Store, scorer Scorer, clk clock.Clock, limits Limits, defaultModel string) *Engine {
	if clk == nil {
		clk = clock.Real()
	}
	if !models.IsValidModel(defaultModel) {
		defaultModel = models.ModelXGBoost
	}
	return &Engine{
		store:        store,
		scorer:       scorer,
		clock:        clk,
		limits:       limits.withDefaults(),
		defaultModel: defaultModel,
		newID:        func() string { return uuid.New().String() },
	}
}

// Predict scores features with modelName (the default model when empty).
//
// The state is touched twice: once to mark the request pending, once to
// apply the outcome. Concurrent calls are allowed and land in the order
// their responses arrive. On failure nothing but the pending count and the
// error message changes.
func (e *Engine) Predict(ctx context.Context, features models.SessionFeatures, modelName string) (*models.PredictionRecord, error) {
	if modelName == "" {
		modelName = e.defaultModel
	}
	if !models.IsValidModel(modelName) {
		return nil, fmt.Errorf("%w: unknown model %q", ErrInvalidRequest, modelName)
	}
	if verr := validation.ValidateStruct(features); verr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, verr)
	}

	// An error here means the increment was never applied.
	if err := e.store.Update(ctx, func(s *State) {
		s.Pending++
		s.PredictError = ""
	}); err != nil {
		return nil, err
	}
	metrics.PredictPending.Inc()
	defer metrics.PredictPending.Dec()

	start := e.clock.Now()
	resp, err := e.scorer.Predict(ctx, features, modelName)
	latency := e.clock.Since(start)
	if err == nil && resp == nil {
		err = errors.New("empty prediction response")
	}

	// The outcome is committed even if the caller has gone away. Only a
	// store that stays stalled for commitTimeout can drop it.
	commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
	defer cancel()

	if err != nil {
		metrics.RecordPrediction(modelName, "failure", 0)
		logging.Ctx(ctx).Warn().Err(err).Str("model", modelName).Dur("latency", latency).Msg("Prediction request failed")

		if uerr := e.store.Update(commitCtx, func(s *State) {
			s.Pending--
			s.PredictError = PredictErrorMessage
		}); uerr != nil {
			logging.Ctx(ctx).Error().Err(uerr).Msg("Failed to record prediction failure")
		}

		if !errors.Is(err, scoring.ErrConnectionFailure) {
			err = fmt.Errorf("%w: %w", scoring.ErrConnectionFailure, err)
		}
		return nil, err
	}

	rec := &models.PredictionRecord{
		ID:             e.newID(),
		Prediction:     resp.Prediction,
		Probability:    resp.Probability,
		Confidence:     resp.Confidence,
		TopFeatures:    append([]models.FeatureImportance(nil), resp.TopFeatures...),
		Recommendation: resp.Recommendation,
		Model:          modelName,
		Timestamp:      e.clock.Now(),
		ResponseTime:   latency,
		ResponseTimeMs: latency.Milliseconds(),
		Features:       features,
	}

	if err := e.store.Update(commitCtx, func(s *State) {
		s.Pending--
		s.recordPrediction(rec, e.limits)
	}); err != nil {
		return nil, fmt.Errorf("failed to commit prediction: %w", err)
	}
	metrics.AnimationsStarted.Inc()

	outcome := models.ActivityAbandon
	if rec.IsPurchase() {
		outcome = models.ActivityPurchase
	}
	metrics.RecordPrediction(modelName, outcome, latency)

	logging.Ctx(ctx).Info().
		Str("prediction_id", rec.ID).
		Str("model", modelName).
		Str("outcome", outcome).
		Float64("probability", rec.Probability).
		Int64("response_time_ms", rec.ResponseTimeMs).
		Msg("Prediction recorded")

	return rec, nil
}

// LoadScenario overlays the named example scenario onto base and clears the
// last prediction, as loading an example resets the result panel.
func (e *Engine) LoadScenario(ctx context.Context, base models.SessionFeatures, id string) (models.SessionFeatures, error) {
	sc, ok := models.FindScenario(id)
	if !ok {
		return models.SessionFeatures{}, fmt.Errorf("%w: %q", ErrScenarioNotFound, id)
	}
	if err := e.store.Update(ctx, func(s *State) { s.LastPrediction = nil }); err != nil {
		return models.SessionFeatures{}, err
	}
	return models.ApplyScenario(base, sc), nil
}

// ClearError dismisses the prediction error message.
func (e *Engine) ClearError(ctx context.Context) error {
	return e.store.Update(ctx, func(s *State) { s.PredictError = "" })
}

// SetView records the active view and tells view listeners about it.
func (e *Engine) SetView(ctx context.Context, view models.View) error {
	if !view.Valid() {
		return fmt.Errorf("%w: unknown view %q", ErrInvalidRequest, view)
	}
	if err := e.store.Update(ctx, func(s *State) { s.View = view }); err != nil {
		return err
	}

	e.viewMu.RLock()
	hooks := e.viewHooks
	e.viewMu.RUnlock()
	for _, h := range hooks {
		h(view)
	}
	return nil
}

// OnViewChange registers fn to be told about every SetView call.
func (e *Engine) OnViewChange(fn func(models.View)) {
	e.viewMu.Lock()
	defer e.viewMu.Unlock()
	e.viewHooks = append(e.viewHooks, fn)
}

// DefaultModel returns the model used when a request names none.
func (e *Engine) DefaultModel() string {
	return e.defaultModel
}

// Snapshot returns the latest committed dashboard state.
func (e *Engine) Snapshot() State {
	return e.store.Snapshot()
}

// Overview builds the dashboard read model from the latest state.
func (e *Engine) Overview() Overview {
	return BuildOverview(e.store.Snapshot())
}
