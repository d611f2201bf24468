// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package models

import "time"

// Model names accepted by the scoring service's model_name query parameter.
const (
	ModelXGBoost      = "xgboost"
	ModelRandomForest = "random_forest"
	ModelLogistic     = "logistic"
	ModelEnsemble     = "ensemble"
)

// Models lists every supported model name.
var Models = []string{ModelXGBoost, ModelRandomForest, ModelLogistic, ModelEnsemble}

// IsValidModel reports whether name is a model the scoring service serves.
func IsValidModel(name string) bool {
	for _, m := range Models {
		if m == name {
			return true
		}
	}
	return false
}

// Binary outcomes returned by the scoring service.
const (
	OutcomeAbandon  = 0
	OutcomePurchase = 1
)

// Activity event types.
const (
	ActivityPurchase = "purchase"
	ActivityAbandon  = "abandon"
)

// HighIntentThreshold is the probability above which a session counts as high intent.
const HighIntentThreshold = 0.7

// FeatureImportance is one (feature, importance) pair from the scoring response.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// PredictResponse is the body returned by POST /predict.
type PredictResponse struct {
	Prediction     int                 `json:"prediction"`
	Probability    float64             `json:"probability"`
	Confidence     string              `json:"confidence"`
	TopFeatures    []FeatureImportance `json:"top_features"`
	Recommendation string              `json:"recommendation"`
}

// PredictionRecord is the immutable result of one successful prediction.
// Records are created by the orchestrator and only leave the history
// buffer through capacity eviction.
type PredictionRecord struct {
	ID             string              `json:"id"`
	Prediction     int                 `json:"prediction"`
	Probability    float64             `json:"probability"`
	Confidence     string              `json:"confidence"`
	TopFeatures    []FeatureImportance `json:"top_features"`
	Recommendation string              `json:"recommendation"`
	Model          string              `json:"model"`
	Timestamp      time.Time           `json:"timestamp"`
	ResponseTime   time.Duration       `json:"-"`
	ResponseTimeMs int64               `json:"response_time_ms"`
	Features       SessionFeatures     `json:"features"`
}

// IsPurchase reports whether the record predicts a purchase.
func (r *PredictionRecord) IsPurchase() bool {
	return r.Prediction == OutcomePurchase
}

// IsHighIntent reports whether the record's probability exceeds HighIntentThreshold.
func (r *PredictionRecord) IsHighIntent() bool {
	return r.Probability > HighIntentThreshold
}

// ActivityEvent is the compact feed entry derived from a PredictionRecord.
type ActivityEvent struct {
	ID          uint64  `json:"id"`
	Type        string  `json:"type"`
	Probability float64 `json:"probability"`
	Time        string  `json:"time"`
	Model       string  `json:"model"`
}

// ActivityTimeFormat is the display format of ActivityEvent.Time.
const ActivityTimeFormat = "15:04:05"

// NewActivityEvent derives the feed entry for rec with the given identifier.
func NewActivityEvent(id uint64, rec *PredictionRecord) ActivityEvent {
	eventType := ActivityAbandon
	if rec.IsPurchase() {
		eventType = ActivityPurchase
	}
	return ActivityEvent{
		ID:          id,
		Type:        eventType,
		Probability: rec.Probability,
		Time:        rec.Timestamp.Format(ActivityTimeFormat),
		Model:       rec.Model,
	}
}
