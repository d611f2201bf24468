// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package models defines the data structures shared by the IntentPulse engine.

Key Components:

  - SessionFeatures: the feature vector posted to the scoring service
  - PredictResponse: wire body returned by POST /predict
  - PredictionRecord: immutable result of one successful prediction
  - ActivityEvent: compact feed entry derived from a PredictionRecord
  - RealtimeStats / AnimatedStats: optimistic counters and their display form
  - MetricsSnapshot: authoritative operational snapshot from GET /api/metrics
  - Scenario: named partial feature sets for quick form filling

Records and snapshots are treated as values. Code that hands them to other
goroutines copies them first (see MetricsSnapshot.Clone).
*/
package models
