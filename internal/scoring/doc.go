// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

// Package scoring is the client for the remote purchase-intent scoring
// service. It exposes the prediction endpoint used by the request
// orchestrator and the metrics endpoint polled by the monitoring scheduler.
//
// Every failure unwraps to ErrConnectionFailure:
//
//	resp, err := client.Predict(ctx, features, models.ModelXGBoost)
//	if errors.Is(err, scoring.ErrConnectionFailure) {
//		// surface "Connection failed" to the user
//	}
package scoring
