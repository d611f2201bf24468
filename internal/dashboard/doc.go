// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package dashboard holds the optimistic side of IntentPulse: the prediction
history, the activity feed, the realtime counters and the animated headline
numbers.

# Components

  - Store: single-writer state container. Mutations are closures applied in
    order by Store.Serve; readers get copies via Snapshot.
  - Engine: the request orchestrator. Predict validates, calls the scoring
    service, measures latency and commits the outcome in one step.
  - DriftService: simulated activity every DriftInterval.
  - AnimationService: advances the counter animation one frame per tick.
  - Overview: read model with display fallbacks and the probability trend.

Store, DriftService and AnimationService implement suture.Service and are
run by the supervisor tree.

# Example

	store := dashboard.NewStore(dashboard.NewState(models.ViewDashboard))
	engine := dashboard.NewEngine(store, scorer, clock.Real(), dashboard.DefaultLimits(), models.ModelXGBoost)
	rec, err := engine.Predict(ctx, features, models.ModelXGBoost)
	if errors.Is(err, scoring.ErrConnectionFailure) {
		// engine.Overview().Error now carries the user-facing message
	}

The authoritative metrics read model lives in package monitoring and is
never merged into this state.
*/
package dashboard
