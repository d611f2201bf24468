// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package monitoring owns the authoritative metrics read model and the
scheduler that keeps it fresh.

# State Machine

	            view active && auto-refresh
	  Idle  ───────────────────────────────▶  Polling
	   ▲                                         │
	   └──────── view hidden || auto-refresh off ┘

Entering Polling starts a session: a new token, an immediate fetch and a
ticker every PollInterval. Leaving it cancels the ticker and the session
context, which aborts any in-flight HTTP request. When the view is shown
with auto-refresh off, a single fetch runs under its own token.

# Commit Rule

A result is applied only if its token still matches the scheduler's current
token, checked under the scheduler lock. Stale results, successful or not,
are dropped and counted in metrics_polls_stale_total.

On failure the previous snapshot is kept and the read model is flagged
unavailable. The next success clears the flag.

The read model is never merged with the dashboard's optimistic counters.
*/
package monitoring
