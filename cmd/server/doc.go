// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package main is the entry point for the IntentPulse server.

IntentPulse keeps the live state of a purchase-intent dashboard: it forwards
prediction requests to a remote scoring service, folds the results into a
bounded history and activity feed, animates headline counters, simulates
live visitor drift and polls the scoring service's model metrics while the
monitoring view is open. Clients read the state over REST or follow it over
a WebSocket.

# Application Architecture

	RootSupervisor ("intentpulse")
	├── EngineSupervisor ("engine-layer")
	│   ├── state-store
	│   ├── metrics-scheduler
	│   ├── realtime-drift
	│   └── counter-animation
	├── MessagingSupervisor ("messaging-layer")
	│   └── websocket-hub
	└── APISupervisor ("api-layer")
	    └── http-server

Startup order:

 1. Configuration: Koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, format and level from LOG_FORMAT and LOG_LEVEL
 3. Components: scoring client behind a circuit breaker, state store,
    request engine, polling scheduler, drift and animation services,
    WebSocket hub and Chi router
 4. Supervisor tree: every component runs as a suture service

# Configuration

Common environment variables:

	SCORING_URL            scoring service base URL (default http://localhost:8000)
	POLL_INTERVAL          metrics poll period (default 5s)
	AUTO_REFRESH           poll periodically while monitoring (default true)
	HTTP_PORT              listen port (default 8080)
	CORS_ORIGINS           comma-separated allowed origins (default *)
	RATE_LIMIT_REQUESTS    requests per window per IP, 0 disables (default 100)
	LOG_LEVEL, LOG_FORMAT  zerolog level and json|console

# Signal Handling

SIGINT and SIGTERM cancel the root context. Each layer stops its services
within SUPERVISOR_SHUTDOWN_TIMEOUT; services that fail to stop are reported
and the process exits non-zero.
*/
package main
