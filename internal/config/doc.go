// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package config provides centralized configuration management for IntentPulse.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH, ./config.yaml or /etc/intentpulse/config.yaml), then
environment variables. Only variables listed in the env mapping table are
read.

# Environment Variables

Scoring service:
  - SCORING_URL: Base URL of the scoring service (default: http://localhost:8000)
  - SCORING_TIMEOUT: Per-request timeout (default: 10s)
  - SCORING_RATE_LIMIT / SCORING_RATE_BURST: Outbound prediction limiter (default: 10/s, burst 5)

Dashboard:
  - HISTORY_CAPACITY / ACTIVITY_CAPACITY: Buffer sizes (default: 50 / 10)
  - ANIMATION_STEPS / ANIMATION_DURATION: Counter animation (default: 60 steps over 1s)
  - DRIFT_INTERVAL: Simulated activity period (default: 5s)
  - DEFAULT_MODEL: Model used when a request names none (default: xgboost)
  - RANDOM_SEED: Seed for simulated drift, 0 = time based

Monitoring:
  - POLL_INTERVAL: Metrics poll period (default: 5s)
  - AUTO_REFRESH: Initial auto-refresh toggle (default: true)
  - INITIAL_VIEW: View active at startup (default: dashboard)

Server:
  - HTTP_HOST / HTTP_PORT / HTTP_TIMEOUT (default: 0.0.0.0 / 8080 / 30s)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: Inbound limiter (default: 100 per 1m)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Supervisor:
  - SUPERVISOR_FAILURE_THRESHOLD, SUPERVISOR_FAILURE_DECAY,
    SUPERVISOR_FAILURE_BACKOFF, SUPERVISOR_SHUTDOWN_TIMEOUT

# Example config.yaml

	scoring:
	  url: http://scoring:8000
	  timeout: 5s
	monitoring:
	  poll_interval: 5s
	  auto_refresh: true
	server:
	  port: 8080
	  cors_origins: ["http://localhost:3000"]
*/
package config
