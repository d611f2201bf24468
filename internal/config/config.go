// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after LoadWithKoanf() and safe for concurrent reads.
type Config struct {
	Scoring    ScoringConfig    `koanf:"scoring"`
	Dashboard  DashboardConfig  `koanf:"dashboard"`
	Monitoring MonitoringConfig `koanf:"monitoring"`
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ScoringConfig holds the connection settings for the remote scoring service.
//
// Environment Variables:
//   - SCORING_URL: Base URL of the scoring service (default: http://localhost:8000)
//   - SCORING_TIMEOUT: Per-request timeout (default: 10s)
//   - SCORING_RATE_LIMIT: Max prediction requests per second, 0 disables (default: 10)
//   - SCORING_RATE_BURST: Prediction burst size (default: 5)
type ScoringConfig struct {
	URL       string        `koanf:"url"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"`
	RateBurst int           `koanf:"rate_burst"`
}

// DashboardConfig holds the local dashboard state settings.
type DashboardConfig struct {
	HistoryCapacity   int           `koanf:"history_capacity"`   // Max prediction records kept (default: 50)
	ActivityCapacity  int           `koanf:"activity_capacity"`  // Max activity feed entries (default: 10)
	AnimationSteps    int           `koanf:"animation_steps"`    // Ticks per counter animation (default: 60)
	AnimationDuration time.Duration `koanf:"animation_duration"` // Total animation length (default: 1s)
	DriftInterval     time.Duration `koanf:"drift_interval"`     // Simulated activity period (default: 5s)
	DefaultModel      string        `koanf:"default_model"`      // Model used when a request names none
	RandomSeed        int64         `koanf:"random_seed"`        // 0 seeds from the clock
}

// MonitoringConfig holds the authoritative metrics polling settings.
type MonitoringConfig struct {
	PollInterval time.Duration `koanf:"poll_interval"` // Poll period while polling (default: 5s)
	AutoRefresh  bool          `koanf:"auto_refresh"`  // Initial auto-refresh toggle (default: true)
	InitialView  string        `koanf:"initial_view"`  // View active at startup (default: dashboard)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port              int           `koanf:"port"`
	Host              string        `koanf:"host"`
	Timeout           time.Duration `koanf:"timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"` // 0 disables inbound rate limiting
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// SupervisorConfig holds supervisor tree restart settings.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}
