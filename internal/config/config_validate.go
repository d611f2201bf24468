// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/intentpulse/internal/models"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateScoring,
		c.validateDashboard,
		c.validateMonitoring,
		c.validateServer,
		c.validateLogging,
		c.validateSupervisor,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

// validateScoring validates the scoring service connection
func (c *Config) validateScoring() error {
	if c.Scoring.URL == "" {
		return fmt.Errorf("SCORING_URL is required")
	}
	if err := validateBaseURL(c.Scoring.URL); err != nil {
		return fmt.Errorf("SCORING_URL is invalid: %w", err)
	}
	if c.Scoring.Timeout <= 0 {
		return fmt.Errorf("SCORING_TIMEOUT must be positive")
	}
	if c.Scoring.RateLimit < 0 {
		return fmt.Errorf("SCORING_RATE_LIMIT must not be negative")
	}
	if c.Scoring.RateLimit > 0 && c.Scoring.RateBurst < 1 {
		return fmt.Errorf("SCORING_RATE_BURST must be at least 1 when rate limiting is enabled")
	}
	return nil
}

// validateDashboard validates buffer capacities and animation timing
func (c *Config) validateDashboard() error {
	d := c.Dashboard
	if d.HistoryCapacity < 1 || d.HistoryCapacity > 10000 {
		return fmt.Errorf("HISTORY_CAPACITY must be between 1 and 10000")
	}
	if d.ActivityCapacity < 1 || d.ActivityCapacity > 1000 {
		return fmt.Errorf("ACTIVITY_CAPACITY must be between 1 and 1000")
	}
	if d.AnimationSteps < 1 {
		return fmt.Errorf("ANIMATION_STEPS must be at least 1")
	}
	if d.AnimationDuration < time.Duration(d.AnimationSteps) {
		return fmt.Errorf("ANIMATION_DURATION must allow at least 1ns per step")
	}
	if d.DriftInterval <= 0 {
		return fmt.Errorf("DRIFT_INTERVAL must be positive")
	}
	if !models.IsValidModel(d.DefaultModel) {
		return fmt.Errorf("DEFAULT_MODEL must be one of: xgboost, random_forest, logistic, ensemble")
	}
	return nil
}

// validateMonitoring validates polling settings
func (c *Config) validateMonitoring() error {
	if c.Monitoring.PollInterval < 100*time.Millisecond {
		return fmt.Errorf("POLL_INTERVAL must be at least 100ms")
	}
	if !models.View(c.Monitoring.InitialView).Valid() {
		return fmt.Errorf("INITIAL_VIEW must be one of: dashboard, predictor, history, monitoring")
	}
	return nil
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.RateLimitRequests < 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative")
	}
	if c.Server.RateLimitRequests > 0 && c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates the logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateSupervisor validates restart tuning
func (c *Config) validateSupervisor() error {
	if c.Supervisor.FailureThreshold < 0 || c.Supervisor.FailureDecay < 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_THRESHOLD and SUPERVISOR_FAILURE_DECAY must not be negative")
	}
	if c.Supervisor.ShutdownTimeout < 0 || c.Supervisor.FailureBackoff < 0 {
		return fmt.Errorf("SUPERVISOR_SHUTDOWN_TIMEOUT and SUPERVISOR_FAILURE_BACKOFF must not be negative")
	}
	return nil
}
