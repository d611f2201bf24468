// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

// Package logging provides centralized zerolog-based logging for IntentPulse.
//
//   - Zero-allocation structured logging
//   - JSON output for production, console output for development
//   - Context-aware logging with correlation, request and polling session IDs
//   - An slog.Handler adapter so sutureslog writes through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Msg("Server starting")
//	logging.Error().Err(err).Msg("Operation failed")
//	logging.Ctx(ctx).Info().Str("model", model).Msg("Prediction stored")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
