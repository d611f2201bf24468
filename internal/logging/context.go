// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ctxKey is a typed context key; the name doubles as the log field name.
type ctxKey[T any] struct{ name string }

func (k ctxKey[T]) with(ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, k, v)
}

func (k ctxKey[T]) from(ctx context.Context) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

var (
	correlationIDKey = ctxKey[string]{"correlation_id"}
	requestIDKey     = ctxKey[string]{"request_id"}
	pollSessionKey   = ctxKey[uint64]{"poll_session"}
	loggerKey        = ctxKey[zerolog.Logger]{"logger"}
)

// GenerateCorrelationID returns a short ID (the first 8 characters of a UUID).
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// GenerateRequestID returns a full UUID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithCorrelationID tags ctx with id.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return correlationIDKey.with(ctx, id)
}

// ContextWithNewCorrelationID tags ctx with a fresh correlation ID.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return ContextWithCorrelationID(ctx, GenerateCorrelationID())
}

// CorrelationIDFromContext returns the correlation ID or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := correlationIDKey.from(ctx)
	return id
}

// ContextWithRequestID tags ctx with the HTTP request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return requestIDKey.with(ctx, id)
}

// RequestIDFromContext returns the request ID or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := requestIDKey.from(ctx)
	return id
}

// ContextWithPollSession tags ctx with a polling session token so every log
// line emitted by that session's fetches can be grouped.
func ContextWithPollSession(ctx context.Context, token uint64) context.Context {
	return pollSessionKey.with(ctx, token)
}

// PollSessionFromContext returns the polling session token, if any.
func PollSessionFromContext(ctx context.Context) (uint64, bool) {
	return pollSessionKey.from(ctx)
}

// ContextWithLogger stores logger in ctx; Ctx builds on it instead of the
// global logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return loggerKey.with(ctx, logger)
}

// LoggerFromContext returns the stored logger or the global one.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if l, ok := loggerKey.from(ctx); ok {
		return l
	}
	return Logger()
}

// Ctx returns a logger carrying whichever of correlation_id, request_id and
// poll_session ctx holds.
//
//	logging.Ctx(ctx).Info().Msg("Prediction stored")
func Ctx(ctx context.Context) *zerolog.Logger {
	lc := LoggerFromContext(ctx).With()
	for _, k := range []ctxKey[string]{correlationIDKey, requestIDKey} {
		if v, ok := k.from(ctx); ok && v != "" {
			lc = lc.Str(k.name, v)
		}
	}
	if token, ok := pollSessionKey.from(ctx); ok {
		lc = lc.Uint64(pollSessionKey.name, token)
	}
	l := lc.Logger()
	return &l
}

// WithComponent returns a child of the global logger with a component field.
//
//	logger := logging.WithComponent("scoring")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
