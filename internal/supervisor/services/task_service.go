// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/intentpulse/internal/logging"
)

// Runner is a long-lived task that runs until its context is cancelled.
type Runner interface {
	Serve(ctx context.Context) error
}

// RunnerFunc adapts a run-until-cancelled function to Runner.
type RunnerFunc func(ctx context.Context) error

// Serve calls f(ctx).
func (f RunnerFunc) Serve(ctx context.Context) error { return f(ctx) }

// TaskService gives a Runner a stable name and lifecycle logging.
type TaskService struct {
	runner Runner
	name   string
}

// NewTaskService wraps runner. When name is empty and runner implements
// fmt.Stringer, its String() is used.
func NewTaskService(name string, runner Runner) *TaskService {
	if name == "" {
		if s, ok := runner.(fmt.Stringer); ok {
			name = s.String()
		}
	}
	return &TaskService{runner: runner, name: name}
}

// Serve implements suture.Service. An error other than the context's own is
// logged and returned so the supervisor restarts the task.
func (e *TaskService) Serve(ctx context.Context) error {
	logging.Debug().Str("service", e.name).Msg("Service starting")

	err := e.runner.Serve(ctx)
	if err != nil && ctx.Err() == nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Str("service", e.name).Msg("Service failed")
		return fmt.Errorf("%s: %w", e.name, err)
	}

	logging.Debug().Str("service", e.name).Msg("Service stopped")
	return err
}

func (e *TaskService) String() string {
	return e.name
}
