// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package services

import "context"

// ContextHub is a hub whose run loop stops when its context is cancelled.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// NewWebSocketHubService runs the hub loop as the "websocket-hub" service.
func NewWebSocketHubService(hub ContextHub) *TaskService {
	return NewTaskService("websocket-hub", RunnerFunc(hub.RunWithContext))
}
