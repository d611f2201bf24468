// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package websocket pushes engine state to presentation clients.

# Message Types

All messages are JSON objects of the form {"type": ..., "data": ...}:

  - state_update: dashboard overview after every store change
  - monitoring_update: authoritative metrics read model after every commit
    or polling transition
  - prediction: a newly recorded prediction
  - ping / pong: client keepalive; the server answers ping with pong

A client receives the current state_update and monitoring_update as soon as
it registers (see Hub.SetWelcome).

# Architecture

The Hub owns the client set and runs as a supervised service via
RunWithContext. Each Client runs a read pump and a write pump. Broadcasts
are non-blocking: a full hub queue drops the message, a full client buffer
disconnects that client.

	hub := websocket.NewHub()
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	hub.BroadcastState(engine.Overview())
*/
package websocket
