// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package services adapts IntentPulse components to suture.Service.

  - HTTPServerService: ListenAndServe plus graceful Shutdown on cancel
  - NewWebSocketHubService: the hub's RunWithContext loop as a TaskService
  - TaskService: named wrapper for the state store, the polling scheduler
    and the drift and animation tickers

Each wrapper returns ctx.Err() on a clean stop and a wrapped error on
failure, which the supervisor answers with a restart.

	tree.AddEngineService(services.NewTaskService("state-store", store))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Supervisor.ShutdownTimeout))
*/
package services
