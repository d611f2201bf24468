// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
Package supervisor runs every long-lived IntentPulse task under suture v4.

# Tree

	RootSupervisor ("intentpulse")
	├── EngineSupervisor ("engine-layer")
	│   ├── state-store          single writer of dashboard state
	│   ├── metrics-scheduler    monitoring polling sessions
	│   ├── realtime-drift       simulated live activity
	│   └── counter-animation    headline counter frames
	├── MessagingSupervisor ("messaging-layer")
	│   └── websocket-hub
	└── APISupervisor ("api-layer")
	    └── http-server

Every periodic task has exactly one owner here: cancelling the root context
stops all of them, and a task that returns an error is restarted with
backoff (FailureThreshold, FailureDecay, FailureBackoff). Supervisor events
are logged through sutureslog into the zerolog pipeline.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"),
	    supervisor.TreeConfigFrom(cfg.Supervisor))
	tree.AddEngineService(services.NewTaskService("state-store", store))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Supervisor.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
