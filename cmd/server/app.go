// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package main

import (
	"net/http"
	"time"

	"github.com/tomtom215/intentpulse/internal/api"
	"github.com/tomtom215/intentpulse/internal/clock"
	"github.com/tomtom215/intentpulse/internal/config"
	"github.com/tomtom215/intentpulse/internal/dashboard"
	"github.com/tomtom215/intentpulse/internal/logging"
	"github.com/tomtom215/intentpulse/internal/models"
	"github.com/tomtom215/intentpulse/internal/monitoring"
	"github.com/tomtom215/intentpulse/internal/realtime"
	"github.com/tomtom215/intentpulse/internal/scoring"
	"github.com/tomtom215/intentpulse/internal/supervisor"
	"github.com/tomtom215/intentpulse/internal/supervisor/services"
	ws "github.com/tomtom215/intentpulse/internal/websocket"
)

// app holds every long-lived component of the server.
type app struct {
	cfg       *config.Config
	scorer    *scoring.CircuitBreakerClient
	store     *dashboard.Store
	engine    *dashboard.Engine
	scheduler *monitoring.Scheduler
	drift     *dashboard.DriftService
	animation *dashboard.AnimationService
	hub       *ws.Hub
	server    *http.Server
}

// newApp constructs and wires the components. Nothing runs until the
// services are added to a supervisor tree.
func newApp(cfg *config.Config, clk clock.Clock) *app {
	initialView := models.View(cfg.Monitoring.InitialView)
	if !initialView.Valid() {
		initialView = models.ViewDashboard
	}

	scorer := scoring.NewCircuitBreakerClient(&cfg.Scoring)
	store := dashboard.NewStore(dashboard.NewState(initialView))
	engine := dashboard.NewEngine(store, scorer, clk, dashboard.Limits{
		HistoryCapacity:  cfg.Dashboard.HistoryCapacity,
		ActivityCapacity: cfg.Dashboard.ActivityCapacity,
	}, cfg.Dashboard.DefaultModel)

	scheduler := monitoring.NewScheduler(scorer, clk, cfg.Monitoring.PollInterval, cfg.Monitoring.AutoRefresh)
	scheduler.SetView(initialView)
	engine.OnViewChange(scheduler.SetView)

	seed := cfg.Dashboard.RandomSeed
	if seed == 0 {
		seed = clk.Now().UnixNano()
	}
	drift := dashboard.NewDriftService(store, clk, realtime.NewRandom(seed), cfg.Dashboard.DriftInterval)
	animation := dashboard.NewAnimationService(store, clk, cfg.Dashboard.AnimationSteps, cfg.Dashboard.AnimationDuration)

	hub := ws.NewHub()
	hub.SetWelcome(func() []ws.Message {
		return []ws.Message{
			{Type: ws.MessageTypeStateUpdate, Data: engine.Overview()},
			{Type: ws.MessageTypeMonitoringUpdate, Data: scheduler.View()},
		}
	})
	store.OnChange(func(s dashboard.State) {
		hub.BroadcastState(dashboard.BuildOverview(s))
	})
	scheduler.OnChange(func(view monitoring.ReadModel) {
		hub.BroadcastMonitoring(view)
	})

	handler := api.NewHandler(engine, scheduler, scorer, hub, cfg, version)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	logging.Info().
		Str("initial_view", string(initialView)).
		Str("default_model", engine.DefaultModel()).
		Int64("random_seed", seed).
		Msg("Components wired")

	return &app{
		cfg:       cfg,
		scorer:    scorer,
		store:     store,
		engine:    engine,
		scheduler: scheduler,
		drift:     drift,
		animation: animation,
		hub:       hub,
		server:    server,
	}
}

// addServices registers the components with their supervisor layers.
func (a *app) addServices(tree *supervisor.SupervisorTree) {
	tree.AddEngineService(services.NewTaskService("state-store", a.store))
	tree.AddEngineService(services.NewTaskService("metrics-scheduler", a.scheduler))
	tree.AddEngineService(services.NewTaskService("", a.drift))
	tree.AddEngineService(services.NewTaskService("", a.animation))

	tree.AddMessagingService(services.NewWebSocketHubService(a.hub))

	tree.AddAPIService(services.NewHTTPServerService(a.server, a.cfg.Supervisor.ShutdownTimeout))
	logging.Info().Str("addr", a.server.Addr).Msg("Services added to supervisor tree")
}
