// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package monitoring

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/intentpulse/internal/clock"
	"github.com/tomtom215/intentpulse/internal/logging"
	"github.com/tomtom215/intentpulse/internal/metrics"
	"github.com/tomtom215/intentpulse/internal/models"
)

// DefaultPollInterval is the metrics refresh period while polling.
const DefaultPollInterval = 5 * time.Second

// RecentRequestLimit caps the request log exposed by the read model.
const RecentRequestLimit = 10

// UnavailableMessage is shown while the metrics endpoint cannot be reached.
const UnavailableMessage = "Failed to load metrics. Ensure backend is running."

var errEmptySnapshot = errors.New("metrics endpoint returned an empty snapshot")

// Fetcher retrieves one authoritative metrics snapshot.
type Fetcher interface {
	FetchMetrics(ctx context.Context) (*models.MetricsSnapshot, error)
}

// State is the scheduler's polling state.
type State int

const (
	StateIdle State = iota
	StatePolling
)

func (s State) String() string {
	if s == StatePolling {
		return "polling"
	}
	return "idle"
}

// ReadModel is a point-in-time copy of the authoritative metrics view.
// Seq increases with every published change.
type ReadModel struct {
	Seq            uint64                   `json:"seq"`
	State          string                   `json:"state"`
	Session        uint64                   `json:"session"`
	ViewActive     bool                     `json:"view_active"`
	AutoRefresh    bool                     `json:"auto_refresh"`
	Loading        bool                     `json:"loading"`
	Unavailable    bool                     `json:"unavailable"`
	Error          string                   `json:"error,omitempty"`
	LastUpdated    time.Time                `json:"last_updated"`
	Metrics        *models.MetricsSnapshot  `json:"metrics"`
	RecentRequests []models.RequestLogEntry `json:"recent_requests"`
}

// Scheduler polls the metrics endpoint while the monitoring view is active
// and auto-refresh is on.
//
// Every session (a polling run or a one-shot fetch) carries a token. Results
// are committed only when their token is still current, so a slow response
// from a cancelled session can never overwrite newer data.
type Scheduler struct {
	fetcher  Fetcher
	clock    clock.Clock
	interval time.Duration

	mu          sync.Mutex
	parent      context.Context // set while Serve runs
	viewActive  bool
	autoRefresh bool
	state       State
	token       uint64
	cancel      context.CancelFunc

	snapshot    *models.MetricsSnapshot
	loading     bool
	unavailable bool
	errMsg      string
	lastUpdated time.Time

	seq   uint64
	hooks []func(ReadModel)
	wg    sync.WaitGroup

	notifyMu sync.Mutex
	notified uint64 // Seq of the last view handed to hooks
}

// NewScheduler creates an idle scheduler. Sessions start once Serve runs.
func NewScheduler(fetcher Fetcher, clk clock.Clock, interval time.Duration, autoRefresh bool) *Scheduler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &Scheduler{
		fetcher:     fetcher,
		clock:       clk,
		interval:    interval,
		autoRefresh: autoRefresh,
		loading:     true,
	}
}

// OnChange registers fn to receive the read model after every change.
// Hooks run outside the scheduler lock, one at a time and in Seq order; a
// view overtaken by a newer one before delivery is skipped.
func (s *Scheduler) OnChange(fn func(ReadModel)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// SetViewActive marks the monitoring view as shown or hidden.
func (s *Scheduler) SetViewActive(active bool) {
	s.configure(func() { s.viewActive = active })
}

// SetAutoRefresh toggles periodic polling.
func (s *Scheduler) SetAutoRefresh(enabled bool) {
	s.configure(func() { s.autoRefresh = enabled })
}

// SetView activates polling only for the monitoring view.
func (s *Scheduler) SetView(view models.View) {
	s.SetViewActive(view == models.ViewMonitoring)
}

// State returns the current polling state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Session returns the current session token.
func (s *Scheduler) Session() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// View returns a copy of the read model.
func (s *Scheduler) View() ReadModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// RefreshNow fetches immediately. While polling the result belongs to the
// running session; otherwise a fresh one-shot token is issued.
func (s *Scheduler) RefreshNow(ctx context.Context) (ReadModel, error) {
	s.mu.Lock()
	if s.state != StatePolling {
		s.endSessionLocked()
	}
	token := s.token
	s.mu.Unlock()

	err := s.fetch(ctx, token)
	return s.View(), err
}

// Serve runs sessions until ctx is cancelled, then tears them down.
func (s *Scheduler) Serve(ctx context.Context) error {
	s.mu.Lock()
	s.parent = ctx
	s.reconcileLocked()
	s.mu.Unlock()

	logging.Info().Dur("interval", s.interval).Msg("Metrics scheduler started")

	<-ctx.Done()

	s.mu.Lock()
	s.endSessionLocked()
	s.parent = nil
	s.mu.Unlock()
	s.wg.Wait()

	logging.Info().Msg("Metrics scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) configure(apply func()) {
	s.mu.Lock()
	prevActive, prevAuto := s.viewActive, s.autoRefresh
	apply()
	if prevActive == s.viewActive && prevAuto == s.autoRefresh {
		s.mu.Unlock()
		return
	}
	s.reconcileLocked()
	view := s.publishLocked()
	hooks := s.hooks
	s.mu.Unlock()

	s.notify(hooks, view)
}

// reconcileLocked replaces the current session with one matching the
// configuration: polling, a single fetch, or nothing.
func (s *Scheduler) reconcileLocked() {
	s.endSessionLocked()
	if s.parent == nil || !s.viewActive {
		return
	}

	s.token++
	token := s.token
	ctx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel

	if !s.autoRefresh {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			_ = s.fetch(ctx, token)
		}()
		return
	}

	s.state = StatePolling
	metrics.PollingSessions.Inc()
	metrics.SetPollingActive(true)
	logging.Debug().Uint64("poll_session", token).Msg("Polling session started")

	ticker := s.clock.NewTicker(s.interval)
	s.wg.Add(1)
	go s.poll(ctx, token, ticker)
}

// endSessionLocked invalidates the current token and cancels its work.
func (s *Scheduler) endSessionLocked() {
	s.token++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.state == StatePolling {
		s.state = StateIdle
		metrics.SetPollingActive(false)
	}
}

func (s *Scheduler) poll(ctx context.Context, token uint64, ticker clock.Ticker) {
	defer s.wg.Done()
	defer ticker.Stop()

	_ = s.fetch(ctx, token)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			_ = s.fetch(ctx, token)
		}
	}
}

func (s *Scheduler) fetch(ctx context.Context, token uint64) error {
	ctx = logging.ContextWithPollSession(ctx, token)
	snap, err := s.fetcher.FetchMetrics(ctx)
	if err == nil && snap == nil {
		err = errEmptySnapshot
	}
	if !s.commit(token, snap, err) {
		logging.Ctx(ctx).Debug().Err(err).Msg("Discarded stale metrics result")
		return err
	}
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Metrics poll failed")
	}
	return err
}

// commit applies a fetch result if token is still current.
func (s *Scheduler) commit(token uint64, snap *models.MetricsSnapshot, err error) bool {
	s.mu.Lock()
	if token != s.token {
		s.mu.Unlock()
		metrics.RecordPoll(err, true)
		return false
	}

	if err != nil {
		s.unavailable = true
		s.errMsg = UnavailableMessage
	} else {
		s.snapshot = snap.Clone()
		s.unavailable = false
		s.errMsg = ""
		s.lastUpdated = s.clock.Now()
	}
	s.loading = false

	view := s.publishLocked()
	hooks := s.hooks
	s.mu.Unlock()

	metrics.RecordPoll(err, false)
	s.notify(hooks, view)
	return true
}

// publishLocked stamps a new Seq and returns the view carrying it.
func (s *Scheduler) publishLocked() ReadModel {
	s.seq++
	return s.viewLocked()
}

func (s *Scheduler) viewLocked() ReadModel {
	return ReadModel{
		Seq:            s.seq,
		State:          s.state.String(),
		Session:        s.token,
		ViewActive:     s.viewActive,
		AutoRefresh:    s.autoRefresh,
		Loading:        s.loading,
		Unavailable:    s.unavailable,
		Error:          s.errMsg,
		LastUpdated:    s.lastUpdated,
		Metrics:        s.snapshot.Clone(),
		RecentRequests: s.snapshot.RecentRequestsNewestFirst(RecentRequestLimit),
	}
}

// notify hands view to hooks unless a newer view already went out.
func (s *Scheduler) notify(hooks []func(ReadModel), view ReadModel) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if view.Seq <= s.notified {
		return
	}
	s.notified = view.Seq
	for _, h := range hooks {
		h(view)
	}
}
