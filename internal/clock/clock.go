// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

// Package clock provides the injectable time source.
//
// Every periodic task in the engine (drift, animation, polling) takes its
// tickers from a Clock. Production uses Real; tests pass a
// *clockwork.FakeClock and drive ticks with Advance instead of sleeping.
// Fake tickers drop ticks nobody is ready to receive, like time.Ticker.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the subset of clockwork.Clock the engine uses. Both
// clockwork.NewRealClock and *clockwork.FakeClock satisfy it.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on Chan until stopped.
type Ticker = clockwork.Ticker

// Real returns a Clock backed by the time package.
func Real() Clock {
	return clockwork.NewRealClock()
}
