// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package scoring

import (
	"errors"
	"fmt"
)

// ErrConnectionFailure is returned for every failed call to the scoring
// service: transport errors, non-2xx responses, undecodable bodies,
// breaker rejections and cancelled rate-limit waits all unwrap to it.
var ErrConnectionFailure = errors.New("scoring service connection failure")

// StatusError reports a non-2xx response from the scoring service.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// connectionFailure wraps err so that errors.Is(err, ErrConnectionFailure)
// holds while the cause stays inspectable.
func connectionFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConnectionFailure) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrConnectionFailure, err)
}
