// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/intentpulse/internal/logging"
)

// errServerClosed is returned when the server stops without the service
// being cancelled, so the supervisor starts it again.
var errServerClosed = errors.New("http server closed unexpectedly")

// HTTPServer is the subset of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under supervision and drains it
// when its context is cancelled.
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout means 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{server: server, shutdownTimeout: shutdownTimeout}
}

// Serve implements suture.Service. Cancellation triggers Shutdown with a
// fresh deadline; Serve returns once the drain finishes.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	drained := make(chan error, 1)
	stopDrain := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()
		drained <- h.server.Shutdown(shutdownCtx)
	})

	err := h.server.ListenAndServe()

	if stopDrain() {
		// The server stopped on its own.
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return errServerClosed
		}
		return fmt.Errorf("http server failed: %w", err)
	}

	if serr := <-drained; serr != nil {
		return fmt.Errorf("http server shutdown failed: %w", serr)
	}
	logging.Info().Str("service", h.String()).Msg("HTTP server stopped")
	return ctx.Err()
}

func (h *HTTPServerService) String() string {
	return "http-server"
}
