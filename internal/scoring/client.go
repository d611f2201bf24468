// IntentPulse - Purchase Intent Dashboard Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/intentpulse

/*
client.go - Scoring Service HTTP Client

Client talks to the remote scoring service over two endpoints:
  - POST {url}/predict?model_name={model}  (SessionFeatures in, PredictResponse out)
  - GET  {url}/api/metrics                 (MetricsSnapshot)

Predictions pass through an outbound token bucket (golang.org/x/time/rate)
so a burst of form submissions cannot flood the service. Metrics polls are
not rate limited; the polling scheduler already paces them.

Callers normally use CircuitBreakerClient, which wraps Client.
*/

package scoring

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/intentpulse/internal/config"
	"github.com/tomtom215/intentpulse/internal/models"
)

const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads a bounded slice of a response body for error messages.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Client is a plain HTTP client for the scoring service.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a scoring client from configuration.
// A RateLimit of zero disables the outbound prediction limiter.
func NewClient(cfg *config.ScoringConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// Predict scores one session with the named model.
func (c *Client) Predict(ctx context.Context, features models.SessionFeatures, model string) (*models.PredictResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	body, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}

	params := url.Values{}
	params.Set("model_name", model)
	reqURL := fmt.Sprintf("%s/predict?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var result models.PredictResponse
	if err := c.do(req, "/predict", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchMetrics retrieves the authoritative metrics snapshot.
func (c *Client) FetchMetrics(ctx context.Context) (*models.MetricsSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/metrics", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var result models.MetricsSnapshot
	if err := c.do(req, "/api/metrics", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do executes req, checks the status code and decodes the JSON body into result.
func (c *Client) do(req *http.Request, endpoint string, result interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}
