// Package fixer implements the HTTP client for the external ratio-fixer
// automation service.
package fixer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"campaign-pulse/internal/core/port"
)

// Client talks to the ratio-fixer service over HTTP. Start and stop use
// a longer timeout than status and health probes so a hung remote call
// cannot wedge the lifecycle controller.
type Client struct {
	baseURL        string
	client         *http.Client
	controlTimeout time.Duration
	queryTimeout   time.Duration
}

// Option configures the Client.
type Option func(*Client)

// WithControlTimeout sets the timeout for start/stop calls.
func WithControlTimeout(d time.Duration) Option {
	return func(c *Client) { c.controlTimeout = d }
}

// WithQueryTimeout sets the timeout for status/health calls.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *Client) { c.queryTimeout = d }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a ratio-fixer client for the given base URL.
func NewClient(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:        baseURL,
		client:         &http.Client{},
		controlTimeout: 10 * time.Second,
		queryTimeout:   5 * time.Second,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Start asks the remote service to begin fixing the campaign ratio. A
// non-2xx response or a success=false body is returned as an error.
func (c *Client) Start(ctx context.Context, req port.FixerStartRequest) (*port.FixerStartResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.controlTimeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal start request: %w", err)
	}
	resp, raw, err := c.do(ctx, http.MethodPost, "/ratio-fixer/start", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var started port.FixerStartResponse
	if err := json.Unmarshal(raw, &started); err != nil {
		return nil, fmt.Errorf("failed to unmarshal start response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fixer start returned HTTP %d: %s", resp.StatusCode, started.Error)
	}
	if !started.Success {
		return nil, fmt.Errorf("fixer start rejected: %s", started.Error)
	}
	return &started, nil
}

// Stop asks the remote service to stop the fixer keyed by external id.
func (c *Client) Stop(ctx context.Context, externalID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.controlTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("/ratio-fixer/stop/%s", url.PathEscape(externalID))
	resp, raw, err := c.do(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}
	var stopped struct {
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
	}
	if err := json.Unmarshal(raw, &stopped); err != nil {
		return fmt.Errorf("failed to unmarshal stop response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("fixer stop returned HTTP %d: %s", resp.StatusCode, stopped.Error)
	}
	if !stopped.Success {
		return fmt.Errorf("fixer stop rejected: %s", stopped.Error)
	}
	return nil
}

// Status fetches the live counters for a running fixer. A 404 maps to
// port.ErrRemoteCampaignNotFound so callers can distinguish a vanished
// remote campaign from a transient failure.
func (c *Client) Status(ctx context.Context, externalID string) (*port.FixerStatusResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("/ratio-fixer/status/%s", url.PathEscape(externalID))
	resp, raw, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, port.ErrRemoteCampaignNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fixer status returned HTTP %d", resp.StatusCode)
	}
	var status port.FixerStatusResponse
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status response: %w", err)
	}
	return &status, nil
}

// Health probes the remote service availability. Network errors degrade
// to an unreachable report instead of a hard failure so the advisory
// checker can keep running.
func (c *Client) Health(ctx context.Context) (*port.FixerHealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	resp, raw, err := c.do(ctx, http.MethodGet, "/ratio-fixer/health", nil)
	if err != nil {
		return &port.FixerHealthResponse{
			Status:    "unreachable",
			Available: false,
			Error:     err.Error(),
		}, nil
	}
	if resp.StatusCode >= 400 {
		return &port.FixerHealthResponse{
			Status:    "unhealthy",
			Available: false,
			Error:     fmt.Sprintf("HTTP %d", resp.StatusCode),
		}, nil
	}
	var health port.FixerHealthResponse
	if err := json.Unmarshal(raw, &health); err != nil {
		return nil, fmt.Errorf("failed to unmarshal health response: %w", err)
	}
	return &health, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp, raw, nil
}
