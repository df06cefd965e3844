// Package transport sends requests to the agent backend and turns its
// failures into typed errors.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/agentstation/providerkeys/internal/metrics"
	"github.com/agentstation/providerkeys/pkg/constants"
	"github.com/agentstation/providerkeys/pkg/errors"
	"github.com/agentstation/providerkeys/pkg/logging"
)

// Client provides HTTP client functionality with authentication.
type Client struct {
	http    *http.Client
	metrics *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout on a copy of the HTTP client,
// so a client passed to WithHTTPClient is not modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = timeout
		c.http = &hc
	}
}

// WithMetrics records every request in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs an HTTP request with authentication applied.
// Network-level failures are returned as *errors.TransportError.
func (c *Client) Do(ctx context.Context, req *http.Request, auth Authenticator, secret string) (*http.Response, error) {
	if auth == nil {
		auth = &NoAuth{}
	}
	auth.Apply(req, secret)

	req.Header.Set("Accept", constants.ContentTypeJSON)
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", constants.ContentTypeJSON)
	}

	start := time.Now()
	resp, err := c.http.Do(req.WithContext(ctx))
	elapsed := time.Since(start)

	log := logging.FromContext(ctx)
	if err != nil {
		c.metrics.ObserveRequest(req.URL.Path, req.Method, 0, elapsed)
		log.Debug().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("elapsed", elapsed).
			Msg("Backend request failed")
		return nil, errors.WrapTransport(req.Method, req.URL.String(), err)
	}

	c.metrics.ObserveRequest(req.URL.Path, req.Method, resp.StatusCode, elapsed)
	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("Backend request")

	return resp, nil
}

// Get performs an unauthenticated GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapTransport(http.MethodGet, url, err)
	}
	return c.Do(ctx, req, nil, "")
}

// PostJSON encodes body as JSON and POSTs it with authentication applied.
func (c *Client) PostJSON(ctx context.Context, url string, body any, auth Authenticator, secret string) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WrapParse("json", "request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WrapTransport(http.MethodPost, url, err)
	}
	return c.Do(ctx, req, auth, secret)
}
