// Package gateway is the HTTP client of the cargo REST API. Every request
// carries the session's bearer token; a 401 triggers one token refresh and
// one replay of the request.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/pkg/metrics"
	"github.com/rs/zerolog"
)

const DefaultTimeout = 30 * time.Second

// Config captures the settings of the API client.
type Config struct {
	BaseURL string
	// Timeout bounds a single request. Zero disables the bound.
	Timeout time.Duration
}

// Credentials is the token source and refresh hook of one session.
type Credentials = ports.Credentials

// APIError is a non-2xx, non-401 response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Client holds the shared plumbing. Bind it to a session's credentials to
// issue authenticated requests.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.With().Str("component", "gateway").Logger(),
	}
}

// Bind returns a connection that authenticates with creds. A nil creds
// issues unauthenticated requests.
func (c *Client) Bind(creds Credentials) *Conn {
	return &Conn{client: c, creds: creds}
}

// Conn is a Client bound to one session.
type Conn struct {
	client *Client
	creds  Credentials
}

// Do sends a JSON request to path and decodes a JSON response into out
// (which may be nil). On 401 the refresh hook runs once and the request is
// replayed once; a second 401 is domain.ErrUnauthorized.
func (c *Conn) Do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = b
	}

	token := c.token(ctx)
	resp, err := c.client.send(ctx, method, path, token, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.creds != nil {
		drain(resp)
		fresh, err := c.creds.Refresh(ctx)
		if err != nil {
			metrics.TokenRefreshTotal.WithLabelValues("failed").Inc()
			c.client.log.Warn().Err(err).Str("path", path).Msg("token refresh failed")
			return fmt.Errorf("%s %s: %w", method, path, domain.ErrUnauthorized)
		}
		metrics.TokenRefreshTotal.WithLabelValues("ok").Inc()

		resp, err = c.client.send(ctx, method, path, fresh, body)
		if err != nil {
			return err
		}
	}
	defer drain(resp)

	return decode(resp, method, path, out)
}

func (c *Conn) token(ctx context.Context) string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token(ctx)
}

func (c *Client) send(ctx context.Context, method, path, token string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.GatewayRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues(method, "error").Inc()
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("api request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	metrics.GatewayRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api request")
	return resp, nil
}

func decode(resp *http.Response, method, path string, out any) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnauthorized, apiError(resp))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrNotFound, apiError(resp))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s %s: %w", method, path, apiError(resp))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// apiError reads the {"error": "..."} body the backend sends with failures.
// Validation failures come back as {"field": ["msg"]} and are kept verbatim.
func apiError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Error != "":
			apiErr.Message = body.Error
			return apiErr
		case body.Detail != "":
			apiErr.Message = body.Detail
			return apiErr
		}
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
