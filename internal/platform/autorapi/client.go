package autorapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ceron-eng/autores-gateway/internal/config"
	"github.com/ceron-eng/autores-gateway/internal/domain"
	"github.com/ceron-eng/autores-gateway/internal/platform/logger"
	"github.com/ceron-eng/autores-gateway/internal/platform/metrics"
	"github.com/ceron-eng/autores-gateway/internal/redact"
)

// maxResponseBytes bounds how much of an upstream body is buffered. Larger
// bodies are rejected rather than truncated.
const maxResponseBytes = 16 << 20

// ErrResponseTooLarge is wrapped when an upstream body exceeds the buffer limit.
var ErrResponseTooLarge = errors.New("response body too large")

// Client issues requests against the author REST service. It is safe for
// concurrent use; the underlying http.Client pools connections.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	observer   metrics.UpstreamObserver
	maxBody    int64
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the http.Client built from the config.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithObserver records every call with the given observer.
func WithObserver(o metrics.UpstreamObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient builds a Client for cfg.BaseURL.
func NewClient(cfg config.UpstreamConfig, log *slog.Logger, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("upstream base URL is required")
	}
	if log == nil {
		log = slog.Default()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		// #nosec G402 -- the authors service is deployed with a self-signed certificate.
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger:   log.With("component", "autorapi"),
		observer: metrics.Nop{},
		maxBody:  maxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get issues GET baseURL+path and returns the response body.
func (c *Client) Get(ctx context.Context, op, path string) ([]byte, error) {
	return c.do(ctx, op, http.MethodGet, path, nil)
}

// Post issues POST baseURL+path with a JSON body and returns the response body.
func (c *Client) Post(ctx context.Context, op, path string, body []byte) ([]byte, error) {
	return c.do(ctx, op, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, op, method, path string, body []byte) (_ []byte, err error) {
	start := time.Now()
	defer func() {
		c.observer.ObserveUpstream(domain.UpstreamAuthors, op, err, time.Since(start))
	}()

	log := logger.FromContextOrDefault(ctx, c.logger)

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, domain.NewUnavailableError(domain.UpstreamAuthors, op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("authors upstream unreachable",
			"op", op,
			"method", method,
			"error", redact.Error(err))
		return nil, domain.NewUnavailableError(domain.UpstreamAuthors, op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, domain.NewUnavailableError(domain.UpstreamAuthors, op, fmt.Errorf("failed to read response: %w", err))
	}
	if int64(len(data)) > c.maxBody {
		log.Error("authors upstream response too large",
			"op", op,
			"method", method,
			"limit_bytes", c.maxBody)
		return nil, domain.NewRejectedError(domain.UpstreamAuthors, op, resp.StatusCode,
			fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, c.maxBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("authors upstream rejected request",
			"op", op,
			"method", method,
			"status_code", resp.StatusCode)
		return nil, domain.NewRejectedError(domain.UpstreamAuthors, op, resp.StatusCode,
			fmt.Errorf("Request failed with status code %d", resp.StatusCode))
	}

	return data, nil
}
