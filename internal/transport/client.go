// Package transport is the JSON-over-HTTP client shared by the Hydra and L1
// APIs: rate limiting, bounded retries and typed errors.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
	maxResponseBytes  = 16 << 20

	apiKeyHeader = "api-key"
)

// RetryConfig bounds how often a retryable failure is repeated.
type RetryConfig struct {
	MaxRetries uint64        `yaml:"maxRetries"`
	Delay      time.Duration `yaml:"delay"`
}

// Config describes one remote endpoint.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retry   RetryConfig
	// RPS caps requests per second; zero means unlimited.
	RPS int
}

// Client issues JSON requests against a single base URL.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
	retry   RetryConfig
	limiter ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger
}

// New constructs a Client. httpClient and metrics may be nil.
func New(cfg Config, httpClient *http.Client, metrics Metrics, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if cfg.Retry.Delay <= 0 {
		cfg.Retry.Delay = defaultRetryDelay
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		http:    httpClient,
		retry:   cfg.Retry,
		limiter: limiter,
		metrics: metrics,
		logger:  logger.With(zap.String("endpoint", base.String())),
	}, nil
}

// BaseURL returns the endpoint without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get issues a GET and decodes the response into out when out is not nil.
func (c *Client) Get(ctx context.Context, operation, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, operation, path, query, nil, out)
}

// Post issues a POST with body encoded as JSON.
func (c *Client) Post(ctx context.Context, operation, path string, query url.Values, body, out any) error {
	return c.Do(ctx, http.MethodPost, operation, path, query, body, out)
}

// Do performs one logical request, repeating it on retryable failures.
func (c *Client) Do(ctx context.Context, method, operation, path string, query url.Values, body, out any) (err error) {
	started := time.Now()
	if c.metrics != nil {
		defer func() {
			c.metrics.Observe(operation, err, started)
		}()
	}

	target := c.resolve(path, query)

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request body: %w", operation, err)
		}
	}

	backoff := retry.WithMaxRetries(c.retry.MaxRetries, retry.NewConstant(c.retry.Delay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := c.roundTrip(ctx, method, operation, target, payload, out)
		if err == nil {
			if attempt > 1 {
				c.logger.Info("request succeeded after retry",
					zap.String("operation", operation), zap.Int("attempt", attempt))
			}
			return nil
		}
		status, _ := StatusOf(err)
		if !Retryable(status) || ctx.Err() != nil {
			return err
		}
		c.logger.Warn("request failed, retrying",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Uint64("max_retries", c.retry.MaxRetries),
			zap.Int("status", status),
			zap.Error(err),
		)
		return retry.RetryableError(err)
	})
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) roundTrip(ctx context.Context, method, operation, target string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	c.limiter.Take()
	resp, err := c.http.Do(req)
	if err != nil {
		return newNetworkError(operation, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return newNetworkError(operation, target, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newResponseError(operation, method, target, resp.StatusCode, bytes.TrimSpace(raw))
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := decode(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return nil
}

func decode(raw []byte, out any) error {
	if dst, ok := out.(*[]byte); ok {
		*dst = append((*dst)[:0], raw...)
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(out); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after json value")
	}
	return nil
}
