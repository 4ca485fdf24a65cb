package authclient

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/remindkit/pkg/metrics"
)

// Option is a functional option for configuring the Client
type Option func(*Client)

// WithConfig applies a Config. Options after it override its fields.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		if cfg.APIURL != "" {
			c.baseURL = strings.TrimRight(cfg.APIURL, "/")
		}
		if cfg.StorageKey != "" {
			c.storageKey = cfg.StorageKey
		}
		c.httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
}

// WithBaseURL sets the remote API base URL
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets the HTTP client used for every request
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder
func WithMetrics(r metrics.Recorder) Option {
	return func(c *Client) {
		if r != nil {
			c.metrics = r
		}
	}
}

// WithStorageKey overrides the durable storage key
func WithStorageKey(key string) Option {
	return func(c *Client) {
		if key != "" {
			c.storageKey = key
		}
	}
}

// WithClock overrides the time source used for local token expiry checks
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}
