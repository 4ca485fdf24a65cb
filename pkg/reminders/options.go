package reminders

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/remindkit/pkg/metrics"
)

// DefaultActionPath prefixes the dismiss form actions rendered by the banner.
const DefaultActionPath = "/reminders"

// Option configures a Banner.
type Option func(*Banner)

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Banner) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(b *Banner) {
		if r != nil {
			b.metrics = r
		}
	}
}

// WithActionPath sets the URL prefix used by the dismiss controls.
func WithActionPath(p string) Option {
	return func(b *Banner) {
		b.actionPath = strings.TrimRight(p, "/")
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(b *Banner) {
		if now != nil {
			b.now = now
		}
	}
}

// APIOption configures a TasksAPI.
type APIOption func(*TasksAPI)

// WithAPIHTTPClient sets the base HTTP client. The bearer token transport
// is layered on top of it.
func WithAPIHTTPClient(hc *http.Client) APIOption {
	return func(a *TasksAPI) {
		if hc != nil {
			a.base = hc
		}
	}
}

// WithAPILogger sets the diagnostics logger.
func WithAPILogger(l *slog.Logger) APIOption {
	return func(a *TasksAPI) {
		if l != nil {
			a.logger = l
		}
	}
}
