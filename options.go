package imggen

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the key sent as "Authorization: Bearer <key>".
// An empty key sends no Authorization header.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries sets how many times GenerateImage repeats a request that
// failed with a 5xx status. The default is 1. Other operations never retry.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n < 0 {
			n = 0
		}
		c.maxRetries = n
	}
}

// WithHTTPClient sets a custom HTTP client.
//
// The client is copied and its redirect policy replaced so redirects are
// returned to the SDK rather than followed.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger used for request tracing. Requests are logged
// at debug level and retries at warn level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics registers request counters and latency histograms with reg.
//
// Registration errors other than an already registered collector of the same
// shape are silently ignored and leave metrics disabled.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = newClientMetrics(reg)
	}
}
