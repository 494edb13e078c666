package sift

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultOrigin  = "https://api.sift.com"
	defaultTimeout = 2 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	origin     string
	accountID  string
	transport  Transport
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// WithOrigin overrides the API origin, e.g. to point the client at a mock
// server. Default: https://api.sift.com
func WithOrigin(origin string) Option {
	return func(c *clientConfig) {
		c.origin = origin
	}
}

// WithAccountID sets the Sift account id. Webhook and decision operations
// require it and fail with ErrMissingAccountID when it is unset.
func WithAccountID(accountID string) Option {
	return func(c *clientConfig) {
		c.accountID = accountID
	}
}

// WithTransport sets the Transport used for every request.
// Default: NewHTTPTransport().
func WithTransport(transport Transport) Option {
	return func(c *clientConfig) {
		c.transport = transport
	}
}

// WithHTTPClient sets a custom http.Client for the default HTTPTransport.
// Ignored when WithTransport is also given.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the structured logger. By default the client logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithTimeout sets the default per-request timeout, used whenever a call's
// options do not carry their own. Default: 2 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}
