package sift

import (
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"
)

// APIVersion selects a version of the Sift REST API.
type APIVersion string

// API versions in active use. Events, scores and labels live under v205,
// verification under v1, webhooks and decisions under v3.
const (
	APIVersionV1   APIVersion = "v1"
	APIVersionV3   APIVersion = "v3"
	APIVersionV205 APIVersion = "v205"
)

// Client talks to the Sift REST API. It holds no request state and is safe
// for concurrent use as long as its Transport is.
//
// Construct with New; the zero value is not usable.
type Client struct {
	apiKey    string
	accountID string
	origin    string
	transport Transport
	logger    *slog.Logger
	timeout   time.Duration
}

// New creates a Client for the given API key.
//
// Returns ErrMissingAPIKey when apiKey is empty. Per-call option structs can
// override the key for individual requests.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		origin:  defaultOrigin,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := cfg.transport
	if transport == nil {
		if cfg.httpClient != nil {
			transport = NewHTTPTransportWithClient(cfg.httpClient)
		} else {
			transport = NewHTTPTransport()
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		apiKey:    apiKey,
		accountID: cfg.accountID,
		origin:    strings.TrimSuffix(cfg.origin, "/"),
		transport: transport,
		logger:    logger,
		timeout:   cfg.timeout,
	}, nil
}

// AccountID returns the configured Sift account id, if any.
func (c *Client) AccountID() string {
	return c.accountID
}

// endpoint joins the origin, an API version and already-escaped path segments
// into a request URL.
func (c *Client) endpoint(version APIVersion, segments ...string) string {
	var b strings.Builder
	b.WriteString(c.origin)
	b.WriteByte('/')
	b.WriteString(string(version))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(s)
	}
	return b.String()
}

// timeoutFor resolves a per-call timeout override against the client default.
func (c *Client) timeoutFor(override time.Duration) time.Duration {
	if override > 0 {
		return override
	}
	return c.timeout
}

// apiKeyFor resolves a per-call API key override against the client key.
func (c *Client) apiKeyFor(override string) string {
	if override != "" {
		return override
	}
	return c.apiKey
}

// requireAccountID fails fast before any request is sent for account-scoped
// operations on a client built without WithAccountID.
func (c *Client) requireAccountID() error {
	if c.accountID == "" {
		return ErrMissingAccountID
	}
	return nil
}

// pathEscape escapes a caller-supplied id for use as a single path segment.
func pathEscape(id string) string {
	return url.PathEscape(id)
}
