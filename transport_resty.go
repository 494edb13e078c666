package sift

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyTransport is a Transport backed by go-resty.
//
// It behaves identically to HTTPTransport and exists for callers that already
// manage a resty.Client (proxy settings, TLS config, tracing middleware) and
// want the SDK to share it.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport creates a Transport using a fresh resty client.
func NewRestyTransport() *RestyTransport {
	return NewRestyTransportWithClient(resty.New())
}

// NewRestyTransportWithClient creates a Transport sharing a caller-supplied
// resty client.
func NewRestyTransportWithClient(client *resty.Client) *RestyTransport {
	client.SetHeader("User-Agent", userAgent)
	return &RestyTransport{client: client}
}

// Get implements Transport.
func (t *RestyTransport) Get(ctx context.Context, rawURL string, query url.Values, timeout time.Duration, basicAuthUser string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := t.request(ctx, query, nil, basicAuthUser).Get(rawURL)
	if err != nil {
		return nil, serverErrorf("request failed: %v", err)
	}
	if resp.IsError() {
		return nil, decodeAPIError(resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

// Post implements Transport. A 204 reply returns (nil, nil).
func (t *RestyTransport) Post(ctx context.Context, rawURL string, query url.Values, body any, timeout time.Duration, basicAuthUser string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := t.request(ctx, query, body, basicAuthUser).Post(rawURL)
	if err != nil {
		return nil, serverErrorf("request failed: %v", err)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}
	if resp.IsError() {
		return nil, decodeAPIError(resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

// Put implements Transport.
func (t *RestyTransport) Put(ctx context.Context, rawURL string, body any, timeout time.Duration, basicAuthUser string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := t.request(ctx, nil, body, basicAuthUser).Put(rawURL)
	if err != nil {
		return nil, serverErrorf("request failed: %v", err)
	}
	if resp.IsError() {
		return nil, decodeAPIError(resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

// Delete implements Transport.
func (t *RestyTransport) Delete(ctx context.Context, rawURL string, timeout time.Duration, basicAuthUser string) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := t.request(ctx, nil, nil, basicAuthUser).Delete(rawURL)
	if err != nil {
		return serverErrorf("request failed: %v", err)
	}
	if resp.IsError() {
		return decodeAPIError(resp.StatusCode(), resp.Body())
	}
	return nil
}

func (t *RestyTransport) request(ctx context.Context, query url.Values, body any, basicAuthUser string) *resty.Request {
	req := t.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if basicAuthUser != "" {
		req.SetBasicAuth(basicAuthUser, "")
	}
	return req
}
