package sift

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPTransport is a Transport backed by net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a Transport using a default http.Client.
//
// Per-call timeouts are enforced through the request context, so no
// client-level timeout is set.
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{client: &http.Client{}}
}

// NewHTTPTransportWithClient creates a Transport using a caller-supplied
// http.Client, e.g. one with a custom proxy or TLS configuration.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

// Get implements Transport.
func (t *HTTPTransport) Get(ctx context.Context, rawURL string, query url.Values, timeout time.Duration, basicAuthUser string) (json.RawMessage, error) {
	body, _, err := t.do(ctx, http.MethodGet, appendQuery(rawURL, query), nil, timeout, basicAuthUser)
	return body, err
}

// Post implements Transport. A 204 reply returns (nil, nil).
func (t *HTTPTransport) Post(ctx context.Context, rawURL string, query url.Values, body any, timeout time.Duration, basicAuthUser string) (json.RawMessage, error) {
	raw, status, err := t.do(ctx, http.MethodPost, appendQuery(rawURL, query), body, timeout, basicAuthUser)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return raw, nil
}

// Put implements Transport.
func (t *HTTPTransport) Put(ctx context.Context, rawURL string, body any, timeout time.Duration, basicAuthUser string) (json.RawMessage, error) {
	raw, _, err := t.do(ctx, http.MethodPut, rawURL, body, timeout, basicAuthUser)
	return raw, err
}

// Delete implements Transport.
func (t *HTTPTransport) Delete(ctx context.Context, rawURL string, timeout time.Duration, basicAuthUser string) error {
	_, _, err := t.do(ctx, http.MethodDelete, rawURL, nil, timeout, basicAuthUser)
	return err
}

func (t *HTTPTransport) do(ctx context.Context, method, rawURL string, body any, timeout time.Duration, basicAuthUser string) (json.RawMessage, int, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, serverErrorf("encode request body: %v", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return nil, 0, serverErrorf("create request: %v", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if basicAuthUser != "" {
		req.SetBasicAuth(basicAuthUser, "")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, serverErrorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, serverErrorf("read response body: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, 0, decodeAPIError(resp.StatusCode, raw)
	}

	return raw, resp.StatusCode, nil
}
