package sift

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// recordingTransport captures the last request issued through it and replies
// with a canned body.
type recordingTransport struct {
	calls      int
	lastMethod string
	lastURL    string
	lastQuery  url.Values
	lastBody   any
	lastAuth   string

	response json.RawMessage
	err      error
}

func (rt *recordingTransport) record(method, rawURL string, query url.Values, body any, auth string) {
	rt.calls++
	rt.lastMethod = method
	rt.lastURL = rawURL
	rt.lastQuery = query
	rt.lastBody = body
	rt.lastAuth = auth
}

func (rt *recordingTransport) Get(_ context.Context, rawURL string, query url.Values, _ time.Duration, auth string) (json.RawMessage, error) {
	rt.record("GET", rawURL, query, nil, auth)
	return rt.response, rt.err
}

func (rt *recordingTransport) Post(_ context.Context, rawURL string, query url.Values, body any, _ time.Duration, auth string) (json.RawMessage, error) {
	rt.record("POST", rawURL, query, body, auth)
	return rt.response, rt.err
}

func (rt *recordingTransport) Put(_ context.Context, rawURL string, body any, _ time.Duration, auth string) (json.RawMessage, error) {
	rt.record("PUT", rawURL, nil, body, auth)
	return rt.response, rt.err
}

func (rt *recordingTransport) Delete(_ context.Context, rawURL string, _ time.Duration, auth string) error {
	rt.record("DELETE", rawURL, nil, nil, auth)
	return rt.err
}

// newTestClient builds a client wired to a recording transport.
func newTestClient(rt *recordingTransport, opts ...Option) *Client {
	opts = append([]Option{WithTransport(rt)}, opts...)
	client, err := New("test-api-key", opts...)
	if err != nil {
		panic(err)
	}
	return client
}
