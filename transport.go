package sift

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.1.0"

const userAgent = "sift-go/" + Version

// Transport issues HTTP requests against the Sift API.
//
// Implementations must honor the per-call timeout, attach the SDK User-Agent
// header, and, when basicAuthUser is non-empty, authenticate with HTTP Basic
// auth using it as the username and an empty password (the Sift API
// authenticates with the API key as the basic-auth username).
//
// A Transport performs no retries and keeps no SDK-level state; a client is
// safe for concurrent use exactly when its Transport is.
type Transport interface {
	// Get issues a GET request and returns the decoded-ready response body.
	Get(ctx context.Context, url string, query url.Values, timeout time.Duration, basicAuthUser string) (json.RawMessage, error)

	// Post issues a POST request. A 204 No Content reply returns (nil, nil):
	// the call succeeded and there is no payload. Query and body may be nil.
	Post(ctx context.Context, url string, query url.Values, body any, timeout time.Duration, basicAuthUser string) (json.RawMessage, error)

	// Put issues a PUT request with a JSON body.
	Put(ctx context.Context, url string, body any, timeout time.Duration, basicAuthUser string) (json.RawMessage, error)

	// Delete issues a DELETE request, discarding any response body.
	Delete(ctx context.Context, url string, timeout time.Duration, basicAuthUser string) error
}

// decodeAPIError maps a non-2xx response body to a typed error.
//
// The events/score family embeds {status, error_message} in error bodies; the
// v3 family (webhooks, decisions) uses {error, description, issues}. Anything
// that fits neither shape collapses into an opaque *ServerError.
func decodeAPIError(statusCode int, body []byte) error {
	if len(body) > 0 {
		var env statusEnvelope
		if err := json.Unmarshal(body, &env); err == nil && env.Status != nil {
			return &RequestError{Status: *env.Status, Message: env.ErrorMessage}
		}

		var v3 struct {
			Err         string            `json:"error"`
			Description string            `json:"description"`
			Issues      map[string]string `json:"issues"`
		}
		if err := json.Unmarshal(body, &v3); err == nil && v3.Err != "" {
			return &ValidationError{Err: v3.Err, Description: v3.Description, Issues: v3.Issues}
		}
	}

	return serverErrorf("unexpected status %d: %s", statusCode, bytes.TrimSpace(body))
}

// statusEnvelope is the {status, error_message} pair embedded in every
// events/score/verification response body.
type statusEnvelope struct {
	Status       *int   `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// appendQuery attaches encoded query parameters to a URL.
func appendQuery(rawURL string, query url.Values) string {
	if len(query) == 0 {
		return rawURL
	}
	return fmt.Sprintf("%s?%s", rawURL, query.Encode())
}
