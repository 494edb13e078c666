package sift

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingAccountID is returned when an operation that is scoped to an
	// account (webhooks, decisions) is called on a client constructed without
	// WithAccountID. The error is detected locally; no request is sent.
	ErrMissingAccountID = errors.New("account id is required")
)

// SiftError is implemented by all SDK errors.
type SiftError interface {
	error
	SiftError() // marker method
}

// RequestError represents a domain-level failure signaled by the Sift API.
//
// The API reports these through a non-zero status code embedded in the
// response body, regardless of the HTTP-level status. Status code meanings
// are documented at
// https://sift.com/developers/docs/curl/events-api/error-codes
type RequestError struct {
	// Non-zero Sift status code.
	Status int
	// Human readable description, e.g. "Invalid API Key. Please check your
	// credentials and try again."
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("sift error (%d): %s", e.Status, e.Message)
}

// SiftError implements the SiftError interface.
func (e *RequestError) SiftError() {}

// ValidationError represents a rejected request shape or bad credentials on
// the v3 API family (webhooks, decisions). It carries the structured issue
// payload when the server provides one.
type ValidationError struct {
	// Short machine-readable error tag, e.g. "not_found".
	Err string
	// Human readable description.
	Description string
	// Per-field issues, when the request shape was rejected.
	Issues map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("sift validation error: ")
	b.WriteString(e.Err)
	if e.Description != "" {
		b.WriteString(": ")
		b.WriteString(e.Description)
	}
	for field, issue := range e.Issues {
		fmt.Fprintf(&b, " (%s: %s)", field, issue)
	}
	return b.String()
}

// SiftError implements the SiftError interface.
func (e *ValidationError) SiftError() {}

// ServerError represents a transport-level failure: connection errors, JSON
// encode/decode failures, or a response body that was required but absent.
// It carries only a message, never a Sift status code.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return "sift server error: " + e.Message
}

// SiftError implements the SiftError interface.
func (e *ServerError) SiftError() {}

// serverErrorf builds a *ServerError from a format string.
func serverErrorf(format string, args ...any) *ServerError {
	return &ServerError{Message: fmt.Sprintf(format, args...)}
}
