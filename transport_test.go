package sift

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func transports() map[string]Transport {
	return map[string]Transport{
		"http":  NewHTTPTransport(),
		"resty": NewRestyTransport(),
	}
}

func TestTransport_PostNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	for name, tr := range transports() {
		t.Run(name, func(t *testing.T) {
			raw, err := tr.Post(context.Background(), srv.URL, nil, map[string]any{"$type": "$login"}, time.Second, "")
			if err != nil {
				t.Fatalf("Post() error = %v", err)
			}
			if raw != nil {
				t.Errorf("Post() body = %s, want nil on 204", raw)
			}
		})
	}
}

func TestTransport_PostReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":0,"error_message":"OK"}`))
	}))
	defer srv.Close()

	for name, tr := range transports() {
		t.Run(name, func(t *testing.T) {
			raw, err := tr.Post(context.Background(), srv.URL, nil, nil, time.Second, "")
			if err != nil {
				t.Fatalf("Post() error = %v", err)
			}
			var env statusEnvelope
			if err := json.Unmarshal(raw, &env); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if env.ErrorMessage != "OK" {
				t.Errorf("error_message = %q, want OK", env.ErrorMessage)
			}
		})
	}
}

func TestTransport_PostEmptyBodyIsNotNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	for name, tr := range transports() {
		t.Run(name, func(t *testing.T) {
			raw, err := tr.Post(context.Background(), srv.URL, nil, nil, time.Second, "")
			if err != nil {
				t.Fatalf("Post() error = %v", err)
			}
			if raw == nil {
				t.Fatal("Post() body = nil, want a non-nil body for a 200 with no payload")
			}
			if len(raw) != 0 {
				t.Errorf("Post() body = %s, want empty", raw)
			}
		})
	}
}

func TestTransport_SetsHeaders(t *testing.T) {
	var gotUA, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	for name, tr := range transports() {
		t.Run(name, func(t *testing.T) {
			gotUA, gotAuth = "", ""
			if _, err := tr.Get(context.Background(), srv.URL, nil, time.Second, "secret-key"); err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !strings.HasPrefix(gotUA, "sift-go/") {
				t.Errorf("User-Agent = %q, want sift-go/ prefix", gotUA)
			}
			if !strings.HasPrefix(gotAuth, "Basic ") {
				t.Errorf("Authorization = %q, want basic auth", gotAuth)
			}
		})
	}
}

func TestTransport_NoAuthWithoutUser(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	for name, tr := range transports() {
		t.Run(name, func(t *testing.T) {
			gotAuth = ""
			if _, err := tr.Get(context.Background(), srv.URL, nil, time.Second, ""); err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if gotAuth != "" {
				t.Errorf("Authorization = %q, want empty", gotAuth)
			}
		})
	}
}

func TestTransport_QueryEncoding(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	query := url.Values{}
	query.Set("api_key", "k")
	query.Set("abuse_types", "payment_abuse,promo_abuse")

	for name, tr := range transports() {
		t.Run(name, func(t *testing.T) {
			gotQuery = nil
			if _, err := tr.Get(context.Background(), srv.URL, query, time.Second, ""); err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got := gotQuery.Get("abuse_types"); got != "payment_abuse,promo_abuse" {
				t.Errorf("abuse_types = %q, want comma-joined value", got)
			}
			if got := gotQuery.Get("api_key"); got != "k" {
				t.Errorf("api_key = %q, want k", got)
			}
		})
	}
}

func TestDecodeAPIError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "events status envelope",
			statusCode: 400,
			body:       `{"status":51,"error_message":"Invalid API Key"}`,
			check: func(t *testing.T, err error) {
				var reqErr *RequestError
				if !errors.As(err, &reqErr) {
					t.Fatalf("error = %T, want *RequestError", err)
				}
				if reqErr.Status != 51 || reqErr.Message != "Invalid API Key" {
					t.Errorf("RequestError = %+v", reqErr)
				}
			},
		},
		{
			name:       "v3 error envelope",
			statusCode: 404,
			body:       `{"error":"not_found","description":"no such webhook"}`,
			check: func(t *testing.T, err error) {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("error = %T, want *ValidationError", err)
				}
				if valErr.Err != "not_found" || valErr.Description != "no such webhook" {
					t.Errorf("ValidationError = %+v", valErr)
				}
			},
		},
		{
			name:       "opaque body",
			statusCode: 502,
			body:       `<html>bad gateway</html>`,
			check: func(t *testing.T, err error) {
				var srvErr *ServerError
				if !errors.As(err, &srvErr) {
					t.Fatalf("error = %T, want *ServerError", err)
				}
			},
		},
		{
			name:       "empty body",
			statusCode: 500,
			body:       "",
			check: func(t *testing.T, err error) {
				var srvErr *ServerError
				if !errors.As(err, &srvErr) {
					t.Fatalf("error = %T, want *ServerError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, decodeAPIError(tt.statusCode, []byte(tt.body)))
		})
	}
}

func TestTransport_ErrorStatusDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":55,"error_message":"Missing required field"}`))
	}))
	defer srv.Close()

	for name, tr := range transports() {
		t.Run(name, func(t *testing.T) {
			_, err := tr.Post(context.Background(), srv.URL, nil, nil, time.Second, "")
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("error = %v, want *RequestError", err)
			}
			if reqErr.Status != 55 {
				t.Errorf("Status = %d, want 55", reqErr.Status)
			}
		})
	}
}
