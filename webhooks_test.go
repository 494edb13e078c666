package sift

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestWebhooks_RequireAccountID(t *testing.T) {
	rt := &recordingTransport{}
	client := newTestClient(rt)

	ctx := context.Background()
	calls := []struct {
		name string
		call func() error
	}{
		{"CreateWebhook", func() error { _, err := client.CreateWebhook(ctx, WebhookRequest{}); return err }},
		{"ListWebhooks", func() error { _, err := client.ListWebhooks(ctx); return err }},
		{"GetWebhook", func() error { _, err := client.GetWebhook(ctx, 1); return err }},
		{"UpdateWebhook", func() error { _, err := client.UpdateWebhook(ctx, Webhook{ID: 1}); return err }},
		{"DeleteWebhook", func() error { return client.DeleteWebhook(ctx, 1) }},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrMissingAccountID) {
				t.Errorf("error = %v, want ErrMissingAccountID", err)
			}
		})
	}
	if rt.calls != 0 {
		t.Errorf("transport calls = %d, want none without an account id", rt.calls)
	}
}

func TestCreateWebhook(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{
		"id": 12345,
		"payload_type": "ORDER_V1_0",
		"status": "ACTIVE",
		"url": "https://example.com/hooks/sift",
		"enabled_events": ["$create_order", "$transaction"],
		"created": 1575735000000,
		"last_updated": 1575735000000
	}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	webhook, err := client.CreateWebhook(context.Background(), WebhookRequest{
		PayloadType:   PayloadOrderV1,
		Status:        WebhookActive,
		URL:           "https://example.com/hooks/sift",
		EnabledEvents: []WebhookEvent{WebhookCreateOrder, WebhookTransaction},
	})
	if err != nil {
		t.Fatalf("CreateWebhook() error = %v", err)
	}

	if rt.lastMethod != "POST" {
		t.Errorf("method = %q, want POST", rt.lastMethod)
	}
	if rt.lastURL != "https://api.sift.com/v3/accounts/acct_1/webhooks" {
		t.Errorf("url = %q, want the webhooks endpoint", rt.lastURL)
	}
	if rt.lastAuth != "test-api-key" {
		t.Errorf("basic auth user = %q, want the API key", rt.lastAuth)
	}

	if webhook.ID != 12345 {
		t.Errorf("ID = %d, want 12345", webhook.ID)
	}
	if webhook.Status != WebhookActive {
		t.Errorf("Status = %q, want ACTIVE", webhook.Status)
	}
	if len(webhook.EnabledEvents) != 2 || webhook.EnabledEvents[0] != WebhookCreateOrder {
		t.Errorf("EnabledEvents = %v", webhook.EnabledEvents)
	}
}

func TestCreateWebhook_EchoesRequest(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{
		"id": 12345,
		"name": "order hook",
		"description": "notifies the order service",
		"payload_type": "ORDER_V1_0",
		"status": "ACTIVE",
		"url": "https://example.com/hooks/sift",
		"enabled_events": ["$create_order", "$transaction"],
		"created": 1575735000000,
		"last_updated": 1575735000000
	}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	req := WebhookRequest{
		Name:          "order hook",
		Description:   "notifies the order service",
		PayloadType:   PayloadOrderV1,
		Status:        WebhookActive,
		URL:           "https://example.com/hooks/sift",
		EnabledEvents: []WebhookEvent{WebhookCreateOrder, WebhookTransaction},
	}
	webhook, err := client.CreateWebhook(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateWebhook() error = %v", err)
	}

	// Everything the caller sent comes back unchanged.
	if webhook.Name != req.Name {
		t.Errorf("Name = %q, want %q", webhook.Name, req.Name)
	}
	if webhook.Description != req.Description {
		t.Errorf("Description = %q, want %q", webhook.Description, req.Description)
	}
	if webhook.PayloadType != req.PayloadType {
		t.Errorf("PayloadType = %q, want %q", webhook.PayloadType, req.PayloadType)
	}
	if webhook.Status != req.Status {
		t.Errorf("Status = %q, want %q", webhook.Status, req.Status)
	}
	if webhook.URL != req.URL {
		t.Errorf("URL = %q, want %q", webhook.URL, req.URL)
	}
	if !reflect.DeepEqual(webhook.EnabledEvents, req.EnabledEvents) {
		t.Errorf("EnabledEvents = %v, want %v", webhook.EnabledEvents, req.EnabledEvents)
	}

	// The server-assigned fields are filled in.
	if webhook.ID == 0 {
		t.Error("ID = 0, want server-assigned id")
	}
	if webhook.Created == nil || webhook.Created.UnixMilli() != 1575735000000 {
		t.Errorf("Created = %v, want server-assigned timestamp", webhook.Created)
	}
	if webhook.LastUpdated == nil || webhook.LastUpdated.UnixMilli() != 1575735000000 {
		t.Errorf("LastUpdated = %v, want server-assigned timestamp", webhook.LastUpdated)
	}
}

func TestCreateWebhook_ValidationError(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{
		"error": "bad_request",
		"description": "invalid webhook configuration",
		"issues": {"url": "must be https"}
	}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	_, err := client.CreateWebhook(context.Background(), WebhookRequest{URL: "http://insecure"})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if valErr.Issues["url"] != "must be https" {
		t.Errorf("Issues = %v", valErr.Issues)
	}
}

func TestListWebhooks(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{
		"data": [
			{"id": 1, "status": "ACTIVE", "url": "https://a.example.com"},
			{"id": 2, "status": "DRAFT", "url": "https://b.example.com"}
		]
	}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	webhooks, err := client.ListWebhooks(context.Background())
	if err != nil {
		t.Fatalf("ListWebhooks() error = %v", err)
	}
	if len(webhooks) != 2 {
		t.Fatalf("len = %d, want 2", len(webhooks))
	}
	if webhooks[1].Status != WebhookDraft {
		t.Errorf("Status = %q, want DRAFT", webhooks[1].Status)
	}
}

func TestGetWebhook(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{"id": 77, "status": "ACTIVE", "url": "https://example.com"}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	webhook, err := client.GetWebhook(context.Background(), 77)
	if err != nil {
		t.Fatalf("GetWebhook() error = %v", err)
	}
	if rt.lastURL != "https://api.sift.com/v3/accounts/acct_1/webhooks/77" {
		t.Errorf("url = %q, want id in path", rt.lastURL)
	}
	if webhook.ID != 77 {
		t.Errorf("ID = %d, want 77", webhook.ID)
	}
}

func TestGetWebhook_Idempotent(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{
		"id": 77,
		"payload_type": "ORDER_V1_0",
		"status": "ACTIVE",
		"url": "https://example.com",
		"enabled_events": ["$create_order"],
		"created": 1575735000000,
		"last_updated": 1575735000000
	}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	first, err := client.GetWebhook(context.Background(), 77)
	if err != nil {
		t.Fatalf("GetWebhook() error = %v", err)
	}
	second, err := client.GetWebhook(context.Background(), 77)
	if err != nil {
		t.Fatalf("GetWebhook() second call error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated GetWebhook() differed:\nfirst  = %+v\nsecond = %+v", first, second)
	}
	if rt.calls != 2 {
		t.Errorf("transport calls = %d, want 2", rt.calls)
	}
}

func TestUpdateWebhook(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{"id": 77, "status": "DRAFT", "url": "https://example.com"}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	updated, err := client.UpdateWebhook(context.Background(), Webhook{
		ID:     77,
		Status: WebhookDraft,
		URL:    "https://example.com",
	})
	if err != nil {
		t.Fatalf("UpdateWebhook() error = %v", err)
	}
	if rt.lastMethod != "PUT" {
		t.Errorf("method = %q, want PUT", rt.lastMethod)
	}
	if rt.lastURL != "https://api.sift.com/v3/accounts/acct_1/webhooks/77" {
		t.Errorf("url = %q, want id in path", rt.lastURL)
	}
	if updated.Status != WebhookDraft {
		t.Errorf("Status = %q, want DRAFT", updated.Status)
	}
}

func TestUpdateWebhook_OmitsServerTimestamps(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{"id": 77, "status": "ACTIVE", "url": "https://example.com"}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	_, err := client.UpdateWebhook(context.Background(), Webhook{
		ID:     77,
		Status: WebhookActive,
		URL:    "https://example.com",
	})
	if err != nil {
		t.Fatalf("UpdateWebhook() error = %v", err)
	}

	body, err := json.Marshal(rt.lastBody)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if bytes.Contains(body, []byte(`"created"`)) || bytes.Contains(body, []byte(`"last_updated"`)) {
		t.Errorf("PUT body = %s, want server-assigned timestamps omitted", body)
	}
}

func TestDeleteWebhook(t *testing.T) {
	rt := &recordingTransport{}
	client := newTestClient(rt, WithAccountID("acct_1"))

	if err := client.DeleteWebhook(context.Background(), 77); err != nil {
		t.Fatalf("DeleteWebhook() error = %v", err)
	}
	if rt.lastMethod != "DELETE" {
		t.Errorf("method = %q, want DELETE", rt.lastMethod)
	}
	if rt.lastURL != "https://api.sift.com/v3/accounts/acct_1/webhooks/77" {
		t.Errorf("url = %q, want id in path", rt.lastURL)
	}
}
