package sift

import (
	"context"
	"testing"
)

func TestLabel(t *testing.T) {
	rt := &recordingTransport{}
	client := newTestClient(rt)

	err := client.Label(context.Background(), "billy_jones_301", LabelProperties{
		IsFraud:     true,
		AbuseType:   PaymentAbuse,
		Description: "chargeback received",
		Source:      "payment gateway",
		Analyst:     "analyst@example.com",
	}, LabelOptions{})
	if err != nil {
		t.Fatalf("Label() error = %v", err)
	}

	if rt.lastURL != "https://api.sift.com/v205/users/billy_jones_301/labels" {
		t.Errorf("url = %q, want the labels endpoint", rt.lastURL)
	}

	body, ok := rt.lastBody.(map[string]any)
	if !ok {
		t.Fatalf("body = %T, want map[string]any", rt.lastBody)
	}
	if body["$type"] != "$label" {
		t.Errorf("$type = %v, want $label", body["$type"])
	}
	if body["$is_fraud"] != true {
		t.Errorf("$is_fraud = %v, want true", body["$is_fraud"])
	}
	if body["$abuse_type"] != "payment_abuse" {
		t.Errorf("$abuse_type = %v, want payment_abuse", body["$abuse_type"])
	}
	if body["$description"] != "chargeback received" {
		t.Errorf("$description = %v", body["$description"])
	}
	if body["$api_key"] != "test-api-key" {
		t.Errorf("$api_key = %v, want the client key injected", body["$api_key"])
	}
}

func TestLabel_EscapesUserID(t *testing.T) {
	rt := &recordingTransport{}
	client := newTestClient(rt)

	err := client.Label(context.Background(), "a/b", LabelProperties{
		IsFraud:   false,
		AbuseType: ContentAbuse,
	}, LabelOptions{})
	if err != nil {
		t.Fatalf("Label() error = %v", err)
	}
	if rt.lastURL != "https://api.sift.com/v205/users/a%2Fb/labels" {
		t.Errorf("url = %q, want escaped user id", rt.lastURL)
	}
}
