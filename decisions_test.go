package sift

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestEntity_PathSegments(t *testing.T) {
	tests := []struct {
		name   string
		entity Entity
		want   string
	}{
		{"user", UserEntity("bob"), "users/bob"},
		{"order", OrderEntity("bob", "ORDER-1"), "users/bob/orders/ORDER-1"},
		{"session", SessionEntity("bob", "sess-1"), "users/bob/sessions/sess-1"},
		{"content", ContentEntity("bob", "post-1"), "users/bob/content/post-1"},
		{"escaped ids", OrderEntity("a/b", "c d"), "users/a%2Fb/orders/c%20d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := tt.entity.pathSegments()
			got := ""
			for i, s := range segs {
				if i > 0 {
					got += "/"
				}
				got += s
			}
			if got != tt.want {
				t.Errorf("pathSegments() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecisions_RequireAccountID(t *testing.T) {
	rt := &recordingTransport{}
	client := newTestClient(rt)

	ctx := context.Background()
	calls := []struct {
		name string
		call func() error
	}{
		{"DecisionStatus", func() error { _, err := client.DecisionStatus(ctx, UserEntity("bob")); return err }},
		{"ApplyDecision", func() error { _, err := client.ApplyDecision(ctx, UserEntity("bob"), DecisionRequest{}); return err }},
		{"ListDecisions", func() error { _, err := client.ListDecisions(ctx, DecisionListOptions{}); return err }},
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

func TestDecisionStatus(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{
		"decisions": {
			"payment_abuse": {
				"decision": {"id": "block_user_payment_abuse"},
				"webhook_succeeded": false,
				"time": 1575735000000
			}
		}
	}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	status, err := client.DecisionStatus(context.Background(), OrderEntity("bob", "ORDER-1"))
	if err != nil {
		t.Fatalf("DecisionStatus() error = %v", err)
	}

	if rt.lastMethod != "GET" {
		t.Errorf("method = %q, want GET", rt.lastMethod)
	}
	if rt.lastURL != "https://api.sift.com/v3/accounts/acct_1/users/bob/orders/ORDER-1/decisions" {
		t.Errorf("url = %q, want the order decisions endpoint", rt.lastURL)
	}

	latest := status.Decisions.PaymentAbuse
	if latest == nil {
		t.Fatal("Decisions.PaymentAbuse is nil")
	}
	if latest.Decision.ID != "block_user_payment_abuse" {
		t.Errorf("Decision.ID = %q", latest.Decision.ID)
	}
	if latest.WebhookSucceeded == nil || *latest.WebhookSucceeded {
		t.Errorf("WebhookSucceeded = %v, want false", latest.WebhookSucceeded)
	}
}

func TestApplyDecision(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{
		"entity": {"type": "user", "id": "bob"},
		"decision": {"id": "trusted_user"},
		"time": 1575735000000
	}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	decision, err := client.ApplyDecision(context.Background(), UserEntity("bob"), DecisionRequest{
		DecisionID: "trusted_user",
		Source:     DecisionManualReview,
		Analyst:    "analyst@example.com",
	})
	if err != nil {
		t.Fatalf("ApplyDecision() error = %v", err)
	}

	if rt.lastMethod != "POST" {
		t.Errorf("method = %q, want POST", rt.lastMethod)
	}
	if rt.lastURL != "https://api.sift.com/v3/accounts/acct_1/users/bob/decisions" {
		t.Errorf("url = %q, want the user decisions endpoint", rt.lastURL)
	}
	req, ok := rt.lastBody.(DecisionRequest)
	if !ok {
		t.Fatalf("body = %T, want DecisionRequest", rt.lastBody)
	}
	if req.Source != DecisionManualReview {
		t.Errorf("Source = %q, want MANUAL_REVIEW", req.Source)
	}

	if decision.Entity.Type != EntityUser || decision.Entity.ID != "bob" {
		t.Errorf("Entity = %+v", decision.Entity)
	}
	if decision.Decision.ID != "trusted_user" {
		t.Errorf("Decision.ID = %q", decision.Decision.ID)
	}
}

func TestApplyDecision_EmptyResponse(t *testing.T) {
	rt := &recordingTransport{}
	client := newTestClient(rt, WithAccountID("acct_1"))

	_, err := client.ApplyDecision(context.Background(), UserEntity("bob"), DecisionRequest{DecisionID: "d"})
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("error = %v, want *ServerError on empty response", err)
	}
}

func TestListDecisions(t *testing.T) {
	rt := &recordingTransport{response: json.RawMessage(`{
		"data": [
			{"id": "block_user", "name": "Block user", "entity_type": "user", "abuse_type": "payment_abuse", "category": "block"}
		],
		"has_more": true,
		"total_results": 41
	}`)}
	client := newTestClient(rt, WithAccountID("acct_1"))

	page, err := client.ListDecisions(context.Background(), DecisionListOptions{
		EntityTypes: []EntityType{EntityUser, EntityOrder},
		AbuseTypes:  []AbuseType{PaymentAbuse},
		Limit:       10,
		From:        20,
	})
	if err != nil {
		t.Fatalf("ListDecisions() error = %v", err)
	}

	if rt.lastURL != "https://api.sift.com/v3/accounts/acct_1/decisions" {
		t.Errorf("url = %q, want the account decisions endpoint", rt.lastURL)
	}
	if got := rt.lastQuery.Get("entity_type"); got != "user,order" {
		t.Errorf("entity_type = %q, want user,order", got)
	}
	if got := rt.lastQuery.Get("abuse_types"); got != "payment_abuse" {
		t.Errorf("abuse_types = %q, want payment_abuse", got)
	}
	if got := rt.lastQuery.Get("limit"); got != "10" {
		t.Errorf("limit = %q, want 10", got)
	}
	if got := rt.lastQuery.Get("from"); got != "20" {
		t.Errorf("from = %q, want 20", got)
	}

	if !page.HasMore || page.TotalResults != 41 {
		t.Errorf("page = %+v", page)
	}
	if len(page.Decisions) != 1 || page.Decisions[0].ID != "block_user" {
		t.Errorf("Decisions = %+v", page.Decisions)
	}
}

func TestDecisionListOptions_EmptyQuery(t *testing.T) {
	q := DecisionListOptions{}.query()
	if len(q) != 0 {
		t.Errorf("query() = %v, want empty", q)
	}
}
