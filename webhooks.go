package sift

import (
	"context"
	"encoding/json"
	"strconv"
)

// WebhookPayloadType is the type of payload a webhook delivers.
type WebhookPayloadType string

// PayloadOrderV1 delivers an order data payload.
//
// See https://sift.com/developers/docs/curl/orders-api/order
const PayloadOrderV1 WebhookPayloadType = "ORDER_V1_0"

// WebhookStatus is the lifecycle state of a webhook.
type WebhookStatus string

const (
	// WebhookDraft means the webhook is configured but not firing.
	WebhookDraft WebhookStatus = "DRAFT"
	// WebhookActive means the webhook is live.
	WebhookActive WebhookStatus = "ACTIVE"
)

// WebhookEvent is a reserved event type a webhook can subscribe to.
type WebhookEvent string

// Reserved events webhooks can be enabled for.
const (
	WebhookCreateOrder WebhookEvent = "$create_order"
	WebhookUpdateOrder WebhookEvent = "$update_order"
	WebhookOrderStatus WebhookEvent = "$order_status"
	WebhookTransaction WebhookEvent = "$transaction"
	WebhookChargeback  WebhookEvent = "$chargeback"
)

// WebhookRequest describes a webhook to create.
//
// See https://sift.com/developers/docs/curl/webhooks-api/create
type WebhookRequest struct {
	PayloadType WebhookPayloadType `json:"payload_type"`
	Status      WebhookStatus      `json:"status"`

	// The URL of the webhook endpoint. Must be HTTPS.
	URL string `json:"url"`

	// The reserved events that trigger this webhook.
	EnabledEvents []WebhookEvent `json:"enabled_events"`

	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Webhook is a registered webhook endpoint.
type Webhook struct {
	ID          uint64             `json:"id"`
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	PayloadType WebhookPayloadType `json:"payload_type"`
	Status      WebhookStatus      `json:"status"`

	// The URL of the webhook endpoint. Must be HTTPS.
	URL string `json:"url"`

	// The reserved events that trigger this webhook.
	EnabledEvents []WebhookEvent `json:"enabled_events"`

	// Created and LastUpdated are assigned by the server. They are nil on
	// webhooks built locally, so UpdateWebhook never sends zero timestamps.
	Created     *UnixMillis `json:"created,omitempty"`
	LastUpdated *UnixMillis `json:"last_updated,omitempty"`
}

// decodeV3Payload guards against error envelopes delivered with a 2xx
// status: the v3 API sometimes reports failures in the body only.
func decodeV3Payload(raw json.RawMessage, out any) error {
	var v3 struct {
		Err         string            `json:"error"`
		Description string            `json:"description"`
		Issues      map[string]string `json:"issues"`
	}
	if err := json.Unmarshal(raw, &v3); err == nil && v3.Err != "" {
		return &ValidationError{Err: v3.Err, Description: v3.Description, Issues: v3.Issues}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return serverErrorf("decode response: %v", err)
	}
	return nil
}

func (c *Client) webhooksEndpoint(segments ...string) string {
	parts := append([]string{"accounts", c.accountID, "webhooks"}, segments...)
	return c.endpoint(APIVersionV3, parts...)
}

// CreateWebhook creates a new webhook with a specified URL.
//
// Requires an account id; see WithAccountID.
//
// See https://sift.com/developers/docs/curl/webhooks-api/create
func (c *Client) CreateWebhook(ctx context.Context, req WebhookRequest) (*Webhook, error) {
	if err := c.requireAccountID(); err != nil {
		return nil, err
	}

	endpoint := c.webhooksEndpoint()
	c.logger.Debug("creating webhook", "url", endpoint, "webhook_url", req.URL)

	raw, err := c.transport.Post(ctx, endpoint, nil, req, c.timeout, c.apiKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, serverErrorf("expected a webhook, but received empty server response")
	}

	var webhook Webhook
	if err := decodeV3Payload(raw, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// ListWebhooks returns all webhooks registered for the account.
//
// Requires an account id; see WithAccountID.
//
// See https://sift.com/developers/docs/curl/webhooks-api/list
func (c *Client) ListWebhooks(ctx context.Context) ([]Webhook, error) {
	if err := c.requireAccountID(); err != nil {
		return nil, err
	}

	endpoint := c.webhooksEndpoint()
	c.logger.Debug("retrieving webhooks", "url", endpoint)

	raw, err := c.transport.Get(ctx, endpoint, nil, c.timeout, c.apiKey)
	if err != nil {
		return nil, err
	}

	var page struct {
		Data []Webhook `json:"data"`
	}
	if err := decodeV3Payload(raw, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// GetWebhook fetches a webhook by id.
//
// Requires an account id; see WithAccountID.
//
// See https://sift.com/developers/docs/curl/webhooks-api/retrieve
func (c *Client) GetWebhook(ctx context.Context, id uint64) (*Webhook, error) {
	if err := c.requireAccountID(); err != nil {
		return nil, err
	}

	endpoint := c.webhooksEndpoint(strconv.FormatUint(id, 10))
	c.logger.Debug("retrieving webhook", "url", endpoint)

	raw, err := c.transport.Get(ctx, endpoint, nil, c.timeout, c.apiKey)
	if err != nil {
		return nil, err
	}

	var webhook Webhook
	if err := decodeV3Payload(raw, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// UpdateWebhook replaces a webhook's configuration.
//
// Requires an account id; see WithAccountID.
//
// See https://sift.com/developers/docs/curl/webhooks-api/update
func (c *Client) UpdateWebhook(ctx context.Context, webhook Webhook) (*Webhook, error) {
	if err := c.requireAccountID(); err != nil {
		return nil, err
	}

	endpoint := c.webhooksEndpoint(strconv.FormatUint(webhook.ID, 10))
	c.logger.Debug("updating webhook", "url", endpoint)

	raw, err := c.transport.Put(ctx, endpoint, webhook, c.timeout, c.apiKey)
	if err != nil {
		return nil, err
	}

	var updated Webhook
	if err := decodeV3Payload(raw, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteWebhook removes a webhook by id.
//
// Requires an account id; see WithAccountID.
//
// See https://sift.com/developers/docs/curl/webhooks-api/delete
func (c *Client) DeleteWebhook(ctx context.Context, id uint64) error {
	if err := c.requireAccountID(); err != nil {
		return err
	}

	endpoint := c.webhooksEndpoint(strconv.FormatUint(id, 10))
	c.logger.Debug("deleting webhook", "url", endpoint)

	return c.transport.Delete(ctx, endpoint, c.timeout, c.apiKey)
}
