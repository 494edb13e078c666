package sift

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// Event is a user action recorded through the Events API.
//
// Reserved events (CreateAccount, Login, Transaction, ...) carry fields Sift
// analyzes in a standard format. CustomEvent records actions unique to your
// application. Every event type also accepts arbitrary non-reserved fields
// through its Extra map.
type Event interface {
	// EventType returns the reserved "$type" value sent on the wire,
	// e.g. "$create_account".
	EventType() string

	extraFields() map[string]any
}

// EventOptions are optional parameters for Track.
type EventOptions struct {
	// ReturnScore requests that the response include a score for this user,
	// computed using the submitted event.
	ReturnScore bool

	// AbuseTypes limits which abuse types a score is returned for, when
	// scoring was requested. By default a score is returned for every abuse
	// type the account subscribes to.
	AbuseTypes []AbuseType

	// ReturnAction requests that the response include any actions triggered
	// as a result of the tracked event.
	ReturnAction bool

	// ReturnWorkflowStatus requests that the response include the status of
	// any workflow run as a result of the tracked event.
	ReturnWorkflowStatus bool

	// Timeout overrides the client timeout for this call.
	Timeout time.Duration

	// APIKey overrides the client API key for this call.
	APIKey string

	// Version overrides the Events API version for this call.
	Version APIVersion

	// Path overrides the URI path for this call. Used by Label to route an
	// event through the labels endpoint.
	Path string
}

func (o EventOptions) query() url.Values {
	q := url.Values{}
	if o.ReturnScore {
		q.Set("return_score", "true")
	}
	if joined := joinAbuseTypes(o.AbuseTypes); joined != "" {
		q.Set("abuse_types", joined)
	}
	if o.ReturnAction {
		q.Set("return_action", "true")
	}
	if o.ReturnWorkflowStatus {
		q.Set("return_workflow_status", "true")
	}
	return q
}

// EventResponse is the body returned by the Events API when any response
// option was requested.
type EventResponse struct {
	Status        int            `json:"status"`
	ErrorMessage  string         `json:"error_message"`
	ScoreResponse *ScoreResponse `json:"score_response"`
}

// marshalEvent flattens an event into the wire representation: the event's
// reserved fields, its Extra fields, the "$type" tag and the "$api_key".
// Reserved fields win over colliding Extra keys.
func marshalEvent(event Event, apiKey string) (map[string]any, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, serverErrorf("encode event: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, serverErrorf("encode event: %v", err)
	}

	for k, v := range event.extraFields() {
		if _, reserved := fields[k]; !reserved {
			fields[k] = v
		}
	}

	fields["$type"] = event.EventType()
	fields["$api_key"] = apiKey

	return fields, nil
}

// Track sends an event to the Events API.
//
// When opts.ReturnScore is set the returned Scores carry the synchronous
// score computed from the submitted event. Without any response options the
// API replies 204 and Track returns (nil, nil).
//
// See https://sift.com/developers/docs/curl/events-api/overview
func (c *Client) Track(ctx context.Context, event Event, opts EventOptions) (*Scores, error) {
	version := opts.Version
	if version == "" {
		version = APIVersionV205
	}
	path := opts.Path
	if path == "" {
		path = "events"
	}

	body, err := marshalEvent(event, c.apiKeyFor(opts.APIKey))
	if err != nil {
		return nil, err
	}

	endpoint := c.endpoint(version, path)
	c.logger.Debug("tracking event",
		"url", endpoint,
		"type", event.EventType(),
		"return_score", opts.ReturnScore)

	raw, err := c.transport.Post(ctx, endpoint, opts.query(), body, c.timeoutFor(opts.Timeout), "")
	if err != nil {
		return nil, err
	}

	// No response options requested means a 204 with no body.
	if raw == nil {
		return nil, nil
	}

	var resp EventResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, serverErrorf("decode event response: %v", err)
	}

	if resp.ScoreResponse != nil && resp.ScoreResponse.Scores != nil {
		return resp.ScoreResponse.Scores, nil
	}
	if resp.Status != 0 {
		return nil, &RequestError{Status: resp.Status, Message: resp.ErrorMessage}
	}
	if resp.ScoreResponse != nil && resp.ScoreResponse.Status != 0 {
		return nil, &RequestError{
			Status:  resp.ScoreResponse.Status,
			Message: resp.ScoreResponse.ErrorMessage,
		}
	}

	return nil, nil
}
