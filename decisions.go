package sift

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// EntityType is a kind of entity decisions can be applied to.
type EntityType string

const (
	EntityUser    EntityType = "user"
	EntityOrder   EntityType = "order"
	EntitySession EntityType = "session"
	EntityContent EntityType = "content"
)

// Entity identifies a user, or something belonging to a user, that a decision
// applies to. UserID is always required; set at most one of OrderID,
// SessionID or ContentID to narrow the entity.
type Entity struct {
	UserID    string
	OrderID   string
	SessionID string
	ContentID string
}

// UserEntity identifies a user.
func UserEntity(userID string) Entity {
	return Entity{UserID: userID}
}

// OrderEntity identifies an order belonging to a user.
func OrderEntity(userID, orderID string) Entity {
	return Entity{UserID: userID, OrderID: orderID}
}

// SessionEntity identifies a session belonging to a user.
func SessionEntity(userID, sessionID string) Entity {
	return Entity{UserID: userID, SessionID: sessionID}
}

// ContentEntity identifies a piece of content created by a user.
func ContentEntity(userID, contentID string) Entity {
	return Entity{UserID: userID, ContentID: contentID}
}

// pathSegments renders the entity as URL path segments, ids escaped.
func (e Entity) pathSegments() []string {
	segs := []string{"users", pathEscape(e.UserID)}
	switch {
	case e.OrderID != "":
		segs = append(segs, "orders", pathEscape(e.OrderID))
	case e.SessionID != "":
		segs = append(segs, "sessions", pathEscape(e.SessionID))
	case e.ContentID != "":
		segs = append(segs, "content", pathEscape(e.ContentID))
	}
	return segs
}

// DecisionSourceKind is the origin of an applied decision.
type DecisionSourceKind string

const (
	// DecisionManualReview means an analyst applied the decision while
	// reviewing a user or order.
	DecisionManualReview DecisionSourceKind = "MANUAL_REVIEW"

	// DecisionAutomatedRule means an automated rules engine or internal
	// system applied the decision without human analysis.
	DecisionAutomatedRule DecisionSourceKind = "AUTOMATED_RULE"

	// DecisionChargeback means the decision was taken automatically in
	// response to a received chargeback.
	DecisionChargeback DecisionSourceKind = "CHARGEBACK"
)

// DecisionRequest applies a decision to an entity.
type DecisionRequest struct {
	// The unique identifier of the decision, as configured on the Decisions
	// page of the console.
	DecisionID string `json:"decision_id"`

	// The source of this decision.
	Source DecisionSourceKind `json:"source"`

	// Analyst who applied the decision. Required when Source is
	// DecisionManualReview. Any analyst identifier works.
	Analyst string `json:"analyst,omitempty"`

	// The time the decision was applied. Only needed for historical
	// backfill.
	Time *UnixMillis `json:"time,omitempty"`

	// A description of the decision being applied.
	Description string `json:"description,omitempty"`
}

// Decision is the confirmation of an applied decision.
type Decision struct {
	Entity   EntityIdentifier   `json:"entity"`
	Decision DecisionIdentifier `json:"decision"`

	// The time the decision was applied.
	Time UnixMillis `json:"time"`
}

// EntityIdentifier names the entity a decision was taken on.
type EntityIdentifier struct {
	Type EntityType `json:"type"`
	ID   string     `json:"id"`
}

// DecisionIdentifier references a decision by id.
type DecisionIdentifier struct {
	ID string `json:"id"`
}

// DecisionStatus holds the latest decisions applied to an entity.
type DecisionStatus struct {
	Decisions Decisions `json:"decisions"`
}

// Decisions is the latest decision per abuse type.
type Decisions struct {
	PaymentAbuse    *LatestDecision `json:"payment_abuse,omitempty"`
	PromoAbuse      *LatestDecision `json:"promo_abuse,omitempty"`
	ContentAbuse    *LatestDecision `json:"content_abuse,omitempty"`
	AccountAbuse    *LatestDecision `json:"account_abuse,omitempty"`
	AccountTakeover *LatestDecision `json:"account_takeover,omitempty"`
	Legacy          *LatestDecision `json:"legacy,omitempty"`
}

// LatestDecision is the most recent decision for one abuse type.
type LatestDecision struct {
	Decision DecisionIdentifier `json:"decision"`

	// True if the configured webhook was successfully sent, false if it
	// failed, nil when no webhook is configured.
	WebhookSucceeded *bool `json:"webhook_succeeded"`

	// The time the decision was applied.
	Time UnixMillis `json:"time"`
}

// DecisionPage is one page of configured decisions.
type DecisionPage struct {
	Decisions    []DecisionData `json:"data"`
	HasMore      bool           `json:"has_more"`
	Schema       string         `json:"schema"`
	TotalResults uint32         `json:"total_results"`
}

// DecisionData describes one decision configured for the account.
type DecisionData struct {
	// Auto-generated from the decision's initial display name.
	ID string `json:"id"`

	// Display name of the decision.
	Name string `json:"name,omitempty"`

	// Describes the business action(s) associated with the decision.
	Description string `json:"description,omitempty"`

	EntityType EntityType `json:"entity_type"`
	AbuseType  AbuseType  `json:"abuse_type"`

	// Rough category of the business action this decision represents,
	// e.g. "block".
	Category string `json:"category"`

	// URL configured as webhook for this decision. When a decision with a
	// webhook is applied via API, no webhook notification is sent.
	WebhookURL string `json:"webhook_url,omitempty"`

	CreatedAt UnixMillis `json:"created_at"`
	CreatedBy string     `json:"created_by,omitempty"`
	UpdatedAt UnixMillis `json:"updated_at"`
	UpdatedBy string     `json:"updated_by,omitempty"`
}

// DecisionListOptions filter ListDecisions results.
type DecisionListOptions struct {
	// EntityTypes limits results to decisions for the given entity types.
	EntityTypes []EntityType

	// AbuseTypes limits results to decisions for the given abuse types.
	AbuseTypes []AbuseType

	// Limit caps the number of results per page. The API default is 100.
	Limit int

	// From is the offset to start the page at, for paging through results.
	From int
}

func (o DecisionListOptions) query() url.Values {
	q := url.Values{}
	if len(o.EntityTypes) > 0 {
		parts := make([]string, len(o.EntityTypes))
		for i, t := range o.EntityTypes {
			parts[i] = string(t)
		}
		q.Set("entity_type", strings.Join(parts, ","))
	}
	if joined := joinAbuseTypes(o.AbuseTypes); joined != "" {
		q.Set("abuse_types", joined)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.From > 0 {
		q.Set("from", strconv.Itoa(o.From))
	}
	return q
}

func (c *Client) decisionsEndpoint(entity Entity) string {
	parts := append([]string{"accounts", c.accountID}, entity.pathSegments()...)
	parts = append(parts, "decisions")
	return c.endpoint(APIVersionV3, parts...)
}

// DecisionStatus returns the latest decisions applied to an entity, per
// abuse type.
//
// Requires an account id; see WithAccountID.
//
// See https://sift.com/developers/docs/curl/decisions-api/decision-status
func (c *Client) DecisionStatus(ctx context.Context, entity Entity) (*DecisionStatus, error) {
	if err := c.requireAccountID(); err != nil {
		return nil, err
	}

	endpoint := c.decisionsEndpoint(entity)
	c.logger.Debug("retrieving decision status", "url", endpoint)

	raw, err := c.transport.Get(ctx, endpoint, nil, c.timeout, c.apiKey)
	if err != nil {
		return nil, err
	}

	var status DecisionStatus
	if err := decodeV3Payload(raw, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ApplyDecision applies a decision to an entity, recording the business
// action taken on your side.
//
// Requires an account id; see WithAccountID.
//
// See https://sift.com/developers/docs/curl/decisions-api/apply-decision
func (c *Client) ApplyDecision(ctx context.Context, entity Entity, req DecisionRequest) (*Decision, error) {
	if err := c.requireAccountID(); err != nil {
		return nil, err
	}

	endpoint := c.decisionsEndpoint(entity)
	c.logger.Debug("applying decision", "url", endpoint, "decision_id", req.DecisionID)

	raw, err := c.transport.Post(ctx, endpoint, nil, req, c.timeout, c.apiKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, serverErrorf("expected a decision, but received empty server response")
	}

	var decision Decision
	if err := decodeV3Payload(raw, &decision); err != nil {
		return nil, err
	}
	return &decision, nil
}

// ListDecisions returns the decisions configured for the account, filtered
// by the given options.
//
// Requires an account id; see WithAccountID.
//
// See https://sift.com/developers/docs/curl/decisions-api/decisions-list
func (c *Client) ListDecisions(ctx context.Context, opts DecisionListOptions) (*DecisionPage, error) {
	if err := c.requireAccountID(); err != nil {
		return nil, err
	}

	endpoint := c.endpoint(APIVersionV3, "accounts", c.accountID, "decisions")
	c.logger.Debug("listing decisions", "url", endpoint)

	raw, err := c.transport.Get(ctx, endpoint, opts.query(), c.timeout, c.apiKey)
	if err != nil {
		return nil, err
	}

	var page DecisionPage
	if err := decodeV3Payload(raw, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
