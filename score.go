package sift

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// ScoreOptions are optional parameters for GetUserScore and RescoreUser.
type ScoreOptions struct {
	// AbuseTypes limits which abuse types a score is returned for. By
	// default a score is returned for every abuse type the account
	// subscribes to.
	AbuseTypes []AbuseType

	// APIKey overrides the client API key for this call.
	APIKey string

	// Timeout overrides the client timeout for this call.
	Timeout time.Duration

	// Version overrides the Score API version for this call.
	Version APIVersion

	// PathPrefix overrides the path segment before the user id.
	// Default: "users".
	PathPrefix string

	// PathSuffix overrides the path segment after the user id.
	// Default: "score".
	PathSuffix string
}

func (o ScoreOptions) query(apiKey string) url.Values {
	q := url.Values{}
	q.Set("api_key", apiKey)
	if joined := joinAbuseTypes(o.AbuseTypes); joined != "" {
		q.Set("abuse_types", joined)
	}
	return q
}

// ScoreResponse is the scoring information computed for an entity.
//
// See https://sift.com/developers/docs/curl/score-api/get-score/overview
type ScoreResponse struct {
	// The success or error code.
	Status int `json:"status"`

	// Description of the error, if applicable.
	ErrorMessage string `json:"error_message"`

	// The computed scores for all applicable abuse types.
	Scores *Scores `json:"scores,omitempty"`

	// The id the score was requested for.
	EntityID string `json:"entity_id,omitempty"`

	// What type of entity the score refers to. Defaults to user.
	EntityType string `json:"entity_type,omitempty"`

	// Entries for all abuse types the entity has been labeled for. Not
	// subject to the abuse types given in the request; every applied label
	// is always included. Only populated for Labels API users.
	LatestLabels *LatestLabels `json:"latest_labels,omitempty"`

	// All abuse types for which decisions have been applied on the entity,
	// keyed by abuse type. Not subject to the abuse types given in the
	// request.
	LatestDecisions map[string]json.RawMessage `json:"latest_decisions,omitempty"`
}

// Scores holds the computed scores for all applicable abuse types.
type Scores struct {
	PaymentAbuse    *AbuseScore `json:"payment_abuse,omitempty"`
	PromotionAbuse  *AbuseScore `json:"promotion_abuse,omitempty"`
	AccountAbuse    *AbuseScore `json:"account_abuse,omitempty"`
	AccountTakeover *AbuseScore `json:"account_takeover,omitempty"`
	ContentAbuse    *AbuseScore `json:"content_abuse,omitempty"`
}

// AbuseScore is the computed score for one abuse type.
type AbuseScore struct {
	// Score between 0.0 and 1.0. A score of 0.5 shows as 50 in the console.
	Score float64 `json:"score"`

	// The most significant reasons for the score and the values associated
	// with the user.
	Reasons []AbuseScoreReason `json:"reasons,omitempty"`
}

// AbuseScoreReason is one risk signal contributing to an abuse score.
type AbuseScoreReason struct {
	// Name of the risk signal.
	Name string `json:"name"`

	// Value of the risk signal.
	Value string `json:"value"`

	// Additional details, provided only when relevant. May contain the IDs
	// of related users.
	Details json.RawMessage `json:"details,omitempty"`
}

func (o ScoreOptions) path(userID string) (APIVersion, string, string, string) {
	version := o.Version
	if version == "" {
		version = APIVersionV205
	}
	prefix := o.PathPrefix
	if prefix == "" {
		prefix = "users"
	}
	suffix := o.PathSuffix
	if suffix == "" {
		suffix = "score"
	}
	return version, prefix, pathEscape(userID), suffix
}

// GetUserScore fetches the latest scores computed for the given user and
// abuse types, without sending an event.
//
// See https://sift.com/developers/docs/curl/score-api/get-score/overview
func (c *Client) GetUserScore(ctx context.Context, userID string, opts ScoreOptions) (*ScoreResponse, error) {
	version, prefix, id, suffix := opts.path(userID)
	endpoint := c.endpoint(version, prefix, id, suffix)

	c.logger.Debug("retrieving score", "url", endpoint, "user_id", userID)

	raw, err := c.transport.Get(ctx, endpoint, opts.query(c.apiKeyFor(opts.APIKey)), c.timeoutFor(opts.Timeout), "")
	if err != nil {
		return nil, err
	}

	var resp ScoreResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, serverErrorf("decode score response: %v", err)
	}
	return &resp, nil
}

// RescoreUser forces a re-scoring of the given user for the given abuse
// types and returns the resulting scores.
//
// See https://sift.com/developers/docs/curl/score-api/rescore
func (c *Client) RescoreUser(ctx context.Context, userID string, opts ScoreOptions) (*ScoreResponse, error) {
	version, prefix, id, suffix := opts.path(userID)
	endpoint := c.endpoint(version, prefix, id, suffix)

	c.logger.Debug("rescoring user", "url", endpoint, "user_id", userID)

	raw, err := c.transport.Post(ctx, endpoint, opts.query(c.apiKeyFor(opts.APIKey)), nil, c.timeoutFor(opts.Timeout), "")
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, serverErrorf("expected a score, but received empty server response")
	}

	var resp ScoreResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, serverErrorf("decode score response: %v", err)
	}
	return &resp, nil
}
