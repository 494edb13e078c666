package sift

import (
	"context"
	"time"
)

// LatestLabels holds the most recent label applied for each abuse type.
type LatestLabels struct {
	PaymentAbuse    *Label `json:"payment_abuse,omitempty"`
	PromotionAbuse  *Label `json:"promotion_abuse,omitempty"`
	AccountAbuse    *Label `json:"account_abuse,omitempty"`
	AccountTakeover *Label `json:"account_takeover,omitempty"`
	ContentAbuse    *Label `json:"content_abuse,omitempty"`
}

// Label is the label entry applied for one abuse type.
type Label struct {
	// True when the entity was labeled as engaging in abusive activity.
	IsBad bool `json:"is_bad"`

	// The time the label was applied.
	Time UnixMillis `json:"time"`

	// Freeform description of the incident triggering the label.
	Description string `json:"description,omitempty"`
}

// LabelProperties describe the label to apply to a user.
type LabelProperties struct {
	// True if the user is engaging in abusive activity, false if the user is
	// engaging in valid activity.
	IsFraud bool

	// The type of abuse being labeled.
	AbuseType AbuseType

	// Freeform annotation on why the label was added.
	Description string

	// The original source of the label information, e.g. a payment gateway
	// or manual review.
	Source string

	// Identifier of the analyst who applied the label.
	Analyst string

	// Any extra non-reserved fields to record with the label.
	Extra map[string]any
}

// LabelOptions are optional parameters for Label.
type LabelOptions struct {
	// Timeout overrides the client timeout for this call.
	Timeout time.Duration

	// APIKey overrides the client API key for this call.
	APIKey string

	// Version overrides the Events API version for this call.
	Version APIVersion
}

// Label tells Sift whether the given user is fraudulent or legitimate.
//
// The Labels API is no longer recommended for new customers; decisions allow
// more granular feedback. It remains a supported integration method.
//
// See https://sift.com/developers/docs/curl/labels-api/label-user
func (c *Client) Label(ctx context.Context, userID string, properties LabelProperties, opts LabelOptions) error {
	event := LabelEvent{
		IsFraud:     properties.IsFraud,
		AbuseType:   properties.AbuseType,
		Description: properties.Description,
		Source:      properties.Source,
		Analyst:     properties.Analyst,
		Extra:       properties.Extra,
	}

	_, err := c.Track(ctx, event, EventOptions{
		Timeout: opts.Timeout,
		APIKey:  opts.APIKey,
		Version: opts.Version,
		Path:    "users/" + pathEscape(userID) + "/labels",
	})
	return err
}
