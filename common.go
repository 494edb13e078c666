package sift

import (
	"encoding/json"
	"strings"
	"time"
)

// AbuseType is a category of fraud the Sift platform scores independently.
type AbuseType string

// Abuse types tracked by Sift.
const (
	AccountTakeover AbuseType = "account_takeover"
	AccountAbuse    AbuseType = "account_abuse"
	ContentAbuse    AbuseType = "content_abuse"
	PaymentAbuse    AbuseType = "payment_abuse"
	PromoAbuse      AbuseType = "promo_abuse"
)

// joinAbuseTypes serializes an abuse-type list as a single comma-joined query
// value. The query encoder has no array syntax for repeated keys, so the API
// accepts `abuse_types=payment_abuse,promo_abuse` instead.
//
// An empty list returns "", which callers must treat as "omit the parameter".
func joinAbuseTypes(types []AbuseType) string {
	if len(types) == 0 {
		return ""
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// UnixMillis is a point in time carried on the wire as integer milliseconds
// since the Unix epoch, the timestamp encoding used throughout the Sift API.
//
// The zero value marshals as 0 and reports IsZero() == true.
type UnixMillis struct {
	time.Time
}

// Millis creates a UnixMillis from a time.Time.
func Millis(t time.Time) UnixMillis {
	return UnixMillis{Time: t}
}

// MarshalJSON encodes the time as milliseconds since epoch.
func (m UnixMillis) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("0"), nil
	}
	return json.Marshal(m.UnixMilli())
}

// UnmarshalJSON decodes milliseconds since epoch. null decodes to the zero
// value.
func (m *UnixMillis) UnmarshalJSON(data []byte) error {
	var ms *int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	if ms == nil || *ms == 0 {
		m.Time = time.Time{}
		return nil
	}
	m.Time = time.UnixMilli(*ms).UTC()
	return nil
}

// Micros is the base unit for currency amounts.
//
// 1 cent = 10,000 micros. $1.23 USD = 123 cents = 1,230,000 micros.
type Micros int64

// MicrosFromBaseUnits converts a value in a currency's base unit (e.g. cents
// for USD) to micros.
func MicrosFromBaseUnits(baseUnits int64) Micros {
	return Micros(baseUnits * 10_000)
}
