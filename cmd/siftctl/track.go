package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sift "github.com/siftscience/sift-go"
)

var (
	trackUserID      string
	trackSessionID   string
	trackEventType   string
	trackFieldsJSON  string
	trackReturnScore bool
	trackAbuseTypes  string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Send an event to the Events API",
	Example: `  siftctl track --type '$login' --user-id billy_jones_301
  siftctl track --type made_bid --user-id billy_jones_301 --fields '{"auction_id":"A-42"}'
  siftctl track --type '$logout' --user-id billy_jones_301 --return-score --abuse-types account_takeover`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		sessionID := trackSessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		var fields map[string]any
		if trackFieldsJSON != "" {
			if err := json.Unmarshal([]byte(trackFieldsJSON), &fields); err != nil {
				fatalf("Error parsing --fields: %v", err)
			}
		}

		event := sift.CustomEvent{
			Type:      trackEventType,
			UserID:    trackUserID,
			SessionID: sessionID,
			Fields:    fields,
		}

		opts := sift.EventOptions{
			ReturnScore: trackReturnScore,
			AbuseTypes:  parseAbuseTypes(trackAbuseTypes),
		}

		scores, err := client.Track(context.Background(), event, opts)
		if err != nil {
			fatalf("Error tracking event: %v", err)
		}

		if scores == nil {
			fmt.Println("Event recorded.")
			return
		}
		printJSON(scores)
	},
}

func parseAbuseTypes(s string) []sift.AbuseType {
	if s == "" {
		return nil
	}
	var types []sift.AbuseType
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			types = append(types, sift.AbuseType(part))
		}
	}
	return types
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatalf("Error encoding JSON: %v", err)
	}
}

func init() {
	rootCmd.AddCommand(trackCmd)

	trackCmd.Flags().StringVar(&trackEventType, "type", "", "event type, e.g. '$login' or a custom name")
	trackCmd.Flags().StringVar(&trackUserID, "user-id", "", "user id the event belongs to")
	trackCmd.Flags().StringVar(&trackSessionID, "session-id", "", "session id (a random one is generated when omitted)")
	trackCmd.Flags().StringVar(&trackFieldsJSON, "fields", "", "additional event fields as a JSON object")
	trackCmd.Flags().BoolVar(&trackReturnScore, "return-score", false, "request a synchronous score")
	trackCmd.Flags().StringVar(&trackAbuseTypes, "abuse-types", "", "comma separated abuse types to score")

	_ = trackCmd.MarkFlagRequired("type")
	_ = trackCmd.MarkFlagRequired("user-id")
}
