package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	sift "github.com/siftscience/sift-go"
)

var (
	scoreAbuseTypes string
	scoreRescore    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <user-id>",
	Short: "Fetch the latest fraud scores for a user",
	Args:  cobra.ExactArgs(1),
	Example: `  siftctl score billy_jones_301
  siftctl score billy_jones_301 --abuse-types payment_abuse,account_takeover
  siftctl score billy_jones_301 --rescore`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		ctx := context.Background()

		opts := sift.ScoreOptions{AbuseTypes: parseAbuseTypes(scoreAbuseTypes)}

		var (
			resp *sift.ScoreResponse
			err  error
		)
		if scoreRescore {
			resp, err = client.RescoreUser(ctx, args[0], opts)
		} else {
			resp, err = client.GetUserScore(ctx, args[0], opts)
		}
		if err != nil {
			fatalf("Error fetching score: %v", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		if resp.Scores == nil {
			fmt.Println("No scores available.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ABUSE TYPE\tSCORE")
		fmt.Fprintln(w, "----------\t-----")
		printScore(w, "payment_abuse", resp.Scores.PaymentAbuse)
		printScore(w, "promotion_abuse", resp.Scores.PromotionAbuse)
		printScore(w, "account_abuse", resp.Scores.AccountAbuse)
		printScore(w, "account_takeover", resp.Scores.AccountTakeover)
		printScore(w, "content_abuse", resp.Scores.ContentAbuse)
		w.Flush()
	},
}

func printScore(w *tabwriter.Writer, name string, score *sift.AbuseScore) {
	if score == nil {
		return
	}
	fmt.Fprintf(w, "%s\t%.3f\n", name, score.Score)
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVar(&scoreAbuseTypes, "abuse-types", "", "comma separated abuse types to score")
	scoreCmd.Flags().BoolVar(&scoreRescore, "rescore", false, "force a re-scoring instead of reading the latest score")
}
