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
	decisionUserID    string
	decisionOrderID   string
	decisionSessionID string
	decisionContentID string
	decisionID        string
	decisionAnalyst   string
	decisionDesc      string
	decisionSource    string
)

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Inspect and apply decisions",
}

func decisionEntity() sift.Entity {
	switch {
	case decisionOrderID != "":
		return sift.OrderEntity(decisionUserID, decisionOrderID)
	case decisionSessionID != "":
		return sift.SessionEntity(decisionUserID, decisionSessionID)
	case decisionContentID != "":
		return sift.ContentEntity(decisionUserID, decisionContentID)
	default:
		return sift.UserEntity(decisionUserID)
	}
}

var decisionsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest decisions applied to an entity",
	Example: `  siftctl decisions status --user-id billy_jones_301
  siftctl decisions status --user-id billy_jones_301 --order-id ORDER-123`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		status, err := client.DecisionStatus(context.Background(), decisionEntity())
		if err != nil {
			fatalf("Error fetching decision status: %v", err)
		}
		printJSON(status)
	},
}

var decisionsApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a decision to an entity",
	Example: `  siftctl decisions apply --user-id billy_jones_301 --decision-id block_user --source MANUAL_REVIEW --analyst analyst@example.com
  siftctl decisions apply --user-id billy_jones_301 --order-id ORDER-123 --decision-id order_looks_ok --source AUTOMATED_RULE`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		decision, err := client.ApplyDecision(context.Background(), decisionEntity(), sift.DecisionRequest{
			DecisionID:  decisionID,
			Source:      sift.DecisionSourceKind(decisionSource),
			Analyst:     decisionAnalyst,
			Description: decisionDesc,
		})
		if err != nil {
			fatalf("Error applying decision: %v", err)
		}

		if jsonOutput {
			printJSON(decision)
			return
		}
		fmt.Printf("Decision %s applied to %s %s.\n",
			decision.Decision.ID, decision.Entity.Type, decision.Entity.ID)
	},
}

var decisionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the decisions configured for the account",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		page, err := client.ListDecisions(context.Background(), sift.DecisionListOptions{})
		if err != nil {
			fatalf("Error listing decisions: %v", err)
		}

		if jsonOutput {
			printJSON(page)
			return
		}

		if len(page.Decisions) == 0 {
			fmt.Println("No decisions configured.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tENTITY\tABUSE TYPE\tCATEGORY")
		fmt.Fprintln(w, "--\t------\t----------\t--------")
		for _, d := range page.Decisions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.EntityType, d.AbuseType, d.Category)
		}
		w.Flush()

		if page.HasMore {
			fmt.Printf("Showing %d of %d decisions.\n", len(page.Decisions), page.TotalResults)
		}
	},
}

func init() {
	rootCmd.AddCommand(decisionsCmd)

	for _, cmd := range []*cobra.Command{decisionsStatusCmd, decisionsApplyCmd} {
		cmd.Flags().StringVar(&decisionUserID, "user-id", "", "user the entity belongs to")
		cmd.Flags().StringVar(&decisionOrderID, "order-id", "", "narrow the entity to an order")
		cmd.Flags().StringVar(&decisionSessionID, "session-id", "", "narrow the entity to a session")
		cmd.Flags().StringVar(&decisionContentID, "content-id", "", "narrow the entity to a piece of content")
		_ = cmd.MarkFlagRequired("user-id")
	}

	decisionsCmd.AddCommand(decisionsStatusCmd)

	decisionsCmd.AddCommand(decisionsApplyCmd)
	decisionsApplyCmd.Flags().StringVar(&decisionID, "decision-id", "", "id of the decision to apply")
	decisionsApplyCmd.Flags().StringVar(&decisionSource, "source", "MANUAL_REVIEW", "source of the decision (MANUAL_REVIEW, AUTOMATED_RULE, CHARGEBACK)")
	decisionsApplyCmd.Flags().StringVar(&decisionAnalyst, "analyst", "", "analyst applying the decision, required for MANUAL_REVIEW")
	decisionsApplyCmd.Flags().StringVar(&decisionDesc, "description", "", "description of the decision being applied")
	_ = decisionsApplyCmd.MarkFlagRequired("decision-id")

	decisionsCmd.AddCommand(decisionsListCmd)
}
