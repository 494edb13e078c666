package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	sift "github.com/siftscience/sift-go"
)

var (
	webhookURL    string
	webhookName   string
	webhookEvents string
	webhookDraft  bool
	webhookID     uint64
)

var webhooksCmd = &cobra.Command{
	Use:   "webhooks",
	Short: "Manage webhook endpoints",
	Long:  `List, create, inspect and delete webhooks registered for the account.`,
}

var webhooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered webhooks",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		hooks, err := client.ListWebhooks(context.Background())
		if err != nil {
			fatalf("Error fetching webhooks: %v", err)
		}

		if jsonOutput {
			printJSON(hooks)
			return
		}

		if len(hooks) == 0 {
			fmt.Println("No webhooks found.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tURL\tEVENTS")
		fmt.Fprintln(w, "--\t------\t---\t------")
		for _, h := range hooks {
			events := make([]string, len(h.EnabledEvents))
			for i, e := range h.EnabledEvents {
				events[i] = string(e)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", h.ID, h.Status, h.URL, strings.Join(events, ","))
		}
		w.Flush()
	},
}

var webhooksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new webhook",
	Example: `  siftctl webhooks create --url https://example.com/hooks/sift --events '$create_order,$transaction'
  siftctl webhooks create --url https://example.com/hooks/sift --events '$chargeback' --draft`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		var events []sift.WebhookEvent
		for _, part := range strings.Split(webhookEvents, ",") {
			if part = strings.TrimSpace(part); part != "" {
				events = append(events, sift.WebhookEvent(part))
			}
		}

		status := sift.WebhookActive
		if webhookDraft {
			status = sift.WebhookDraft
		}

		hook, err := client.CreateWebhook(context.Background(), sift.WebhookRequest{
			PayloadType:   sift.PayloadOrderV1,
			Status:        status,
			URL:           webhookURL,
			EnabledEvents: events,
			Name:          webhookName,
		})
		if err != nil {
			fatalf("Error creating webhook: %v", err)
		}

		if jsonOutput {
			printJSON(hook)
			return
		}
		fmt.Printf("Webhook %d created.\n", hook.ID)
	},
}

var webhooksGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a webhook by id",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		hook, err := client.GetWebhook(context.Background(), webhookID)
		if err != nil {
			fatalf("Error fetching webhook: %v", err)
		}
		printJSON(hook)
	},
}

var webhooksDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete a webhook by id",
	Example: `  siftctl webhooks delete --id 12345`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		if err := client.DeleteWebhook(context.Background(), webhookID); err != nil {
			fatalf("Error deleting webhook: %v", err)
		}
		fmt.Println("Webhook deleted.")
	},
}

func init() {
	rootCmd.AddCommand(webhooksCmd)

	webhooksCmd.AddCommand(webhooksListCmd)

	webhooksCmd.AddCommand(webhooksCreateCmd)
	webhooksCreateCmd.Flags().StringVar(&webhookURL, "url", "", "HTTPS URL of the webhook endpoint")
	webhooksCreateCmd.Flags().StringVar(&webhookName, "name", "", "display name of the webhook")
	webhooksCreateCmd.Flags().StringVar(&webhookEvents, "events", "", "comma separated reserved events to subscribe to")
	webhooksCreateCmd.Flags().BoolVar(&webhookDraft, "draft", false, "create the webhook in DRAFT status")
	_ = webhooksCreateCmd.MarkFlagRequired("url")
	_ = webhooksCreateCmd.MarkFlagRequired("events")

	webhooksCmd.AddCommand(webhooksGetCmd)
	webhooksGetCmd.Flags().Uint64Var(&webhookID, "id", 0, "id of the webhook")
	_ = webhooksGetCmd.MarkFlagRequired("id")

	webhooksCmd.AddCommand(webhooksDeleteCmd)
	webhooksDeleteCmd.Flags().Uint64Var(&webhookID, "id", 0, "id of the webhook to delete")
	_ = webhooksDeleteCmd.MarkFlagRequired("id")
}
