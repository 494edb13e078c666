package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	sift "github.com/siftscience/sift-go"
)

var (
	labelIsFraud     bool
	labelAbuseType   string
	labelDescription string
	labelAnalyst     string
)

var labelCmd = &cobra.Command{
	Use:   "label <user-id>",
	Short: "Label a user as fraudulent or legitimate",
	Args:  cobra.ExactArgs(1),
	Example: `  siftctl label billy_jones_301 --fraud --abuse-type payment_abuse
  siftctl label billy_jones_301 --fraud=false --abuse-type payment_abuse --description "verified by support"`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		err := client.Label(context.Background(), args[0], sift.LabelProperties{
			IsFraud:     labelIsFraud,
			AbuseType:   sift.AbuseType(labelAbuseType),
			Description: labelDescription,
			Analyst:     labelAnalyst,
		}, sift.LabelOptions{})
		if err != nil {
			fatalf("Error applying label: %v", err)
		}
		fmt.Println("Label applied.")
	},
}

func init() {
	rootCmd.AddCommand(labelCmd)

	labelCmd.Flags().BoolVar(&labelIsFraud, "fraud", true, "whether the user is engaging in abusive activity")
	labelCmd.Flags().StringVar(&labelAbuseType, "abuse-type", "", "the abuse type being labeled")
	labelCmd.Flags().StringVar(&labelDescription, "description", "", "annotation on why the label was added")
	labelCmd.Flags().StringVar(&labelAnalyst, "analyst", "", "identifier of the analyst applying the label")

	_ = labelCmd.MarkFlagRequired("abuse-type")
}
