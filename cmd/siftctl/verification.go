package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sift "github.com/siftscience/sift-go"
)

var (
	verifyUserID    string
	verifySendTo    string
	verifyType      string
	verifySessionID string
	verifyEvent     string
	verifyCode      uint32
)

var verificationCmd = &cobra.Command{
	Use:   "verification",
	Short: "Drive the OTP verification flow",
}

var verificationSendCmd = &cobra.Command{
	Use:     "send",
	Short:   "Generate and deliver a one-time password to a user",
	Example: `  siftctl verification send --user-id billy_jones_301 --send-to billy@example.com --type '$email'`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		sessionID := verifySessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		resp, err := client.SendVerification(context.Background(), sift.SendVerificationRequest{
			UserID:           verifyUserID,
			SendTo:           verifySendTo,
			VerificationType: sift.VerificationType(verifyType),
			Event: sift.SendVerificationEvent{
				SessionID:     sessionID,
				VerifiedEvent: sift.VerifiedEvent(verifyEvent),
			},
		})
		if err != nil {
			fatalf("Error sending verification: %v", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}
		fmt.Printf("OTP sent at %s.\n", resp.SentAt.Format("2006-01-02 15:04:05 MST"))
	},
}

var verificationResendCmd = &cobra.Command{
	Use:   "resend",
	Short: "Resend the OTP to the original recipient",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		resp, err := client.ResendVerification(context.Background(), sift.ResendVerificationRequest{
			UserID:        verifyUserID,
			VerifiedEvent: sift.VerifiedEvent(verifyEvent),
		})
		if err != nil {
			fatalf("Error resending verification: %v", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}
		fmt.Printf("OTP resent at %s.\n", resp.SentAt.Format("2006-01-02 15:04:05 MST"))
	},
}

var verificationCheckCmd = &cobra.Command{
	Use:     "check",
	Short:   "Check an OTP entered by the user",
	Example: `  siftctl verification check --user-id billy_jones_301 --code 924167`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		resp, err := client.CheckVerification(context.Background(), verifyUserID, verifyCode, sift.CheckOptions{
			VerifiedEvent: sift.VerifiedEvent(verifyEvent),
		})
		if err != nil {
			fatalf("Verification failed: %v", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}
		fmt.Printf("Code accepted, checked at %s.\n", resp.CheckedAt.Format("2006-01-02 15:04:05 MST"))
	},
}

func init() {
	rootCmd.AddCommand(verificationCmd)

	verificationCmd.AddCommand(verificationSendCmd)
	verificationSendCmd.Flags().StringVar(&verifyUserID, "user-id", "", "user to verify")
	verificationSendCmd.Flags().StringVar(&verifySendTo, "send-to", "", "phone number or email address to deliver the OTP to")
	verificationSendCmd.Flags().StringVar(&verifyType, "type", "$email", "delivery method ($email, $sms, $phone_call)")
	verificationSendCmd.Flags().StringVar(&verifySessionID, "session-id", "", "session being verified (a random one is generated when omitted)")
	verificationSendCmd.Flags().StringVar(&verifyEvent, "event", "$login", "reserved event being verified")
	_ = verificationSendCmd.MarkFlagRequired("user-id")
	_ = verificationSendCmd.MarkFlagRequired("send-to")

	verificationCmd.AddCommand(verificationResendCmd)
	verificationResendCmd.Flags().StringVar(&verifyUserID, "user-id", "", "user to verify")
	verificationResendCmd.Flags().StringVar(&verifyEvent, "event", "$login", "reserved event being verified")
	_ = verificationResendCmd.MarkFlagRequired("user-id")

	verificationCmd.AddCommand(verificationCheckCmd)
	verificationCheckCmd.Flags().StringVar(&verifyUserID, "user-id", "", "user being verified")
	verificationCheckCmd.Flags().Uint32Var(&verifyCode, "code", 0, "the OTP entered by the user")
	verificationCheckCmd.Flags().StringVar(&verifyEvent, "event", "$login", "reserved event being verified")
	_ = verificationCheckCmd.MarkFlagRequired("user-id")
	_ = verificationCheckCmd.MarkFlagRequired("code")
}
