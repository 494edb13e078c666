package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sift "github.com/siftscience/sift-go"
)

var (
	cfgFile    string
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "siftctl",
	Short: "A CLI for the Sift Science fraud-detection APIs",
	Long: `Send events, fetch scores, apply labels and decisions, and manage
webhooks and OTP verification through the Sift REST APIs.

Credentials are read from flags, a config file, or the environment
(SIFT_API_KEY, SIFT_ACCOUNT_ID, SIFT_ORIGIN).`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.siftctl.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.PersistentFlags().String("api-key", "", "Sift REST API key")
	rootCmd.PersistentFlags().String("account-id", "", "Sift account id, required for webhooks and decisions")
	rootCmd.PersistentFlags().String("origin", "", "API origin override")

	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("account_id", rootCmd.PersistentFlags().Lookup("account-id"))
	_ = viper.BindPFlag("origin", rootCmd.PersistentFlags().Lookup("origin"))
}

func initConfig() {
	// Load .env if present so local development keys are picked up.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".siftctl")
	}

	viper.SetEnvPrefix("sift")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// newClient builds a Sift client from the resolved configuration.
func newClient() *sift.Client {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: no API key. Set --api-key, SIFT_API_KEY or api_key in the config file.")
		os.Exit(1)
	}

	opts := []sift.Option{
		sift.WithTimeout(30 * time.Second),
	}
	if accountID := viper.GetString("account_id"); accountID != "" {
		opts = append(opts, sift.WithAccountID(accountID))
	}
	if origin := viper.GetString("origin"); origin != "" {
		opts = append(opts, sift.WithOrigin(origin))
	}
	if verbose {
		opts = append(opts, sift.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}

	client, err := sift.New(apiKey, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return client
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
