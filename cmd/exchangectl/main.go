// Command exchangectl is a terminal client for the currency exchange API:
// catalog and comment administration, conversions and an interactive
// calculator.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/SscSPs/currency_exchange_app/pkg/client"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	serverURL   string
	sessionFile string
	verbose     bool
	timeout     time.Duration

	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "exchangectl",
	Short: "Command line client for the currency exchange API",
	Long: `exchangectl talks to a running exchange backend.

Anyone can list the catalog, convert amounts and leave comments. Catalog
edits and comment moderation need an admin session created with "login".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("EXCHANGE_API_URL", "http://localhost:8080/api/v1"), "Base URL of the exchange API")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", defaultSessionFile(), "Where the admin session is stored")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "HTTP timeout")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(countriesCmd, commentsCmd)
	rootCmd.AddCommand(convertCmd, calcCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newClient() *client.Client {
	return client.New(client.Config{BaseURL: serverURL, Timeout: timeout})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".exchangectl-session.json"
	}
	return filepath.Join(home, ".exchangectl", "session.json")
}
