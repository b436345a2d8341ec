//go:build !lambda
// +build !lambda

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sygpress/sygpress-api/internal/config"
	"github.com/sygpress/sygpress-api/internal/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sygpress",
	Short: "Sygpress laundry back office API",
	Long: `Sygpress serves the invoice ledger over HTTP and runs the maintenance
tasks around it.

Configuration comes from the environment, optionally loaded from a .env file:
  DATABASE_URL or DATABASE_SECRET_ARN, STAGE, PORT, TIMEZONE, DEFAULT_VAT_RATE,
  RATE_LIMIT_RPS, RATE_LIMIT_BURST, CORS_ALLOWED_ORIGINS, AUDIT_QUEUE_URL`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger.InitLogger(cfg.Stage)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, reconcileCmd, reportCmd)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	defer func() { _ = logger.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
