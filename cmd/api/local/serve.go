//go:build !lambda
// +build !lambda

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/sygpress/sygpress-api/internal/logger"
	"github.com/sygpress/sygpress-api/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Connects to Postgres, applies the schema, reconciles the invoice counter
and serves the API until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := server.Bootstrap(ctx, cfg, logger.Log)
		if err != nil {
			return err
		}
		defer srv.Close()

		return srv.Run(ctx)
	},
}
