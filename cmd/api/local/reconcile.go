//go:build !lambda
// +build !lambda

package main

import (
	"github.com/spf13/cobra"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/logger"
	"github.com/sygpress/sygpress-api/internal/server"
	"github.com/sygpress/sygpress-api/internal/services"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Raise the invoice counter past the highest stored invoice number",
	Example: `  # After restoring a backup
  sygpress reconcile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := server.OpenPool(ctx, cfg, logger.Log)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}

		svcs := server.NewServices(cfg, db.NewStore(pool), services.NoopAuditPublisher{}, logger.Log)
		result, err := svcs.Reconciler.Reconcile(ctx)
		if result != nil {
			if printErr := printJSON(result); printErr != nil {
				return printErr
			}
		}
		return err
	},
}
