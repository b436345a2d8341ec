//go:build !lambda
// +build !lambda

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/logger"
	"github.com/sygpress/sygpress-api/internal/server"
	"github.com/sygpress/sygpress-api/internal/services"
	"github.com/sygpress/sygpress-api/internal/types/business"
)

var reportCmd = &cobra.Command{
	Use:       "report <sales|customers|status|services>",
	Short:     "Print a report as JSON",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"sales", "customers", "status", "services"},
	Example: `  # March sales
  sygpress report sales --start 2024-03-01 --end 2024-03-31

  # Ten best customers of the year
  sygpress report customers --start 2024-01-01 --end 2024-12-31 --top 10`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("start", "", "First day of the range (YYYY-MM-DD)")
	reportCmd.Flags().String("end", "", "Last day of the range (YYYY-MM-DD)")
	reportCmd.Flags().Int("top", 0, "Number of top customers (customers report only)")
	_ = reportCmd.MarkFlagRequired("start")
	_ = reportCmd.MarkFlagRequired("end")
}

func runReport(cmd *cobra.Command, args []string) error {
	kind := business.ReportKind(args[0])
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	top, _ := cmd.Flags().GetInt("top")

	start, err := helpers.ParseDate(startStr)
	if err != nil {
		return fmt.Errorf("--start: %w", err)
	}
	end, err := helpers.ParseDate(endStr)
	if err != nil {
		return fmt.Errorf("--end: %w", err)
	}

	ctx := cmd.Context()
	pool, err := server.OpenPool(ctx, cfg, logger.Log)
	if err != nil {
		return err
	}
	defer pool.Close()

	reports := server.NewServices(cfg, db.NewStore(pool), services.NoopAuditPublisher{}, logger.Log).Reports

	var report business.Report
	if kind == business.ReportKindCustomers && top > 0 {
		var customers *business.CustomerReport
		customers, err = reports.CustomerReport(ctx, start, end, top)
		if err == nil {
			report = customers
		}
	} else {
		report, err = reports.GenerateReport(ctx, kind, start, end)
	}
	if err != nil {
		return err
	}
	return printJSON(report)
}
