package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// DashboardService assembles the admin and counter-staff dashboards from
// the same folds as the reports.
type DashboardService struct {
	reports *ReportService
	store   db.Store
	logger  *zap.Logger
}

func NewDashboardService(store db.Store, logger *zap.Logger, opts ...ReportServiceOption) *DashboardService {
	return &DashboardService{
		reports: NewReportService(store, logger, opts...),
		store:   store,
		logger:  logger,
	}
}

func (s *DashboardService) clock() (time.Time, time.Time) {
	now := s.reports.now().In(s.reports.loc)
	return now, helpers.DateOnly(now)
}

// AdminDashboard covers the twelve calendar months ending today.
func (s *DashboardService) AdminDashboard(ctx context.Context) (*business.AdminDashboard, error) {
	now, today := s.clock()
	period := business.Period{
		StartDate: helpers.StartOfMonth(today).AddDate(0, -11, 0),
		EndDate:   today,
	}

	var (
		invoices      []*business.Invoice
		recent        []*business.Invoice
		customerCount int64
	)
	err := s.store.ExecTx(ctx, readTx, func(q db.Querier) error {
		var err error
		invoices, err = listDeposited(ctx, q, period)
		if err != nil {
			return err
		}

		rows, err := q.ListRecentInvoices(ctx, constants.DashboardRecentInvoice)
		if err != nil {
			return fmt.Errorf("failed to list recent invoices: %w", err)
		}
		recent, err = loadInvoices(ctx, q, rows)
		if err != nil {
			return err
		}

		customerCount, err = q.CountCustomers(ctx)
		if err != nil {
			return fmt.Errorf("failed to count customers: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to build admin dashboard", zap.Error(err))
		return nil, err
	}

	monthStart := helpers.StartOfMonth(today)
	todays := filterInvoices(invoices, func(inv *business.Invoice) bool { return inv.DepositDate.Equal(today) })
	thisMonth := filterInvoices(invoices, func(inv *business.Invoice) bool { return !inv.DepositDate.Before(monthStart) })
	buckets := paymentStatusBuckets(invoices)

	return &business.AdminDashboard{
		GeneratedAt:        now,
		Period:             period,
		Totals:             periodStats(invoices),
		CustomerCount:      int(customerCount),
		Today:              periodStats(todays),
		ThisMonth:          periodStats(thisMonth),
		PaymentRate:        business.Percentage(decimal.NewFromInt(int64(buckets.paid.Count)), decimal.NewFromInt(int64(len(invoices)))),
		Paid:               buckets.paid,
		PartiallyPaid:      buckets.partiallyPaid,
		Unpaid:             buckets.unpaid,
		ProcessingStatuses: processingStatusCounts(invoices),
		Last7Days:          dailySales(invoices, today.AddDate(0, 0, -6), today),
		Last12Months:       monthlySales(invoices, today, 12),
		TopCustomers:       customerSpend(invoices, constants.DashboardTopN),
		TopServices:        topServices(invoices, constants.DashboardTopN),
		RecentInvoices:     summaries(recent),
	}, nil
}

// UserDashboard is the counter view for today: what came in, what is due
// out, what is still owed and what needs attention.
func (s *DashboardService) UserDashboard(ctx context.Context) (*business.UserDashboard, error) {
	now, today := s.clock()
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.reports.loc)

	var (
		deposited   []*business.Invoice
		deliveries  []*business.Invoice
		outstanding []*business.Invoice
		recent      []*business.Invoice
		payments    []db.Payment
		statuses    []db.ProcessingStatusTotal
	)
	err := s.store.ExecTx(ctx, readTx, func(q db.Querier) error {
		var err error
		deposited, err = listDeposited(ctx, q, business.Period{StartDate: today, EndDate: today})
		if err != nil {
			return err
		}

		rows, err := q.ListInvoicesByDeliveryDate(ctx, db.ListInvoicesByDeliveryDateParams{
			StartDate: helpers.ToPgDate(today),
			EndDate:   helpers.ToPgDate(today),
		})
		if err != nil {
			return fmt.Errorf("failed to list deliveries: %w", err)
		}
		if deliveries, err = loadInvoices(ctx, q, rows); err != nil {
			return err
		}

		rows, err = q.ListOutstandingInvoices(ctx)
		if err != nil {
			return fmt.Errorf("failed to list outstanding invoices: %w", err)
		}
		if outstanding, err = loadInvoices(ctx, q, rows); err != nil {
			return err
		}

		rows, err = q.ListRecentInvoices(ctx, constants.DashboardRecentInvoice)
		if err != nil {
			return fmt.Errorf("failed to list recent invoices: %w", err)
		}
		if recent, err = loadInvoices(ctx, q, rows); err != nil {
			return err
		}

		payments, err = q.ListPaymentsByDateRange(ctx, db.ListPaymentsByDateRangeParams{
			From: helpers.ToPgTimestamptz(dayStart),
			To:   helpers.ToPgTimestamptz(dayStart.AddDate(0, 0, 1)),
		})
		if err != nil {
			return fmt.Errorf("failed to list payments: %w", err)
		}

		statuses, err = q.CountInvoicesByProcessingStatus(ctx)
		if err != nil {
			return fmt.Errorf("failed to count invoices by status: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to build user dashboard", zap.Error(err))
		return nil, err
	}

	collected := decimal.Zero
	for _, p := range payments {
		collected = collected.Add(p.Amount)
	}

	pending := []business.PendingPayment{}
	overdue := 0
	for _, inv := range outstanding {
		if !inv.RemainingAmount().IsPositive() {
			continue
		}
		days := helpers.DaysBetween(inv.DeliveryDate, today)
		if days > constants.OverdueAlertDays {
			overdue++
		}
		if len(pending) < constants.PendingPaymentsLimit {
			if days < 0 {
				days = 0
			}
			pending = append(pending, business.PendingPayment{InvoiceSummary: inv.Summary(), DaysOverdue: days})
		}
	}

	queues := processingQueues(statuses)
	todayStats := periodStats(deposited)

	return &business.UserDashboard{
		GeneratedAt:     now,
		Date:            today,
		TodayInvoices:   todayStats.InvoiceCount,
		TodayAmount:     todayStats.TotalAmount,
		TodayCollected:  collected,
		DeliveriesToday: summaries(deliveries),
		Queues:          queues,
		PendingPayments: pending,
		Alerts:          dashboardAlerts(deliveries, overdue, queues),
		RecentInvoices:  summaries(recent),
	}, nil
}

func topServices(invoices []*business.Invoice, limit int) []business.ServiceSales {
	items := serviceSales(invoices)
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// processingQueues lists every status in workflow order with its count of
// non-archived invoices.
func processingQueues(totals []db.ProcessingStatusTotal) []business.ProcessingQueue {
	counts := make(map[business.ProcessingStatus]int, len(totals))
	for _, t := range totals {
		counts[business.ProcessingStatus(t.ProcessingStatus)] += int(t.Count)
	}
	queues := make([]business.ProcessingQueue, len(business.ProcessingStatuses))
	for i, status := range business.ProcessingStatuses {
		queues[i] = business.ProcessingQueue{Status: status, Label: status.Label(), Count: counts[status]}
	}
	return queues
}

func dashboardAlerts(deliveries []*business.Invoice, overdue int, queues []business.ProcessingQueue) []business.Alert {
	alerts := []business.Alert{}

	late := 0
	for _, inv := range deliveries {
		if !inv.ProcessingStatus.Delivered() {
			late++
		}
	}
	if late > 0 {
		alerts = append(alerts, business.Alert{
			Level:   business.AlertLevelWarning,
			Title:   "Livraisons du jour",
			Message: fmt.Sprintf("%d commande(s) à livrer aujourd'hui ne sont pas encore livrées", late),
			Count:   late,
		})
	}

	if overdue > 0 {
		alerts = append(alerts, business.Alert{
			Level:   business.AlertLevelDanger,
			Title:   "Paiements en retard",
			Message: fmt.Sprintf("%d facture(s) impayée(s) depuis plus de %d jours après livraison", overdue, constants.OverdueAlertDays),
			Count:   overdue,
		})
	}

	inProgress := 0
	for _, q := range queues {
		if q.Status == business.ProcessingStatusEnLavage || q.Status == business.ProcessingStatusEnRepassage {
			inProgress += q.Count
		}
	}
	if inProgress > 0 {
		alerts = append(alerts, business.Alert{
			Level:   business.AlertLevelInfo,
			Title:   "Articles en traitement",
			Message: fmt.Sprintf("%d commande(s) en lavage ou en repassage", inProgress),
			Count:   inProgress,
		})
	}
	return alerts
}
