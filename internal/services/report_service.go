package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// ReportService builds read-only reports. Every report reads one snapshot in
// a read-only transaction; windows are inclusive and keyed on deposit date.
type ReportService struct {
	store  db.Store
	logger *zap.Logger
	now    func() time.Time
	loc    *time.Location
}

type ReportServiceOption func(*ReportService)

// WithReportClock overrides time.Now, used for "days since delivery".
func WithReportClock(now func() time.Time) ReportServiceOption {
	return func(s *ReportService) { s.now = now }
}

// WithReportLocation sets the business timezone that decides what "today" is.
func WithReportLocation(loc *time.Location) ReportServiceOption {
	return func(s *ReportService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewReportService(store db.Store, logger *zap.Logger, opts ...ReportServiceOption) *ReportService {
	s := &ReportService{
		store:  store,
		logger: logger,
		now:    time.Now,
		loc:    time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReportService) today() time.Time {
	return helpers.DateOnly(s.now().In(s.loc))
}

// GenerateReport dispatches on kind. The customers report uses the default
// top-N size.
func (s *ReportService) GenerateReport(ctx context.Context, kind business.ReportKind, startDate, endDate time.Time) (business.Report, error) {
	var (
		report business.Report
		err    error
	)
	switch kind {
	case business.ReportKindSales:
		report, err = s.SalesReport(ctx, startDate, endDate)
	case business.ReportKindCustomers:
		report, err = s.CustomerReport(ctx, startDate, endDate, constants.DefaultTopCustomers)
	case business.ReportKindStatus:
		report, err = s.InvoiceStatusReport(ctx, startDate, endDate)
	case business.ReportKindServices:
		report, err = s.ServiceReport(ctx, startDate, endDate)
	default:
		return nil, newValidationError("kind", "unknown report kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) SalesReport(ctx context.Context, startDate, endDate time.Time) (*business.SalesReport, error) {
	period, err := newPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoicesDeposited(ctx, period)
	if err != nil {
		return nil, err
	}

	stats := periodStats(invoices)
	report := &business.SalesReport{
		Period:         period,
		TotalInvoices:  stats.InvoiceCount,
		TotalAmount:    stats.TotalAmount,
		TotalPaid:      stats.AmountPaid,
		TotalRemaining: stats.RemainingAmount,
		Daily:          dailySales(invoices, period.StartDate, period.EndDate),
		Services:       serviceSales(invoices),
	}
	report.TotalDiscount, report.TotalTax = decimal.Zero, decimal.Zero
	for _, inv := range invoices {
		report.TotalDiscount = report.TotalDiscount.Add(inv.Discount)
		report.TotalTax = report.TotalTax.Add(inv.TaxAmount)
	}
	report.AverageInvoiceAmount = business.Average(stats.TotalAmount, stats.InvoiceCount)

	s.logger.Debug("Sales report generated",
		zap.Time("start_date", period.StartDate),
		zap.Time("end_date", period.EndDate),
		zap.Int("invoice_count", report.TotalInvoices),
	)
	return report, nil
}

// CustomerReport counts customers invoiced in the window and how many of them
// had their first ever invoice inside it.
func (s *ReportService) CustomerReport(ctx context.Context, startDate, endDate time.Time, topN int) (*business.CustomerReport, error) {
	period, err := newPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = constants.DefaultTopCustomers
	}

	var invoices []*business.Invoice
	var firstDates []db.CustomerFirstInvoice
	err = s.store.ExecTx(ctx, readTx, func(q db.Querier) error {
		var err error
		invoices, err = listDeposited(ctx, q, period)
		if err != nil {
			return err
		}
		ids := distinctCustomers(invoices)
		if len(ids) == 0 {
			return nil
		}
		firstDates, err = q.GetCustomerFirstInvoiceDates(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load first invoice dates: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	newCustomers := 0
	for _, f := range firstDates {
		first := helpers.FromPgDate(f.FirstDepositDate)
		if !first.Before(period.StartDate) && !first.After(period.EndDate) {
			newCustomers++
		}
	}

	return &business.CustomerReport{
		Period:         period,
		TotalCustomers: len(distinctCustomers(invoices)),
		NewCustomers:   newCustomers,
		TopCustomers:   customerSpend(invoices, topN),
	}, nil
}

// InvoiceStatusReport groups the window by payment and processing status and
// lists what is still owed, oldest delivery first.
func (s *ReportService) InvoiceStatusReport(ctx context.Context, startDate, endDate time.Time) (*business.InvoiceStatusReport, error) {
	period, err := newPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoicesDeposited(ctx, period)
	if err != nil {
		return nil, err
	}

	today := s.today()
	buckets := paymentStatusBuckets(invoices)
	unpaid := []business.UnpaidInvoice{}
	for _, inv := range invoices {
		if inv.RemainingAmount().IsPositive() {
			days := helpers.DaysBetween(inv.DeliveryDate, today)
			if days < 0 {
				days = 0
			}
			unpaid = append(unpaid, business.UnpaidInvoice{
				InvoiceSummary:    inv.Summary(),
				DaysSinceDelivery: days,
			})
		}
	}
	sort.SliceStable(unpaid, func(a, b int) bool {
		return unpaid[a].DaysSinceDelivery > unpaid[b].DaysSinceDelivery
	})

	return &business.InvoiceStatusReport{
		Period:             period,
		TotalInvoices:      len(invoices),
		Paid:               buckets.paid,
		PartiallyPaid:      buckets.partiallyPaid,
		Unpaid:             buckets.unpaid,
		ProcessingStatuses: processingStatusCounts(invoices),
		UnpaidInvoices:     unpaid,
	}, nil
}

// ServiceReport shares line revenue out per service, per article and per
// article and service pair.
func (s *ReportService) ServiceReport(ctx context.Context, startDate, endDate time.Time) (*business.ServiceReport, error) {
	period, err := newPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoicesDeposited(ctx, period)
	if err != nil {
		return nil, err
	}

	revenue, quantity := linesRevenue(invoices)
	return &business.ServiceReport{
		Period:        period,
		TotalRevenue:  revenue,
		TotalQuantity: quantity,
		Services:      serviceSales(invoices),
		Articles:      articleSales(invoices),
		Combinations:  articleServiceSales(invoices, constants.TopCombinationsLimit),
	}, nil
}

func (s *ReportService) invoicesDeposited(ctx context.Context, period business.Period) ([]*business.Invoice, error) {
	var invoices []*business.Invoice
	err := s.store.ExecTx(ctx, readTx, func(q db.Querier) error {
		var err error
		invoices, err = listDeposited(ctx, q, period)
		return err
	})
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func listDeposited(ctx context.Context, q db.Querier, period business.Period) ([]*business.Invoice, error) {
	rows, err := q.ListInvoicesByDepositDate(ctx, db.ListInvoicesByDepositDateParams{
		StartDate: helpers.ToPgDate(period.StartDate),
		EndDate:   helpers.ToPgDate(period.EndDate),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices by deposit date: %w", err)
	}
	return loadInvoices(ctx, q, rows)
}

func distinctCustomers(invoices []*business.Invoice) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	ids := []uuid.UUID{}
	for _, inv := range invoices {
		if !seen[inv.CustomerID] {
			seen[inv.CustomerID] = true
			ids = append(ids, inv.CustomerID)
		}
	}
	return ids
}

func newPeriod(startDate, endDate time.Time) (business.Period, error) {
	if startDate.IsZero() {
		return business.Period{}, newValidationError("start_date", "is required")
	}
	if endDate.IsZero() {
		return business.Period{}, newValidationError("end_date", "is required")
	}
	start, end := helpers.DateOnly(startDate), helpers.DateOnly(endDate)
	if start.After(end) {
		return business.Period{}, newValidationError("start_date", "must not be after end_date")
	}
	if days := helpers.DaysBetween(start, end) + 1; days > constants.MaxReportDays {
		return business.Period{}, newValidationError("end_date", "range of %d days exceeds %d", days, constants.MaxReportDays)
	}
	return business.Period{StartDate: start, EndDate: end}, nil
}
