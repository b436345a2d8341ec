package business

import (
	"time"

	"github.com/shopspring/decimal"
)

type PeriodStats struct {
	InvoiceCount    int             `json:"invoice_count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

type MonthlySales struct {
	Month        string          `json:"month"`
	InvoiceCount int             `json:"invoice_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
}

// AdminDashboard covers the twelve months ending today.
type AdminDashboard struct {
	GeneratedAt        time.Time               `json:"generated_at"`
	Period             Period                  `json:"period"`
	Totals             PeriodStats             `json:"totals"`
	CustomerCount      int                     `json:"customer_count"`
	Today              PeriodStats             `json:"today"`
	ThisMonth          PeriodStats             `json:"this_month"`
	PaymentRate        decimal.Decimal         `json:"payment_rate"`
	Paid               StatusBucket            `json:"paid"`
	PartiallyPaid      StatusBucket            `json:"partially_paid"`
	Unpaid             StatusBucket            `json:"unpaid"`
	ProcessingStatuses []ProcessingStatusCount `json:"processing_statuses"`
	Last7Days          []DailySales            `json:"last_7_days"`
	Last12Months       []MonthlySales          `json:"last_12_months"`
	TopCustomers       []CustomerSpend         `json:"top_customers"`
	TopServices        []ServiceSales          `json:"top_services"`
	RecentInvoices     []InvoiceSummary        `json:"recent_invoices"`
}

type AlertLevel string

const (
	AlertLevelInfo    AlertLevel = "INFO"
	AlertLevelWarning AlertLevel = "WARNING"
	AlertLevelDanger  AlertLevel = "DANGER"
)

type Alert struct {
	Level   AlertLevel `json:"level"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
	Count   int        `json:"count"`
}

type ProcessingQueue struct {
	Status ProcessingStatus `json:"status"`
	Label  string           `json:"label"`
	Count  int              `json:"count"`
}

type PendingPayment struct {
	InvoiceSummary
	DaysOverdue int `json:"days_overdue"`
}

type UserDashboard struct {
	GeneratedAt     time.Time         `json:"generated_at"`
	Date            time.Time         `json:"date"`
	TodayInvoices   int               `json:"today_invoices"`
	TodayAmount     decimal.Decimal   `json:"today_amount"`
	TodayCollected  decimal.Decimal   `json:"today_collected"`
	DeliveriesToday []InvoiceSummary  `json:"deliveries_today"`
	Queues          []ProcessingQueue `json:"queues"`
	PendingPayments []PendingPayment  `json:"pending_payments"`
	Alerts          []Alert           `json:"alerts"`
	RecentInvoices  []InvoiceSummary  `json:"recent_invoices"`
}
