package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportKind string

const (
	ReportKindSales     ReportKind = "sales"
	ReportKindCustomers ReportKind = "customers"
	ReportKindStatus    ReportKind = "status"
	ReportKindServices  ReportKind = "services"
)

func (k ReportKind) IsValid() bool {
	switch k {
	case ReportKindSales, ReportKindCustomers, ReportKindStatus, ReportKindServices:
		return true
	}
	return false
}

// Report is implemented by every report value object.
type Report interface {
	Kind() ReportKind
}

// Period is an inclusive range of calendar dates.
type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type DailySales struct {
	Date         time.Time       `json:"date"`
	InvoiceCount int             `json:"invoice_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
}

type ServiceSales struct {
	ServiceID    uuid.UUID       `json:"service_id"`
	ServiceName  string          `json:"service_name"`
	Quantity     int64           `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	InvoiceCount int             `json:"invoice_count"`
	Percentage   decimal.Decimal `json:"percentage"`
}

type SalesReport struct {
	Period               Period          `json:"period"`
	TotalInvoices        int             `json:"total_invoices"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	TotalPaid            decimal.Decimal `json:"total_paid"`
	TotalRemaining       decimal.Decimal `json:"total_remaining"`
	TotalDiscount        decimal.Decimal `json:"total_discount"`
	TotalTax             decimal.Decimal `json:"total_tax"`
	AverageInvoiceAmount decimal.Decimal `json:"average_invoice_amount"`
	Daily                []DailySales    `json:"daily"`
	Services             []ServiceSales  `json:"services"`
}

func (*SalesReport) Kind() ReportKind { return ReportKindSales }

type CustomerSpend struct {
	CustomerID    uuid.UUID       `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	InvoiceCount  int             `json:"invoice_count"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	UnpaidBalance decimal.Decimal `json:"unpaid_balance"`
}

type CustomerReport struct {
	Period         Period          `json:"period"`
	TotalCustomers int             `json:"total_customers"`
	NewCustomers   int             `json:"new_customers"`
	TopCustomers   []CustomerSpend `json:"top_customers"`
}

func (*CustomerReport) Kind() ReportKind { return ReportKindCustomers }

type StatusBucket struct {
	Count           int             `json:"count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

type ProcessingStatusCount struct {
	Status      ProcessingStatus `json:"status"`
	Label       string           `json:"label"`
	Count       int              `json:"count"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
}

type UnpaidInvoice struct {
	InvoiceSummary
	DaysSinceDelivery int `json:"days_since_delivery"`
}

type InvoiceStatusReport struct {
	Period             Period                  `json:"period"`
	TotalInvoices      int                     `json:"total_invoices"`
	Paid               StatusBucket            `json:"paid"`
	PartiallyPaid      StatusBucket            `json:"partially_paid"`
	Unpaid             StatusBucket            `json:"unpaid"`
	ProcessingStatuses []ProcessingStatusCount `json:"processing_statuses"`
	UnpaidInvoices     []UnpaidInvoice         `json:"unpaid_invoices"`
}

func (*InvoiceStatusReport) Kind() ReportKind { return ReportKindStatus }

type ArticleSales struct {
	ArticleID   uuid.UUID       `json:"article_id"`
	ArticleName string          `json:"article_name"`
	Quantity    int64           `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Percentage  decimal.Decimal `json:"percentage"`
}

type ArticleServiceSales struct {
	ArticleID   uuid.UUID       `json:"article_id"`
	ArticleName string          `json:"article_name"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Quantity    int64           `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Percentage  decimal.Decimal `json:"percentage"`
}

type ServiceReport struct {
	Period        Period                `json:"period"`
	TotalRevenue  decimal.Decimal       `json:"total_revenue"`
	TotalQuantity int64                 `json:"total_quantity"`
	Services      []ServiceSales        `json:"services"`
	Articles      []ArticleSales        `json:"articles"`
	Combinations  []ArticleServiceSales `json:"combinations"`
}

func (*ServiceReport) Kind() ReportKind { return ReportKindServices }
