package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/types/business"
)

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

// SequenceCounter is the only way to read or advance a sequence row. The
// querier decides the transaction the operation joins.
type SequenceCounter interface {
	Increment(ctx context.Context, q db.Querier, id int32) error
	CurrentValue(ctx context.Context, q db.Querier, id int32) (int64, error)
	GetNext(ctx context.Context, q db.Querier, id int32) (int64, error)
	EnsureCounter(ctx context.Context, q db.Querier, id int32) (int64, error)
	Raise(ctx context.Context, q db.Querier, id int32, floor int64) (bool, error)
}

// InvoiceLedger owns invoice creation, payments and the invoice lifecycle.
type InvoiceLedger interface {
	CreateInvoice(ctx context.Context, params business.CreateInvoiceParams) (*business.Invoice, error)
	RecordPayment(ctx context.Context, params business.RecordPaymentParams) (*business.PaymentResult, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*business.Invoice, error)
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (*business.Invoice, error)
	ListInvoices(ctx context.Context, params business.ListInvoicesParams) ([]*business.Invoice, error)
	UpdateProcessingStatus(ctx context.Context, id uuid.UUID, status business.ProcessingStatus) (*business.Invoice, error)
	ArchiveInvoice(ctx context.Context, id uuid.UUID, archivedBy string) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// ReportAggregator builds read-only reports over an inclusive date range.
type ReportAggregator interface {
	GenerateReport(ctx context.Context, kind business.ReportKind, startDate, endDate time.Time) (business.Report, error)
	SalesReport(ctx context.Context, startDate, endDate time.Time) (*business.SalesReport, error)
	CustomerReport(ctx context.Context, startDate, endDate time.Time, topN int) (*business.CustomerReport, error)
	InvoiceStatusReport(ctx context.Context, startDate, endDate time.Time) (*business.InvoiceStatusReport, error)
	ServiceReport(ctx context.Context, startDate, endDate time.Time) (*business.ServiceReport, error)
}

type DashboardProvider interface {
	AdminDashboard(ctx context.Context) (*business.AdminDashboard, error)
	UserDashboard(ctx context.Context) (*business.UserDashboard, error)
}

type StartupReconciler interface {
	Reconcile(ctx context.Context) (*business.ReconcileResult, error)
}

// Catalog is the lookup surface of customers, articles, services and prices.
type Catalog interface {
	CreateCustomer(ctx context.Context, params db.CreateCustomerParams) (db.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (db.Customer, error)
	CreateArticle(ctx context.Context, params db.CreateArticleParams) (db.Article, error)
	CreateLaundryService(ctx context.Context, params db.CreateLaundryServiceParams) (db.LaundryService, error)
	CreatePricing(ctx context.Context, params db.CreatePricingParams) (db.PricingDetail, error)
}

// AuditPublisher ships audit events after the business transaction commits.
type AuditPublisher interface {
	Publish(ctx context.Context, event business.AuditEvent) error
}
