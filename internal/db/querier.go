package db

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=querier.go -destination=../mocks/mock_querier.go -package=mocks

type Querier interface {
	ArchiveInvoice(ctx context.Context, arg ArchiveInvoiceParams) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountInvoicesByProcessingStatus(ctx context.Context) ([]ProcessingStatusTotal, error)
	CreateAdditionalFee(ctx context.Context, arg CreateAdditionalFeeParams) (AdditionalFee, error)
	CreateArticle(ctx context.Context, arg CreateArticleParams) (Article, error)
	CreateAuditEvent(ctx context.Context, arg CreateAuditEventParams) (int64, error)
	CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error)
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	CreateInvoiceLine(ctx context.Context, arg CreateInvoiceLineParams) (InvoiceLine, error)
	CreateLaundryService(ctx context.Context, arg CreateLaundryServiceParams) (LaundryService, error)
	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	CreatePricing(ctx context.Context, arg CreatePricingParams) (Pricing, error)
	CreateSequenceIfNotExists(ctx context.Context, id int32) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) (int64, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (Customer, error)
	GetCustomerFirstInvoiceDates(ctx context.Context, customerIds []uuid.UUID) ([]CustomerFirstInvoice, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error)
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, id uuid.UUID) (Invoice, error)
	GetMaxInvoiceNumber(ctx context.Context) (string, error)
	GetPricingDetail(ctx context.Context, id uuid.UUID) (PricingDetail, error)
	GetSequence(ctx context.Context, id int32) (Sequence, error)
	IncrementSequence(ctx context.Context, id int32) (int64, error)
	ListAdditionalFeesByInvoiceIDs(ctx context.Context, invoiceIds []uuid.UUID) ([]AdditionalFee, error)
	ListInvoiceLinesByInvoiceIDs(ctx context.Context, invoiceIds []uuid.UUID) ([]InvoiceLine, error)
	ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error)
	ListInvoicesByDeliveryDate(ctx context.Context, arg ListInvoicesByDeliveryDateParams) ([]Invoice, error)
	ListInvoicesByDepositDate(ctx context.Context, arg ListInvoicesByDepositDateParams) ([]Invoice, error)
	ListOutstandingInvoices(ctx context.Context) ([]Invoice, error)
	ListPaymentsByDateRange(ctx context.Context, arg ListPaymentsByDateRangeParams) ([]Payment, error)
	ListPaymentsByInvoiceIDs(ctx context.Context, invoiceIds []uuid.UUID) ([]Payment, error)
	ListRecentInvoices(ctx context.Context, limit int32) ([]Invoice, error)
	RaiseSequence(ctx context.Context, arg RaiseSequenceParams) (int64, error)
	UpdateInvoiceProcessingStatus(ctx context.Context, arg UpdateInvoiceProcessingStatusParams) (Invoice, error)
}

var _ Querier = (*Queries)(nil)
