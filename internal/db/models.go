package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Sequence struct {
	ID         int32              `json:"id"`
	LastNumber int64              `json:"last_number"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type Customer struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	PhoneNumber string             `json:"phone_number"`
	Address     pgtype.Text        `json:"address"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Article struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Category  pgtype.Text        `json:"category"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type LaundryService struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Pricing struct {
	ID        uuid.UUID          `json:"id"`
	ArticleID uuid.UUID          `json:"article_id"`
	ServiceID uuid.UUID          `json:"service_id"`
	Price     decimal.Decimal    `json:"price"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

// PricingDetail is a pricing joined with its article and service names.
type PricingDetail struct {
	ID          uuid.UUID       `json:"id"`
	ArticleID   uuid.UUID       `json:"article_id"`
	ArticleName string          `json:"article_name"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Price       decimal.Decimal `json:"price"`
}

// Invoice is an invoices row joined with the customer name. It carries no
// totals: those are always derived from lines, fees and payments.
type Invoice struct {
	ID               uuid.UUID          `json:"id"`
	InvoiceNumber    string             `json:"invoice_number"`
	CustomerID       uuid.UUID          `json:"customer_id"`
	CustomerName     string             `json:"customer_name"`
	DepositDate      pgtype.Date        `json:"deposit_date"`
	DeliveryDate     pgtype.Date        `json:"delivery_date"`
	Discount         decimal.Decimal    `json:"discount"`
	VatRate          decimal.Decimal    `json:"vat_rate"`
	TaxAmount        decimal.Decimal    `json:"tax_amount"`
	ProcessingStatus string             `json:"processing_status"`
	CreatedBy        string             `json:"created_by"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
	ArchivedAt       pgtype.Timestamptz `json:"archived_at"`
	ArchivedBy       pgtype.Text        `json:"archived_by"`
}

type InvoiceLine struct {
	ID          uuid.UUID       `json:"id"`
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	Position    int32           `json:"position"`
	PricingID   uuid.UUID       `json:"pricing_id"`
	ArticleID   uuid.UUID       `json:"article_id"`
	ArticleName string          `json:"article_name"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

type AdditionalFee struct {
	ID          uuid.UUID       `json:"id"`
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	Position    int32           `json:"position"`
	Title       string          `json:"title"`
	Description pgtype.Text     `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type Payment struct {
	ID          uuid.UUID          `json:"id"`
	InvoiceID   uuid.UUID          `json:"invoice_id"`
	Amount      decimal.Decimal    `json:"amount"`
	PaymentDate pgtype.Timestamptz `json:"payment_date"`
	PaidBy      string             `json:"paid_by"`
	Method      string             `json:"method"`
	Notes       pgtype.Text        `json:"notes"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

// CustomerFirstInvoice is the earliest deposit date of a customer's
// non-archived invoices, across all time.
type CustomerFirstInvoice struct {
	CustomerID       uuid.UUID   `json:"customer_id"`
	FirstDepositDate pgtype.Date `json:"first_deposit_date"`
}

type ProcessingStatusTotal struct {
	ProcessingStatus string `json:"processing_status"`
	Count            int64  `json:"count"`
}

type AuditEvent struct {
	ID         uuid.UUID          `json:"id"`
	EventType  string             `json:"event_type"`
	EntityType string             `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	Actor      string             `json:"actor"`
	Data       []byte             `json:"data"`
	OccurredAt pgtype.Timestamptz `json:"occurred_at"`
	RecordedAt pgtype.Timestamptz `json:"recorded_at"`
}
