package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcessingStatus is the workflow stage of the physical goods. It never
// gates money: an invoice can be paid while still COLLECTE.
type ProcessingStatus string

const (
	ProcessingStatusDepot       ProcessingStatus = "DEPOT"
	ProcessingStatusCollecte    ProcessingStatus = "COLLECTE"
	ProcessingStatusEnLavage    ProcessingStatus = "EN_LAVAGE"
	ProcessingStatusEnRepassage ProcessingStatus = "EN_REPASSAGE"
	ProcessingStatusPret        ProcessingStatus = "PRET"
	ProcessingStatusLivre       ProcessingStatus = "LIVRE"
	ProcessingStatusRecupere    ProcessingStatus = "RECUPERE"
)

// ProcessingStatuses lists every status in workflow order.
var ProcessingStatuses = []ProcessingStatus{
	ProcessingStatusDepot,
	ProcessingStatusCollecte,
	ProcessingStatusEnLavage,
	ProcessingStatusEnRepassage,
	ProcessingStatusPret,
	ProcessingStatusLivre,
	ProcessingStatusRecupere,
}

var processingStatusLabels = map[ProcessingStatus]string{
	ProcessingStatusDepot:       "Déposé",
	ProcessingStatusCollecte:    "Collecté",
	ProcessingStatusEnLavage:    "En lavage",
	ProcessingStatusEnRepassage: "En repassage",
	ProcessingStatusPret:        "Prêt",
	ProcessingStatusLivre:       "Livré",
	ProcessingStatusRecupere:    "Récupéré",
}

func (s ProcessingStatus) IsValid() bool {
	_, ok := processingStatusLabels[s]
	return ok
}

// Label is the display name used on dashboards.
func (s ProcessingStatus) Label() string {
	if label, ok := processingStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Delivered reports whether the goods have left the shop.
func (s ProcessingStatus) Delivered() bool {
	return s == ProcessingStatusLivre || s == ProcessingStatusRecupere
}

// PaymentStatus is derived from payments, never stored.
type PaymentStatus string

const (
	PaymentStatusPaid          PaymentStatus = "PAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusUnpaid        PaymentStatus = "UNPAID"
)

type InvoiceLine struct {
	ID          uuid.UUID       `json:"id"`
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
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

type Payment struct {
	ID          uuid.UUID       `json:"id"`
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	PaidBy      string          `json:"paid_by"`
	Method      string          `json:"method"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Invoice holds the stored primitives of an invoice. Every total is a method
// recomputed from lines, fees and payments.
type Invoice struct {
	ID               uuid.UUID
	InvoiceNumber    string
	CustomerID       uuid.UUID
	CustomerName     string
	DepositDate      time.Time
	DeliveryDate     time.Time
	Discount         decimal.Decimal
	VATRate          decimal.Decimal
	TaxAmount        decimal.Decimal
	ProcessingStatus ProcessingStatus
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ArchivedAt       *time.Time
	Lines            []InvoiceLine
	Fees             []AdditionalFee
	Payments         []Payment
}

func (i *Invoice) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range i.Lines {
		total = total.Add(l.Amount)
	}
	return total
}

func (i *Invoice) FeesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, f := range i.Fees {
		total = total.Add(f.Amount)
	}
	return total
}

// Subtotal is the sum of line and fee amounts, before tax and discount.
func (i *Invoice) Subtotal() decimal.Decimal {
	return i.LinesTotal().Add(i.FeesTotal())
}

// TotalAmount is Subtotal + TaxAmount - Discount.
func (i *Invoice) TotalAmount() decimal.Decimal {
	return i.Subtotal().Add(i.TaxAmount).Sub(i.Discount)
}

func (i *Invoice) AmountPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range i.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// RemainingAmount is TotalAmount - AmountPaid floored at zero.
func (i *Invoice) RemainingAmount() decimal.Decimal {
	remaining := i.TotalAmount().Sub(i.AmountPaid())
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

func (i *Invoice) IsPaid() bool {
	return i.RemainingAmount().IsZero() && i.AmountPaid().IsPositive()
}

func (i *Invoice) PaymentStatus() PaymentStatus {
	switch {
	case i.IsPaid():
		return PaymentStatusPaid
	case i.AmountPaid().IsPositive():
		return PaymentStatusPartiallyPaid
	default:
		return PaymentStatusUnpaid
	}
}

// Summary is the compact view used in dashboard lists.
func (i *Invoice) Summary() InvoiceSummary {
	return InvoiceSummary{
		ID:               i.ID,
		InvoiceNumber:    i.InvoiceNumber,
		CustomerID:       i.CustomerID,
		CustomerName:     i.CustomerName,
		DepositDate:      i.DepositDate,
		DeliveryDate:     i.DeliveryDate,
		ProcessingStatus: i.ProcessingStatus,
		PaymentStatus:    i.PaymentStatus(),
		TotalAmount:      i.TotalAmount(),
		AmountPaid:       i.AmountPaid(),
		RemainingAmount:  i.RemainingAmount(),
	}
}

type InvoiceSummary struct {
	ID               uuid.UUID        `json:"id"`
	InvoiceNumber    string           `json:"invoice_number"`
	CustomerID       uuid.UUID        `json:"customer_id"`
	CustomerName     string           `json:"customer_name"`
	DepositDate      time.Time        `json:"deposit_date"`
	DeliveryDate     time.Time        `json:"delivery_date"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	PaymentStatus    PaymentStatus    `json:"payment_status"`
	TotalAmount      decimal.Decimal  `json:"total_amount"`
	AmountPaid       decimal.Decimal  `json:"amount_paid"`
	RemainingAmount  decimal.Decimal  `json:"remaining_amount"`
}

// CreateInvoiceLineParams references a catalog pricing; the unit price is
// read from the catalog and frozen on the line.
type CreateInvoiceLineParams struct {
	PricingID uuid.UUID
	Quantity  int32
}

type CreateAdditionalFeeParams struct {
	Title       string
	Description string
	Amount      decimal.Decimal
}

type InitialPaymentParams struct {
	Amount decimal.Decimal
	Method string
	Notes  string
}

type CreateInvoiceParams struct {
	CustomerID       uuid.UUID
	DepositDate      time.Time
	DeliveryDate     time.Time
	Lines            []CreateInvoiceLineParams
	Fees             []CreateAdditionalFeeParams
	Discount         decimal.Decimal
	VATRate          *decimal.Decimal
	ProcessingStatus ProcessingStatus
	CreatedBy        string
	InitialPayment   *InitialPaymentParams
}

type RecordPaymentParams struct {
	InvoiceID   uuid.UUID
	Amount      decimal.Decimal
	PaidBy      string
	Method      string
	Notes       string
	PaymentDate *time.Time
}

// PaymentResult is the recorded payment with the invoice as it stands after it.
type PaymentResult struct {
	Payment *Payment
	Invoice *Invoice
}

type ListInvoicesParams struct {
	CustomerID       *uuid.UUID
	ProcessingStatus ProcessingStatus
	IncludeArchived  bool
	Limit            int32
	Offset           int32
}

// ReconcileResult describes one run of the invoice counter reconciliation.
type ReconcileResult struct {
	CounterBefore    int64  `json:"counter_before"`
	CounterAfter     int64  `json:"counter_after"`
	MaxInvoiceNumber string `json:"max_invoice_number,omitempty"`
	Raised           bool   `json:"raised"`
	Skipped          bool   `json:"skipped"`
}

// AuditEvent records who did what to which entity.
type AuditEvent struct {
	ID         uuid.UUID              `json:"id"`
	Type       string                 `json:"type"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Actor      string                 `json:"actor"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data,omitempty"`
}
