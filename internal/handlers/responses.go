package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/types/business"
)

// InvoiceResponse is an invoice with every derived amount spelled out.
type InvoiceResponse struct {
	ID               uuid.UUID                 `json:"id"`
	InvoiceNumber    string                    `json:"invoice_number"`
	CustomerID       uuid.UUID                 `json:"customer_id"`
	CustomerName     string                    `json:"customer_name"`
	DepositDate      string                    `json:"deposit_date"`
	DeliveryDate     string                    `json:"delivery_date"`
	ProcessingStatus business.ProcessingStatus `json:"processing_status"`
	PaymentStatus    business.PaymentStatus    `json:"payment_status"`
	Subtotal         decimal.Decimal           `json:"subtotal" swaggertype:"string"`
	Discount         decimal.Decimal           `json:"discount" swaggertype:"string"`
	VATRate          decimal.Decimal           `json:"vat_rate" swaggertype:"string"`
	TaxAmount        decimal.Decimal           `json:"tax_amount" swaggertype:"string"`
	TotalAmount      decimal.Decimal           `json:"total_amount" swaggertype:"string"`
	AmountPaid       decimal.Decimal           `json:"amount_paid" swaggertype:"string"`
	RemainingAmount  decimal.Decimal           `json:"remaining_amount" swaggertype:"string"`
	IsPaid           bool                      `json:"is_paid"`
	CreatedBy        string                    `json:"created_by"`
	CreatedAt        time.Time                 `json:"created_at"`
	ArchivedAt       *time.Time                `json:"archived_at,omitempty"`
	Lines            []business.InvoiceLine    `json:"lines"`
	Fees             []business.AdditionalFee  `json:"fees"`
	Payments         []business.Payment        `json:"payments"`
}

func toInvoiceResponse(inv *business.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:               inv.ID,
		InvoiceNumber:    inv.InvoiceNumber,
		CustomerID:       inv.CustomerID,
		CustomerName:     inv.CustomerName,
		DepositDate:      inv.DepositDate.Format(helpers.DateLayout),
		DeliveryDate:     inv.DeliveryDate.Format(helpers.DateLayout),
		ProcessingStatus: inv.ProcessingStatus,
		PaymentStatus:    inv.PaymentStatus(),
		Subtotal:         inv.Subtotal(),
		Discount:         inv.Discount,
		VATRate:          inv.VATRate,
		TaxAmount:        inv.TaxAmount,
		TotalAmount:      inv.TotalAmount(),
		AmountPaid:       inv.AmountPaid(),
		RemainingAmount:  inv.RemainingAmount(),
		IsPaid:           inv.IsPaid(),
		CreatedBy:        inv.CreatedBy,
		CreatedAt:        inv.CreatedAt,
		ArchivedAt:       inv.ArchivedAt,
		Lines:            inv.Lines,
		Fees:             inv.Fees,
		Payments:         inv.Payments,
	}
	if resp.Lines == nil {
		resp.Lines = []business.InvoiceLine{}
	}
	if resp.Fees == nil {
		resp.Fees = []business.AdditionalFee{}
	}
	if resp.Payments == nil {
		resp.Payments = []business.Payment{}
	}
	return resp
}

func toInvoiceResponses(invoices []*business.Invoice) []InvoiceResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = toInvoiceResponse(inv)
	}
	return items
}

// PaymentResponse is the recorded payment and the invoice after it.
type PaymentResponse struct {
	Payment business.Payment `json:"payment"`
	Invoice InvoiceResponse  `json:"invoice"`
}

// ReportResponse carries any report kind.
type ReportResponse struct {
	Kind   business.ReportKind `json:"kind"`
	Report business.Report     `json:"report"`
}

type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCustomerResponse(c db.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address.String,
		CreatedAt:   c.CreatedAt.Time,
	}
}

type ArticleResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
}

type LaundryServiceResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type PricingResponse struct {
	ID          uuid.UUID       `json:"id"`
	ArticleID   uuid.UUID       `json:"article_id"`
	ArticleName string          `json:"article_name"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
