package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/types/business"
)

// CreateInvoiceRequest represents the request to create an invoice. Dates
// are YYYY-MM-DD; amounts are decimal strings or numbers.
type CreateInvoiceRequest struct {
	CustomerID       uuid.UUID                    `json:"customer_id" binding:"required"`
	DepositDate      string                       `json:"deposit_date" binding:"required"`
	DeliveryDate     string                       `json:"delivery_date" binding:"required"`
	Lines            []CreateInvoiceLineRequest   `json:"lines" binding:"required,min=1,dive"`
	Fees             []CreateAdditionalFeeRequest `json:"fees,omitempty" binding:"dive"`
	Discount         decimal.Decimal              `json:"discount" swaggertype:"string"`
	VATRate          *decimal.Decimal             `json:"vat_rate,omitempty" swaggertype:"string"`
	ProcessingStatus string                       `json:"processing_status,omitempty"`
	InitialPayment   *InitialPaymentRequest       `json:"initial_payment,omitempty"`
}

type CreateInvoiceLineRequest struct {
	PricingID uuid.UUID `json:"pricing_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required"`
}

type CreateAdditionalFeeRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
}

type InitialPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
	Method string          `json:"method,omitempty"`
	Notes  string          `json:"notes,omitempty"`
}

func (r CreateInvoiceRequest) toParams(createdBy string) (business.CreateInvoiceParams, error) {
	deposit, err := helpers.ParseDate(r.DepositDate)
	if err != nil {
		return business.CreateInvoiceParams{}, err
	}
	delivery, err := helpers.ParseDate(r.DeliveryDate)
	if err != nil {
		return business.CreateInvoiceParams{}, err
	}

	params := business.CreateInvoiceParams{
		CustomerID:       r.CustomerID,
		DepositDate:      deposit,
		DeliveryDate:     delivery,
		Lines:            make([]business.CreateInvoiceLineParams, len(r.Lines)),
		Fees:             make([]business.CreateAdditionalFeeParams, len(r.Fees)),
		Discount:         r.Discount,
		VATRate:          r.VATRate,
		ProcessingStatus: business.ProcessingStatus(r.ProcessingStatus),
		CreatedBy:        createdBy,
	}
	for i, l := range r.Lines {
		params.Lines[i] = business.CreateInvoiceLineParams{PricingID: l.PricingID, Quantity: l.Quantity}
	}
	for i, f := range r.Fees {
		params.Fees[i] = business.CreateAdditionalFeeParams{Title: f.Title, Description: f.Description, Amount: f.Amount}
	}
	if p := r.InitialPayment; p != nil {
		params.InitialPayment = &business.InitialPaymentParams{Amount: p.Amount, Method: p.Method, Notes: p.Notes}
	}
	return params, nil
}

// RecordPaymentRequest represents a payment against an invoice
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Method      string          `json:"method,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
}

type UpdateProcessingStatusRequest struct {
	ProcessingStatus string `json:"processing_status" binding:"required"`
}

// ListInvoicesQuery are the query parameters of GET /invoices
type ListInvoicesQuery struct {
	CustomerID       string `form:"customer_id"`
	ProcessingStatus string `form:"processing_status"`
	IncludeArchived  bool   `form:"include_archived"`
	Limit            int32  `form:"limit"`
	Offset           int32  `form:"offset"`
}

// ReportQuery are the query parameters of GET /reports/:kind
type ReportQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	Top       int    `form:"top"`
}

type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Address     string `json:"address,omitempty"`
}

type CreateArticleRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category,omitempty"`
}

type CreateLaundryServiceRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreatePricingRequest struct {
	ArticleID uuid.UUID       `json:"article_id" binding:"required"`
	ServiceID uuid.UUID       `json:"service_id" binding:"required"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
}
