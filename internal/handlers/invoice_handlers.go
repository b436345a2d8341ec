package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sygpress/sygpress-api/internal/interfaces"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// InvoiceHandler exposes the invoice ledger over HTTP
type InvoiceHandler struct {
	ledger interfaces.InvoiceLedger
	logger *zap.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler instance
func NewInvoiceHandler(ledger interfaces.InvoiceLedger, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{ledger: ledger, logger: logger}
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Description Creates an invoice with its lines, fees and optional initial payment. The invoice number is assigned by the server.
// @Tags invoices
// @Accept json
// @Produce json
// @Param X-User header string false "Acting user"
// @Param invoice body CreateInvoiceRequest true "Invoice to create"
// @Success 201 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, err := req.toParams(actor(c))
	if err != nil {
		sendError(c, h.logger, http.StatusBadRequest, err.Error(), err)
		return
	}

	invoice, err := h.ledger.CreateInvoice(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toInvoiceResponse(invoice))
}

// GetInvoice godoc
// @Summary Get invoice by ID
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "invoice_id")
	if !ok {
		return
	}

	invoice, err := h.ledger.GetInvoice(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice))
}

// GetInvoiceByNumber godoc
// @Summary Get invoice by number
// @Tags invoices
// @Produce json
// @Param invoice_number path string true "Invoice number, e.g. 00042"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/number/{invoice_number} [get]
func (h *InvoiceHandler) GetInvoiceByNumber(c *gin.Context) {
	invoice, err := h.ledger.GetInvoiceByNumber(c.Request.Context(), strings.TrimSpace(c.Param("invoice_number")))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice))
}

// ListInvoices godoc
// @Summary List invoices
// @Description Lists invoices, most recently created first
// @Tags invoices
// @Produce json
// @Param customer_id query string false "Customer ID"
// @Param processing_status query string false "Processing status"
// @Param include_archived query bool false "Include archived invoices"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} ListResponse{data=[]InvoiceResponse}
// @Failure 400 {object} ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var query ListInvoicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	params := business.ListInvoicesParams{
		ProcessingStatus: business.ProcessingStatus(query.ProcessingStatus),
		IncludeArchived:  query.IncludeArchived,
		Limit:            query.Limit,
		Offset:           query.Offset,
	}
	if query.CustomerID != "" {
		customerID, err := uuid.Parse(query.CustomerID)
		if err != nil {
			sendError(c, h.logger, http.StatusBadRequest, "Invalid customer id format", err)
			return
		}
		params.CustomerID = &customerID
	}

	invoices, err := h.ledger.ListInvoices(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendList(c, toInvoiceResponses(invoices))
}

// RecordPayment godoc
// @Summary Record a payment
// @Description Records a payment against an invoice. Overpayment is rejected.
// @Tags invoices
// @Accept json
// @Produce json
// @Param X-User header string false "Acting user"
// @Param invoice_id path string true "Invoice ID"
// @Param payment body RecordPaymentRequest true "Payment"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /invoices/{invoice_id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "invoice_id")
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.ledger.RecordPayment(c.Request.Context(), business.RecordPaymentParams{
		InvoiceID:   id,
		Amount:      req.Amount,
		PaidBy:      actor(c),
		Method:      req.Method,
		Notes:       req.Notes,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusCreated, PaymentResponse{
		Payment: *result.Payment,
		Invoice: toInvoiceResponse(result.Invoice),
	})
}

// UpdateProcessingStatus godoc
// @Summary Move an invoice through the workflow
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param status body UpdateProcessingStatusRequest true "New status"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /invoices/{invoice_id}/status [patch]
func (h *InvoiceHandler) UpdateProcessingStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "invoice_id")
	if !ok {
		return
	}

	var req UpdateProcessingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	invoice, err := h.ledger.UpdateProcessingStatus(c.Request.Context(), id, business.ProcessingStatus(req.ProcessingStatus))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(invoice))
}

// ArchiveInvoice godoc
// @Summary Archive an invoice
// @Description Archived invoices keep their number but leave reports and default listings
// @Tags invoices
// @Produce json
// @Param X-User header string false "Acting user"
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /invoices/{invoice_id}/archive [post]
func (h *InvoiceHandler) ArchiveInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "invoice_id")
	if !ok {
		return
	}

	if err := h.ledger.ArchiveInvoice(c.Request.Context(), id, actor(c)); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Invoice archived successfully")
}

// DeleteInvoice godoc
// @Summary Delete an invoice
// @Description Deletes an invoice with its lines, fees and payments. The number is never reused.
// @Tags invoices
// @Param invoice_id path string true "Invoice ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoice_id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "invoice_id")
	if !ok {
		return
	}

	if err := h.ledger.DeleteInvoice(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
