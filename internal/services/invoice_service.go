package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/interfaces"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

var (
	writeTx = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	readTx  = pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadOnly}
)

// InvoiceService is the invoice ledger: it creates invoices with their
// number, records payments and serves invoices with recomputed totals.
type InvoiceService struct {
	store          db.Store
	sequence       interfaces.SequenceCounter
	audit          interfaces.AuditPublisher
	logger         *zap.Logger
	defaultVATRate decimal.Decimal
	now            func() time.Time
}

// InvoiceServiceOption configures an InvoiceService.
type InvoiceServiceOption func(*InvoiceService)

// WithDefaultVATRate sets the VAT percentage used when a request leaves it empty.
func WithDefaultVATRate(rate decimal.Decimal) InvoiceServiceOption {
	return func(s *InvoiceService) { s.defaultVATRate = rate }
}

// WithInvoiceClock overrides time.Now for payment dates.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *InvoiceService) { s.now = now }
}

// WithAuditPublisher sets where audit events go.
func WithAuditPublisher(audit interfaces.AuditPublisher) InvoiceServiceOption {
	return func(s *InvoiceService) { s.audit = audit }
}

func NewInvoiceService(store db.Store, sequence interfaces.SequenceCounter, logger *zap.Logger, opts ...InvoiceServiceOption) *InvoiceService {
	s := &InvoiceService{
		store:          store,
		sequence:       sequence,
		audit:          NoopAuditPublisher{},
		logger:         logger,
		defaultVATRate: decimal.Zero,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInvoice validates the request, takes the next invoice number and
// persists the invoice, its lines, its fees and the optional first payment in
// one transaction. A rolled back transaction never reuses its number.
func (s *InvoiceService) CreateInvoice(ctx context.Context, params business.CreateInvoiceParams) (*business.Invoice, error) {
	vatRate := s.defaultVATRate
	if params.VATRate != nil {
		vatRate = *params.VATRate
	}
	if params.ProcessingStatus == "" {
		params.ProcessingStatus = business.ProcessingStatusDepot
	}
	if strings.TrimSpace(params.CreatedBy) == "" {
		params.CreatedBy = constants.SystemUser
	}
	if err := validateCreateInvoice(params, vatRate); err != nil {
		return nil, err
	}

	var created *business.Invoice
	err := s.store.ExecTx(ctx, writeTx, func(q db.Querier) error {
		if _, err := q.GetCustomer(ctx, params.CustomerID); err != nil {
			return translateStoreError(err, "customer", params.CustomerID.String())
		}

		lines, err := s.priceLines(ctx, q, params.Lines)
		if err != nil {
			return err
		}

		draft := &business.Invoice{
			Discount: params.Discount,
			Lines:    lines,
			Fees:     make([]business.AdditionalFee, len(params.Fees)),
		}
		for i, f := range params.Fees {
			draft.Fees[i] = business.AdditionalFee{Title: f.Title, Description: f.Description, Amount: f.Amount}
		}

		subtotal := draft.Subtotal()
		if params.Discount.GreaterThan(subtotal) {
			return newValidationError("discount", "discount %s exceeds subtotal %s", params.Discount, subtotal)
		}
		draft.TaxAmount = business.ComputeTax(subtotal.Sub(params.Discount), vatRate)
		total := draft.TotalAmount()
		if err := business.CheckAmount(total); err != nil {
			return newValidationError("total_amount", "%v", err)
		}
		// A zero total could never reach PAID, which needs a payment.
		if !total.IsPositive() {
			return newValidationError("total_amount", "invoice total must be greater than zero")
		}
		if p := params.InitialPayment; p != nil && p.Amount.GreaterThan(total) {
			return newValidationError("initial_payment.amount", "payment %s exceeds invoice total %s", p.Amount, total)
		}

		next, err := s.sequence.GetNext(ctx, q, constants.InvoiceSequenceID)
		if err != nil {
			return err
		}
		invoiceNumber := helpers.FormatInvoiceNumber(next)

		row, err := q.CreateInvoice(ctx, db.CreateInvoiceParams{
			ID:               uuid.New(),
			InvoiceNumber:    invoiceNumber,
			CustomerID:       params.CustomerID,
			DepositDate:      helpers.ToPgDate(params.DepositDate),
			DeliveryDate:     helpers.ToPgDate(params.DeliveryDate),
			Discount:         params.Discount,
			VatRate:          vatRate,
			TaxAmount:        draft.TaxAmount,
			ProcessingStatus: string(params.ProcessingStatus),
			CreatedBy:        params.CreatedBy,
		})
		if err != nil {
			return translateStoreError(err, "invoice", invoiceNumber)
		}

		for i, l := range lines {
			if _, err := q.CreateInvoiceLine(ctx, db.CreateInvoiceLineParams{
				ID:          uuid.New(),
				InvoiceID:   row.ID,
				Position:    int32(i),
				PricingID:   l.PricingID,
				ArticleID:   l.ArticleID,
				ArticleName: l.ArticleName,
				ServiceID:   l.ServiceID,
				ServiceName: l.ServiceName,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
				Amount:      l.Amount,
			}); err != nil {
				return translateStoreError(err, "invoice line", fmt.Sprintf("%s/%d", invoiceNumber, i))
			}
		}

		for i, f := range params.Fees {
			if _, err := q.CreateAdditionalFee(ctx, db.CreateAdditionalFeeParams{
				ID:          uuid.New(),
				InvoiceID:   row.ID,
				Position:    int32(i),
				Title:       strings.TrimSpace(f.Title),
				Description: helpers.ToPgText(f.Description),
				Amount:      f.Amount,
			}); err != nil {
				return translateStoreError(err, "additional fee", fmt.Sprintf("%s/%d", invoiceNumber, i))
			}
		}

		if p := params.InitialPayment; p != nil {
			if _, err := q.CreatePayment(ctx, db.CreatePaymentParams{
				ID:          uuid.New(),
				InvoiceID:   row.ID,
				Amount:      p.Amount,
				PaymentDate: helpers.ToPgTimestamptz(s.now()),
				PaidBy:      params.CreatedBy,
				Method:      defaultString(p.Method, constants.DefaultPaymentMethod),
				Notes:       helpers.ToPgText(p.Notes),
			}); err != nil {
				return translateStoreError(err, "payment", invoiceNumber)
			}
		}

		created, err = loadInvoice(ctx, q, row)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to create invoice",
			zap.String("customer_id", params.CustomerID.String()),
			zap.Int("line_count", len(params.Lines)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Invoice created",
		zap.String("invoice_id", created.ID.String()),
		zap.String("invoice_number", created.InvoiceNumber),
		zap.String("total_amount", created.TotalAmount().String()),
	)
	publishAudit(ctx, s.audit, s.logger, constants.AuditInvoiceCreated, "invoice", created.ID.String(), params.CreatedBy,
		map[string]interface{}{
			"invoice_number": created.InvoiceNumber,
			"total_amount":   created.TotalAmount().String(),
		})
	return created, nil
}

// priceLines resolves every pricing and freezes quantity x price on the line.
func (s *InvoiceService) priceLines(ctx context.Context, q db.Querier, params []business.CreateInvoiceLineParams) ([]business.InvoiceLine, error) {
	lines := make([]business.InvoiceLine, len(params))
	for i, lp := range params {
		pricing, err := q.GetPricingDetail(ctx, lp.PricingID)
		if err != nil {
			return nil, translateStoreError(err, "pricing", lp.PricingID.String())
		}
		amount := pricing.Price.Mul(decimal.NewFromInt32(lp.Quantity))
		if err := business.CheckAmount(amount); err != nil {
			return nil, newValidationError(fmt.Sprintf("lines[%d]", i), "%v", err)
		}
		lines[i] = business.InvoiceLine{
			PricingID:   pricing.ID,
			ArticleID:   pricing.ArticleID,
			ArticleName: pricing.ArticleName,
			ServiceID:   pricing.ServiceID,
			ServiceName: pricing.ServiceName,
			Quantity:    lp.Quantity,
			UnitPrice:   pricing.Price,
			Amount:      amount,
		}
	}
	return lines, nil
}

func validateCreateInvoice(params business.CreateInvoiceParams, vatRate decimal.Decimal) error {
	if params.CustomerID == uuid.Nil {
		return newValidationError("customer_id", "is required")
	}
	if len(params.Lines) == 0 {
		return newValidationError("lines", "at least one line is required")
	}
	for i, l := range params.Lines {
		if l.PricingID == uuid.Nil {
			return newValidationError(fmt.Sprintf("lines[%d].pricing_id", i), "is required")
		}
		if l.Quantity <= 0 {
			return newValidationError(fmt.Sprintf("lines[%d].quantity", i), "must be positive, got %d", l.Quantity)
		}
	}
	if params.DepositDate.IsZero() {
		return newValidationError("deposit_date", "is required")
	}
	if params.DeliveryDate.IsZero() {
		return newValidationError("delivery_date", "is required")
	}
	if helpers.DateOnly(params.DepositDate).After(helpers.DateOnly(params.DeliveryDate)) {
		return newValidationError("delivery_date", "must not be before deposit_date")
	}
	if err := business.CheckAmount(params.Discount); err != nil {
		return newValidationError("discount", "%v", err)
	}
	for i, f := range params.Fees {
		if strings.TrimSpace(f.Title) == "" {
			return newValidationError(fmt.Sprintf("fees[%d].title", i), "is required")
		}
		if err := business.CheckAmount(f.Amount); err != nil {
			return newValidationError(fmt.Sprintf("fees[%d].amount", i), "%v", err)
		}
	}
	if vatRate.IsNegative() || vatRate.GreaterThan(business.MaxVATRate) {
		return newValidationError("vat_rate", "must be between 0 and 100")
	}
	if !vatRate.Equal(vatRate.Truncate(business.MoneyScale)) {
		return newValidationError("vat_rate", "has more than 2 decimal places")
	}
	if !params.ProcessingStatus.IsValid() {
		return newValidationError("processing_status", "unknown status %q", params.ProcessingStatus)
	}
	if p := params.InitialPayment; p != nil {
		if err := business.CheckPositiveAmount(p.Amount); err != nil {
			return newValidationError("initial_payment.amount", "%v", err)
		}
	}
	return nil
}

// RecordPayment appends a payment. The invoice row is locked and its balance
// read inside the same transaction as the insert, so two concurrent payments
// cannot both pass the overpayment check.
func (s *InvoiceService) RecordPayment(ctx context.Context, params business.RecordPaymentParams) (*business.PaymentResult, error) {
	if err := business.CheckPositiveAmount(params.Amount); err != nil {
		return nil, newValidationError("amount", "%v", err)
	}
	paidBy := defaultString(params.PaidBy, constants.SystemUser)
	paymentDate := s.now()
	if params.PaymentDate != nil {
		paymentDate = *params.PaymentDate
	}

	var result *business.PaymentResult
	err := s.store.ExecTx(ctx, writeTx, func(q db.Querier) error {
		row, err := q.GetInvoiceForUpdate(ctx, params.InvoiceID)
		if err != nil {
			return translateStoreError(err, "invoice", params.InvoiceID.String())
		}
		if row.ArchivedAt.Valid {
			return &ConflictError{Resource: "invoice", Message: fmt.Sprintf("invoice %s is archived", row.InvoiceNumber)}
		}

		inv, err := loadInvoice(ctx, q, row)
		if err != nil {
			return err
		}

		remaining := inv.RemainingAmount()
		if remaining.IsZero() {
			return newValidationError("amount", "invoice %s is already fully paid", inv.InvoiceNumber)
		}
		if params.Amount.GreaterThan(remaining) {
			return newValidationError("amount", "payment %s exceeds remaining amount %s", params.Amount, remaining)
		}

		created, err := q.CreatePayment(ctx, db.CreatePaymentParams{
			ID:          uuid.New(),
			InvoiceID:   inv.ID,
			Amount:      params.Amount,
			PaymentDate: helpers.ToPgTimestamptz(paymentDate),
			PaidBy:      paidBy,
			Method:      defaultString(params.Method, constants.DefaultPaymentMethod),
			Notes:       helpers.ToPgText(params.Notes),
		})
		if err != nil {
			return translateStoreError(err, "payment", inv.InvoiceNumber)
		}

		payment := toBusinessPayment(created)
		inv.Payments = append(inv.Payments, payment)
		result = &business.PaymentResult{Payment: &payment, Invoice: inv}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to record payment",
			zap.String("invoice_id", params.InvoiceID.String()),
			zap.String("amount", params.Amount.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.String("invoice_id", result.Invoice.ID.String()),
		zap.String("invoice_number", result.Invoice.InvoiceNumber),
		zap.String("amount", params.Amount.String()),
		zap.String("remaining_amount", result.Invoice.RemainingAmount().String()),
	)
	publishAudit(ctx, s.audit, s.logger, constants.AuditPaymentRecorded, "payment", result.Payment.ID.String(), paidBy,
		map[string]interface{}{
			"invoice_number": result.Invoice.InvoiceNumber,
			"amount":         params.Amount.String(),
		})
	return result, nil
}

// GetInvoice returns the invoice with totals recomputed from its lines, fees
// and payments.
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*business.Invoice, error) {
	return s.readInvoice(ctx, id.String(), func(q db.Querier) (db.Invoice, error) {
		return q.GetInvoice(ctx, id)
	})
}

// GetInvoiceByNumber is GetInvoice keyed by the human-readable number.
func (s *InvoiceService) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (*business.Invoice, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return nil, newValidationError("invoice_number", "is required")
	}
	return s.readInvoice(ctx, invoiceNumber, func(q db.Querier) (db.Invoice, error) {
		return q.GetInvoiceByNumber(ctx, invoiceNumber)
	})
}

func (s *InvoiceService) readInvoice(ctx context.Context, key string, fetch func(db.Querier) (db.Invoice, error)) (*business.Invoice, error) {
	var inv *business.Invoice
	err := s.store.ExecTx(ctx, readTx, func(q db.Querier) error {
		row, err := fetch(q)
		if err != nil {
			return translateStoreError(err, "invoice", key)
		}
		inv, err = loadInvoice(ctx, q, row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// ListInvoices pages through invoices, newest first.
func (s *InvoiceService) ListInvoices(ctx context.Context, params business.ListInvoicesParams) ([]*business.Invoice, error) {
	if params.ProcessingStatus != "" && !params.ProcessingStatus.IsValid() {
		return nil, newValidationError("processing_status", "unknown status %q", params.ProcessingStatus)
	}
	if params.Offset < 0 {
		return nil, newValidationError("offset", "must not be negative")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}
	if limit > constants.MaxListLimit {
		limit = constants.MaxListLimit
	}

	arg := db.ListInvoicesParams{
		IncludeArchived: params.IncludeArchived,
		Limit:           limit,
		Offset:          params.Offset,
	}
	if params.CustomerID != nil {
		arg.CustomerID = pgtype.UUID{Bytes: *params.CustomerID, Valid: true}
	}
	if params.ProcessingStatus != "" {
		arg.ProcessingStatus = pgtype.Text{String: string(params.ProcessingStatus), Valid: true}
	}

	var invoices []*business.Invoice
	err := s.store.ExecTx(ctx, readTx, func(q db.Querier) error {
		rows, err := q.ListInvoices(ctx, arg)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}
		invoices, err = loadInvoices(ctx, q, rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// UpdateProcessingStatus moves the goods through the workflow. Any status can
// follow any other; money is not touched.
func (s *InvoiceService) UpdateProcessingStatus(ctx context.Context, id uuid.UUID, status business.ProcessingStatus) (*business.Invoice, error) {
	if !status.IsValid() {
		return nil, newValidationError("processing_status", "unknown status %q", status)
	}

	var inv *business.Invoice
	var previous business.ProcessingStatus
	err := s.store.ExecTx(ctx, writeTx, func(q db.Querier) error {
		current, err := q.GetInvoiceForUpdate(ctx, id)
		if err != nil {
			return translateStoreError(err, "invoice", id.String())
		}
		previous = business.ProcessingStatus(current.ProcessingStatus)

		row, err := q.UpdateInvoiceProcessingStatus(ctx, db.UpdateInvoiceProcessingStatusParams{
			ID:               id,
			ProcessingStatus: string(status),
		})
		if err != nil {
			return translateStoreError(err, "invoice", id.String())
		}
		inv, err = loadInvoice(ctx, q, row)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice processing status updated",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)
	publishAudit(ctx, s.audit, s.logger, constants.AuditInvoiceStatusChanged, "invoice", id.String(), constants.SystemUser,
		map[string]interface{}{"from": string(previous), "to": string(status)})
	return inv, nil
}

// ArchiveInvoice soft-deletes an invoice: it stays readable but drops out of
// reports and dashboards.
func (s *InvoiceService) ArchiveInvoice(ctx context.Context, id uuid.UUID, archivedBy string) error {
	archivedBy = defaultString(archivedBy, constants.SystemUser)
	err := s.store.ExecTx(ctx, writeTx, func(q db.Querier) error {
		if _, err := q.GetInvoiceForUpdate(ctx, id); err != nil {
			return translateStoreError(err, "invoice", id.String())
		}
		affected, err := q.ArchiveInvoice(ctx, db.ArchiveInvoiceParams{
			ID:         id,
			ArchivedBy: helpers.ToPgText(archivedBy),
		})
		if err != nil {
			return translateStoreError(err, "invoice", id.String())
		}
		if affected == 0 {
			return &ConflictError{Resource: "invoice", Message: fmt.Sprintf("invoice %s is already archived", id)}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Invoice archived", zap.String("invoice_id", id.String()), zap.String("archived_by", archivedBy))
	publishAudit(ctx, s.audit, s.logger, constants.AuditInvoiceArchived, "invoice", id.String(), archivedBy, nil)
	return nil
}

// DeleteInvoice hard-deletes an invoice. Its lines, fees and payments are
// removed with it.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	err := s.store.ExecTx(ctx, writeTx, func(q db.Querier) error {
		affected, err := q.DeleteInvoice(ctx, id)
		if err != nil {
			return translateStoreError(err, "invoice", id.String())
		}
		if affected == 0 {
			return newNotFoundError("invoice", id.String())
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Invoice deleted", zap.String("invoice_id", id.String()))
	publishAudit(ctx, s.audit, s.logger, constants.AuditInvoiceDeleted, "invoice", id.String(), constants.SystemUser, nil)
	return nil
}

func defaultString(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
