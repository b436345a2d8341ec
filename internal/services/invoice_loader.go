package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/types/business"
)

// loadInvoices attaches lines, fees and payments to invoice rows, keeping the
// row order. Three queries regardless of how many invoices are loaded.
func loadInvoices(ctx context.Context, q db.Querier, rows []db.Invoice) ([]*business.Invoice, error) {
	if len(rows) == 0 {
		return []*business.Invoice{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	byID := make(map[uuid.UUID]*business.Invoice, len(rows))
	invoices := make([]*business.Invoice, len(rows))
	for i, row := range rows {
		inv := toBusinessInvoice(row)
		ids[i] = row.ID
		byID[row.ID] = inv
		invoices[i] = inv
	}

	lines, err := q.ListInvoiceLinesByInvoiceIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice lines: %w", err)
	}
	for _, l := range lines {
		if inv, ok := byID[l.InvoiceID]; ok {
			inv.Lines = append(inv.Lines, toBusinessLine(l))
		}
	}

	fees, err := q.ListAdditionalFeesByInvoiceIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load additional fees: %w", err)
	}
	for _, f := range fees {
		if inv, ok := byID[f.InvoiceID]; ok {
			inv.Fees = append(inv.Fees, toBusinessFee(f))
		}
	}

	payments, err := q.ListPaymentsByInvoiceIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	for _, p := range payments {
		if inv, ok := byID[p.InvoiceID]; ok {
			inv.Payments = append(inv.Payments, toBusinessPayment(p))
		}
	}

	return invoices, nil
}

func loadInvoice(ctx context.Context, q db.Querier, row db.Invoice) (*business.Invoice, error) {
	invoices, err := loadInvoices(ctx, q, []db.Invoice{row})
	if err != nil {
		return nil, err
	}
	return invoices[0], nil
}

func toBusinessInvoice(row db.Invoice) *business.Invoice {
	inv := &business.Invoice{
		ID:               row.ID,
		InvoiceNumber:    row.InvoiceNumber,
		CustomerID:       row.CustomerID,
		CustomerName:     row.CustomerName,
		DepositDate:      helpers.FromPgDate(row.DepositDate),
		DeliveryDate:     helpers.FromPgDate(row.DeliveryDate),
		Discount:         row.Discount,
		VATRate:          row.VatRate,
		TaxAmount:        row.TaxAmount,
		ProcessingStatus: business.ProcessingStatus(row.ProcessingStatus),
		CreatedBy:        row.CreatedBy,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
		Lines:            []business.InvoiceLine{},
		Fees:             []business.AdditionalFee{},
		Payments:         []business.Payment{},
	}
	if row.ArchivedAt.Valid {
		archivedAt := row.ArchivedAt.Time
		inv.ArchivedAt = &archivedAt
	}
	return inv
}

func toBusinessLine(l db.InvoiceLine) business.InvoiceLine {
	return business.InvoiceLine{
		ID:          l.ID,
		PricingID:   l.PricingID,
		ArticleID:   l.ArticleID,
		ArticleName: l.ArticleName,
		ServiceID:   l.ServiceID,
		ServiceName: l.ServiceName,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Amount:      l.Amount,
	}
}

func toBusinessFee(f db.AdditionalFee) business.AdditionalFee {
	return business.AdditionalFee{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description.String,
		Amount:      f.Amount,
	}
}

func toBusinessPayment(p db.Payment) business.Payment {
	return business.Payment{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Time,
		PaidBy:      p.PaidBy,
		Method:      p.Method,
		Notes:       p.Notes.String,
		CreatedAt:   p.CreatedAt.Time,
	}
}
