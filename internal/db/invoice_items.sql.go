package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const createInvoiceLine = `-- name: CreateInvoiceLine :one
INSERT INTO invoice_lines (
    id, invoice_id, position, pricing_id, article_id, article_name,
    service_id, service_name, quantity, unit_price, amount
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, invoice_id, position, pricing_id, article_id, article_name, service_id, service_name, quantity, unit_price, amount
`

type CreateInvoiceLineParams struct {
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

func (q *Queries) CreateInvoiceLine(ctx context.Context, arg CreateInvoiceLineParams) (InvoiceLine, error) {
	row := q.db.QueryRow(ctx, createInvoiceLine,
		arg.ID,
		arg.InvoiceID,
		arg.Position,
		arg.PricingID,
		arg.ArticleID,
		arg.ArticleName,
		arg.ServiceID,
		arg.ServiceName,
		arg.Quantity,
		arg.UnitPrice,
		arg.Amount,
	)
	var i InvoiceLine
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.Position,
		&i.PricingID,
		&i.ArticleID,
		&i.ArticleName,
		&i.ServiceID,
		&i.ServiceName,
		&i.Quantity,
		&i.UnitPrice,
		&i.Amount,
	)
	return i, err
}

const listInvoiceLinesByInvoiceIDs = `-- name: ListInvoiceLinesByInvoiceIDs :many
SELECT id, invoice_id, position, pricing_id, article_id, article_name, service_id, service_name, quantity, unit_price, amount
FROM invoice_lines
WHERE invoice_id = ANY($1::uuid[])
ORDER BY invoice_id, position
`

func (q *Queries) ListInvoiceLinesByInvoiceIDs(ctx context.Context, invoiceIds []uuid.UUID) ([]InvoiceLine, error) {
	rows, err := q.db.Query(ctx, listInvoiceLinesByInvoiceIDs, invoiceIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []InvoiceLine{}
	for rows.Next() {
		var i InvoiceLine
		if err := rows.Scan(
			&i.ID,
			&i.InvoiceID,
			&i.Position,
			&i.PricingID,
			&i.ArticleID,
			&i.ArticleName,
			&i.ServiceID,
			&i.ServiceName,
			&i.Quantity,
			&i.UnitPrice,
			&i.Amount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createAdditionalFee = `-- name: CreateAdditionalFee :one
INSERT INTO additional_fees (id, invoice_id, position, title, description, amount)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, invoice_id, position, title, description, amount
`

type CreateAdditionalFeeParams struct {
	ID          uuid.UUID       `json:"id"`
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	Position    int32           `json:"position"`
	Title       string          `json:"title"`
	Description pgtype.Text     `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (q *Queries) CreateAdditionalFee(ctx context.Context, arg CreateAdditionalFeeParams) (AdditionalFee, error) {
	row := q.db.QueryRow(ctx, createAdditionalFee,
		arg.ID,
		arg.InvoiceID,
		arg.Position,
		arg.Title,
		arg.Description,
		arg.Amount,
	)
	var i AdditionalFee
	err := row.Scan(&i.ID, &i.InvoiceID, &i.Position, &i.Title, &i.Description, &i.Amount)
	return i, err
}

const listAdditionalFeesByInvoiceIDs = `-- name: ListAdditionalFeesByInvoiceIDs :many
SELECT id, invoice_id, position, title, description, amount
FROM additional_fees
WHERE invoice_id = ANY($1::uuid[])
ORDER BY invoice_id, position
`

func (q *Queries) ListAdditionalFeesByInvoiceIDs(ctx context.Context, invoiceIds []uuid.UUID) ([]AdditionalFee, error) {
	rows, err := q.db.Query(ctx, listAdditionalFeesByInvoiceIDs, invoiceIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AdditionalFee{}
	for rows.Next() {
		var i AdditionalFee
		if err := rows.Scan(&i.ID, &i.InvoiceID, &i.Position, &i.Title, &i.Description, &i.Amount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const paymentColumns = `id, invoice_id, amount, payment_date, paid_by, method, notes, created_at`

const createPayment = `-- name: CreatePayment :one
INSERT INTO payments (id, invoice_id, amount, payment_date, paid_by, method, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + paymentColumns

type CreatePaymentParams struct {
	ID          uuid.UUID          `json:"id"`
	InvoiceID   uuid.UUID          `json:"invoice_id"`
	Amount      decimal.Decimal    `json:"amount"`
	PaymentDate pgtype.Timestamptz `json:"payment_date"`
	PaidBy      string             `json:"paid_by"`
	Method      string             `json:"method"`
	Notes       pgtype.Text        `json:"notes"`
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.ID,
		arg.InvoiceID,
		arg.Amount,
		arg.PaymentDate,
		arg.PaidBy,
		arg.Method,
		arg.Notes,
	)
	var i Payment
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.Amount,
		&i.PaymentDate,
		&i.PaidBy,
		&i.Method,
		&i.Notes,
		&i.CreatedAt,
	)
	return i, err
}

func (q *Queries) listPayments(ctx context.Context, query string, args ...interface{}) ([]Payment, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Payment{}
	for rows.Next() {
		var i Payment
		if err := rows.Scan(
			&i.ID,
			&i.InvoiceID,
			&i.Amount,
			&i.PaymentDate,
			&i.PaidBy,
			&i.Method,
			&i.Notes,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPaymentsByInvoiceIDs = `-- name: ListPaymentsByInvoiceIDs :many
SELECT ` + paymentColumns + `
FROM payments
WHERE invoice_id = ANY($1::uuid[])
ORDER BY invoice_id, payment_date, created_at
`

func (q *Queries) ListPaymentsByInvoiceIDs(ctx context.Context, invoiceIds []uuid.UUID) ([]Payment, error) {
	return q.listPayments(ctx, listPaymentsByInvoiceIDs, invoiceIds)
}

const listPaymentsByDateRange = `-- name: ListPaymentsByDateRange :many
SELECT p.id, p.invoice_id, p.amount, p.payment_date, p.paid_by, p.method, p.notes, p.created_at
FROM payments p
JOIN invoices i ON i.id = p.invoice_id
WHERE p.payment_date >= $1 AND p.payment_date < $2
  AND i.archived_at IS NULL
ORDER BY p.payment_date
`

type ListPaymentsByDateRangeParams struct {
	From pgtype.Timestamptz `json:"from"`
	To   pgtype.Timestamptz `json:"to"`
}

// ListPaymentsByDateRange returns payments in the half-open window [From, To).
func (q *Queries) ListPaymentsByDateRange(ctx context.Context, arg ListPaymentsByDateRangeParams) ([]Payment, error) {
	return q.listPayments(ctx, listPaymentsByDateRange, arg.From, arg.To)
}
