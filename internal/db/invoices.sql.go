package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const invoiceColumns = `i.id, i.invoice_number, i.customer_id, c.name AS customer_name, i.deposit_date, i.delivery_date,
    i.discount, i.vat_rate, i.tax_amount, i.processing_status, i.created_by, i.created_at, i.updated_at,
    i.archived_at, i.archived_by`

func scanInvoice(row pgx.Row) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.InvoiceNumber,
		&i.CustomerID,
		&i.CustomerName,
		&i.DepositDate,
		&i.DeliveryDate,
		&i.Discount,
		&i.VatRate,
		&i.TaxAmount,
		&i.ProcessingStatus,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.ArchivedAt,
		&i.ArchivedBy,
	)
	return i, err
}

func collectInvoices(rows pgx.Rows, err error) ([]Invoice, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Invoice{}
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createInvoice = `-- name: CreateInvoice :one
WITH i AS (
    INSERT INTO invoices (
        id, invoice_number, customer_id, deposit_date, delivery_date,
        discount, vat_rate, tax_amount, processing_status, created_by
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING *
)
SELECT ` + invoiceColumns + `
FROM i
JOIN customers c ON c.id = i.customer_id
`

type CreateInvoiceParams struct {
	ID               uuid.UUID       `json:"id"`
	InvoiceNumber    string          `json:"invoice_number"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	DepositDate      pgtype.Date     `json:"deposit_date"`
	DeliveryDate     pgtype.Date     `json:"delivery_date"`
	Discount         decimal.Decimal `json:"discount"`
	VatRate          decimal.Decimal `json:"vat_rate"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	ProcessingStatus string          `json:"processing_status"`
	CreatedBy        string          `json:"created_by"`
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.ID,
		arg.InvoiceNumber,
		arg.CustomerID,
		arg.DepositDate,
		arg.DeliveryDate,
		arg.Discount,
		arg.VatRate,
		arg.TaxAmount,
		arg.ProcessingStatus,
		arg.CreatedBy,
	)
	return scanInvoice(row)
}

const getInvoice = `-- name: GetInvoice :one
SELECT ` + invoiceColumns + `
FROM invoices i
JOIN customers c ON c.id = i.customer_id
WHERE i.id = $1
`

func (q *Queries) GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoice, id))
}

const getInvoiceForUpdate = `-- name: GetInvoiceForUpdate :one
SELECT ` + invoiceColumns + `
FROM invoices i
JOIN customers c ON c.id = i.customer_id
WHERE i.id = $1
FOR UPDATE OF i
`

func (q *Queries) GetInvoiceForUpdate(ctx context.Context, id uuid.UUID) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoiceForUpdate, id))
}

const getInvoiceByNumber = `-- name: GetInvoiceByNumber :one
SELECT ` + invoiceColumns + `
FROM invoices i
JOIN customers c ON c.id = i.customer_id
WHERE i.invoice_number = $1
`

func (q *Queries) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoiceByNumber, invoiceNumber))
}

const getMaxInvoiceNumber = `-- name: GetMaxInvoiceNumber :one
SELECT invoice_number FROM invoices
ORDER BY length(invoice_number) DESC, invoice_number DESC
LIMIT 1
`

// GetMaxInvoiceNumber returns the numerically largest invoice number for
// zero-padded digit strings. Archived invoices are included.
func (q *Queries) GetMaxInvoiceNumber(ctx context.Context) (string, error) {
	row := q.db.QueryRow(ctx, getMaxInvoiceNumber)
	var invoiceNumber string
	err := row.Scan(&invoiceNumber)
	return invoiceNumber, err
}

const listInvoices = `-- name: ListInvoices :many
SELECT ` + invoiceColumns + `
FROM invoices i
JOIN customers c ON c.id = i.customer_id
WHERE ($1::uuid IS NULL OR i.customer_id = $1)
  AND ($2::text IS NULL OR i.processing_status = $2)
  AND ($3::boolean OR i.archived_at IS NULL)
ORDER BY i.created_at DESC, i.invoice_number DESC
LIMIT $4 OFFSET $5
`

type ListInvoicesParams struct {
	CustomerID       pgtype.UUID `json:"customer_id"`
	ProcessingStatus pgtype.Text `json:"processing_status"`
	IncludeArchived  bool        `json:"include_archived"`
	Limit            int32       `json:"limit"`
	Offset           int32       `json:"offset"`
}

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	return collectInvoices(q.db.Query(ctx, listInvoices,
		arg.CustomerID,
		arg.ProcessingStatus,
		arg.IncludeArchived,
		arg.Limit,
		arg.Offset,
	))
}

const listInvoicesByDepositDate = `-- name: ListInvoicesByDepositDate :many
SELECT ` + invoiceColumns + `
FROM invoices i
JOIN customers c ON c.id = i.customer_id
WHERE i.deposit_date BETWEEN $1 AND $2
  AND i.archived_at IS NULL
ORDER BY i.deposit_date, i.invoice_number
`

type ListInvoicesByDepositDateParams struct {
	StartDate pgtype.Date `json:"start_date"`
	EndDate   pgtype.Date `json:"end_date"`
}

func (q *Queries) ListInvoicesByDepositDate(ctx context.Context, arg ListInvoicesByDepositDateParams) ([]Invoice, error) {
	return collectInvoices(q.db.Query(ctx, listInvoicesByDepositDate, arg.StartDate, arg.EndDate))
}

const listInvoicesByDeliveryDate = `-- name: ListInvoicesByDeliveryDate :many
SELECT ` + invoiceColumns + `
FROM invoices i
JOIN customers c ON c.id = i.customer_id
WHERE i.delivery_date BETWEEN $1 AND $2
  AND i.archived_at IS NULL
ORDER BY i.delivery_date, i.invoice_number
`

type ListInvoicesByDeliveryDateParams struct {
	StartDate pgtype.Date `json:"start_date"`
	EndDate   pgtype.Date `json:"end_date"`
}

func (q *Queries) ListInvoicesByDeliveryDate(ctx context.Context, arg ListInvoicesByDeliveryDateParams) ([]Invoice, error) {
	return collectInvoices(q.db.Query(ctx, listInvoicesByDeliveryDate, arg.StartDate, arg.EndDate))
}

const listOutstandingInvoices = `-- name: ListOutstandingInvoices :many
SELECT ` + invoiceColumns + `
FROM invoices i
JOIN customers c ON c.id = i.customer_id
WHERE i.archived_at IS NULL
  AND COALESCE((SELECT SUM(l.amount) FROM invoice_lines l WHERE l.invoice_id = i.id), 0)
    + COALESCE((SELECT SUM(f.amount) FROM additional_fees f WHERE f.invoice_id = i.id), 0)
    + i.tax_amount - i.discount
    > COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.invoice_id = i.id), 0)
ORDER BY i.delivery_date, i.invoice_number
`

// ListOutstandingInvoices narrows the scan to invoices with a balance left.
// Callers still recompute totals from the loaded lines, fees and payments.
func (q *Queries) ListOutstandingInvoices(ctx context.Context) ([]Invoice, error) {
	return collectInvoices(q.db.Query(ctx, listOutstandingInvoices))
}

const listRecentInvoices = `-- name: ListRecentInvoices :many
SELECT ` + invoiceColumns + `
FROM invoices i
JOIN customers c ON c.id = i.customer_id
WHERE i.archived_at IS NULL
ORDER BY i.created_at DESC, i.invoice_number DESC
LIMIT $1
`

func (q *Queries) ListRecentInvoices(ctx context.Context, limit int32) ([]Invoice, error) {
	return collectInvoices(q.db.Query(ctx, listRecentInvoices, limit))
}

const updateInvoiceProcessingStatus = `-- name: UpdateInvoiceProcessingStatus :one
WITH i AS (
    UPDATE invoices
    SET processing_status = $2,
        updated_at = NOW()
    WHERE id = $1
    RETURNING *
)
SELECT ` + invoiceColumns + `
FROM i
JOIN customers c ON c.id = i.customer_id
`

type UpdateInvoiceProcessingStatusParams struct {
	ID               uuid.UUID `json:"id"`
	ProcessingStatus string    `json:"processing_status"`
}

func (q *Queries) UpdateInvoiceProcessingStatus(ctx context.Context, arg UpdateInvoiceProcessingStatusParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, updateInvoiceProcessingStatus, arg.ID, arg.ProcessingStatus))
}

const archiveInvoice = `-- name: ArchiveInvoice :execrows
UPDATE invoices
SET archived_at = NOW(),
    archived_by = $2,
    updated_at = NOW()
WHERE id = $1 AND archived_at IS NULL
`

type ArchiveInvoiceParams struct {
	ID         uuid.UUID   `json:"id"`
	ArchivedBy pgtype.Text `json:"archived_by"`
}

func (q *Queries) ArchiveInvoice(ctx context.Context, arg ArchiveInvoiceParams) (int64, error) {
	result, err := q.db.Exec(ctx, archiveInvoice, arg.ID, arg.ArchivedBy)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteInvoice = `-- name: DeleteInvoice :execrows
DELETE FROM invoices
WHERE id = $1
`

// DeleteInvoice removes the invoice row. Lines, fees and payments go with it
// through ON DELETE CASCADE.
func (q *Queries) DeleteInvoice(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteInvoice, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getCustomerFirstInvoiceDates = `-- name: GetCustomerFirstInvoiceDates :many
SELECT customer_id, MIN(deposit_date)::date AS first_deposit_date
FROM invoices
WHERE customer_id = ANY($1::uuid[])
  AND archived_at IS NULL
GROUP BY customer_id
`

func (q *Queries) GetCustomerFirstInvoiceDates(ctx context.Context, customerIds []uuid.UUID) ([]CustomerFirstInvoice, error) {
	rows, err := q.db.Query(ctx, getCustomerFirstInvoiceDates, customerIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CustomerFirstInvoice{}
	for rows.Next() {
		var i CustomerFirstInvoice
		if err := rows.Scan(&i.CustomerID, &i.FirstDepositDate); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countInvoicesByProcessingStatus = `-- name: CountInvoicesByProcessingStatus :many
SELECT processing_status, COUNT(*)
FROM invoices
WHERE archived_at IS NULL
GROUP BY processing_status
`

func (q *Queries) CountInvoicesByProcessingStatus(ctx context.Context) ([]ProcessingStatusTotal, error) {
	rows, err := q.db.Query(ctx, countInvoicesByProcessingStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ProcessingStatusTotal{}
	for rows.Next() {
		var i ProcessingStatusTotal
		if err := rows.Scan(&i.ProcessingStatus, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
