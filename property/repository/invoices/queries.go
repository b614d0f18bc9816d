package invoices

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Invoice struct {
	ID             int64
	ApartmentID    int64
	TenantID       pgtype.Int8
	InvoiceNumber  string
	IssueDate      pgtype.Date
	DueDate        pgtype.Date
	Status         string
	AdditionalFees pgtype.Numeric
	Discounts      pgtype.Numeric
	Subtotal       pgtype.Numeric
	Total          pgtype.Numeric
	Notes          pgtype.Text
	WorkflowID     pgtype.Text
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

const invoiceColumns = `id, apartment_id, tenant_id, invoice_number, issue_date, due_date, status,
	additional_fees, discounts, subtotal, total, notes, workflow_id, created_at, updated_at`

func scanInvoice(row interface{ Scan(...interface{}) error }) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID, &i.ApartmentID, &i.TenantID, &i.InvoiceNumber, &i.IssueDate, &i.DueDate, &i.Status,
		&i.AdditionalFees, &i.Discounts, &i.Subtotal, &i.Total, &i.Notes, &i.WorkflowID,
		&i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

const createInvoice = `INSERT INTO invoices (
	apartment_id, tenant_id, invoice_number, issue_date, due_date, status,
	additional_fees, discounts, subtotal, total, notes, workflow_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + invoiceColumns

type CreateInvoiceParams struct {
	ApartmentID    int64
	TenantID       pgtype.Int8
	InvoiceNumber  string
	IssueDate      pgtype.Date
	DueDate        pgtype.Date
	Status         string
	AdditionalFees pgtype.Numeric
	Discounts      pgtype.Numeric
	Subtotal       pgtype.Numeric
	Total          pgtype.Numeric
	Notes          pgtype.Text
	WorkflowID     pgtype.Text
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.ApartmentID, arg.TenantID, arg.InvoiceNumber, arg.IssueDate, arg.DueDate, arg.Status,
		arg.AdditionalFees, arg.Discounts, arg.Subtotal, arg.Total, arg.Notes, arg.WorkflowID,
	)
	return scanInvoice(row)
}

const getInvoice = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

func (q *Queries) GetInvoice(ctx context.Context, id int64) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoice, id))
}

const listInvoices = `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY issue_date DESC, id DESC`

func (q *Queries) ListInvoices(ctx context.Context) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoices)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateInvoice = `UPDATE invoices SET
	tenant_id = $2, issue_date = $3, due_date = $4, status = $5,
	additional_fees = $6, discounts = $7, subtotal = $8, total = $9, notes = $10,
	updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

type UpdateInvoiceParams struct {
	ID             int64
	TenantID       pgtype.Int8
	IssueDate      pgtype.Date
	DueDate        pgtype.Date
	Status         string
	AdditionalFees pgtype.Numeric
	Discounts      pgtype.Numeric
	Subtotal       pgtype.Numeric
	Total          pgtype.Numeric
	Notes          pgtype.Text
}

func (q *Queries) UpdateInvoice(ctx context.Context, arg UpdateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoice,
		arg.ID, arg.TenantID, arg.IssueDate, arg.DueDate, arg.Status,
		arg.AdditionalFees, arg.Discounts, arg.Subtotal, arg.Total, arg.Notes,
	)
	return scanInvoice(row)
}

const updateInvoiceStatus = `UPDATE invoices SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

type UpdateInvoiceStatusParams struct {
	ID     int64
	Status string
}

func (q *Queries) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, updateInvoiceStatus, arg.ID, arg.Status))
}

const deleteInvoice = `DELETE FROM invoices WHERE id = $1`

func (q *Queries) DeleteInvoice(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteInvoice, id)
	return err
}
