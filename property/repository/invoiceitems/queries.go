package invoiceitems

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type InvoiceItem struct {
	ID              int64
	InvoiceID       int64
	ItemType        string
	Description     pgtype.Text
	Quantity        pgtype.Numeric
	UnitPrice       pgtype.Numeric
	Total           pgtype.Numeric
	PreviousReading pgtype.Numeric
	CurrentReading  pgtype.Numeric
}

const itemColumns = `id, invoice_id, item_type, description, quantity, unit_price, total,
	previous_reading, current_reading`

func scanItem(row interface{ Scan(...interface{}) error }) (InvoiceItem, error) {
	var i InvoiceItem
	err := row.Scan(
		&i.ID, &i.InvoiceID, &i.ItemType, &i.Description, &i.Quantity, &i.UnitPrice, &i.Total,
		&i.PreviousReading, &i.CurrentReading,
	)
	return i, err
}

const createInvoiceItem = `INSERT INTO invoice_items (
	invoice_id, item_type, description, quantity, unit_price, total, previous_reading, current_reading
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + itemColumns

type CreateInvoiceItemParams struct {
	InvoiceID       int64
	ItemType        string
	Description     pgtype.Text
	Quantity        pgtype.Numeric
	UnitPrice       pgtype.Numeric
	Total           pgtype.Numeric
	PreviousReading pgtype.Numeric
	CurrentReading  pgtype.Numeric
}

func (q *Queries) CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error) {
	row := q.db.QueryRow(ctx, createInvoiceItem,
		arg.InvoiceID, arg.ItemType, arg.Description, arg.Quantity, arg.UnitPrice, arg.Total,
		arg.PreviousReading, arg.CurrentReading,
	)
	return scanItem(row)
}

const listItemsByInvoice = `SELECT ` + itemColumns + ` FROM invoice_items WHERE invoice_id = $1 ORDER BY id`

func (q *Queries) ListItemsByInvoice(ctx context.Context, invoiceID int64) ([]InvoiceItem, error) {
	rows, err := q.db.Query(ctx, listItemsByInvoice, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InvoiceItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listItems = `SELECT ` + itemColumns + ` FROM invoice_items ORDER BY invoice_id, id`

func (q *Queries) ListItems(ctx context.Context) ([]InvoiceItem, error) {
	rows, err := q.db.Query(ctx, listItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InvoiceItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const deleteItemsByInvoice = `DELETE FROM invoice_items WHERE invoice_id = $1`

func (q *Queries) DeleteItemsByInvoice(ctx context.Context, invoiceID int64) error {
	_, err := q.db.Exec(ctx, deleteItemsByInvoice, invoiceID)
	return err
}
