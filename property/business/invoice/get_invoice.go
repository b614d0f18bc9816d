package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/property/cache"
	"encore.app/property/model"
	"encore.app/property/repository/invoiceitems"
	"encore.app/property/repository/invoices"
	"encore.app/property/repository/pgconv"
)

// List returns every invoice with its line items attached. The joined list is
// cached under the invoices key; every write path clears that key, so a get
// after a write always observes the change.
func (b *business) List(ctx context.Context) ([]model.Invoice, error) {
	return cache.GetAs(ctx, b.cacheStore, cache.KeyInvoices, func(ctx context.Context) ([]model.Invoice, error) {
		rows, err := b.invoiceRepo.ListInvoices(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
		}
		itemRows, err := b.itemRepo.ListItems(ctx)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list invoice items"}
		}

		itemsByInvoice := make(map[int64][]model.LineItem, len(rows))
		for _, row := range itemRows {
			itemsByInvoice[row.InvoiceID] = append(itemsByInvoice[row.InvoiceID], convertDBItemToModel(row))
		}

		result := make([]model.Invoice, len(rows))
		for i, row := range rows {
			inv := convertDBInvoiceToModel(row)
			inv.Items = itemsByInvoice[row.ID]
			result[i] = *inv
		}
		return result, nil
	})
}

// Get returns one invoice from the cached list.
func (b *business) Get(ctx context.Context, id int64) (*model.Invoice, error) {
	all, err := b.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			inv := all[i]
			return &inv, nil
		}
	}
	return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
}

// convertDBInvoiceToModel converts a database Invoice to a domain model Invoice
func convertDBInvoiceToModel(row invoices.Invoice) *model.Invoice {
	return &model.Invoice{
		ID:             row.ID,
		UnitID:         row.ApartmentID,
		TenantID:       pgconv.Int8Ptr(row.TenantID),
		InvoiceNumber:  row.InvoiceNumber,
		IssueDate:      row.IssueDate.Time,
		DueDate:        row.DueDate.Time,
		Status:         model.InvoiceStatus(row.Status),
		AdditionalFees: pgconv.Decimal(row.AdditionalFees),
		Discounts:      pgconv.Decimal(row.Discounts),
		Subtotal:       pgconv.Decimal(row.Subtotal),
		Total:          pgconv.Decimal(row.Total),
		Notes:          row.Notes.String,
		WorkflowID:     pgconv.TextPtr(row.WorkflowID),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func convertDBItemToModel(row invoiceitems.InvoiceItem) model.LineItem {
	return model.LineItem{
		ID:              row.ID,
		InvoiceID:       row.InvoiceID,
		Type:            model.ItemType(row.ItemType),
		Description:     row.Description.String,
		Quantity:        pgconv.Decimal(row.Quantity),
		UnitPrice:       pgconv.Decimal(row.UnitPrice),
		Total:           pgconv.Decimal(row.Total),
		PreviousReading: pgconv.DecimalPtr(row.PreviousReading),
		CurrentReading:  pgconv.DecimalPtr(row.CurrentReading),
	}
}
