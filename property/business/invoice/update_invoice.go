package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/property/billing"
	"encore.app/property/cache"
	"encore.app/property/model"
	"encore.app/property/repository/invoices"
	"encore.app/property/repository/pgconv"
)

// Update merges the patch onto the stored invoice and recomputes totals from
// the resulting line items. When the patch carries items the stored set is
// replaced wholesale: all existing rows are deleted and the submitted rows
// inserted, so the totals always describe exactly the items on the invoice.
func (b *business) Update(ctx context.Context, id int64, patch *Patch) error {
	row, err := b.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to load invoice"}
	}

	current := convertDBInvoiceToModel(row)

	if patch.TenantID != nil {
		current.TenantID = patch.TenantID
	}
	if patch.IssueDate != nil {
		current.IssueDate = *patch.IssueDate
	}
	if patch.DueDate != nil {
		current.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice status"}
		}
		current.Status = *patch.Status
	}
	if patch.AdditionalFees != nil {
		current.AdditionalFees = *patch.AdditionalFees
	}
	if patch.Discounts != nil {
		current.Discounts = *patch.Discounts
	}
	if patch.Notes != nil {
		current.Notes = *patch.Notes
	}

	items, err := b.resolveItems(ctx, id, patch)
	if err != nil {
		return err
	}

	if err := billing.ValidateItems(items, current.AdditionalFees, current.Discounts); err != nil {
		return err
	}
	current.Subtotal, current.Total = billing.RecomputeTotals(items, current.AdditionalFees, current.Discounts)

	if patch.Items != nil {
		if err := b.replaceItems(ctx, id, *patch.Items); err != nil {
			return err
		}
	}

	_, err = b.invoiceRepo.UpdateInvoice(ctx, invoices.UpdateInvoiceParams{
		ID:             id,
		TenantID:       pgconv.Int8(current.TenantID),
		IssueDate:      pgtype.Date{Time: current.IssueDate, Valid: true},
		DueDate:        pgtype.Date{Time: current.DueDate, Valid: true},
		Status:         string(current.Status),
		AdditionalFees: pgconv.Numeric(current.AdditionalFees),
		Discounts:      pgconv.Numeric(current.Discounts),
		Subtotal:       pgconv.Numeric(current.Subtotal),
		Total:          pgconv.Numeric(current.Total),
		Notes:          pgconv.Text(current.Notes),
	})

	b.cacheStore.Clear(cache.KeyInvoices)

	if err != nil {
		if patch.Items != nil {
			return partialWriteError(id, "updated totals", err)
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to update invoice"}
	}
	return nil
}

// resolveItems returns the item set the updated totals should be computed
// from: the patch's replacement set when present, the stored rows otherwise.
func (b *business) resolveItems(ctx context.Context, id int64, patch *Patch) ([]model.LineItem, error) {
	if patch.Items != nil {
		return *patch.Items, nil
	}
	rows, err := b.itemRepo.ListItemsByInvoice(ctx, id)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load invoice items"}
	}
	items := make([]model.LineItem, len(rows))
	for i, row := range rows {
		items[i] = convertDBItemToModel(row)
	}
	return items, nil
}

func (b *business) replaceItems(ctx context.Context, id int64, items []model.LineItem) error {
	if err := b.itemRepo.DeleteItemsByInvoice(ctx, id); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to replace invoice items"}
	}
	for _, item := range items {
		if _, err := b.insertItem(ctx, id, item); err != nil {
			b.cacheStore.Clear(cache.KeyInvoices)
			return partialWriteError(id, "replacement line items", err)
		}
	}
	return nil
}
