package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/property/cache"
	"encore.app/property/model"
	"encore.app/property/repository/invoices"
)

// SetStatus flips just the status column and returns the updated invoice.
// Paid and overdue transitions come through here from the API and the due
// date workflow respectively.
func (b *business) SetStatus(ctx context.Context, id int64, status model.InvoiceStatus) (*model.Invoice, error) {
	if !status.Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice status"}
	}

	row, err := b.invoiceRepo.UpdateInvoiceStatus(ctx, invoices.UpdateInvoiceStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update invoice status"}
	}

	b.cacheStore.Clear(cache.KeyInvoices)
	return convertDBInvoiceToModel(row), nil
}
