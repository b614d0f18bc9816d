package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/property/cache"
)

// Delete removes the invoice row; the line items go with it via the foreign
// key cascade. Recorded meter readings are kept, since later invoices may
// already have been billed from them.
func (b *business) Delete(ctx context.Context, id int64) error {
	if _, err := b.invoiceRepo.GetInvoice(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to load invoice"}
	}

	if err := b.invoiceRepo.DeleteInvoice(ctx, id); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to delete invoice"}
	}

	b.cacheStore.Clear(cache.KeyInvoices)
	return nil
}
