package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/property/billing"
	"encore.app/property/cache"
	"encore.app/property/model"
	"encore.app/property/repository/invoiceitems"
	"encore.app/property/repository/invoices"
	"encore.app/property/repository/pgconv"
	"encore.app/property/repository/readings"
)

// Create writes the invoice row, then its line items, then a meter reading
// record for every electricity and water item, so the invoice becomes the
// source of the next period's previous reading. The three writes are one
// logical unit but are NOT rolled back together: a failure after the invoice
// row succeeded is surfaced as a partial-write error and the row stays in
// place for the caller to delete or retry.
func (b *business) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	if err := billing.ValidateItems(inv.Items, inv.AdditionalFees, inv.Discounts); err != nil {
		return nil, err
	}

	room, err := b.propertyRepo.GetApartment(ctx, inv.UnitID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "unit not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load unit"}
	}

	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = billing.InvoiceNumber(room.BuildingID, inv.UnitID, inv.IssueDate)
	}
	if inv.Status == "" {
		inv.Status = model.InvoiceStatusUnpaid
	}

	inv.Subtotal, inv.Total = billing.RecomputeTotals(inv.Items, inv.AdditionalFees, inv.Discounts)
	workflowID := fmt.Sprintf("invoice-due-%s", inv.InvoiceNumber)

	row, err := b.invoiceRepo.CreateInvoice(ctx, invoices.CreateInvoiceParams{
		ApartmentID:    inv.UnitID,
		TenantID:       pgconv.Int8(inv.TenantID),
		InvoiceNumber:  inv.InvoiceNumber,
		IssueDate:      pgtype.Date{Time: inv.IssueDate, Valid: true},
		DueDate:        pgtype.Date{Time: inv.DueDate, Valid: true},
		Status:         string(inv.Status),
		AdditionalFees: pgconv.Numeric(inv.AdditionalFees),
		Discounts:      pgconv.Numeric(inv.Discounts),
		Subtotal:       pgconv.Numeric(inv.Subtotal),
		Total:          pgconv.Numeric(inv.Total),
		Notes:          pgconv.Text(inv.Notes),
		WorkflowID:     pgtype.Text{String: workflowID, Valid: true},
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "invoice number conflict"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
	}

	result := convertDBInvoiceToModel(row)

	for i := range inv.Items {
		itemRow, err := b.insertItem(ctx, row.ID, inv.Items[i])
		if err != nil {
			b.cacheStore.Clear(cache.KeyInvoices)
			return nil, partialWriteError(row.ID, "line items", err)
		}
		result.Items = append(result.Items, convertDBItemToModel(itemRow))
	}

	for _, item := range result.Items {
		if err := b.recordReading(ctx, inv.UnitID, item, inv.IssueDate); err != nil {
			b.cacheStore.Clear(cache.KeyInvoices)
			b.cacheStore.Clear(cache.KeyUtilityReadings)
			return nil, partialWriteError(row.ID, "meter readings", err)
		}
	}

	b.cacheStore.Clear(cache.KeyInvoices)
	b.cacheStore.Clear(cache.KeyUtilityReadings)

	return result, nil
}

func (b *business) insertItem(ctx context.Context, invoiceID int64, item model.LineItem) (invoiceitems.InvoiceItem, error) {
	return b.itemRepo.CreateInvoiceItem(ctx, invoiceitems.CreateInvoiceItemParams{
		InvoiceID:       invoiceID,
		ItemType:        string(item.Type),
		Description:     pgconv.Text(item.Description),
		Quantity:        pgconv.Numeric(item.Quantity),
		UnitPrice:       pgconv.Numeric(item.UnitPrice),
		Total:           pgconv.Numeric(item.Total),
		PreviousReading: pgconv.NumericPtr(item.PreviousReading),
		CurrentReading:  pgconv.NumericPtr(item.CurrentReading),
	})
}

// recordReading persists the utility value an invoice was billed at. The
// electricity reading is the current meter value; the water reading is the
// billed consumption amount (water is not delta-billed).
func (b *business) recordReading(ctx context.Context, unitID int64, item model.LineItem, issueDate time.Time) error {
	var kind model.UtilityKind
	value := item.Quantity

	switch item.Type {
	case model.ItemTypeElectricity:
		kind = model.UtilityElectricity
		if item.CurrentReading != nil {
			value = *item.CurrentReading
		}
	case model.ItemTypeWater:
		kind = model.UtilityWater
	default:
		return nil
	}

	_, err := b.readingRepo.CreateReading(ctx, readings.CreateReadingParams{
		ApartmentID: unitID,
		UtilityKind: string(kind),
		ReadingDate: pgtype.Date{Time: issueDate, Valid: true},
		Value:       pgconv.Numeric(value),
	})
	return err
}

func partialWriteError(invoiceID int64, stage string, err error) *errs.Error {
	return &errs.Error{
		Code:    errs.Internal,
		Message: fmt.Sprintf("partial write: invoice %d was created but %s were not persisted: %v", invoiceID, stage, err),
	}
}
