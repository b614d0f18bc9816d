package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/property/model"
	"encore.app/property/repository/invoiceitems"
	"encore.app/property/repository/invoices"
	"encore.app/property/repository/pgconv"
)

func storedInvoice(id int64) invoices.Invoice {
	return invoices.Invoice{
		ID:             id,
		ApartmentID:    12,
		InvoiceNumber:  "INV-06-24-3-12-123",
		Status:         string(model.InvoiceStatusUnpaid),
		AdditionalFees: pgconv.Numeric(decimal.Zero),
		Discounts:      pgconv.Numeric(decimal.Zero),
		Subtotal:       pgconv.Numeric(decimal.NewFromInt(3000000)),
		Total:          pgconv.Numeric(decimal.NewFromInt(3000000)),
	}
}

func storedRentRow(invoiceID int64) invoiceitems.InvoiceItem {
	return invoiceitems.InvoiceItem{
		ID:        10,
		InvoiceID: invoiceID,
		ItemType:  "rent",
		Quantity:  pgconv.Numeric(decimal.NewFromInt(1)),
		UnitPrice: pgconv.Numeric(decimal.NewFromInt(3000000)),
		Total:     pgconv.Numeric(decimal.NewFromInt(3000000)),
	}
}

func TestUpdateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("not_found", func(t *testing.T) {
		b, mockInvoices, _, _, _ := newTestBusiness(ctrl)

		mockInvoices.EXPECT().GetInvoice(gomock.Any(), int64(99)).Return(invoices.Invoice{}, pgx.ErrNoRows)

		err := b.Update(context.Background(), 99, &Patch{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invoice not found")
	})

	t.Run("fee_change_recomputes_totals_from_stored_items", func(t *testing.T) {
		b, mockInvoices, mockItems, _, _ := newTestBusiness(ctrl)

		fees := decimal.NewFromInt(50000)
		mockInvoices.EXPECT().GetInvoice(gomock.Any(), int64(1)).Return(storedInvoice(1), nil)
		mockItems.EXPECT().ListItemsByInvoice(gomock.Any(), int64(1)).Return([]invoiceitems.InvoiceItem{storedRentRow(1)}, nil)
		mockInvoices.EXPECT().
			UpdateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg invoices.UpdateInvoiceParams) (invoices.Invoice, error) {
				assert.Equal(t, "3000000", pgconv.Decimal(arg.Subtotal).String())
				assert.Equal(t, "3050000", pgconv.Decimal(arg.Total).String())
				return storedInvoice(1), nil
			})

		err := b.Update(context.Background(), 1, &Patch{AdditionalFees: &fees})
		require.NoError(t, err)
	})

	t.Run("item_replacement_is_wholesale", func(t *testing.T) {
		b, mockInvoices, mockItems, _, _ := newTestBusiness(ctrl)

		newItems := []model.LineItem{
			{
				Type:      model.ItemTypeRent,
				Quantity:  decimal.NewFromInt(1),
				UnitPrice: decimal.NewFromInt(3500000),
				Total:     decimal.NewFromInt(3500000),
			},
		}
		mockInvoices.EXPECT().GetInvoice(gomock.Any(), int64(1)).Return(storedInvoice(1), nil)
		mockItems.EXPECT().DeleteItemsByInvoice(gomock.Any(), int64(1)).Return(nil)
		mockItems.EXPECT().
			CreateInvoiceItem(gomock.Any(), gomock.Any()).
			Return(invoiceitems.InvoiceItem{ID: 11, InvoiceID: 1, ItemType: "rent"}, nil)
		mockInvoices.EXPECT().
			UpdateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg invoices.UpdateInvoiceParams) (invoices.Invoice, error) {
				assert.Equal(t, "3500000", pgconv.Decimal(arg.Total).String())
				return storedInvoice(1), nil
			})

		err := b.Update(context.Background(), 1, &Patch{Items: &newItems})
		require.NoError(t, err)
	})

	t.Run("replacement_insert_failure_is_a_partial_write", func(t *testing.T) {
		b, mockInvoices, mockItems, _, _ := newTestBusiness(ctrl)

		newItems := []model.LineItem{
			{
				Type:      model.ItemTypeRent,
				Quantity:  decimal.NewFromInt(1),
				UnitPrice: decimal.NewFromInt(3500000),
				Total:     decimal.NewFromInt(3500000),
			},
		}
		mockInvoices.EXPECT().GetInvoice(gomock.Any(), int64(1)).Return(storedInvoice(1), nil)
		mockItems.EXPECT().DeleteItemsByInvoice(gomock.Any(), int64(1)).Return(nil)
		mockItems.EXPECT().
			CreateInvoiceItem(gomock.Any(), gomock.Any()).
			Return(invoiceitems.InvoiceItem{}, assert.AnError)

		err := b.Update(context.Background(), 1, &Patch{Items: &newItems})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "partial write: invoice 1")
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		b, mockInvoices, _, _, _ := newTestBusiness(ctrl)

		mockInvoices.EXPECT().GetInvoice(gomock.Any(), int64(1)).Return(storedInvoice(1), nil)

		bad := model.InvoiceStatus("archived")
		err := b.Update(context.Background(), 1, &Patch{Status: &bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid invoice status")
	})

	t.Run("due_date_patch_applies", func(t *testing.T) {
		b, mockInvoices, mockItems, _, _ := newTestBusiness(ctrl)

		due := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
		mockInvoices.EXPECT().GetInvoice(gomock.Any(), int64(1)).Return(storedInvoice(1), nil)
		mockItems.EXPECT().ListItemsByInvoice(gomock.Any(), int64(1)).Return([]invoiceitems.InvoiceItem{storedRentRow(1)}, nil)
		mockInvoices.EXPECT().
			UpdateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg invoices.UpdateInvoiceParams) (invoices.Invoice, error) {
				assert.Equal(t, due, arg.DueDate.Time)
				return storedInvoice(1), nil
			})

		err := b.Update(context.Background(), 1, &Patch{DueDate: &due})
		require.NoError(t, err)
	})
}

func TestDeleteInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("happy_case", func(t *testing.T) {
		b, mockInvoices, _, _, _ := newTestBusiness(ctrl)

		mockInvoices.EXPECT().GetInvoice(gomock.Any(), int64(1)).Return(storedInvoice(1), nil)
		mockInvoices.EXPECT().DeleteInvoice(gomock.Any(), int64(1)).Return(nil)

		require.NoError(t, b.Delete(context.Background(), 1))
	})

	t.Run("not_found", func(t *testing.T) {
		b, mockInvoices, _, _, _ := newTestBusiness(ctrl)

		mockInvoices.EXPECT().GetInvoice(gomock.Any(), int64(99)).Return(invoices.Invoice{}, pgx.ErrNoRows)

		err := b.Delete(context.Background(), 99)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invoice not found")
	})
}

func TestSetInvoiceStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("happy_case", func(t *testing.T) {
		b, mockInvoices, _, _, _ := newTestBusiness(ctrl)

		row := storedInvoice(1)
		row.Status = string(model.InvoiceStatusPaid)
		mockInvoices.EXPECT().
			UpdateInvoiceStatus(gomock.Any(), invoices.UpdateInvoiceStatusParams{ID: 1, Status: "paid"}).
			Return(row, nil)

		result, err := b.SetStatus(context.Background(), 1, model.InvoiceStatusPaid)
		require.NoError(t, err)
		assert.Equal(t, model.InvoiceStatusPaid, result.Status)
	})

	t.Run("invalid_status", func(t *testing.T) {
		b, _, _, _, _ := newTestBusiness(ctrl)

		_, err := b.SetStatus(context.Background(), 1, model.InvoiceStatus("void"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid invoice status")
	})

	t.Run("not_found", func(t *testing.T) {
		b, mockInvoices, _, _, _ := newTestBusiness(ctrl)

		mockInvoices.EXPECT().
			UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
			Return(invoices.Invoice{}, pgx.ErrNoRows)

		_, err := b.SetStatus(context.Background(), 99, model.InvoiceStatusPaid)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invoice not found")
	})
}
