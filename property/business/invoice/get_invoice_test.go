package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/property/repository/invoiceitems"
	"encore.app/property/repository/invoices"
)

func TestListInvoices_ServedFromCacheAfterFirstLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockInvoices, mockItems, _, _ := newTestBusiness(ctrl)

	mockInvoices.EXPECT().
		ListInvoices(gomock.Any()).
		Return([]invoices.Invoice{storedInvoice(1), storedInvoice(2)}, nil).
		Times(1)
	mockItems.EXPECT().
		ListItems(gomock.Any()).
		Return([]invoiceitems.InvoiceItem{storedRentRow(1)}, nil).
		Times(1)

	first, err := b.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Len(t, first[0].Items, 1)
	assert.Empty(t, first[1].Items)

	// Second call must not hit the repository again.
	second, err := b.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found_in_cached_list", func(t *testing.T) {
		b, mockInvoices, mockItems, _, _ := newTestBusiness(ctrl)

		mockInvoices.EXPECT().ListInvoices(gomock.Any()).Return([]invoices.Invoice{storedInvoice(5)}, nil)
		mockItems.EXPECT().ListItems(gomock.Any()).Return(nil, nil)

		result, err := b.Get(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), result.ID)
		assert.Equal(t, "INV-06-24-3-12-123", result.InvoiceNumber)
	})

	t.Run("not_found", func(t *testing.T) {
		b, mockInvoices, mockItems, _, _ := newTestBusiness(ctrl)

		mockInvoices.EXPECT().ListInvoices(gomock.Any()).Return(nil, nil)
		mockItems.EXPECT().ListItems(gomock.Any()).Return(nil, nil)

		_, err := b.Get(context.Background(), 404)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invoice not found")
	})
}
