package invoice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/property/cache"
	"encore.app/property/mocks/repository/invoice_repo"
	"encore.app/property/mocks/repository/invoiceitem_repo"
	"encore.app/property/mocks/repository/property_repo"
	"encore.app/property/mocks/repository/reading_repo"
	"encore.app/property/model"
	"encore.app/property/repository/invoiceitems"
	"encore.app/property/repository/invoices"
	"encore.app/property/repository/pgconv"
	"encore.app/property/repository/properties"
	"encore.app/property/repository/readings"
)

func newTestBusiness(ctrl *gomock.Controller) (*business, *invoice_repo.MockQuerier, *invoiceitem_repo.MockQuerier, *reading_repo.MockQuerier, *property_repo.MockQuerier) {
	mockInvoices := invoice_repo.NewMockQuerier(ctrl)
	mockItems := invoiceitem_repo.NewMockQuerier(ctrl)
	mockReadings := reading_repo.NewMockQuerier(ctrl)
	mockProperties := property_repo.NewMockQuerier(ctrl)
	b := &business{
		invoiceRepo:  mockInvoices,
		itemRepo:     mockItems,
		readingRepo:  mockReadings,
		propertyRepo: mockProperties,
		cacheStore:   cache.NewStore(),
	}
	return b, mockInvoices, mockItems, mockReadings, mockProperties
}

func testApartment() properties.Apartment {
	return properties.Apartment{
		ID:               12,
		BuildingID:       3,
		Name:             "A-12",
		Price:            pgconv.Numeric(decimal.NewFromInt(3000000)),
		ElectricityPrice: pgconv.Numeric(decimal.NewFromInt(3800)),
		WaterPrice:       pgconv.Numeric(decimal.NewFromInt(80000)),
	}
}

func rentItem() model.LineItem {
	return model.LineItem{
		Type:      model.ItemTypeRent,
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.NewFromInt(3000000),
		Total:     decimal.NewFromInt(3000000),
	}
}

func TestCreateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issueDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("happy_case", func(t *testing.T) {
		b, mockInvoices, mockItems, _, mockProperties := newTestBusiness(ctrl)

		mockProperties.EXPECT().GetApartment(gomock.Any(), int64(12)).Return(testApartment(), nil)
		mockInvoices.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg invoices.CreateInvoiceParams) (invoices.Invoice, error) {
				assert.True(t, strings.HasPrefix(arg.InvoiceNumber, "INV-06-24-3-12-"))
				assert.Equal(t, string(model.InvoiceStatusUnpaid), arg.Status)
				assert.Equal(t, "3000000", pgconv.Decimal(arg.Total).String())
				return invoices.Invoice{ID: 1, ApartmentID: 12, InvoiceNumber: arg.InvoiceNumber, Status: arg.Status, Subtotal: arg.Subtotal, Total: arg.Total}, nil
			})
		mockItems.EXPECT().
			CreateInvoiceItem(gomock.Any(), gomock.Any()).
			Return(invoiceitems.InvoiceItem{ID: 10, InvoiceID: 1, ItemType: "rent"}, nil)

		result, err := b.Create(context.Background(), &model.Invoice{
			UnitID:    12,
			IssueDate: issueDate,
			DueDate:   issueDate.AddDate(0, 0, 14),
			Items:     []model.LineItem{rentItem()},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		assert.Len(t, result.Items, 1)
	})

	t.Run("unit_not_found", func(t *testing.T) {
		b, _, _, _, mockProperties := newTestBusiness(ctrl)

		mockProperties.EXPECT().GetApartment(gomock.Any(), int64(99)).Return(properties.Apartment{}, pgx.ErrNoRows)

		_, err := b.Create(context.Background(), &model.Invoice{
			UnitID:    99,
			IssueDate: issueDate,
			Items:     []model.LineItem{rentItem()},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit not found")
	})

	t.Run("invoice_number_conflict", func(t *testing.T) {
		b, mockInvoices, _, _, mockProperties := newTestBusiness(ctrl)

		mockProperties.EXPECT().GetApartment(gomock.Any(), int64(12)).Return(testApartment(), nil)
		mockInvoices.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			Return(invoices.Invoice{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := b.Create(context.Background(), &model.Invoice{
			UnitID:    12,
			IssueDate: issueDate,
			Items:     []model.LineItem{rentItem()},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invoice number conflict")
	})

	t.Run("invalid_items_rejected_before_any_write", func(t *testing.T) {
		b, _, _, _, _ := newTestBusiness(ctrl)

		bad := rentItem()
		bad.UnitPrice = decimal.NewFromInt(-1)

		_, err := b.Create(context.Background(), &model.Invoice{
			UnitID:    12,
			IssueDate: issueDate,
			Items:     []model.LineItem{bad},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit_price")
	})
}

// A line item insert failing after the invoice row was written must surface
// the partial write and leave the invoice in place: no delete is attempted.
func TestCreateInvoice_PartialItemWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockInvoices, mockItems, _, mockProperties := newTestBusiness(ctrl)
	issueDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mockProperties.EXPECT().GetApartment(gomock.Any(), int64(12)).Return(testApartment(), nil)
	mockInvoices.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(invoices.Invoice{ID: 7, ApartmentID: 12}, nil)
	mockItems.EXPECT().
		CreateInvoiceItem(gomock.Any(), gomock.Any()).
		Return(invoiceitems.InvoiceItem{}, assert.AnError)

	_, err := b.Create(context.Background(), &model.Invoice{
		UnitID:    12,
		IssueDate: issueDate,
		Items:     []model.LineItem{rentItem()},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "partial write: invoice 7")
	assert.Contains(t, err.Error(), "line items")
}

// Electricity items record the current meter value; water items record the
// billed consumption. Rent items record nothing.
func TestCreateInvoice_RecordsReadings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockInvoices, mockItems, mockReadings, mockProperties := newTestBusiness(ctrl)
	issueDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	prev := decimal.NewFromInt(120)
	curr := decimal.NewFromInt(150)
	elec := model.LineItem{
		Type:            model.ItemTypeElectricity,
		Quantity:        decimal.NewFromInt(30),
		UnitPrice:       decimal.NewFromInt(3800),
		Total:           decimal.NewFromInt(114000),
		PreviousReading: &prev,
		CurrentReading:  &curr,
	}
	water := model.LineItem{
		Type:      model.ItemTypeWater,
		Quantity:  decimal.NewFromInt(5),
		UnitPrice: decimal.NewFromInt(80000),
		Total:     decimal.NewFromInt(400000),
	}

	mockProperties.EXPECT().GetApartment(gomock.Any(), int64(12)).Return(testApartment(), nil)
	mockInvoices.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(invoices.Invoice{ID: 1, ApartmentID: 12}, nil)
	mockItems.EXPECT().
		CreateInvoiceItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg invoiceitems.CreateInvoiceItemParams) (invoiceitems.InvoiceItem, error) {
			return invoiceitems.InvoiceItem{
				InvoiceID:       arg.InvoiceID,
				ItemType:        arg.ItemType,
				Quantity:        arg.Quantity,
				UnitPrice:       arg.UnitPrice,
				Total:           arg.Total,
				PreviousReading: arg.PreviousReading,
				CurrentReading:  arg.CurrentReading,
			}, nil
		}).
		Times(2)

	var recorded []readings.CreateReadingParams
	mockReadings.EXPECT().
		CreateReading(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg readings.CreateReadingParams) (readings.UtilityReading, error) {
			recorded = append(recorded, arg)
			return readings.UtilityReading{}, nil
		}).
		Times(2)

	_, err := b.Create(context.Background(), &model.Invoice{
		UnitID:    12,
		IssueDate: issueDate,
		Items:     []model.LineItem{elec, water},
	})

	require.NoError(t, err)
	require.Len(t, recorded, 2)
	assert.Equal(t, "electricity", recorded[0].UtilityKind)
	assert.Equal(t, "150", pgconv.Decimal(recorded[0].Value).String())
	assert.Equal(t, "water", recorded[1].UtilityKind)
	assert.Equal(t, "5", pgconv.Decimal(recorded[1].Value).String())
}
