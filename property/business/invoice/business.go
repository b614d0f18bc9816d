package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encore.app/property/cache"
	"encore.app/property/model"
	"encore.app/property/repository/invoiceitems"
	"encore.app/property/repository/invoices"
	"encore.app/property/repository/properties"
	"encore.app/property/repository/readings"
)

type Business interface {
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	Update(ctx context.Context, id int64, patch *Patch) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status model.InvoiceStatus) (*model.Invoice, error)
	Get(ctx context.Context, id int64) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
}

// Patch carries the fields an invoice edit may change. A nil field is left
// untouched. When Items is set the stored line items are replaced wholesale,
// never diffed, so totals stay consistent with the submitted set.
type Patch struct {
	TenantID       *int64
	IssueDate      *time.Time
	DueDate        *time.Time
	Status         *model.InvoiceStatus
	AdditionalFees *decimal.Decimal
	Discounts      *decimal.Decimal
	Notes          *string
	Items          *[]model.LineItem
}

// business handles invoice writes and the cached read path
type business struct {
	invoiceRepo  invoices.Querier
	itemRepo     invoiceitems.Querier
	readingRepo  readings.Querier
	propertyRepo properties.Querier
	cacheStore   *cache.Store
}

// NewBusiness creates the invoice business layer
func NewBusiness(
	invoiceRepo invoices.Querier,
	itemRepo invoiceitems.Querier,
	readingRepo readings.Querier,
	propertyRepo properties.Querier,
	cacheStore *cache.Store,
) Business {
	return &business{
		invoiceRepo:  invoiceRepo,
		itemRepo:     itemRepo,
		readingRepo:  readingRepo,
		propertyRepo: propertyRepo,
		cacheStore:   cacheStore,
	}
}
