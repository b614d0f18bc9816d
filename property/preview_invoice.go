package property

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/property/billing"
	"encore.app/property/model"
)

type PreviewInvoiceRequest struct {
	UnitID         int64           `json:"unit_id" validate:"required,gt=0"`
	AdditionalFees decimal.Decimal `json:"additional_fees"`
	Discounts      decimal.Decimal `json:"discounts"`
}

type PreviewInvoiceResponse struct {
	Items    []model.LineItem `json:"items"`
	Subtotal decimal.Decimal  `json:"subtotal"`
	Total    decimal.Decimal  `json:"total"`
}

// PreviewInvoice seeds the invoice form for a unit: rent at the room price,
// electricity continuing from the last recorded reading, water at the last
// billed consumption. Nothing is written.
//
//encore:api public path=/v1/invoices/preview method=POST
func (s *Service) PreviewInvoice(ctx context.Context, req *PreviewInvoiceRequest) (*PreviewInvoiceResponse, error) {
	room, err := s.portfolio.GetRoom(ctx, req.UnitID)
	if err != nil {
		rlog.Error("failed to load room for preview", "error", err, "unit_id", req.UnitID)
		return nil, err
	}

	latest, err := s.readings.Latest(ctx, req.UnitID)
	if err != nil {
		rlog.Error("failed to load latest readings for preview", "error", err, "unit_id", req.UnitID)
		return nil, err
	}

	items := billing.BuildDefaultItems(*room, latest)
	subtotal, total := billing.RecomputeTotals(items, req.AdditionalFees, req.Discounts)

	return &PreviewInvoiceResponse{
		Items:    items,
		Subtotal: subtotal,
		Total:    total,
	}, nil
}

// Validate implements validation for PreviewInvoiceRequest
func (r *PreviewInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
