package property

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/property/business/invoice"
	"encore.app/property/model"
)

type UpdateInvoiceRequest struct {
	TenantID       *int64            `json:"tenant_id,omitempty"`
	IssueDate      *time.Time        `json:"issue_date,omitempty"`
	DueDate        *time.Time        `json:"due_date,omitempty"`
	Status         *string           `json:"status,omitempty"`
	Items          *[]model.LineItem `json:"items,omitempty"`
	AdditionalFees *decimal.Decimal  `json:"additional_fees,omitempty"`
	Discounts      *decimal.Decimal  `json:"discounts,omitempty"`
	Notes          *string           `json:"notes,omitempty"`
}

//encore:api public path=/v1/invoices/:id method=PUT
func (s *Service) UpdateInvoice(ctx context.Context, id int64, req *UpdateInvoiceRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	patch := &invoice.Patch{
		TenantID:       req.TenantID,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Items:          req.Items,
		AdditionalFees: req.AdditionalFees,
		Discounts:      req.Discounts,
		Notes:          req.Notes,
	}
	if req.Status != nil {
		status := model.InvoiceStatus(*req.Status)
		patch.Status = &status
	}

	if err := s.invoices.Update(ctx, id, patch); err != nil {
		rlog.Error("failed to update invoice", "error", err, "id", id)
		return nil, err
	}

	result, err := s.invoices.Get(ctx, id)
	if err != nil {
		rlog.Error("failed to get updated invoice", "error", err, "id", id)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

// Validate implements validation for UpdateInvoiceRequest
func (r *UpdateInvoiceRequest) Validate() error {
	if r.Status != nil && !model.InvoiceStatus(*r.Status).Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice status"}
	}
	if r.Items != nil && len(*r.Items) == 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "items must not be empty when provided"}
	}
	return nil
}
