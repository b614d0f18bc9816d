package property

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/property/model"
	"encore.app/property/workflow"
)

type SetInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unpaid paid overdue"`
}

//encore:api public path=/v1/invoices/:id/status method=POST
func (s *Service) SetInvoiceStatus(ctx context.Context, id int64, req *SetInvoiceStatusRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	status := model.InvoiceStatus(req.Status)
	result, err := s.invoices.SetStatus(ctx, id, status)
	if err != nil {
		rlog.Error("failed to set invoice status", "error", err, "id", id, "status", req.Status)
		return nil, err
	}

	// A paid invoice releases its due-date workflow early.
	if status == model.InvoiceStatusPaid && result.WorkflowID != nil {
		workflowID := *result.WorkflowID
		runAsync("signal-invoice-paid-workflow", func(ctx context.Context) error {
			return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.InvoicePaidSignalName, workflow.InvoicePaidSignal{PaidBy: "landlord"})
		})
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

// Validate implements validation for SetInvoiceStatusRequest
func (r *SetInvoiceStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
