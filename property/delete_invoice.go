package property

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/property/workflow"
)

type DeleteInvoiceResponse struct {
	Deleted bool `json:"deleted"`
}

//encore:api public path=/v1/invoices/:id method=DELETE
func (s *Service) DeleteInvoice(ctx context.Context, id int64) (*DeleteInvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		rlog.Error("failed to load invoice for delete", "error", err, "id", id)
		return nil, err
	}

	if err := s.invoices.Delete(ctx, id); err != nil {
		rlog.Error("failed to delete invoice", "error", err, "id", id)
		return nil, err
	}

	// The due-date workflow has nothing left to watch.
	if inv.WorkflowID != nil {
		workflowID := *inv.WorkflowID
		runAsync("signal-deleted-invoice-paid-workflow", func(ctx context.Context) error {
			return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.InvoicePaidSignalName, workflow.InvoicePaidSignal{PaidBy: "delete"})
		})
	}

	return &DeleteInvoiceResponse{Deleted: true}, nil
}
