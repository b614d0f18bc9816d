package property

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/property/model"
	"encore.app/property/workflow"
)

type CreateInvoiceRequest struct {
	UnitID         int64            `json:"unit_id" validate:"required,gt=0"`
	TenantID       *int64           `json:"tenant_id,omitempty"`
	IssueDate      time.Time        `json:"issue_date"`
	DueDate        time.Time        `json:"due_date" validate:"required"`
	Items          []model.LineItem `json:"items" validate:"required,min=1"`
	AdditionalFees decimal.Decimal  `json:"additional_fees"`
	Discounts      decimal.Decimal  `json:"discounts"`
	Notes          string           `json:"notes,omitempty" validate:"max=1000"`
}

type InvoiceResponse struct {
	Invoice model.Invoice `json:"invoice"`
}

//encore:api public path=/v1/invoices method=POST
func (s *Service) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*InvoiceResponse, error) {
	if req.IssueDate.IsZero() {
		req.IssueDate = time.Now()
	}

	result, err := s.invoices.Create(ctx, &model.Invoice{
		UnitID:         req.UnitID,
		TenantID:       req.TenantID,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Items:          req.Items,
		AdditionalFees: req.AdditionalFees,
		Discounts:      req.Discounts,
		Notes:          req.Notes,
	})
	if err != nil {
		rlog.Error("failed to create invoice", "error", err)
		return nil, err
	}

	// Start the due-date workflow for the new invoice
	if wfErr := s.startInvoiceDueWorkflow(ctx, result); wfErr != nil {
		// We intentionally do not fail the overall request, but we emit structured context
		rlog.Error("workflow start issue", "invoice_id", result.ID, "workflow_id", invoiceWorkflowID(result), "error", wfErr)
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

// Validate implements validation for CreateInvoiceRequest using go-playground/validator
func (r *CreateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if !r.IssueDate.IsZero() && r.DueDate.Before(r.IssueDate) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "due_date must be after issue_date"}
	}

	return nil
}

func invoiceWorkflowID(inv *model.Invoice) string {
	if inv.WorkflowID != nil {
		return *inv.WorkflowID
	}
	return fmt.Sprintf("invoice-due-%s", inv.InvoiceNumber)
}

// startInvoiceDueWorkflow starts the Temporal workflow that watches the
// invoice until its due date.
func (s *Service) startInvoiceDueWorkflow(ctx context.Context, inv *model.Invoice) error {
	workflowID := invoiceWorkflowID(inv)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.InvoiceDueParams{
		InvoiceID: inv.ID,
		TenantID:  inv.TenantID,
		DueDate:   inv.DueDate,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.InvoiceDue, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "invoice_id", inv.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
