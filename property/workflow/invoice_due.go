package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// InvoiceDueParams contains parameters for starting the due-date workflow
type InvoiceDueParams struct {
	InvoiceID int64     `json:"invoice_id"`
	TenantID  *int64    `json:"tenant_id,omitempty"`
	DueDate   time.Time `json:"due_date"`
}

// InvoiceDue watches one invoice until its due date. A paid signal ends the
// workflow early; otherwise the invoice is marked overdue and a reminder is
// queued for the tenant.
func InvoiceDue(ctx workflow.Context, params InvoiceDueParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting invoice due workflow", "invoiceID", params.InvoiceID, "dueDate", params.DueDate)

	now := workflow.Now(ctx)
	waitDuration := params.DueDate.Sub(now)
	if waitDuration < 0 {
		waitDuration = 0
	}

	timer := workflow.NewTimer(ctx, waitDuration)
	paidCh := workflow.GetSignalChannel(ctx, InvoicePaidSignalName)

	paid := false
	dueReached := false

	for !paid && !dueReached {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(paidCh, func(c workflow.ReceiveChannel, more bool) {
			var signal InvoicePaidSignal
			c.Receive(ctx, &signal)
			logger.Info("Invoice paid before due date", "invoiceID", params.InvoiceID, "paidBy", signal.PaidBy)
			paid = true
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Due date reached without payment", "invoiceID", params.InvoiceID)
			dueReached = true
		})

		selector.Select(ctx)
	}

	if paid {
		logger.Info("Invoice due workflow completed, invoice settled", "invoiceID", params.InvoiceID)
		return nil
	}

	transitioned, err := markOverdue(ctx, params.InvoiceID)
	if err != nil {
		logger.Error("Failed to mark invoice overdue", "invoiceID", params.InvoiceID, "error", err)
		return err
	}
	if !transitioned {
		logger.Info("Invoice settled at due date, no reminder needed", "invoiceID", params.InvoiceID)
		return nil
	}

	if err := enqueueDueReminder(ctx, params.InvoiceID, params.TenantID); err != nil {
		// The overdue transition already happened; a lost reminder is not
		// worth failing the workflow over.
		logger.Error("Failed to enqueue due reminder", "invoiceID", params.InvoiceID, "error", err)
	}

	logger.Info("Invoice due workflow completed", "invoiceID", params.InvoiceID)
	return nil
}

// markOverdue executes the MarkInvoiceOverdue activity
func markOverdue(ctx workflow.Context, invoiceID int64) (bool, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var transitioned bool
	err := workflow.ExecuteActivity(activityCtx, MarkInvoiceOverdueActivity, invoiceID).Get(ctx, &transitioned)
	return transitioned, err
}

// enqueueDueReminder executes the EnqueueDueReminder activity
func enqueueDueReminder(ctx workflow.Context, invoiceID int64, tenantID *int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, EnqueueDueReminderActivity, invoiceID, tenantID).Get(ctx, nil)
}
