package workflow

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/property/business/invoice"
	"encore.app/property/business/notification"
	"encore.app/property/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	InvoiceBusiness      invoice.Business
	NotificationBusiness notification.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(invoiceBusiness invoice.Business, notificationBusiness notification.Business) {
	activityDeps = &ActivityDependencies{
		InvoiceBusiness:      invoiceBusiness,
		NotificationBusiness: notificationBusiness,
	}
}

// MarkInvoiceOverdueActivity flips an unpaid invoice to overdue once its due
// date passes. An invoice that was paid in the meantime is left alone; the
// returned bool tells the workflow whether the transition happened.
func MarkInvoiceOverdueActivity(ctx context.Context, invoiceID int64) (bool, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing mark invoice overdue activity", "invoiceID", invoiceID)

	if activityDeps == nil || activityDeps.InvoiceBusiness == nil {
		logger.Error("Activity dependencies not set")
		return false, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	inv, err := activityDeps.InvoiceBusiness.Get(ctx, invoiceID)
	if err != nil {
		logger.Error("Failed to load invoice", "invoiceID", invoiceID, "error", err)
		return false, err
	}
	if inv.Status == model.InvoiceStatusPaid {
		logger.Info("Invoice already paid, skipping overdue transition", "invoiceID", invoiceID)
		return false, nil
	}

	if _, err := activityDeps.InvoiceBusiness.SetStatus(ctx, invoiceID, model.InvoiceStatusOverdue); err != nil {
		logger.Error("Failed to mark invoice overdue", "invoiceID", invoiceID, "error", err)
		return false, err
	}

	logger.Info("Successfully marked invoice overdue", "invoiceID", invoiceID)
	return true, nil
}

// EnqueueDueReminderActivity queues a payment reminder for the overdue
// invoice's tenant.
func EnqueueDueReminderActivity(ctx context.Context, invoiceID int64, tenantID *int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing enqueue due reminder activity", "invoiceID", invoiceID)

	if activityDeps == nil || activityDeps.NotificationBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	_, err := activityDeps.NotificationBusiness.Enqueue(ctx, &model.NotificationQueueItem{
		TenantID:  tenantID,
		InvoiceID: &invoiceID,
		Title:     fmt.Sprintf("Invoice %d is overdue", invoiceID),
	})
	if err != nil {
		logger.Error("Failed to enqueue due reminder", "invoiceID", invoiceID, "error", err)
		return err
	}

	logger.Info("Successfully enqueued due reminder", "invoiceID", invoiceID)
	return nil
}
