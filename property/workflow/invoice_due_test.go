package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	invoicemock "encore.app/property/mocks/business/invoice_business"
	notificationmock "encore.app/property/mocks/business/notification_business"
	"encore.app/property/model"
)

func newWorkflowEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *invoicemock.MockBusiness, *notificationmock.MockBusiness) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockInvoices := invoicemock.NewMockBusiness(ctrl)
	mockNotifications := notificationmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockInvoices, mockNotifications)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(MarkInvoiceOverdueActivity)
	env.RegisterActivity(EnqueueDueReminderActivity)
	return env, mockInvoices, mockNotifications
}

func TestInvoiceDueWorkflow_DueDatePassesWithoutPayment(t *testing.T) {
	env, mockInvoices, mockNotifications := newWorkflowEnv(t)

	tenantID := int64(7)
	invoiceID := int64(101)

	mockInvoices.EXPECT().
		Get(gomock.Any(), invoiceID).
		Return(&model.Invoice{ID: invoiceID, Status: model.InvoiceStatusUnpaid}, nil)
	mockInvoices.EXPECT().
		SetStatus(gomock.Any(), invoiceID, model.InvoiceStatusOverdue).
		Return(&model.Invoice{ID: invoiceID, Status: model.InvoiceStatusOverdue}, nil)
	mockNotifications.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(&model.NotificationQueueItem{ID: 1}, nil)

	params := InvoiceDueParams{
		InvoiceID: invoiceID,
		TenantID:  &tenantID,
		DueDate:   time.Now().Add(14 * 24 * time.Hour),
	}
	env.ExecuteWorkflow(InvoiceDue, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceDueWorkflow_PaidSignalCompletesEarly(t *testing.T) {
	env, _, _ := newWorkflowEnv(t)

	// No activity expectations: a paid invoice triggers nothing.
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(InvoicePaidSignalName, InvoicePaidSignal{PaidBy: "landlord"})
	}, time.Hour)

	params := InvoiceDueParams{
		InvoiceID: 202,
		DueDate:   time.Now().Add(14 * 24 * time.Hour),
	}
	env.ExecuteWorkflow(InvoiceDue, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestInvoiceDueWorkflow_AlreadyPaidAtDueDateIsLeftAlone(t *testing.T) {
	env, mockInvoices, _ := newWorkflowEnv(t)

	invoiceID := int64(303)
	mockInvoices.EXPECT().
		Get(gomock.Any(), invoiceID).
		Return(&model.Invoice{ID: invoiceID, Status: model.InvoiceStatusPaid}, nil)
	// SetStatus must not be called; the reminder is skipped entirely because
	// markOverdue short-circuits before it.

	params := InvoiceDueParams{
		InvoiceID: invoiceID,
		DueDate:   time.Now().Add(24 * time.Hour),
	}
	env.ExecuteWorkflow(InvoiceDue, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}
