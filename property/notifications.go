package property

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/property/model"
)

type EnqueueNotificationRequest struct {
	TenantID  *int64 `json:"tenant_id,omitempty"`
	InvoiceID *int64 `json:"invoice_id,omitempty"`
	Title     string `json:"title" validate:"required,max=255"`
}

type NotificationResponse struct {
	Notification model.NotificationQueueItem `json:"notification"`
}

type ListNotificationsResponse struct {
	Notifications []model.NotificationQueueItem `json:"notifications"`
}

type DispatchNotificationsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

type DispatchNotificationsResponse struct {
	Results []model.DispatchResult `json:"results"`
}

type RemoveNotificationResponse struct {
	Removed bool `json:"removed"`
}

//encore:api public path=/v1/notifications method=POST
func (s *Service) EnqueueNotification(ctx context.Context, req *EnqueueNotificationRequest) (*NotificationResponse, error) {
	result, err := s.notifications.Enqueue(ctx, &model.NotificationQueueItem{
		TenantID:  req.TenantID,
		InvoiceID: req.InvoiceID,
		Title:     req.Title,
	})
	if err != nil {
		rlog.Error("failed to enqueue notification", "error", err)
		return nil, err
	}

	return &NotificationResponse{Notification: *result}, nil
}

//encore:api public path=/v1/notifications method=GET
func (s *Service) ListNotifications(ctx context.Context) (*ListNotificationsResponse, error) {
	result, err := s.notifications.List(ctx)
	if err != nil {
		rlog.Error("failed to list notifications", "error", err)
		return nil, err
	}

	return &ListNotificationsResponse{Notifications: result}, nil
}

// DispatchNotifications walks the requested queue items in order and sends
// each over ZNS. The response carries one result per item; a failed item is
// reported there and stays Pending rather than failing the batch.
//
//encore:api public path=/v1/notifications/dispatch method=POST
func (s *Service) DispatchNotifications(ctx context.Context, req *DispatchNotificationsRequest) (*DispatchNotificationsResponse, error) {
	results, err := s.notifications.Dispatch(ctx, secrets.ZNSAccessToken, req.IDs)
	if err != nil {
		rlog.Error("failed to dispatch notifications", "error", err)
		return nil, err
	}

	return &DispatchNotificationsResponse{Results: results}, nil
}

//encore:api public path=/v1/notifications/:id method=DELETE
func (s *Service) RemoveNotification(ctx context.Context, id int64) (*RemoveNotificationResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid notification ID"}
	}

	if err := s.notifications.Remove(ctx, id); err != nil {
		rlog.Error("failed to remove notification", "error", err, "id", id)
		return nil, err
	}

	return &RemoveNotificationResponse{Removed: true}, nil
}

// Validate implements validation for EnqueueNotificationRequest
func (r *EnqueueNotificationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// Validate implements validation for DispatchNotificationsRequest
func (r *DispatchNotificationsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
