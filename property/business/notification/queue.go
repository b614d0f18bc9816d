package notification

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/property/model"
	"encore.app/property/repository/notifications"
	"encore.app/property/repository/pgconv"
)

// Enqueue adds a Pending item to the queue.
func (b *business) Enqueue(ctx context.Context, item *model.NotificationQueueItem) (*model.NotificationQueueItem, error) {
	if item.Title == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "title is required"}
	}

	row, err := b.notificationRepo.CreateNotification(ctx, notifications.CreateNotificationParams{
		TenantID:  pgconv.Int8(item.TenantID),
		InvoiceID: pgconv.Int8(item.InvoiceID),
		Title:     item.Title,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to enqueue notification"}
	}
	result := convertDBNotificationToModel(row)
	return &result, nil
}

// List returns the queue without removed items.
func (b *business) List(ctx context.Context) ([]model.NotificationQueueItem, error) {
	rows, err := b.notificationRepo.ListNotifications(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list notifications"}
	}
	result := make([]model.NotificationQueueItem, len(rows))
	for i, row := range rows {
		result[i] = convertDBNotificationToModel(row)
	}
	return result, nil
}

// Remove soft-deletes a Pending item. Items that already advanced stay as
// they are; the guarded update reports them as not found.
func (b *business) Remove(ctx context.Context, id int64) error {
	if _, err := b.notificationRepo.MarkRemoved(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "no pending notification to remove"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to remove notification"}
	}
	return nil
}

func convertDBNotificationToModel(row notifications.NotificationQueueItem) model.NotificationQueueItem {
	return model.NotificationQueueItem{
		ID:        row.ID,
		CreatedAt: row.CreatedAt.Time,
		TenantID:  pgconv.Int8Ptr(row.TenantID),
		InvoiceID: pgconv.Int8Ptr(row.InvoiceID),
		Title:     row.Title,
		Status:    model.NotificationStatus(row.Status),
	}
}
