package notification

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/property/model"
	"encore.app/property/repository/notifications"
)

func TestEnqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("happy_case", func(t *testing.T) {
		b, m := newDispatchBusiness(ctrl)

		m.notifications.EXPECT().
			CreateNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg notifications.CreateNotificationParams) (notifications.NotificationQueueItem, error) {
				assert.Equal(t, "Payment reminder", arg.Title)
				return notifications.NotificationQueueItem{
					ID:     1,
					Title:  arg.Title,
					Status: string(model.NotificationStatusPending),
				}, nil
			})

		item, err := b.Enqueue(context.Background(), &model.NotificationQueueItem{Title: "Payment reminder"})
		require.NoError(t, err)
		assert.Equal(t, model.NotificationStatusPending, item.Status)
	})

	t.Run("missing_title", func(t *testing.T) {
		b, _ := newDispatchBusiness(ctrl)

		_, err := b.Enqueue(context.Background(), &model.NotificationQueueItem{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title is required")
	})
}

func TestRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("happy_case", func(t *testing.T) {
		b, m := newDispatchBusiness(ctrl)

		m.notifications.EXPECT().
			MarkRemoved(gomock.Any(), int64(1)).
			Return(notifications.NotificationQueueItem{ID: 1, Status: string(model.NotificationStatusRemoved)}, nil)

		require.NoError(t, b.Remove(context.Background(), 1))
	})

	// Sent and Removed items never match the guarded update.
	t.Run("terminal_item_reports_not_found", func(t *testing.T) {
		b, m := newDispatchBusiness(ctrl)

		m.notifications.EXPECT().
			MarkRemoved(gomock.Any(), int64(2)).
			Return(notifications.NotificationQueueItem{}, pgx.ErrNoRows)

		err := b.Remove(context.Background(), 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no pending notification to remove")
	})
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newDispatchBusiness(ctrl)

	m.notifications.EXPECT().
		ListNotifications(gomock.Any()).
		Return([]notifications.NotificationQueueItem{
			{ID: 1, Title: "Payment reminder", Status: string(model.NotificationStatusPending)},
			{ID: 2, Title: "Paid confirmation", Status: string(model.NotificationStatusSent)},
		}, nil)

	items, err := b.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.NotificationStatusPending, items[0].Status)
	assert.Equal(t, model.NotificationStatusSent, items[1].Status)
}
