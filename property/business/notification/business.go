package notification

import (
	"context"

	"encore.app/property/business/invoice"
	"encore.app/property/business/portfolio"
	"encore.app/property/model"
	"encore.app/property/repository/notifications"
	"encore.app/property/zns"
)

type Business interface {
	Dispatch(ctx context.Context, token string, ids []int64) ([]model.DispatchResult, error)
	Enqueue(ctx context.Context, item *model.NotificationQueueItem) (*model.NotificationQueueItem, error)
	List(ctx context.Context) ([]model.NotificationQueueItem, error)
	Remove(ctx context.Context, id int64) error
}

// business owns the notification queue: enqueueing, listing, soft deletes,
// and dispatching batches to the ZNS provider.
type business struct {
	notificationRepo notifications.Querier
	invoiceBusiness  invoice.Business
	portfolio        portfolio.Business
	sender           zns.Sender
}

// NewBusiness creates the notification business layer
func NewBusiness(
	notificationRepo notifications.Querier,
	invoiceBusiness invoice.Business,
	portfolioBusiness portfolio.Business,
	sender zns.Sender,
) Business {
	return &business{
		notificationRepo: notificationRepo,
		invoiceBusiness:  invoiceBusiness,
		portfolio:        portfolioBusiness,
		sender:           sender,
	}
}
