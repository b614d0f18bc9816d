package notifications

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Querier interface {
	CreateNotification(ctx context.Context, arg CreateNotificationParams) (NotificationQueueItem, error)
	GetNotification(ctx context.Context, id int64) (NotificationQueueItem, error)
	ListNotifications(ctx context.Context) ([]NotificationQueueItem, error)
	MarkSent(ctx context.Context, id int64) (NotificationQueueItem, error)
	MarkRemoved(ctx context.Context, id int64) (NotificationQueueItem, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

var _ Querier = (*Queries)(nil)
