package notifications

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationQueueItem struct {
	ID        int64
	CreatedAt pgtype.Timestamptz
	TenantID  pgtype.Int8
	InvoiceID pgtype.Int8
	Title     string
	Status    string
}

const notificationColumns = `id, created_at, tenant_id, invoice_id, title, status`

func scanNotification(row interface{ Scan(...interface{}) error }) (NotificationQueueItem, error) {
	var n NotificationQueueItem
	err := row.Scan(&n.ID, &n.CreatedAt, &n.TenantID, &n.InvoiceID, &n.Title, &n.Status)
	return n, err
}

const createNotification = `INSERT INTO notification_queue (tenant_id, invoice_id, title, status)
VALUES ($1, $2, $3, 'Pending')
RETURNING ` + notificationColumns

type CreateNotificationParams struct {
	TenantID  pgtype.Int8
	InvoiceID pgtype.Int8
	Title     string
}

func (q *Queries) CreateNotification(ctx context.Context, arg CreateNotificationParams) (NotificationQueueItem, error) {
	return scanNotification(q.db.QueryRow(ctx, createNotification, arg.TenantID, arg.InvoiceID, arg.Title))
}

const getNotification = `SELECT ` + notificationColumns + ` FROM notification_queue WHERE id = $1`

func (q *Queries) GetNotification(ctx context.Context, id int64) (NotificationQueueItem, error) {
	return scanNotification(q.db.QueryRow(ctx, getNotification, id))
}

// Removed items are soft deleted and excluded from every listing.
const listNotifications = `SELECT ` + notificationColumns + ` FROM notification_queue
WHERE status <> 'Removed'
ORDER BY created_at DESC, id DESC`

func (q *Queries) ListNotifications(ctx context.Context) ([]NotificationQueueItem, error) {
	rows, err := q.db.Query(ctx, listNotifications)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NotificationQueueItem
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// The status guard in the WHERE clause makes Sent and Removed terminal: the
// update matches no row unless the item is still Pending, and the caller sees
// pgx.ErrNoRows.
const markSent = `UPDATE notification_queue SET status = 'Sent'
WHERE id = $1 AND status = 'Pending'
RETURNING ` + notificationColumns

func (q *Queries) MarkSent(ctx context.Context, id int64) (NotificationQueueItem, error) {
	return scanNotification(q.db.QueryRow(ctx, markSent, id))
}

const markRemoved = `UPDATE notification_queue SET status = 'Removed'
WHERE id = $1 AND status = 'Pending'
RETURNING ` + notificationColumns

func (q *Queries) MarkRemoved(ctx context.Context, id int64) (NotificationQueueItem, error) {
	return scanNotification(q.db.QueryRow(ctx, markRemoved, id))
}
