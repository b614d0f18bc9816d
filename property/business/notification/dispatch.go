package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"encore.dev/rlog"

	"encore.app/property/model"
	"encore.app/property/zns"
)

// Dispatch sends the queued notifications one at a time and reports a result
// per item. A failing item is recorded and left Pending; it never stops the
// rest of the batch. Only a Pending item can advance to Sent, so re-running a
// batch that partially succeeded re-sends nothing.
func (b *business) Dispatch(ctx context.Context, token string, ids []int64) ([]model.DispatchResult, error) {
	results := make([]model.DispatchResult, 0, len(ids))
	for _, id := range ids {
		results = append(results, b.dispatchOne(ctx, token, id))
	}
	return results, nil
}

func (b *business) dispatchOne(ctx context.Context, token string, id int64) model.DispatchResult {
	result := model.DispatchResult{ItemID: id, Status: model.NotificationStatusPending}

	row, err := b.notificationRepo.GetNotification(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			result.Error = "notification not found"
		} else {
			result.Error = "failed to load notification"
		}
		return result
	}

	item := convertDBNotificationToModel(row)
	if item.Status != model.NotificationStatusPending {
		result.Status = item.Status
		result.Error = fmt.Sprintf("notification is %s, not Pending", item.Status)
		return result
	}

	if item.InvoiceID == nil {
		result.Error = "notification has no invoice"
		return result
	}
	inv, err := b.invoiceBusiness.Get(ctx, *item.InvoiceID)
	if err != nil {
		result.Error = fmt.Sprintf("failed to load invoice %d", *item.InvoiceID)
		return result
	}
	result.InvoiceID = inv.ID

	if item.TenantID == nil {
		result.Error = "notification has no tenant"
		return result
	}
	tenant, err := b.portfolio.GetTenant(ctx, *item.TenantID)
	if err != nil {
		result.Error = fmt.Sprintf("failed to load tenant %d", *item.TenantID)
		return result
	}
	result.TenantName = tenant.FullName

	if tenant.Phone == "" {
		result.Error = "tenant has no phone number"
		return result
	}

	room, err := b.portfolio.GetRoom(ctx, inv.UnitID)
	if err != nil {
		result.Error = fmt.Sprintf("failed to load room %d", inv.UnitID)
		return result
	}

	msg := zns.BuildMessage(*inv, *tenant, *room)
	if err := b.sender.Send(ctx, token, msg); err != nil {
		rlog.Error("zns send failed", "notification_id", id, "invoice_id", inv.ID, "err", err)
		result.Error = err.Error()
		return result
	}

	if _, err := b.notificationRepo.MarkSent(ctx, id); err != nil {
		// The message went out but the row did not advance; the item stays
		// Pending and a later batch may send it again.
		rlog.Error("failed to mark notification sent", "notification_id", id, "err", err)
		result.Error = "sent but failed to record status"
		return result
	}

	result.Status = model.NotificationStatusSent
	return result
}
