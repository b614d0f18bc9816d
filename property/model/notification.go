package model

import (
	"time"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "Pending"
	NotificationStatusSent    NotificationStatus = "Sent"
	NotificationStatusRemoved NotificationStatus = "Removed"
)

// NotificationQueueItem is a queued tenant notification. Status only moves
// forward: Pending -> Sent on a successful dispatch, Pending -> Removed on
// soft delete. Sent and Removed are terminal.
type NotificationQueueItem struct {
	ID        int64              `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	TenantID  *int64             `json:"tenant_id,omitempty"`
	InvoiceID *int64             `json:"invoice_id,omitempty"`
	Title     string             `json:"title"`
	Status    NotificationStatus `json:"status"`
}

// DispatchResult is the per-item outcome of a dispatch batch. A non-empty
// Error means the item was not advanced and stays Pending.
type DispatchResult struct {
	ItemID     int64              `json:"item_id"`
	InvoiceID  int64              `json:"invoice_id,omitempty"`
	TenantName string             `json:"tenant_name,omitempty"`
	Status     NotificationStatus `json:"status"`
	Error      string             `json:"error,omitempty"`
}
