package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID             int64           `json:"id"`
	UnitID         int64           `json:"unit_id"`
	TenantID       *int64          `json:"tenant_id,omitempty"`
	InvoiceNumber  string          `json:"invoice_number"`
	IssueDate      time.Time       `json:"issue_date"`
	DueDate        time.Time       `json:"due_date"`
	Status         InvoiceStatus   `json:"status"`
	Items          []LineItem      `json:"items,omitempty"`
	AdditionalFees decimal.Decimal `json:"additional_fees"`
	Discounts      decimal.Decimal `json:"discounts"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Total          decimal.Decimal `json:"total"`
	Notes          string          `json:"notes,omitempty"`
	WorkflowID     *string         `json:"workflow_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}
