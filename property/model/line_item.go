package model

import (
	"github.com/shopspring/decimal"
)

// ItemType tags a line item variant. The recompute rules in the billing
// package switch exhaustively over this tag.
type ItemType string

const (
	ItemTypeRent        ItemType = "rent"
	ItemTypeElectricity ItemType = "electricity"
	ItemTypeWater       ItemType = "water"
	ItemTypeService     ItemType = "service"
	ItemTypeOther       ItemType = "other"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeRent, ItemTypeElectricity, ItemTypeWater, ItemTypeService, ItemTypeOther:
		return true
	}
	return false
}

type LineItem struct {
	ID              int64            `json:"id"`
	InvoiceID       int64            `json:"invoice_id"`
	Type            ItemType         `json:"item_type"`
	Description     string           `json:"description"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	Total           decimal.Decimal  `json:"total"`
	PreviousReading *decimal.Decimal `json:"previous_reading,omitempty"`
	CurrentReading  *decimal.Decimal `json:"current_reading,omitempty"`
}
