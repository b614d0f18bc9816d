// Package billing holds the pure invoice computation rules: default line item
// construction, per-field recomputation on edits, and totals. It performs no
// I/O and never rounds; presentation formatting is the caller's concern.
package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"encore.app/property/model"

	"encore.dev/beta/errs"
)

// FallbackWaterPrice applies when a room has no water price configured.
var FallbackWaterPrice = decimal.NewFromInt(80000)

// Field names an editable line item field for RecomputeItem.
type Field string

const (
	FieldQuantity        Field = "quantity"
	FieldUnitPrice       Field = "unit_price"
	FieldPreviousReading Field = "previous_reading"
	FieldCurrentReading  Field = "current_reading"
)

// BuildDefaultItems returns the canonical starting item set for a new invoice:
// one rent item at the room price, one electricity item seeded with the latest
// meter reading on both sides of the delta, and one water item seeded with the
// consumption recorded so far (water is billed as a supplied amount, not a
// meter delta).
func BuildDefaultItems(room model.Room, latest model.LatestReadings) []model.LineItem {
	prevElectric := decimal.Zero
	if latest.Electricity != nil {
		prevElectric = latest.Electricity.Value
	}

	waterQty := decimal.NewFromInt(1)
	if latest.Water != nil {
		waterQty = latest.Water.Value
	}

	waterPrice := room.WaterPrice
	if waterPrice.IsZero() {
		waterPrice = FallbackWaterPrice
	}

	prev := prevElectric
	curr := prevElectric
	return []model.LineItem{
		{
			Type:        model.ItemTypeRent,
			Description: "Monthly rent",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   room.Price,
			Total:       room.Price,
		},
		{
			Type:            model.ItemTypeElectricity,
			Description:     "Electricity",
			Quantity:        decimal.Zero,
			UnitPrice:       room.ElectricityPrice,
			Total:           decimal.Zero,
			PreviousReading: &prev,
			CurrentReading:  &curr,
		},
		{
			Type:        model.ItemTypeWater,
			Description: "Water",
			Quantity:    waterQty,
			UnitPrice:   waterPrice,
			Total:       waterQty.Mul(waterPrice),
		},
	}
}

// RecomputeItem applies an edit to a single field and re-derives the dependent
// fields for the item's type. Violations are returned as errors, never clamped.
func RecomputeItem(item model.LineItem, field Field, value decimal.Decimal) (model.LineItem, error) {
	switch item.Type {
	case model.ItemTypeElectricity:
		return recomputeElectricity(item, field, value)
	case model.ItemTypeWater, model.ItemTypeRent, model.ItemTypeService, model.ItemTypeOther:
		return recomputeFlat(item, field, value)
	default:
		return item, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("unknown item type %q", item.Type)}
	}
}

func recomputeElectricity(item model.LineItem, field Field, value decimal.Decimal) (model.LineItem, error) {
	switch field {
	case FieldPreviousReading, FieldCurrentReading:
		prev := readingOrZero(item.PreviousReading)
		curr := readingOrZero(item.CurrentReading)
		if field == FieldPreviousReading {
			prev = value
		} else {
			curr = value
		}
		if curr.LessThan(prev) {
			return item, &errs.Error{
				Code:    errs.InvalidArgument,
				Message: fmt.Sprintf("current reading %s is below previous reading %s", curr, prev),
			}
		}
		item.PreviousReading = &prev
		item.CurrentReading = &curr
		item.Quantity = curr.Sub(prev)
		item.Total = item.Quantity.Mul(item.UnitPrice)
		return item, nil

	case FieldUnitPrice:
		if value.IsNegative() {
			return item, &errs.Error{Code: errs.InvalidArgument, Message: "unit price must not be negative"}
		}
		item.UnitPrice = value
		item.Total = item.Quantity.Mul(item.UnitPrice)
		return item, nil

	case FieldQuantity:
		return item, &errs.Error{Code: errs.InvalidArgument, Message: "electricity quantity is derived from meter readings"}

	default:
		return item, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("unknown field %q", field)}
	}
}

func recomputeFlat(item model.LineItem, field Field, value decimal.Decimal) (model.LineItem, error) {
	switch field {
	case FieldQuantity:
		if value.IsNegative() {
			return item, &errs.Error{Code: errs.InvalidArgument, Message: "quantity must not be negative"}
		}
		item.Quantity = value
	case FieldUnitPrice:
		if value.IsNegative() {
			return item, &errs.Error{Code: errs.InvalidArgument, Message: "unit price must not be negative"}
		}
		item.UnitPrice = value
	default:
		return item, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("field %q does not apply to %s items", field, item.Type)}
	}
	item.Total = item.Quantity.Mul(item.UnitPrice)
	return item, nil
}

// RecomputeTotals derives the invoice totals from its items and adjustments.
func RecomputeTotals(items []model.LineItem, additionalFees, discounts decimal.Decimal) (subtotal, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	total = subtotal.Add(additionalFees).Sub(discounts)
	return subtotal, total
}

// ValidateItems sweeps a submitted item set and reports every violation at
// once so the caller can surface all problems together.
func ValidateItems(items []model.LineItem, additionalFees, discounts decimal.Decimal) error {
	var violations []string

	for i, item := range items {
		if !item.Type.Valid() {
			violations = append(violations, fmt.Sprintf("item %d: unknown item type %q", i+1, item.Type))
			continue
		}
		if item.Quantity.IsNegative() {
			violations = append(violations, fmt.Sprintf("item %d (%s): negative quantity %s", i+1, item.Type, item.Quantity))
		}
		if item.UnitPrice.IsNegative() {
			violations = append(violations, fmt.Sprintf("item %d (%s): negative unit price %s", i+1, item.Type, item.UnitPrice))
		}
		if item.Type == model.ItemTypeElectricity {
			prev := readingOrZero(item.PreviousReading)
			curr := readingOrZero(item.CurrentReading)
			if curr.LessThan(prev) {
				violations = append(violations, fmt.Sprintf("item %d (electricity): current reading %s is below previous reading %s", i+1, curr, prev))
			} else if !item.Quantity.Equal(curr.Sub(prev)) {
				violations = append(violations, fmt.Sprintf("item %d (electricity): quantity %s does not match reading delta %s", i+1, item.Quantity, curr.Sub(prev)))
			}
		}
		if !item.Total.Equal(item.Quantity.Mul(item.UnitPrice)) {
			violations = append(violations, fmt.Sprintf("item %d (%s): total %s is not quantity x unit price", i+1, item.Type, item.Total))
		}
	}

	if additionalFees.IsNegative() {
		violations = append(violations, fmt.Sprintf("additional fees must not be negative, got %s", additionalFees))
	}
	if discounts.IsNegative() {
		violations = append(violations, fmt.Sprintf("discounts must not be negative, got %s", discounts))
	}

	if len(violations) > 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: strings.Join(violations, "; ")}
	}
	return nil
}

func readingOrZero(r *decimal.Decimal) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	return *r
}
