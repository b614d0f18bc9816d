// Package zns talks to the ZNS templated-message provider used for tenant
// notifications (invoice reminders and payment confirmations).
package zns

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"encore.app/property/model"
)

const (
	// CountryCode prefixes normalized phone numbers.
	CountryCode = "84"

	// Provider template identifiers, one per invoice state.
	TemplatePaymentRequest   = "318430"
	TemplatePaidConfirmation = "318431"
)

// Message is the provider's wire payload.
type Message struct {
	Phone        string            `json:"phone"`
	TemplateID   string            `json:"template_id"`
	TemplateData map[string]string `json:"template_data"`
	TrackingID   string            `json:"tracking_id"`
}

// NormalizePhone rewrites a locally formatted number into the provider's
// expected form: separators stripped, the leading 0 dropped, country code
// prefixed.
func NormalizePhone(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "").Replace(phone)
	cleaned = strings.TrimPrefix(cleaned, "+")
	if strings.HasPrefix(cleaned, CountryCode) {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "0")
	return CountryCode + cleaned
}

// amount renders a money value as the digit-only string the provider expects.
func amount(d decimal.Decimal) string {
	return d.StringFixed(0)
}

// BuildMessage renders the provider payload for one invoice. Paid invoices
// get the confirmation template; everything else gets the payment request
// carrying the per-utility amounts, fees, and discount.
func BuildMessage(inv model.Invoice, tenant model.Tenant, room model.Room) Message {
	msg := Message{
		Phone:      NormalizePhone(tenant.Phone),
		TrackingID: fmt.Sprintf("inv_%d", inv.ID),
	}

	if inv.Status == model.InvoiceStatusPaid {
		msg.TemplateID = TemplatePaidConfirmation
		msg.TemplateData = map[string]string{
			"price":          amount(inv.Total),
			"invoice_number": inv.InvoiceNumber,
			"customer_name":  tenant.FullName,
			"room":           room.Name,
		}
		return msg
	}

	electricity := decimal.Zero
	water := decimal.Zero
	for _, item := range inv.Items {
		switch item.Type {
		case model.ItemTypeElectricity:
			electricity = electricity.Add(item.Total)
		case model.ItemTypeWater:
			water = water.Add(item.Total)
		}
	}

	msg.TemplateID = TemplatePaymentRequest
	msg.TemplateData = map[string]string{
		"customer_name":   tenant.FullName,
		"contract_number": inv.InvoiceNumber,
		"transfer_amount": amount(inv.Total),
		"transfer_note":   fmt.Sprintf("%s %s", inv.InvoiceNumber, tenant.FullName),
		"electricity":     amount(electricity),
		"water":           amount(water),
		"fee":             amount(inv.AdditionalFees),
		"discount":        amount(inv.Discounts),
		"total":           amount(inv.Total),
		"room_price":      amount(room.Price),
	}
	return msg
}
