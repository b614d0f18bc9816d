package workflow

const (
	// Signal names
	InvoicePaidSignalName = "invoice-paid"
)

// InvoicePaidSignal tells the due-date workflow the invoice settled before
// the deadline, so no overdue handling is needed.
type InvoicePaidSignal struct {
	PaidBy string `json:"paid_by"`
}
