package billing

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// InvoiceNumber formats an invoice identifier as
// INV-{MM}-{YY}-{buildingID}-{unitID}-{rand}. The random 0-999 suffix lowers
// the odds of a same-month collision for the same unit; true uniqueness is the
// storage constraint's job, and the caller maps a conflict there to an error.
func InvoiceNumber(buildingID, unitID int64, issueDate time.Time) string {
	return fmt.Sprintf("INV-%02d-%02d-%d-%d-%d",
		int(issueDate.Month()), issueDate.Year()%100, buildingID, unitID, rand.IntN(1000))
}
