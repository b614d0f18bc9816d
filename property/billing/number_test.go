package billing

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceNumber_Format(t *testing.T) {
	issueDate := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	got := InvoiceNumber(3, 12, issueDate)
	assert.True(t, strings.HasPrefix(got, "INV-06-24-3-12-"), "got %q", got)

	parts := strings.Split(got, "-")
	require.Len(t, parts, 6)
	suffix, err := strconv.Atoi(parts[5])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, suffix, 0)
	assert.Less(t, suffix, 1000)
}

func TestInvoiceNumber_ZeroPadding(t *testing.T) {
	issueDate := time.Date(2031, time.January, 2, 0, 0, 0, 0, time.UTC)
	got := InvoiceNumber(7, 101, issueDate)
	assert.True(t, strings.HasPrefix(got, "INV-01-31-7-101-"), "got %q", got)
}
