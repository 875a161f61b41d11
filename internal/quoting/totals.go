package quoting

import (
	"math"

	"fleethire-backend/internal/domain"
)

// GST applied on top of the line-item subtotal.
const taxRate = 0.10

// Totals derives subtotal, tax and total from the current line items. It is
// recomputed in full on every ledger change; the item count is small enough
// that caching would buy nothing.
func Totals(items []domain.LineItem) domain.QuoteTotals {
	var subtotal int32
	for _, it := range items {
		subtotal += it.TotalCents
	}
	tax := int32(math.Round(float64(subtotal) * taxRate))
	return domain.QuoteTotals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}
