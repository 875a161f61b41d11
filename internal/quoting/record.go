package quoting

import (
	"fmt"
	"math/rand"
	"time"

	"fleethire-backend/internal/domain"
)

// Quotes are honoured for 14 days from creation.
const ValidityDays = 14

// NewQuoteNumber generates a reference in the form
// QUO-<6 trailing digits of the millisecond timestamp>-<3-digit random>.
func NewQuoteNumber(now time.Time) string {
	return fmt.Sprintf("QUO-%06d-%03d", now.UnixMilli()%1000000, rand.Intn(1000))
}

// BuildQuote freezes a draft into the persistable quote record handed to the
// submission collaborators (store + email).
func BuildQuote(d domain.QuoteDraft, now time.Time) domain.Quote {
	totals := Totals(d.LineItems)
	return domain.Quote{
		QuoteNumber:        NewQuoteNumber(now),
		CustomerName:       d.CustomerName,
		CustomerEmail:      d.CustomerEmail,
		PickupDate:         d.PickupDate,
		DropoffDate:        d.DropoffDate,
		PickupTime:         d.PickupTime,
		DropoffTime:        d.DropoffTime,
		HireDurationDays:   d.HireDurationDays,
		VehicleCategory:    d.VehicleCategory,
		PickupLocation:     d.PickupLocation,
		DropoffLocation:    d.DropoffLocation,
		InsuranceRuleID:    d.InsuranceRuleID,
		KmOptionName:       d.KmOptionName,
		RequirementRuleIDs: append([]int32(nil), d.RequirementRuleIDs...),
		LineItems:          append([]domain.LineItem(nil), d.LineItems...),
		SubtotalCents:      totals.SubtotalCents,
		TaxCents:           totals.TaxCents,
		TotalCents:         totals.TotalCents,
		ValidUntil:         now.AddDate(0, 0, ValidityDays),
		Status:             domain.QuoteStatusSent,
		Notes:              d.Notes,
		HowHeard:           d.HowHeard,
	}
}
