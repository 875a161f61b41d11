package quoting

import "fleethire-backend/internal/domain"

// ResolveDailyRate picks the daily rate for a vehicle type at the given hire
// length. Tier boundaries are inclusive lower bounds evaluated from the
// longest bracket down: 364+, 179-363, 30-178, 15-29, 1-14. A vehicle with no
// tier table, or a zero entry in the resolved tier, falls back to the flat
// daily rate.
func ResolveDailyRate(vt *domain.VehicleType, days int32) int32 {
	if vt == nil {
		return 0
	}

	var tierRate int32
	if t := vt.PricingTiers; t != nil {
		switch {
		case days >= 364:
			tierRate = t.Tier364PlusCents
		case days >= 179:
			tierRate = t.Tier179To363Cents
		case days >= 30:
			tierRate = t.Tier30To178Cents
		case days >= 15:
			tierRate = t.Tier15To29Cents
		default:
			tierRate = t.Tier1To14Cents
		}
	}

	if tierRate == 0 {
		return vt.DailyRateCents
	}
	return tierRate
}
