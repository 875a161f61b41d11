package domain

import "time"

// PricingTiers is the 5-bracket daily rate table keyed by hire length.
// A zero entry means "no tier rate" and falls back to the flat daily rate.
type PricingTiers struct {
	Tier1To14Cents    int32 `json:"tier_1_14_days_cents"`
	Tier15To29Cents   int32 `json:"tier_15_29_days_cents"`
	Tier30To178Cents  int32 `json:"tier_30_178_days_cents"`
	Tier179To363Cents int32 `json:"tier_179_363_days_cents"`
	Tier364PlusCents  int32 `json:"tier_364_plus_days_cents"`
}

type VehicleType struct {
	ID             int32         `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	DailyRateCents int32         `json:"daily_rate_cents"`
	PricingTiers   *PricingTiers `json:"pricing_tiers,omitempty"`
	Active         bool          `json:"active"`
	CreatedOn      time.Time     `json:"created_on"`
	UpdatedOn      time.Time     `json:"updated_on"`
}
