package domain

import "time"

type PricingRuleType string

const (
	PricingRuleTypeInsurance         PricingRuleType = "INSURANCE"
	PricingRuleTypeKmAllowance       PricingRuleType = "KM_ALLOWANCE"
	PricingRuleTypeAdditionalService PricingRuleType = "ADDITIONAL_SERVICE"
	PricingRuleTypeLocationSurcharge PricingRuleType = "LOCATION_SURCHARGE"
)

// PricingRule is a catalog entry applied to a quote either per billable day
// (DailyRateAdjustmentCents, signed) or once (OneTimeFeeCents).
type PricingRule struct {
	ID                       int32           `json:"id"`
	Name                     string          `json:"name"`
	Type                     PricingRuleType `json:"type"`
	DailyRateAdjustmentCents int32           `json:"daily_rate_adjustment_cents"`
	OneTimeFeeCents          int32           `json:"one_time_fee_cents"`
	Active                   bool            `json:"active"`
	CreatedOn                time.Time       `json:"created_on"`
	UpdatedOn                time.Time       `json:"updated_on"`
}
