package quoting

import "fleethire-backend/internal/domain"

// Catalog is the read-only pricing data the engine works against: active
// vehicle types, locations and pricing rules, fetched once per session.
type Catalog struct {
	VehicleTypes []domain.VehicleType
	Locations    []domain.Location
	PricingRules []domain.PricingRule
}

func (c *Catalog) VehicleTypeByName(name string) *domain.VehicleType {
	for i := range c.VehicleTypes {
		if c.VehicleTypes[i].Name == name {
			return &c.VehicleTypes[i]
		}
	}
	return nil
}

func (c *Catalog) LocationByName(name string) *domain.Location {
	for i := range c.Locations {
		if c.Locations[i].Name == name {
			return &c.Locations[i]
		}
	}
	return nil
}

func (c *Catalog) RuleByID(id int32) *domain.PricingRule {
	for i := range c.PricingRules {
		if c.PricingRules[i].ID == id {
			return &c.PricingRules[i]
		}
	}
	return nil
}

// RulesByType partitions the rule catalog for the quote-builder UI
// (insurance options, km allowances, additional services).
func (c *Catalog) RulesByType(t domain.PricingRuleType) []domain.PricingRule {
	var rules []domain.PricingRule
	for _, r := range c.PricingRules {
		if r.Type == t {
			rules = append(rules, r)
		}
	}
	return rules
}
