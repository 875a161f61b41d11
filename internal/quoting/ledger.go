package quoting

import "fleethire-backend/internal/domain"

// NewDraft returns an empty quote draft with the default pickup/dropoff times
// and the minimum one-day duration.
func NewDraft() domain.QuoteDraft {
	return domain.QuoteDraft{
		PickupTime:       "09:00",
		DropoffTime:      "17:00",
		HireDurationDays: 1,
	}
}

// Reduce applies one quote-builder event to a draft and returns the next
// state. It is a pure function: the input draft is not modified, and only the
// line items owned by the event's selection category change. A naive
// recompute-everything would reorder rows and clobber unrelated selections;
// reconciliation here is scoped to the category tag on each line item.
func Reduce(d domain.QuoteDraft, ev Event, cat *Catalog) domain.QuoteDraft {
	d.LineItems = append([]domain.LineItem(nil), d.LineItems...)
	d.RequirementRuleIDs = append([]int32(nil), d.RequirementRuleIDs...)

	switch e := ev.(type) {
	case SetVehicle:
		applySetVehicle(&d, e, cat)
	case SetDates:
		applySetDates(&d, e, cat)
	case SetInsurance:
		applySetInsurance(&d, e, cat)
	case ToggleRequirement:
		applyToggleRequirement(&d, e, cat)
	case SetLocation:
		applySetLocation(&d, e, cat)
	case SetKmOption:
		// Tracked for the record only; the km estimate is informational and
		// never billed as a line item.
		d.KmOptionName = e.Name
	case SetCustomerInfo:
		d.CustomerName = e.CustomerName
		d.CustomerEmail = e.CustomerEmail
		d.Notes = e.Notes
		d.HowHeard = e.HowHeard
	}

	return d
}

func applySetVehicle(d *domain.QuoteDraft, e SetVehicle, cat *Catalog) {
	d.VehicleCategory = e.CategoryName
	d.LineItems = removeWhere(d.LineItems, func(it domain.LineItem) bool {
		return it.Kind == domain.LineItemKindVehicle
	})

	vt := cat.VehicleTypeByName(e.CategoryName)
	if vt == nil {
		return
	}

	days := d.HireDurationDays
	rate := ResolveDailyRate(vt, days)
	if rate == 0 {
		// Zero-rate vehicle rows are dropped rather than shown, unlike the
		// insurance case where a zero rate stays visible.
		return
	}

	d.LineItems = append(d.LineItems, domain.LineItem{
		Kind:           domain.LineItemKindVehicle,
		Description:    vt.Name,
		Quantity:       days,
		UnitPriceCents: rate,
		TotalCents:     rate * days,
	})
}

func applySetDates(d *domain.QuoteDraft, e SetDates, cat *Catalog) {
	d.PickupDate = e.PickupDate
	d.PickupTime = e.PickupTime
	d.DropoffDate = e.DropoffDate
	d.DropoffTime = e.DropoffTime

	days := BillableDays(d.PickupDate, d.PickupTime, d.DropoffDate, d.DropoffTime)
	d.HireDurationDays = days

	// Propagate the new duration. Daily items get quantity and total
	// recomputed; the vehicle rate is also re-resolved because the tier
	// bracket may have changed. One-time fees and transport fees are never
	// duration-dependent and stay as they are.
	items := d.LineItems[:0]
	for _, it := range d.LineItems {
		switch it.Kind {
		case domain.LineItemKindVehicle:
			rate := ResolveDailyRate(cat.VehicleTypeByName(d.VehicleCategory), days)
			if rate == 0 {
				continue
			}
			it.UnitPriceCents = rate
			it.Quantity = days
			it.TotalCents = rate * days
		case domain.LineItemKindInsurance:
			it.Quantity = days
			it.TotalCents = it.UnitPriceCents * days
		case domain.LineItemKindRequirement:
			rule := cat.RuleByID(it.RuleID)
			if rule != nil && rule.OneTimeFeeCents == 0 && rule.DailyRateAdjustmentCents > 0 {
				it.Quantity = days
				it.TotalCents = it.UnitPriceCents * days
			}
		}
		items = append(items, it)
	}
	d.LineItems = items
}

func applySetInsurance(d *domain.QuoteDraft, e SetInsurance, cat *Catalog) {
	d.InsuranceRuleID = e.RuleID
	d.LineItems = removeWhere(d.LineItems, func(it domain.LineItem) bool {
		return it.Kind == domain.LineItemKindInsurance
	})

	if e.RuleID == 0 {
		return
	}
	rule := cat.RuleByID(e.RuleID)
	if rule == nil {
		return
	}

	// A zero daily rate is still a visible row: it distinguishes "free
	// default insurance" from "no insurance selected".
	days := d.HireDurationDays
	d.LineItems = append(d.LineItems, domain.LineItem{
		Kind:           domain.LineItemKindInsurance,
		RuleID:         rule.ID,
		Description:    rule.Name + " (Insurance)",
		Quantity:       days,
		UnitPriceCents: rule.DailyRateAdjustmentCents,
		TotalCents:     rule.DailyRateAdjustmentCents * days,
	})
}

func applyToggleRequirement(d *domain.QuoteDraft, e ToggleRequirement, cat *Catalog) {
	if !e.Checked {
		d.RequirementRuleIDs = removeID(d.RequirementRuleIDs, e.RuleID)
		d.LineItems = removeWhere(d.LineItems, func(it domain.LineItem) bool {
			return it.Kind == domain.LineItemKindRequirement && it.RuleID == e.RuleID
		})
		return
	}

	rule := cat.RuleByID(e.RuleID)
	if rule == nil {
		return
	}
	if !containsID(d.RequirementRuleIDs, e.RuleID) {
		d.RequirementRuleIDs = append(d.RequirementRuleIDs, e.RuleID)
	}
	for _, it := range d.LineItems {
		if it.Kind == domain.LineItemKindRequirement && it.RuleID == e.RuleID {
			return
		}
	}

	item := domain.LineItem{
		Kind:        domain.LineItemKindRequirement,
		RuleID:      rule.ID,
		Description: rule.Name,
	}
	if rule.OneTimeFeeCents > 0 {
		item.Quantity = 1
		item.UnitPriceCents = rule.OneTimeFeeCents
		item.TotalCents = rule.OneTimeFeeCents
	} else {
		days := d.HireDurationDays
		item.Quantity = days
		item.UnitPriceCents = rule.DailyRateAdjustmentCents
		item.TotalCents = rule.DailyRateAdjustmentCents * days
	}
	d.LineItems = append(d.LineItems, item)
}

func applySetLocation(d *domain.QuoteDraft, e SetLocation, cat *Catalog) {
	switch e.Role {
	case domain.LegRolePickup:
		d.PickupLocation = e.Name
	case domain.LegRoleDropoff:
		d.DropoffLocation = e.Name
	default:
		return
	}

	// Drop the changed leg's fee row before re-adding.
	d.LineItems = removeWhere(d.LineItems, func(it domain.LineItem) bool {
		return it.Kind == domain.LineItemKindTransportFee && it.Role == e.Role
	})

	if e.Role == domain.LegRolePickup {
		addTransportFee(d, cat, domain.LegRolePickup, d.PickupLocation)
		// A same-location round trip is charged one fee, not two: moving the
		// pickup onto (or off) the dropoff location suppresses or restores
		// the dropoff leg's row.
		if d.DropoffLocation == d.PickupLocation {
			d.LineItems = removeWhere(d.LineItems, func(it domain.LineItem) bool {
				return it.Kind == domain.LineItemKindTransportFee && it.Role == domain.LegRoleDropoff
			})
		} else if !hasTransportFee(d, domain.LegRoleDropoff) {
			addTransportFee(d, cat, domain.LegRoleDropoff, d.DropoffLocation)
		}
		return
	}

	if d.DropoffLocation != d.PickupLocation {
		addTransportFee(d, cat, domain.LegRoleDropoff, d.DropoffLocation)
	}
}

func addTransportFee(d *domain.QuoteDraft, cat *Catalog, role domain.LegRole, name string) {
	if name == "" {
		return
	}
	loc := cat.LocationByName(name)
	if loc == nil || loc.TransportFeeCents <= 0 {
		return
	}
	d.LineItems = append(d.LineItems, domain.LineItem{
		Kind:           domain.LineItemKindTransportFee,
		Role:           role,
		Description:    loc.Name + " Transport Fee",
		Quantity:       1,
		UnitPriceCents: loc.TransportFeeCents,
		TotalCents:     loc.TransportFeeCents,
	})
}

func hasTransportFee(d *domain.QuoteDraft, role domain.LegRole) bool {
	for _, it := range d.LineItems {
		if it.Kind == domain.LineItemKindTransportFee && it.Role == role {
			return true
		}
	}
	return false
}

func removeWhere(items []domain.LineItem, match func(domain.LineItem) bool) []domain.LineItem {
	out := items[:0]
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsID(ids []int32, id int32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []int32, id int32) []int32 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
