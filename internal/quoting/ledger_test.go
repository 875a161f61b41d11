package quoting

import (
	"testing"

	"fleethire-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return &Catalog{
		VehicleTypes: []domain.VehicleType{
			{
				ID: 1, Name: "Compact SUV", DailyRateCents: 8500, Active: true,
				PricingTiers: &domain.PricingTiers{
					Tier1To14Cents:    10000,
					Tier15To29Cents:   9000,
					Tier30To178Cents:  8000,
					Tier179To363Cents: 7000,
					Tier364PlusCents:  6000,
				},
			},
			{ID: 2, Name: "Promo Hatch", DailyRateCents: 0, Active: true},
		},
		Locations: []domain.Location{
			{ID: 1, Name: "Airport", TransportFeeCents: 5000, Active: true},
			{ID: 2, Name: "City Depot", TransportFeeCents: 0, Active: true},
			{ID: 3, Name: "Harbour", TransportFeeCents: 3500, Active: true},
		},
		PricingRules: []domain.PricingRule{
			{ID: 10, Name: "Full Cover", Type: domain.PricingRuleTypeInsurance, DailyRateAdjustmentCents: 2500, Active: true},
			{ID: 11, Name: "Basic Cover", Type: domain.PricingRuleTypeInsurance, DailyRateAdjustmentCents: 0, Active: true},
			{ID: 20, Name: "GPS Unit", Type: domain.PricingRuleTypeAdditionalService, DailyRateAdjustmentCents: 500, Active: true},
			{ID: 21, Name: "Baby Seat", Type: domain.PricingRuleTypeAdditionalService, OneTimeFeeCents: 4500, Active: true},
			{ID: 30, Name: "Unlimited Km", Type: domain.PricingRuleTypeKmAllowance, Active: true},
		},
	}
}

func itemsOfKind(d domain.QuoteDraft, kind domain.LineItemKind) []domain.LineItem {
	var out []domain.LineItem
	for _, it := range d.LineItems {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

func TestReduce_SetVehicle(t *testing.T) {
	cat := testCatalog()

	t.Run("Adds one vehicle row priced for the current duration", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetDates{PickupDate: "2025-03-10", PickupTime: "09:00", DropoffDate: "2025-03-13", DropoffTime: "09:00"}, cat)
		require.Equal(t, int32(3), d.HireDurationDays)

		d = Reduce(d, SetVehicle{CategoryName: "Compact SUV"}, cat)
		vehicles := itemsOfKind(d, domain.LineItemKindVehicle)
		require.Len(t, vehicles, 1)
		assert.Equal(t, "Compact SUV", vehicles[0].Description)
		assert.Equal(t, int32(3), vehicles[0].Quantity)
		assert.Equal(t, int32(10000), vehicles[0].UnitPriceCents)
		assert.Equal(t, int32(30000), vehicles[0].TotalCents)
	})

	t.Run("Reselecting replaces rather than duplicates", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetVehicle{CategoryName: "Compact SUV"}, cat)
		d = Reduce(d, SetVehicle{CategoryName: "Compact SUV"}, cat)
		assert.Len(t, itemsOfKind(d, domain.LineItemKindVehicle), 1)
	})

	t.Run("Clearing the selection removes the row", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetVehicle{CategoryName: "Compact SUV"}, cat)
		d = Reduce(d, SetVehicle{CategoryName: ""}, cat)
		assert.Empty(t, itemsOfKind(d, domain.LineItemKindVehicle))
		assert.Equal(t, "", d.VehicleCategory)
	})

	t.Run("Zero-rate vehicle is dropped, not shown", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetVehicle{CategoryName: "Promo Hatch"}, cat)
		assert.Empty(t, itemsOfKind(d, domain.LineItemKindVehicle))
		assert.Equal(t, "Promo Hatch", d.VehicleCategory)
	})

	t.Run("Unknown category adds nothing", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetVehicle{CategoryName: "Hovercraft"}, cat)
		assert.Empty(t, d.LineItems)
	})
}

func TestReduce_Scoping(t *testing.T) {
	cat := testCatalog()

	d := NewDraft()
	d = Reduce(d, SetDates{PickupDate: "2025-03-10", PickupTime: "09:00", DropoffDate: "2025-03-13", DropoffTime: "09:00"}, cat)
	d = Reduce(d, SetVehicle{CategoryName: "Compact SUV"}, cat)
	before := itemsOfKind(d, domain.LineItemKindVehicle)[0]

	// Toggling an unrelated requirement must leave the vehicle row untouched.
	d = Reduce(d, ToggleRequirement{RuleID: 20, Checked: true}, cat)
	assert.Equal(t, before, itemsOfKind(d, domain.LineItemKindVehicle)[0])

	d = Reduce(d, ToggleRequirement{RuleID: 20, Checked: false}, cat)
	assert.Equal(t, before, itemsOfKind(d, domain.LineItemKindVehicle)[0])
}

func TestReduce_DurationPropagation(t *testing.T) {
	cat := testCatalog()

	d := NewDraft()
	d = Reduce(d, SetDates{PickupDate: "2025-03-10", PickupTime: "09:00", DropoffDate: "2025-03-13", DropoffTime: "09:00"}, cat)
	d = Reduce(d, SetVehicle{CategoryName: "Compact SUV"}, cat)
	d = Reduce(d, ToggleRequirement{RuleID: 20, Checked: true}, cat) // daily GPS
	d = Reduce(d, ToggleRequirement{RuleID: 21, Checked: true}, cat) // one-time baby seat

	t.Run("Daily items follow the new duration", func(t *testing.T) {
		next := Reduce(d, SetDates{PickupDate: "2025-03-10", PickupTime: "09:00", DropoffDate: "2025-03-20", DropoffTime: "09:00"}, cat)
		require.Equal(t, int32(10), next.HireDurationDays)

		vehicle := itemsOfKind(next, domain.LineItemKindVehicle)[0]
		assert.Equal(t, int32(10), vehicle.Quantity)
		assert.Equal(t, int32(100000), vehicle.TotalCents)

		var gps, seat domain.LineItem
		for _, it := range itemsOfKind(next, domain.LineItemKindRequirement) {
			switch it.RuleID {
			case 20:
				gps = it
			case 21:
				seat = it
			}
		}
		assert.Equal(t, int32(10), gps.Quantity)
		assert.Equal(t, int32(5000), gps.TotalCents)
		// One-time fee stays exactly as it was.
		assert.Equal(t, int32(1), seat.Quantity)
		assert.Equal(t, int32(4500), seat.TotalCents)
	})

	t.Run("Vehicle rate re-resolves when the tier bracket changes", func(t *testing.T) {
		next := Reduce(d, SetDates{PickupDate: "2025-03-10", PickupTime: "09:00", DropoffDate: "2025-03-30", DropoffTime: "09:00"}, cat)
		require.Equal(t, int32(20), next.HireDurationDays)

		vehicle := itemsOfKind(next, domain.LineItemKindVehicle)[0]
		assert.Equal(t, int32(9000), vehicle.UnitPriceCents)
		assert.Equal(t, int32(180000), vehicle.TotalCents)
	})

	t.Run("Insurance follows the new duration", func(t *testing.T) {
		withIns := Reduce(d, SetInsurance{RuleID: 10}, cat)
		next := Reduce(withIns, SetDates{PickupDate: "2025-03-10", PickupTime: "09:00", DropoffDate: "2025-03-20", DropoffTime: "09:00"}, cat)
		ins := itemsOfKind(next, domain.LineItemKindInsurance)[0]
		assert.Equal(t, int32(10), ins.Quantity)
		assert.Equal(t, int32(25000), ins.TotalCents)
	})
}

func TestReduce_Insurance(t *testing.T) {
	cat := testCatalog()

	t.Run("Zero-rate insurance stays visible", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetInsurance{RuleID: 11}, cat)
		items := itemsOfKind(d, domain.LineItemKindInsurance)
		require.Len(t, items, 1)
		assert.Equal(t, "Basic Cover (Insurance)", items[0].Description)
		assert.Equal(t, int32(0), items[0].UnitPriceCents)
		assert.Equal(t, int32(0), items[0].TotalCents)
	})

	t.Run("Switching insurance replaces the row", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetInsurance{RuleID: 11}, cat)
		d = Reduce(d, SetInsurance{RuleID: 10}, cat)
		items := itemsOfKind(d, domain.LineItemKindInsurance)
		require.Len(t, items, 1)
		assert.Equal(t, "Full Cover (Insurance)", items[0].Description)
	})

	t.Run("Clearing removes the row", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetInsurance{RuleID: 10}, cat)
		d = Reduce(d, SetInsurance{RuleID: 0}, cat)
		assert.Empty(t, itemsOfKind(d, domain.LineItemKindInsurance))
	})
}

func TestReduce_ToggleRequirement(t *testing.T) {
	cat := testCatalog()

	t.Run("Check then uncheck restores the prior state", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetVehicle{CategoryName: "Compact SUV"}, cat)
		prior := d

		d = Reduce(d, ToggleRequirement{RuleID: 21, Checked: true}, cat)
		d = Reduce(d, ToggleRequirement{RuleID: 21, Checked: false}, cat)
		assert.Equal(t, prior.LineItems, d.LineItems)
		assert.Empty(t, d.RequirementRuleIDs)
	})

	t.Run("Double check adds one row", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, ToggleRequirement{RuleID: 20, Checked: true}, cat)
		d = Reduce(d, ToggleRequirement{RuleID: 20, Checked: true}, cat)
		assert.Len(t, itemsOfKind(d, domain.LineItemKindRequirement), 1)
		assert.Equal(t, []int32{20}, d.RequirementRuleIDs)
	})

	t.Run("One row per selected rule", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, ToggleRequirement{RuleID: 20, Checked: true}, cat)
		d = Reduce(d, ToggleRequirement{RuleID: 21, Checked: true}, cat)
		items := itemsOfKind(d, domain.LineItemKindRequirement)
		require.Len(t, items, 2)
		assert.Len(t, d.RequirementRuleIDs, 2)
	})

	t.Run("Unknown rule is ignored", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, ToggleRequirement{RuleID: 999, Checked: true}, cat)
		assert.Empty(t, d.LineItems)
		assert.Empty(t, d.RequirementRuleIDs)
	})
}

func TestReduce_TransportFees(t *testing.T) {
	cat := testCatalog()

	t.Run("Different locations charge one fee per leg", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetLocation{Role: domain.LegRolePickup, Name: "Airport"}, cat)
		d = Reduce(d, SetLocation{Role: domain.LegRoleDropoff, Name: "Harbour"}, cat)
		fees := itemsOfKind(d, domain.LineItemKindTransportFee)
		require.Len(t, fees, 2)
	})

	t.Run("Same location both legs charges once", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetLocation{Role: domain.LegRolePickup, Name: "Airport"}, cat)
		d = Reduce(d, SetLocation{Role: domain.LegRoleDropoff, Name: "Airport"}, cat)
		fees := itemsOfKind(d, domain.LineItemKindTransportFee)
		require.Len(t, fees, 1)
		assert.Equal(t, domain.LegRolePickup, fees[0].Role)
		assert.Equal(t, "Airport Transport Fee", fees[0].Description)
		assert.Equal(t, int32(5000), fees[0].TotalCents)
	})

	t.Run("Moving pickup onto the dropoff location suppresses the dropoff fee", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetLocation{Role: domain.LegRolePickup, Name: "Airport"}, cat)
		d = Reduce(d, SetLocation{Role: domain.LegRoleDropoff, Name: "Harbour"}, cat)
		d = Reduce(d, SetLocation{Role: domain.LegRolePickup, Name: "Harbour"}, cat)
		fees := itemsOfKind(d, domain.LineItemKindTransportFee)
		require.Len(t, fees, 1)
		assert.Equal(t, domain.LegRolePickup, fees[0].Role)
	})

	t.Run("Moving pickup away restores the dropoff fee", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetLocation{Role: domain.LegRolePickup, Name: "Airport"}, cat)
		d = Reduce(d, SetLocation{Role: domain.LegRoleDropoff, Name: "Airport"}, cat)
		d = Reduce(d, SetLocation{Role: domain.LegRolePickup, Name: "Harbour"}, cat)
		fees := itemsOfKind(d, domain.LineItemKindTransportFee)
		require.Len(t, fees, 2)
	})

	t.Run("Free location adds no fee row", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetLocation{Role: domain.LegRolePickup, Name: "City Depot"}, cat)
		assert.Empty(t, itemsOfKind(d, domain.LineItemKindTransportFee))
		assert.Equal(t, "City Depot", d.PickupLocation)
	})

	t.Run("Changing a leg replaces its fee row", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetLocation{Role: domain.LegRolePickup, Name: "Airport"}, cat)
		d = Reduce(d, SetLocation{Role: domain.LegRolePickup, Name: "Harbour"}, cat)
		fees := itemsOfKind(d, domain.LineItemKindTransportFee)
		require.Len(t, fees, 1)
		assert.Equal(t, "Harbour Transport Fee", fees[0].Description)
	})
}

func TestReduce_KmOptionAndPurity(t *testing.T) {
	cat := testCatalog()

	t.Run("Km option never bills", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetKmOption{Name: "Unlimited Km"}, cat)
		assert.Equal(t, "Unlimited Km", d.KmOptionName)
		assert.Empty(t, d.LineItems)
	})

	t.Run("Reduce leaves the input draft untouched", func(t *testing.T) {
		d := NewDraft()
		d = Reduce(d, SetVehicle{CategoryName: "Compact SUV"}, cat)
		snapshot := append([]domain.LineItem(nil), d.LineItems...)

		_ = Reduce(d, SetVehicle{CategoryName: ""}, cat)
		_ = Reduce(d, ToggleRequirement{RuleID: 20, Checked: true}, cat)
		assert.Equal(t, snapshot, d.LineItems)
	})
}
