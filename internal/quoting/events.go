package quoting

import "fleethire-backend/internal/domain"

// Event is one user action in the quote-builder. Each event owns exactly one
// selection category of the draft's line items; applying it never disturbs
// items owned by other categories.
type Event interface {
	isEvent()
}

// SetVehicle selects (or clears, with an empty name) the vehicle category.
type SetVehicle struct {
	CategoryName string
}

// SetDates replaces the pickup/dropoff date-time pair. The billable day count
// is re-derived and propagated to every duration-dependent line item.
type SetDates struct {
	PickupDate  string
	PickupTime  string
	DropoffDate string
	DropoffTime string
}

// SetInsurance selects an insurance rule; RuleID 0 clears the selection.
type SetInsurance struct {
	RuleID int32
}

// ToggleRequirement checks or unchecks one optional-service rule.
type ToggleRequirement struct {
	RuleID  int32
	Checked bool
}

// SetLocation assigns a location to the pickup or dropoff leg; an empty name
// clears the leg.
type SetLocation struct {
	Role domain.LegRole
	Name string
}

// SetKmOption records the selected km allowance. Informational only, it never
// produces a line item.
type SetKmOption struct {
	Name string
}

// SetCustomerInfo updates the free-form fields. No computational role.
type SetCustomerInfo struct {
	CustomerName  string
	CustomerEmail string
	Notes         string
	HowHeard      string
}

func (SetVehicle) isEvent()        {}
func (SetDates) isEvent()          {}
func (SetInsurance) isEvent()      {}
func (ToggleRequirement) isEvent() {}
func (SetLocation) isEvent()       {}
func (SetKmOption) isEvent()       {}
func (SetCustomerInfo) isEvent()   {}
