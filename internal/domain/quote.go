package domain

import "time"

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
	QuoteStatusExpired  QuoteStatus = "EXPIRED"
)

type LineItemKind string

const (
	LineItemKindVehicle      LineItemKind = "VEHICLE"
	LineItemKindInsurance    LineItemKind = "INSURANCE"
	LineItemKindRequirement  LineItemKind = "REQUIREMENT"
	LineItemKindTransportFee LineItemKind = "TRANSPORT_FEE"
)

type LegRole string

const (
	LegRolePickup  LegRole = "PICKUP"
	LegRoleDropoff LegRole = "DROPOFF"
)

// LineItem is one priced row in a quote. Kind (plus RuleID for requirement
// items and Role for transport fees) identifies the selection category that
// owns the row; reconciliation is keyed on it, never on the description text.
type LineItem struct {
	Kind           LineItemKind `json:"kind"`
	RuleID         int32        `json:"rule_id,omitempty"`
	Role           LegRole      `json:"role,omitempty"`
	Description    string       `json:"description"`
	Quantity       int32        `json:"quantity"`
	UnitPriceCents int32        `json:"unit_price_cents"`
	TotalCents     int32        `json:"total_cents"`
}

// QuoteDraft is the mutable working state of one quote-builder session.
// It is owned by exactly one session and discarded on submit or abandon.
type QuoteDraft struct {
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	PickupDate         string     `json:"pickup_date"`  // yyyy-mm-dd, empty until chosen
	DropoffDate        string     `json:"dropoff_date"` // yyyy-mm-dd, empty until chosen
	PickupTime         string     `json:"pickup_time"`  // HH:MM 24-hour
	DropoffTime        string     `json:"dropoff_time"` // HH:MM 24-hour
	HireDurationDays   int32      `json:"hire_duration_days"`
	VehicleCategory    string     `json:"vehicle_category"`
	PickupLocation     string     `json:"pickup_location"`
	DropoffLocation    string     `json:"dropoff_location"`
	InsuranceRuleID    int32      `json:"insurance_rule_id"` // 0 = none selected
	KmOptionName       string     `json:"km_option_name"`
	RequirementRuleIDs []int32    `json:"requirement_rule_ids"`
	LineItems          []LineItem `json:"line_items"`
	Notes              string     `json:"notes"`
	HowHeard           string     `json:"how_heard"`
}

type QuoteTotals struct {
	SubtotalCents int32 `json:"subtotal_cents"`
	TaxCents      int32 `json:"tax_cents"`
	TotalCents    int32 `json:"total_cents"`
}

// Quote is the persisted record produced when a draft is submitted.
type Quote struct {
	ID                 int32       `json:"id"`
	QuoteNumber        string      `json:"quote_number"`
	CustomerName       string      `json:"customer_name"`
	CustomerEmail      string      `json:"customer_email"`
	PickupDate         string      `json:"pickup_date"`
	DropoffDate        string      `json:"dropoff_date"`
	PickupTime         string      `json:"pickup_time"`
	DropoffTime        string      `json:"dropoff_time"`
	HireDurationDays   int32       `json:"hire_duration_days"`
	VehicleCategory    string      `json:"vehicle_category"`
	PickupLocation     string      `json:"pickup_location"`
	DropoffLocation    string      `json:"dropoff_location"`
	InsuranceRuleID    int32       `json:"insurance_rule_id"`
	KmOptionName       string      `json:"km_option_name"`
	RequirementRuleIDs []int32     `json:"requirement_rule_ids"`
	LineItems          []LineItem  `json:"line_items"`
	SubtotalCents      int32       `json:"subtotal_cents"`
	TaxCents           int32       `json:"tax_cents"`
	TotalCents         int32       `json:"total_cents"`
	ValidUntil         time.Time   `json:"valid_until"`
	Status             QuoteStatus `json:"status"`
	ReminderSent       bool        `json:"reminder_sent"`
	Notes              string      `json:"notes"`
	HowHeard           string      `json:"how_heard"`
	CreatedOn          time.Time   `json:"created_on"`
	UpdatedOn          time.Time   `json:"updated_on"`
}
