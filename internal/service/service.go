package service

import (
	"context"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/quoting"
)

// DraftState is what the quote-builder UI renders after every event: the
// draft itself plus the totals derived from its line items.
type DraftState struct {
	SessionID string             `json:"session_id"`
	Draft     domain.QuoteDraft  `json:"draft"`
	Totals    domain.QuoteTotals `json:"totals"`
}

type CatalogService interface {
	GetCatalog(ctx context.Context) (*quoting.Catalog, error)

	CreateVehicleType(ctx context.Context, vt *domain.VehicleType) error
	UpdateVehicleType(ctx context.Context, vt *domain.VehicleType) error
	DeactivateVehicleType(ctx context.Context, id int32) error

	CreateLocation(ctx context.Context, loc *domain.Location) error
	UpdateLocation(ctx context.Context, loc *domain.Location) error
	DeactivateLocation(ctx context.Context, id int32) error

	CreatePricingRule(ctx context.Context, rule *domain.PricingRule) error
	UpdatePricingRule(ctx context.Context, rule *domain.PricingRule) error
	DeactivatePricingRule(ctx context.Context, id int32) error
}

type DraftService interface {
	CreateSession(ctx context.Context) (*DraftState, error)
	GetSession(ctx context.Context, sessionID string) (*DraftState, error)
	ApplyEvent(ctx context.Context, sessionID string, ev quoting.Event) (*DraftState, error)
	DiscardSession(ctx context.Context, sessionID string) error
	Submit(ctx context.Context, sessionID string) (*domain.Quote, error)
}

type QuoteService interface {
	ListQuotes(ctx context.Context, status string, page, pageSize int32) ([]domain.Quote, int32, error)
	GetQuote(ctx context.Context, id int32) (*domain.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id int32, status domain.QuoteStatus) (*domain.Quote, error)
}

type EmailService interface {
	SendQuote(ctx context.Context, q *domain.Quote) error
	SendExpiryReminder(ctx context.Context, q *domain.Quote) error
}
