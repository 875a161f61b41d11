package repository

import (
	"context"
	"time"

	"fleethire-backend/internal/domain"
)

type VehicleTypeRepository interface {
	Create(ctx context.Context, vt *domain.VehicleType) error
	GetByID(ctx context.Context, id int32) (*domain.VehicleType, error)
	Update(ctx context.Context, vt *domain.VehicleType) error
	Deactivate(ctx context.Context, id int32) error
	ListActive(ctx context.Context) ([]domain.VehicleType, error)
}

type LocationRepository interface {
	Create(ctx context.Context, loc *domain.Location) error
	GetByID(ctx context.Context, id int32) (*domain.Location, error)
	Update(ctx context.Context, loc *domain.Location) error
	Deactivate(ctx context.Context, id int32) error
	ListActive(ctx context.Context) ([]domain.Location, error)
}

type PricingRuleRepository interface {
	Create(ctx context.Context, rule *domain.PricingRule) error
	GetByID(ctx context.Context, id int32) (*domain.PricingRule, error)
	Update(ctx context.Context, rule *domain.PricingRule) error
	Deactivate(ctx context.Context, id int32) error
	ListActive(ctx context.Context) ([]domain.PricingRule, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id int32) (*domain.Quote, error)
	GetByNumber(ctx context.Context, number string) (*domain.Quote, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Quote, int32, error)
	UpdateStatus(ctx context.Context, id int32, status domain.QuoteStatus) error
	ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error)
	ListExpiringSoon(ctx context.Context, asOf time.Time, withinDays int) ([]domain.Quote, error)
	MarkReminderSent(ctx context.Context, id int32) error
}
