package unit

import (
	"context"
	"time"

	"fleethire-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVehicleTypeRepo
type MockVehicleTypeRepo struct {
	mock.Mock
}

func (m *MockVehicleTypeRepo) Create(ctx context.Context, vt *domain.VehicleType) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}
func (m *MockVehicleTypeRepo) GetByID(ctx context.Context, id int32) (*domain.VehicleType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleType), args.Error(1)
}
func (m *MockVehicleTypeRepo) Update(ctx context.Context, vt *domain.VehicleType) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}
func (m *MockVehicleTypeRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleTypeRepo) ListActive(ctx context.Context) ([]domain.VehicleType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleType), args.Error(1)
}

// MockLocationRepo
type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) Create(ctx context.Context, loc *domain.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}
func (m *MockLocationRepo) GetByID(ctx context.Context, id int32) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}
func (m *MockLocationRepo) Update(ctx context.Context, loc *domain.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}
func (m *MockLocationRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockLocationRepo) ListActive(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}

// MockPricingRuleRepo
type MockPricingRuleRepo struct {
	mock.Mock
}

func (m *MockPricingRuleRepo) Create(ctx context.Context, rule *domain.PricingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}
func (m *MockPricingRuleRepo) GetByID(ctx context.Context, id int32) (*domain.PricingRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingRule), args.Error(1)
}
func (m *MockPricingRuleRepo) Update(ctx context.Context, rule *domain.PricingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}
func (m *MockPricingRuleRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPricingRuleRepo) ListActive(ctx context.Context) ([]domain.PricingRule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PricingRule), args.Error(1)
}

// MockQuoteRepo
type MockQuoteRepo struct {
	mock.Mock
}

func (m *MockQuoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
func (m *MockQuoteRepo) GetByID(ctx context.Context, id int32) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) GetByNumber(ctx context.Context, number string) (*domain.Quote, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Quote, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Quote), args.Get(1).(int32), args.Error(2)
}
func (m *MockQuoteRepo) UpdateStatus(ctx context.Context, id int32, status domain.QuoteStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockQuoteRepo) ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockQuoteRepo) ListExpiringSoon(ctx context.Context, asOf time.Time, withinDays int) ([]domain.Quote, error) {
	args := m.Called(ctx, asOf, withinDays)
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *MockQuoteRepo) MarkReminderSent(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendQuote(ctx context.Context, q *domain.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
func (m *MockEmailService) SendExpiryReminder(ctx context.Context, q *domain.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
