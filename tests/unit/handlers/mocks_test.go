package handlers

import (
	"context"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/quoting"
	"fleethire-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockDraftService
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) CreateSession(ctx context.Context) (*service.DraftState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DraftState), args.Error(1)
}
func (m *MockDraftService) GetSession(ctx context.Context, sessionID string) (*service.DraftState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DraftState), args.Error(1)
}
func (m *MockDraftService) ApplyEvent(ctx context.Context, sessionID string, ev quoting.Event) (*service.DraftState, error) {
	args := m.Called(ctx, sessionID, ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DraftState), args.Error(1)
}
func (m *MockDraftService) DiscardSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
func (m *MockDraftService) Submit(ctx context.Context, sessionID string) (*domain.Quote, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

// MockQuoteService
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) ListQuotes(ctx context.Context, status string, page, pageSize int32) ([]domain.Quote, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Quote), args.Get(1).(int32), args.Error(2)
}
func (m *MockQuoteService) GetQuote(ctx context.Context, id int32) (*domain.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *MockQuoteService) UpdateQuoteStatus(ctx context.Context, id int32, status domain.QuoteStatus) (*domain.Quote, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
