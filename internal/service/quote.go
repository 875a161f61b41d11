package service

import (
	"context"
	"errors"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/repository"
)

var ErrInvalidStatusChange = errors.New("invalid quote status change")

type quoteService struct {
	quoteRepo repository.QuoteRepository
}

func NewQuoteService(quoteRepo repository.QuoteRepository) QuoteService {
	return &quoteService{quoteRepo: quoteRepo}
}

func (s *quoteService) ListQuotes(ctx context.Context, status string, page, pageSize int32) ([]domain.Quote, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.quoteRepo.List(ctx, status, page, pageSize)
}

func (s *quoteService) GetQuote(ctx context.Context, id int32) (*domain.Quote, error) {
	return s.quoteRepo.GetByID(ctx, id)
}

// UpdateQuoteStatus moves a sent quote to accepted or rejected. Expiry is
// handled by the nightly job, never by hand.
func (s *quoteService) UpdateQuoteStatus(ctx context.Context, id int32, status domain.QuoteStatus) (*domain.Quote, error) {
	q, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status != domain.QuoteStatusAccepted && status != domain.QuoteStatusRejected {
		return nil, ErrInvalidStatusChange
	}
	if q.Status != domain.QuoteStatusSent {
		return nil, ErrInvalidStatusChange
	}

	if err := s.quoteRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	q.Status = status
	return q, nil
}
