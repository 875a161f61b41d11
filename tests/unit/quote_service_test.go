package unit

import (
	"context"
	"database/sql"
	"testing"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteService_ListQuotes(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		svc := service.NewQuoteService(repo)
		quotes := []domain.Quote{{ID: 1, QuoteNumber: "QUO-123456-001"}}
		repo.On("List", ctx, "SENT", int32(1), int32(20)).Return(quotes, int32(1), nil)

		res, total, err := svc.ListQuotes(ctx, "SENT", 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Equal(t, "QUO-123456-001", res[0].QuoteNumber)
	})

	t.Run("DefaultsBadPaging", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		svc := service.NewQuoteService(repo)
		repo.On("List", ctx, "", int32(1), int32(20)).Return([]domain.Quote{}, int32(0), nil)

		_, _, err := svc.ListQuotes(ctx, "", 0, 500)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestQuoteService_UpdateQuoteStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("AcceptSentQuote", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		svc := service.NewQuoteService(repo)
		repo.On("GetByID", ctx, int32(7)).Return(&domain.Quote{ID: 7, Status: domain.QuoteStatusSent}, nil)
		repo.On("UpdateStatus", ctx, int32(7), domain.QuoteStatusAccepted).Return(nil)

		q, err := svc.UpdateQuoteStatus(ctx, 7, domain.QuoteStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusAccepted, q.Status)
	})

	t.Run("RejectSentQuote", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		svc := service.NewQuoteService(repo)
		repo.On("GetByID", ctx, int32(7)).Return(&domain.Quote{ID: 7, Status: domain.QuoteStatusSent}, nil)
		repo.On("UpdateStatus", ctx, int32(7), domain.QuoteStatusRejected).Return(nil)

		q, err := svc.UpdateQuoteStatus(ctx, 7, domain.QuoteStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusRejected, q.Status)
	})

	t.Run("CannotExpireByHand", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		svc := service.NewQuoteService(repo)
		repo.On("GetByID", ctx, int32(7)).Return(&domain.Quote{ID: 7, Status: domain.QuoteStatusSent}, nil)

		_, err := svc.UpdateQuoteStatus(ctx, 7, domain.QuoteStatusExpired)
		assert.ErrorIs(t, err, service.ErrInvalidStatusChange)
	})

	t.Run("AlreadyAccepted", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		svc := service.NewQuoteService(repo)
		repo.On("GetByID", ctx, int32(7)).Return(&domain.Quote{ID: 7, Status: domain.QuoteStatusAccepted}, nil)

		_, err := svc.UpdateQuoteStatus(ctx, 7, domain.QuoteStatusRejected)
		assert.ErrorIs(t, err, service.ErrInvalidStatusChange)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockQuoteRepo)
		svc := service.NewQuoteService(repo)
		repo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		_, err := svc.UpdateQuoteStatus(ctx, 99, domain.QuoteStatusAccepted)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
