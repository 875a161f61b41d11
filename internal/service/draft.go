package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"fleethire-backend/internal/domain"
	"fleethire-backend/internal/logger"
	"fleethire-backend/internal/quoting"
	"fleethire-backend/internal/repository"
)

var (
	ErrSessionNotFound     = errors.New("draft session not found")
	ErrDropoffBeforePickup = errors.New("dropoff must not be before pickup")
	ErrDraftIncomplete     = errors.New("customer name, email and a vehicle are required before submitting")
)

type draftSession struct {
	draft   domain.QuoteDraft
	catalog *quoting.Catalog
}

// draftService owns the in-memory quote-builder sessions. Each session has a
// single writer (one back-office user building one quote); the mutex only
// guards the session map itself.
type draftService struct {
	mu         sync.RWMutex
	sessions   map[string]*draftSession
	catalogSvc CatalogService
	quoteRepo  repository.QuoteRepository
	emailSvc   EmailService
}

func NewDraftService(catalogSvc CatalogService, quoteRepo repository.QuoteRepository, emailSvc EmailService) DraftService {
	return &draftService{
		sessions:   make(map[string]*draftSession),
		catalogSvc: catalogSvc,
		quoteRepo:  quoteRepo,
		emailSvc:   emailSvc,
	}
}

func (s *draftService) CreateSession(ctx context.Context) (*DraftState, error) {
	// The catalog snapshot is taken once per session; the draft prices
	// against it for the session's whole lifetime.
	catalog, err := s.catalogSvc.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	sess := &draftSession{
		draft:   quoting.NewDraft(),
		catalog: catalog,
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	logger.Info("Draft session created", "session_id", id)
	return s.state(id, sess), nil
}

func (s *draftService) GetSession(ctx context.Context, sessionID string) (*DraftState, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.state(sessionID, sess), nil
}

func (s *draftService) ApplyEvent(ctx context.Context, sessionID string, ev quoting.Event) (*DraftState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	// The engine clamps out-of-order dates instead of rejecting them, so the
	// ordering check belongs here at the boundary.
	if e, isDates := ev.(quoting.SetDates); isDates {
		if !quoting.DateOrderValid(e.PickupDate, e.PickupTime, e.DropoffDate, e.DropoffTime) {
			return nil, ErrDropoffBeforePickup
		}
	}

	sess.draft = quoting.Reduce(sess.draft, ev, sess.catalog)
	return s.state(sessionID, sess), nil
}

func (s *draftService) DiscardSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// Submit freezes the draft into a quote record, persists it and emails it to
// the customer. Email delivery is best-effort with no retry; a failed
// persist keeps the session alive so the user can resubmit.
func (s *draftService) Submit(ctx context.Context, sessionID string) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	d := sess.draft
	if d.CustomerName == "" || d.CustomerEmail == "" || d.VehicleCategory == "" {
		return nil, ErrDraftIncomplete
	}

	q := quoting.BuildQuote(d, time.Now())
	if err := s.quoteRepo.Create(ctx, &q); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendQuote(ctx, &q); err != nil {
		logger.Warn("Failed to email quote", "quote_number", q.QuoteNumber, "error", err)
	}

	delete(s.sessions, sessionID)
	logger.Info("Quote submitted", "quote_number", q.QuoteNumber, "total_cents", q.TotalCents)
	return &q, nil
}

func (s *draftService) state(id string, sess *draftSession) *DraftState {
	return &DraftState{
		SessionID: id,
		Draft:     sess.draft,
		Totals:    quoting.Totals(sess.draft.LineItems),
	}
}
