package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/rent-recon/internal/bankfile"
	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/matching"
	"github.com/grachmannico95/rent-recon/internal/reconciliation"
	"github.com/grachmannico95/rent-recon/pkg/logger"
)

// SessionView is the externally visible state of a reconciliation session.
type SessionView struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Rows      []domain.ReconciledRow `json:"rows"`
	Summary   domain.SessionSummary  `json:"summary"`
}

type ReconciliationService interface {
	CreateSession(ctx context.Context, text string) (*SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	ListSessions(ctx context.Context) []SessionView
	ResetSession(ctx context.Context, sessionID string) (*SessionView, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Candidates(ctx context.Context, sessionID, rowID string) ([]domain.PaymentObligation, error)
	ManualMatch(ctx context.Context, sessionID, rowID, obligationID string) (domain.ReconciledRow, error)
	Process(ctx context.Context, sessionID string) (domain.BatchResult, error)
}

type reconciliationService struct {
	parser      *bankfile.Parser
	engine      *matching.Engine
	obligations domain.ObligationReader
	confirmer   domain.PaymentConfirmer
	logger      *logger.Logger
	cfg         reconciliation.Config

	mu       sync.RWMutex
	sessions map[string]*reconciliation.Session
}

func NewReconciliationService(
	parser *bankfile.Parser,
	engine *matching.Engine,
	obligations domain.ObligationReader,
	confirmer domain.PaymentConfirmer,
	log *logger.Logger,
	cfg reconciliation.Config,
) ReconciliationService {
	return &reconciliationService{
		parser:      parser,
		engine:      engine,
		obligations: obligations,
		confirmer:   confirmer,
		logger:      log,
		cfg:         cfg,
		sessions:    make(map[string]*reconciliation.Session),
	}
}

func (s *reconciliationService) CreateSession(ctx context.Context, text string) (*SessionView, error) {
	sessionID := uuid.New().String()
	ctx = logger.WithSessionID(ctx, sessionID)

	session := reconciliation.NewSession(sessionID, s.parser, s.engine, s.obligations, s.confirmer, s.logger, s.cfg)
	if _, err := session.LoadFile(ctx, text); err != nil {
		s.logger.Error(ctx, "Failed to load bank file",
			"error", err,
		)
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	s.logger.Info(ctx, "Reconciliation session created")

	return viewOf(session), nil
}

func (s *reconciliationService) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

// ListSessions returns every open session, oldest first.
func (s *reconciliationService) ListSessions(ctx context.Context) []SessionView {
	s.mu.RLock()
	views := make([]SessionView, 0, len(s.sessions))
	for _, session := range s.sessions {
		views = append(views, *viewOf(session))
	}
	s.mu.RUnlock()

	sort.Slice(views, func(i, j int) bool {
		if views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].ID < views[j].ID
		}
		return views[i].CreatedAt.Before(views[j].CreatedAt)
	})

	return views
}

func (s *reconciliationService) ResetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	session.Reset()
	s.logger.Info(logger.WithSessionID(ctx, sessionID), "Reconciliation session reset")

	return viewOf(session), nil
}

func (s *reconciliationService) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sessionID]; !exists {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)

	s.logger.Info(logger.WithSessionID(ctx, sessionID), "Reconciliation session deleted")

	return nil
}

func (s *reconciliationService) Candidates(ctx context.Context, sessionID, rowID string) ([]domain.PaymentObligation, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Candidates(ctx, rowID)
}

func (s *reconciliationService) ManualMatch(ctx context.Context, sessionID, rowID, obligationID string) (domain.ReconciledRow, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return domain.ReconciledRow{}, err
	}
	return session.ManualMatch(ctx, rowID, obligationID)
}

func (s *reconciliationService) Process(ctx context.Context, sessionID string) (domain.BatchResult, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return domain.BatchResult{}, err
	}
	return session.ProcessAll(ctx), nil
}

func (s *reconciliationService) session(sessionID string) (*reconciliation.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func viewOf(session *reconciliation.Session) *SessionView {
	return &SessionView{
		ID:        session.ID(),
		CreatedAt: session.CreatedAt(),
		Rows:      session.Rows(),
		Summary:   session.Summary(),
	}
}
