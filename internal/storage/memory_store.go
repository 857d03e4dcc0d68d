package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/grachmannico95/rent-recon/internal/domain"
)

type MemoryStore struct {
	obligations     map[string]domain.PaymentObligation
	confirmations   []domain.ConfirmationRecord
	processedEvents map[string]bool
	trustedAccount  string
	mu              sync.RWMutex
	now             func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		obligations:     make(map[string]domain.PaymentObligation),
		confirmations:   []domain.ConfirmationRecord{},
		processedEvents: make(map[string]bool),
		now:             time.Now,
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) CreateObligation(ctx context.Context, obligation domain.PaymentObligation) error {
	if err := validateObligation(obligation); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.obligations[obligation.ID]; exists {
		return domain.ErrObligationExists
	}

	s.obligations[obligation.ID] = obligation

	return nil
}

func (s *MemoryStore) GetObligation(ctx context.Context, id string) (*domain.PaymentObligation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obligation, exists := s.obligations[id]
	if !exists {
		return nil, domain.ErrObligationNotFound
	}

	return cloneObligation(obligation), nil
}

// ListObligations returns every obligation ordered by id.
func (s *MemoryStore) ListObligations(ctx context.Context) ([]domain.PaymentObligation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PaymentObligation, 0, len(s.obligations))
	for _, o := range s.obligations {
		out = append(out, *cloneObligation(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (s *MemoryStore) MarkObligationPaid(ctx context.Context, obligationID string, details domain.ConfirmationDetails) (*domain.PaymentObligation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obligation, exists := s.obligations[obligationID]
	if !exists {
		return nil, domain.ErrObligationNotFound
	}
	if !obligation.Status.IsOpen() {
		return nil, domain.ErrObligationNotOpen
	}

	paidDate := details.Date
	transactionID := details.TransactionID
	obligation.Status = domain.ObligationStatusPaid
	obligation.PaidDate = &paidDate
	obligation.TransactionID = &transactionID
	s.obligations[obligationID] = obligation

	return cloneObligation(obligation), nil
}

func (s *MemoryStore) GetTrustedAccount(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trustedAccount, nil
}

func (s *MemoryStore) SetTrustedAccount(ctx context.Context, account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trustedAccount = account

	return nil
}

func (s *MemoryStore) AddConfirmation(ctx context.Context, record domain.ConfirmationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.RecordedAt.IsZero() {
		record.RecordedAt = s.now()
	}
	s.confirmations = append(s.confirmations, record)

	return nil
}

func (s *MemoryStore) ListConfirmations(ctx context.Context) ([]domain.ConfirmationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ConfirmationRecord, len(s.confirmations))
	copy(out, s.confirmations)

	return out, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}

func cloneObligation(o domain.PaymentObligation) *domain.PaymentObligation {
	if o.PaidDate != nil {
		v := *o.PaidDate
		o.PaidDate = &v
	}
	if o.TransactionID != nil {
		v := *o.TransactionID
		o.TransactionID = &v
	}
	return &o
}
