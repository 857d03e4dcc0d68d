package service

import (
	"context"
	"sync"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/reconciliation"
	"github.com/grachmannico95/rent-recon/pkg/logger"
)

type ProofService interface {
	Verify(ctx context.Context, text string) (*domain.ProofVerification, error)
	GetProof(ctx context.Context, proofID string) (*domain.ProofVerification, error)
	Confirm(ctx context.Context, proofID, obligationID string) (*domain.ProofVerification, error)
}

type proofEntry struct {
	mu           sync.Mutex
	verification *domain.ProofVerification
}

type proofService struct {
	verifier *reconciliation.ProofVerifier
	logger   *logger.Logger

	mu     sync.RWMutex
	proofs map[string]*proofEntry
}

func NewProofService(verifier *reconciliation.ProofVerifier, log *logger.Logger) ProofService {
	return &proofService{
		verifier: verifier,
		logger:   log,
		proofs:   make(map[string]*proofEntry),
	}
}

func (s *proofService) Verify(ctx context.Context, text string) (*domain.ProofVerification, error) {
	verification, err := s.verifier.Verify(ctx, text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.proofs[verification.ID] = &proofEntry{verification: verification}
	s.mu.Unlock()

	return copyProof(verification), nil
}

func (s *proofService) GetProof(ctx context.Context, proofID string) (*domain.ProofVerification, error) {
	entry, err := s.entry(proofID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return copyProof(entry.verification), nil
}

// Confirm settles the proof against obligationID, or its suggested match when
// obligationID is empty. Confirmations of one proof are serialized.
func (s *proofService) Confirm(ctx context.Context, proofID, obligationID string) (*domain.ProofVerification, error) {
	entry, err := s.entry(proofID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := s.verifier.Confirm(ctx, entry.verification, obligationID); err != nil {
		return copyProof(entry.verification), err
	}

	return copyProof(entry.verification), nil
}

func (s *proofService) entry(proofID string) (*proofEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.proofs[proofID]
	if !exists {
		return nil, domain.ErrProofNotFound
	}
	return entry, nil
}

func copyProof(v *domain.ProofVerification) *domain.ProofVerification {
	out := *v
	if v.Data.IBAN != nil {
		iban := *v.Data.IBAN
		out.Data.IBAN = &iban
	}
	if v.SuggestedMatchID != nil {
		id := *v.SuggestedMatchID
		out.SuggestedMatchID = &id
	}
	if v.ConfirmedPayment != nil {
		id := *v.ConfirmedPayment
		out.ConfirmedPayment = &id
	}
	return &out
}
