package service

import (
	"context"
	"fmt"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/security"
	"github.com/grachmannico95/rent-recon/pkg/logger"
)

// LedgerService is the host-side view of obligations, the trusted recipient
// account and the confirmation audit trail.
type LedgerService interface {
	ListObligations(ctx context.Context) ([]domain.PaymentObligation, error)
	CreateObligation(ctx context.Context, obligation domain.PaymentObligation) (*domain.PaymentObligation, error)
	GetTrustedAccount(ctx context.Context) (string, error)
	SetTrustedAccount(ctx context.Context, account string) (string, error)
	ListConfirmations(ctx context.Context) ([]domain.ConfirmationRecord, error)
}

type ledgerService struct {
	repo   domain.Repository
	logger *logger.Logger
}

func NewLedgerService(repo domain.Repository, log *logger.Logger) LedgerService {
	return &ledgerService{
		repo:   repo,
		logger: log,
	}
}

func (s *ledgerService) ListObligations(ctx context.Context) ([]domain.PaymentObligation, error) {
	return s.repo.ListObligations(ctx)
}

// CreateObligation registers an open obligation. Paid obligations are settled
// only through a confirmation.
func (s *ledgerService) CreateObligation(ctx context.Context, obligation domain.PaymentObligation) (*domain.PaymentObligation, error) {
	if obligation.Status == "" {
		obligation.Status = domain.ObligationStatusDue
	}
	if !obligation.Status.IsOpen() {
		return nil, fmt.Errorf("%w: status must be Due or Late", domain.ErrInvalidObligation)
	}
	obligation.PaidDate = nil
	obligation.TransactionID = nil

	if err := s.repo.CreateObligation(ctx, obligation); err != nil {
		s.logger.Warn(ctx, "Failed to create obligation",
			"obligation_id", obligation.ID,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Obligation created",
		"obligation_id", obligation.ID,
		"contract_id", obligation.ContractID,
		"amount", obligation.Amount.String(),
	)

	return &obligation, nil
}

func (s *ledgerService) GetTrustedAccount(ctx context.Context) (string, error) {
	return s.repo.GetTrustedAccount(ctx)
}

// SetTrustedAccount stores account in normalized form and returns it. An
// empty account clears the setting.
func (s *ledgerService) SetTrustedAccount(ctx context.Context, account string) (string, error) {
	normalized := security.NormalizeAccount(account)
	if err := s.repo.SetTrustedAccount(ctx, normalized); err != nil {
		s.logger.Error(ctx, "Failed to save trusted account",
			"error", err,
		)
		return "", err
	}

	s.logger.Info(ctx, "Trusted recipient account updated",
		"configured", normalized != "",
	)

	return normalized, nil
}

func (s *ledgerService) ListConfirmations(ctx context.Context) ([]domain.ConfirmationRecord, error) {
	return s.repo.ListConfirmations(ctx)
}
