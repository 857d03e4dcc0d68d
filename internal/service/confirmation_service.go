package service

import (
	"context"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/eventbus"
	"github.com/grachmannico95/rent-recon/pkg/logger"
)

// PaymentConfirmationService settles obligations in the store and announces
// each settlement on the event bus.
type PaymentConfirmationService struct {
	repo     domain.Repository
	eventBus eventbus.EventBus
	logger   *logger.Logger
}

var _ domain.PaymentConfirmer = (*PaymentConfirmationService)(nil)

func NewPaymentConfirmationService(repo domain.Repository, eventBus eventbus.EventBus, log *logger.Logger) *PaymentConfirmationService {
	return &PaymentConfirmationService{
		repo:     repo,
		eventBus: eventBus,
		logger:   log,
	}
}

func (s *PaymentConfirmationService) ConfirmPayment(ctx context.Context, obligationID string, details domain.ConfirmationDetails) error {
	obligation, err := s.repo.MarkObligationPaid(ctx, obligationID, details)
	if err != nil {
		s.logger.Warn(ctx, "Failed to mark obligation paid",
			"obligation_id", obligationID,
			"error", err,
		)
		return err
	}

	s.logger.Info(ctx, "Obligation marked paid",
		"obligation_id", obligation.ID,
		"contract_id", obligation.ContractID,
		"transaction_id", details.TransactionID,
		"source", details.Source,
	)

	// The obligation is settled at this point; a publish failure only costs
	// the audit record.
	event := eventbus.NewPaymentConfirmedEvent(obligationID, details)
	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Error(ctx, "Failed to publish payment confirmation",
			"obligation_id", obligationID,
			"event_id", event.ID,
			"error", err,
		)
	}

	return nil
}
