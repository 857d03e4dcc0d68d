package eventbus

import (
	"context"
	"fmt"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/pkg/logger"
)

// ConfirmationConsumer writes the audit trail for payment.confirmed events.
type ConfirmationConsumer struct {
	repo        domain.Repository
	logger      *logger.Logger
	workerCount int
}

func NewConfirmationConsumer(repo domain.Repository, log *logger.Logger, workerCount int) *ConfirmationConsumer {
	if workerCount < 1 {
		workerCount = 1
	}
	return &ConfirmationConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (cc *ConfirmationConsumer) Consume(ctx context.Context, event Event) error {
	// Check idempotency
	processed, err := cc.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		cc.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		cc.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(PaymentConfirmedEvent)
	if !ok {
		cc.logger.Error(ctx, "Invalid payload type for payment confirmed event",
			"event_id", event.ID,
		)
		return fmt.Errorf("invalid payload type %T", event.Payload)
	}

	record := domain.ConfirmationRecord{
		EventID:       event.ID,
		ObligationID:  payload.ObligationID,
		TransactionID: payload.Details.TransactionID,
		Date:          payload.Details.Date,
		Amount:        payload.Details.Amount,
		Source:        payload.Details.Source,
		RecordedAt:    event.Timestamp,
	}

	if err := cc.repo.AddConfirmation(ctx, record); err != nil {
		cc.logger.Error(ctx, "Failed to record confirmation",
			"event_id", event.ID,
			"obligation_id", payload.ObligationID,
			"error", err,
		)
		return err
	}

	if err := cc.repo.MarkEventProcessed(ctx, event.ID); err != nil {
		cc.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	cc.logger.Info(ctx, "Payment confirmation recorded",
		"event_id", event.ID,
		"obligation_id", payload.ObligationID,
		"transaction_id", payload.Details.TransactionID,
		"source", payload.Details.Source,
	)

	return nil
}

func (cc *ConfirmationConsumer) GetWorkerCount() int {
	return cc.workerCount
}
