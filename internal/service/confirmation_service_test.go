package service

import (
	"context"
	"errors"
	"testing"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/eventbus"
	"github.com/grachmannico95/rent-recon/mocks"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bankDetails() domain.ConfirmationDetails {
	return domain.ConfirmationDetails{
		TransactionID: "REF1",
		Date:          "2024-03-01",
		Amount:        decimal.NewFromInt(500000),
		Source:        domain.ConfirmationSourceBankFile,
	}
}

func TestConfirmPayment_PublishesEvent(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	bus := mocks.NewMockEventBus(t)
	svc := NewPaymentConfirmationService(repo, bus, logger.NewNop())
	ctx := context.Background()

	repo.EXPECT().
		MarkObligationPaid(mock.Anything, "p2", bankDetails()).
		Return(&domain.PaymentObligation{ID: "p2", ContractID: "c1", Status: domain.ObligationStatusPaid}, nil).
		Once()
	bus.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e eventbus.Event) bool {
			payload, ok := e.Payload.(eventbus.PaymentConfirmedEvent)
			return ok &&
				e.Type == eventbus.EventTypePaymentConfirmed &&
				e.ID != "" &&
				payload.ObligationID == "p2" &&
				payload.Details.TransactionID == "REF1"
		})).
		Return(nil).
		Once()

	require.NoError(t, svc.ConfirmPayment(ctx, "p2", bankDetails()))
}

func TestConfirmPayment_StoreRejection(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	bus := mocks.NewMockEventBus(t)
	svc := NewPaymentConfirmationService(repo, bus, logger.NewNop())

	repo.EXPECT().
		MarkObligationPaid(mock.Anything, "p1", mock.Anything).
		Return(nil, domain.ErrObligationNotOpen).
		Once()

	err := svc.ConfirmPayment(context.Background(), "p1", bankDetails())

	assert.ErrorIs(t, err, domain.ErrObligationNotOpen)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestConfirmPayment_PublishFailureDoesNotUndoPayment(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	bus := mocks.NewMockEventBus(t)
	svc := NewPaymentConfirmationService(repo, bus, logger.NewNop())

	repo.EXPECT().
		MarkObligationPaid(mock.Anything, "p2", mock.Anything).
		Return(&domain.PaymentObligation{ID: "p2", Status: domain.ObligationStatusPaid}, nil).
		Once()
	bus.EXPECT().
		Publish(mock.Anything, mock.Anything).
		Return(errors.New("buffer full")).
		Once()

	assert.NoError(t, svc.ConfirmPayment(context.Background(), "p2", bankDetails()))
}
