package service

import (
	"context"
	"testing"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/matching"
	"github.com/grachmannico95/rent-recon/internal/reconciliation"
	"github.com/grachmannico95/rent-recon/internal/security"
	"github.com/grachmannico95/rent-recon/internal/slip"
	"github.com/grachmannico95/rent-recon/mocks"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const proofSlip = `Transacção 9412372
Montante 250.050,00 Kz
Data - Hora 2025-11-23 11:56:11
Destinatário Imobiliária Horizonte
AO06.0040.0000.1234.5678.1012.3`

func newTestProofService(t *testing.T, trusted string) (ProofService, *mocks.MockPaymentConfirmer) {
	log := logger.NewNop()
	store := seededStore(t)
	require.NoError(t, store.SetTrustedAccount(context.Background(), trusted))
	confirmer := mocks.NewMockPaymentConfirmer(t)

	verifier := reconciliation.NewProofVerifier(
		slip.NewExtractor(log),
		security.NewGate(false),
		matching.NewEngine(matching.DefaultBankTolerance, matching.DefaultProofTolerance),
		store,
		store,
		confirmer,
		log,
	)
	return NewProofService(verifier, log), confirmer
}

func TestProofService_VerifyAndConfirm(t *testing.T) {
	svc, confirmer := newTestProofService(t, "AO06004000001234567810123")
	ctx := context.Background()

	v, err := svc.Verify(ctx, proofSlip)
	require.NoError(t, err)
	assert.Equal(t, domain.ValidationStateValid, v.Validation.State)
	require.NotNil(t, v.SuggestedMatchID)
	assert.Equal(t, "p2", *v.SuggestedMatchID)

	confirmer.EXPECT().
		ConfirmPayment(mock.Anything, "p2", mock.MatchedBy(func(d domain.ConfirmationDetails) bool {
			return d.TransactionID == "9412372" &&
				d.Date == "2025-11-23 11:56:11" &&
				d.Amount.Equal(decimal.NewFromInt(250050)) &&
				d.Source == domain.ConfirmationSourceProof
		})).
		Return(nil).
		Once()

	confirmed, err := svc.Confirm(ctx, v.ID, "")
	require.NoError(t, err)
	require.NotNil(t, confirmed.ConfirmedPayment)
	assert.Equal(t, "p2", *confirmed.ConfirmedPayment)

	stored, err := svc.GetProof(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ConfirmedPayment)

	_, err = svc.Confirm(ctx, v.ID, "")
	assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
}

func TestProofService_MismatchBlocksConfirm(t *testing.T) {
	svc, _ := newTestProofService(t, "AO06005500009999000011112")
	ctx := context.Background()

	v, err := svc.Verify(ctx, proofSlip)
	require.NoError(t, err)
	assert.Equal(t, domain.ValidationStateInvalid, v.Validation.State)

	_, err = svc.Confirm(ctx, v.ID, "p2")
	assert.ErrorIs(t, err, domain.ErrSecurityMismatch)
}

func TestProofService_ReturnsCopies(t *testing.T) {
	svc, _ := newTestProofService(t, "")
	ctx := context.Background()

	v, err := svc.Verify(ctx, proofSlip)
	require.NoError(t, err)
	require.NotNil(t, v.SuggestedMatchID)
	*v.SuggestedMatchID = "tampered"

	stored, err := svc.GetProof(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "p2", *stored.SuggestedMatchID)
}

func TestProofService_Errors(t *testing.T) {
	svc, _ := newTestProofService(t, "")
	ctx := context.Background()

	_, err := svc.Verify(ctx, "nothing useful here")
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)

	_, err = svc.GetProof(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProofNotFound)

	_, err = svc.Confirm(ctx, "missing", "")
	assert.ErrorIs(t, err, domain.ErrProofNotFound)
}
