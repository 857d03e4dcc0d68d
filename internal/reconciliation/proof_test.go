package reconciliation

import (
	"context"
	"errors"
	"testing"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/matching"
	"github.com/grachmannico95/rent-recon/internal/security"
	"github.com/grachmannico95/rent-recon/internal/slip"
	"github.com/grachmannico95/rent-recon/mocks"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	trustedIBAN = "AO06.0040.0000.1234.5678.1012.3"
	slipText    = `Transacção 9412372
Montante 592.051,05 Kz
Data - Hora 2025-11-23 11:56:11
Destinatário Imobiliária Horizonte
AO06.0040.0000.1234.5678.1012.3`
	foreignSlipText = `Transacção 9412372
Montante 592.051,05 Kz
Data - Hora 2025-11-23 11:56:11
Destinatário Outra Conta
AO06.0055.0000.9999.0000.1111.2`
)

type proofFixture struct {
	verifier  *ProofVerifier
	reader    *mocks.MockObligationReader
	settings  *mocks.MockSettingsRepository
	confirmer *mocks.MockPaymentConfirmer
}

func newProofFixture(t *testing.T, requireTrusted bool) proofFixture {
	log := logger.NewNop()
	f := proofFixture{
		reader:    mocks.NewMockObligationReader(t),
		settings:  mocks.NewMockSettingsRepository(t),
		confirmer: mocks.NewMockPaymentConfirmer(t),
	}
	f.verifier = NewProofVerifier(
		slip.NewExtractor(log),
		security.NewGate(requireTrusted),
		matching.NewEngine(matching.DefaultBankTolerance, matching.DefaultProofTolerance),
		f.reader,
		f.settings,
		f.confirmer,
		log,
	)
	return f
}

func proofObligations() []domain.PaymentObligation {
	return []domain.PaymentObligation{
		{ID: "p1", ContractID: "c1", Amount: decimal.NewFromInt(592000), Status: domain.ObligationStatusPaid},
		{ID: "p7", ContractID: "c7", Amount: decimal.NewFromInt(592000), Status: domain.ObligationStatusDue},
	}
}

func TestVerify_ValidProofSuggestsMatch(t *testing.T) {
	f := newProofFixture(t, false)
	f.settings.EXPECT().GetTrustedAccount(mock.Anything).Return(trustedIBAN, nil).Once()
	f.reader.EXPECT().ListObligations(mock.Anything).Return(proofObligations(), nil).Once()

	v, err := f.verifier.Verify(context.Background(), slipText)

	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "9412372", v.Data.TransactionID)
	assert.Equal(t, domain.ValidationStateValid, v.Validation.State)
	require.NotNil(t, v.SuggestedMatchID)
	assert.Equal(t, "p7", *v.SuggestedMatchID)
	assert.Equal(t, domain.ConfidencePartial, v.Confidence)
}

func TestVerify_ForeignAccountBlocksConfirmation(t *testing.T) {
	f := newProofFixture(t, false)
	f.settings.EXPECT().GetTrustedAccount(mock.Anything).Return(trustedIBAN, nil).Once()

	v, err := f.verifier.Verify(context.Background(), foreignSlipText)

	require.NoError(t, err)
	assert.Equal(t, domain.ValidationStateInvalid, v.Validation.State)
	assert.Nil(t, v.SuggestedMatchID)

	err = f.verifier.Confirm(context.Background(), v, "p7")

	assert.ErrorIs(t, err, domain.ErrSecurityMismatch)
	var mismatch *domain.SecurityMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, security.NormalizeAccount(trustedIBAN), mismatch.Expected)
	f.confirmer.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerify_UnreadableSlip(t *testing.T) {
	f := newProofFixture(t, false)

	v, err := f.verifier.Verify(context.Background(), "Montante 10,00 Kz")

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.Nil(t, v)
}

func TestVerify_NoTrustedAccountConfigured(t *testing.T) {
	f := newProofFixture(t, false)
	f.settings.EXPECT().GetTrustedAccount(mock.Anything).Return("", nil).Once()
	f.reader.EXPECT().ListObligations(mock.Anything).Return(proofObligations(), nil).Once()

	v, err := f.verifier.Verify(context.Background(), foreignSlipText)

	require.NoError(t, err)
	assert.Equal(t, domain.ValidationStateSkipped, v.Validation.State)
	assert.NotNil(t, v.SuggestedMatchID)
}

func TestVerify_RequireTrustedAccount(t *testing.T) {
	f := newProofFixture(t, true)
	f.settings.EXPECT().GetTrustedAccount(mock.Anything).Return("", nil).Once()

	v, err := f.verifier.Verify(context.Background(), slipText)

	require.NoError(t, err)
	assert.Equal(t, domain.ValidationStateInvalid, v.Validation.State)
	assert.ErrorIs(t, f.verifier.Confirm(context.Background(), v, "p7"), domain.ErrSecurityMismatch)
}

func TestConfirm_UsesSuggestedMatch(t *testing.T) {
	f := newProofFixture(t, false)
	f.settings.EXPECT().GetTrustedAccount(mock.Anything).Return(trustedIBAN, nil).Once()
	f.reader.EXPECT().ListObligations(mock.Anything).Return(proofObligations(), nil).Once()
	f.reader.EXPECT().GetObligation(mock.Anything, "p7").Return(&proofObligations()[1], nil).Once()
	f.confirmer.EXPECT().
		ConfirmPayment(mock.Anything, "p7", domain.ConfirmationDetails{
			TransactionID: "9412372",
			Date:          "2025-11-23 11:56:11",
			Amount:        decimal.RequireFromString("592051.05"),
			Source:        domain.ConfirmationSourceProof,
		}).
		Return(nil).
		Once()

	v, err := f.verifier.Verify(context.Background(), slipText)
	require.NoError(t, err)

	require.NoError(t, f.verifier.Confirm(context.Background(), v, ""))
	require.NotNil(t, v.ConfirmedPayment)
	assert.Equal(t, "p7", *v.ConfirmedPayment)

	assert.ErrorIs(t, f.verifier.Confirm(context.Background(), v, ""), domain.ErrAlreadyConfirmed)
}

func TestConfirm_Rejections(t *testing.T) {
	f := newProofFixture(t, false)
	paid := proofObligations()[0]

	noMatch := &domain.ProofVerification{ID: "v1", Validation: domain.Validation{State: domain.ValidationStateValid}}
	assert.ErrorIs(t, f.verifier.Confirm(context.Background(), noMatch, ""), domain.ErrNoMatch)

	f.reader.EXPECT().GetObligation(mock.Anything, "p1").Return(&paid, nil).Once()
	assert.ErrorIs(t, f.verifier.Confirm(context.Background(), noMatch, "p1"), domain.ErrObligationNotOpen)

	f.reader.EXPECT().GetObligation(mock.Anything, "zz").Return(nil, domain.ErrObligationNotFound).Once()
	assert.ErrorIs(t, f.verifier.Confirm(context.Background(), noMatch, "zz"), domain.ErrObligationNotFound)
}

func TestConfirm_ConfirmerErrorLeavesProofUnconfirmed(t *testing.T) {
	f := newProofFixture(t, false)
	open := proofObligations()[1]
	f.reader.EXPECT().GetObligation(mock.Anything, "p7").Return(&open, nil).Once()
	f.confirmer.EXPECT().ConfirmPayment(mock.Anything, "p7", mock.Anything).Return(errors.New("down")).Once()

	v := &domain.ProofVerification{ID: "v1", Validation: domain.Validation{State: domain.ValidationStateValid}}

	assert.Error(t, f.verifier.Confirm(context.Background(), v, "p7"))
	assert.Nil(t, v.ConfirmedPayment)
}
