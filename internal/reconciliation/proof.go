package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/matching"
	"github.com/grachmannico95/rent-recon/internal/security"
	"github.com/grachmannico95/rent-recon/internal/slip"
	"github.com/grachmannico95/rent-recon/pkg/logger"
)

// ProofVerifier runs the payment-slip flow: extract, check the beneficiary
// account, suggest an obligation, confirm.
type ProofVerifier struct {
	extractor   *slip.Extractor
	gate        *security.Gate
	engine      *matching.Engine
	obligations domain.ObligationReader
	settings    domain.SettingsRepository
	confirmer   domain.PaymentConfirmer
	logger      *logger.Logger
}

func NewProofVerifier(
	extractor *slip.Extractor,
	gate *security.Gate,
	engine *matching.Engine,
	obligations domain.ObligationReader,
	settings domain.SettingsRepository,
	confirmer domain.PaymentConfirmer,
	log *logger.Logger,
) *ProofVerifier {
	return &ProofVerifier{
		extractor:   extractor,
		gate:        gate,
		engine:      engine,
		obligations: obligations,
		settings:    settings,
		confirmer:   confirmer,
		logger:      log,
	}
}

// Verify extracts the slip and validates its destination account. The
// matching step only runs once the account check passed. A slip that cannot
// be read returns domain.ErrExtractionFailed.
func (v *ProofVerifier) Verify(ctx context.Context, text string) (*domain.ProofVerification, error) {
	id := uuid.New().String()
	ctx = logger.WithProofID(ctx, id)

	data, err := v.extractor.Extract(ctx, text)
	if err != nil {
		v.logger.Warn(ctx, "Proof extraction failed",
			"error", err,
		)
		return nil, err
	}

	trusted, err := v.settings.GetTrustedAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("get trusted account: %w", err)
	}

	verification := &domain.ProofVerification{
		ID:         id,
		Data:       data,
		Validation: v.gate.Validate(trusted, data.IBAN),
		CreatedAt:  time.Now(),
	}

	if !verification.Validation.Passed() {
		v.logger.Warn(ctx, "Proof destination account rejected",
			"transaction_id", data.TransactionID,
			"expected", verification.Validation.Expected,
			"received", verification.Validation.Received,
		)
		return verification, nil
	}

	obligations, err := v.obligations.ListObligations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list obligations: %w", err)
	}

	if m, ok := v.engine.MatchProof(data, obligations); ok {
		matched := m.Obligation.ID
		verification.SuggestedMatchID = &matched
		verification.Confidence = m.Confidence
	}

	v.logger.Info(ctx, "Proof verified",
		"transaction_id", data.TransactionID,
		"validation", verification.Validation.State,
		"matched", verification.SuggestedMatchID != nil,
	)

	return verification, nil
}

// Confirm settles an obligation from a verified proof. An empty obligationID
// takes the suggested match. It refuses while the account check is invalid,
// whatever the amount.
func (v *ProofVerifier) Confirm(ctx context.Context, verification *domain.ProofVerification, obligationID string) error {
	ctx = logger.WithProofID(ctx, verification.ID)

	if err := security.Enforce(verification.Validation); err != nil {
		v.logger.Warn(ctx, "Proof confirmation blocked",
			"error", err,
		)
		return err
	}

	if verification.ConfirmedPayment != nil {
		return domain.ErrAlreadyConfirmed
	}

	if obligationID == "" {
		if verification.SuggestedMatchID == nil {
			return domain.ErrNoMatch
		}
		obligationID = *verification.SuggestedMatchID
	}

	obligation, err := v.obligations.GetObligation(ctx, obligationID)
	if err != nil {
		return err
	}
	if !obligation.Status.IsOpen() {
		return domain.ErrObligationNotOpen
	}

	err = v.confirmer.ConfirmPayment(ctx, obligationID, domain.ConfirmationDetails{
		TransactionID: verification.Data.TransactionID,
		Date:          verification.Data.Date,
		Amount:        verification.Data.Amount,
		Source:        domain.ConfirmationSourceProof,
	})
	if err != nil {
		v.logger.Error(ctx, "Proof confirmation failed",
			"obligation_id", obligationID,
			"error", err,
		)
		return err
	}

	verification.ConfirmedPayment = &obligationID

	v.logger.Info(ctx, "Proof confirmed",
		"obligation_id", obligationID,
		"transaction_id", verification.Data.TransactionID,
	)

	return nil
}
