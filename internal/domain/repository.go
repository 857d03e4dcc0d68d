package domain

import "context"

// ObligationReader supplies the outstanding payment obligations. Results are
// ordered by id so matching stays deterministic.
type ObligationReader interface {
	ListObligations(ctx context.Context) ([]PaymentObligation, error)
	GetObligation(ctx context.Context, id string) (*PaymentObligation, error)
}

// PaymentConfirmer is the host operation that settles an obligation.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, obligationID string, details ConfirmationDetails) error
}

type SettingsRepository interface {
	GetTrustedAccount(ctx context.Context) (string, error)
	SetTrustedAccount(ctx context.Context, account string) error
}

type Repository interface {
	ObligationReader
	SettingsRepository

	// Obligation management
	CreateObligation(ctx context.Context, obligation PaymentObligation) error
	MarkObligationPaid(ctx context.Context, obligationID string, details ConfirmationDetails) (*PaymentObligation, error)

	// Confirmation audit trail
	AddConfirmation(ctx context.Context, record ConfirmationRecord) error
	ListConfirmations(ctx context.Context) ([]ConfirmationRecord, error)

	// Idempotency tracking
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
