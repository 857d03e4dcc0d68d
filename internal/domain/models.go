package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ObligationStatus string

const (
	ObligationStatusPaid ObligationStatus = "Paid"
	ObligationStatusDue  ObligationStatus = "Due"
	ObligationStatusLate ObligationStatus = "Late"
)

// IsOpen reports whether an obligation can still receive a payment.
func (s ObligationStatus) IsOpen() bool {
	return s == ObligationStatusDue || s == ObligationStatusLate
}

// PaymentObligation is a rent payment expected under a contract. It is owned
// by the host application; reconciliation only reads it and asks for it to be
// confirmed.
type PaymentObligation struct {
	ID            string           `json:"id"`
	ContractID    string           `json:"contract_id"`
	Amount        decimal.Decimal  `json:"amount"`
	DueDate       string           `json:"due_date"`
	Status        ObligationStatus `json:"status"`
	PaidDate      *string          `json:"paid_date,omitempty"`
	TransactionID *string          `json:"transaction_id,omitempty"`
}

// BankTransaction is one data row of a bank export.
type BankTransaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	RawLine     string          `json:"raw_line"`
}

// ExtractedPaymentData holds the fields read from a payment slip.
type ExtractedPaymentData struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Recipient     string          `json:"recipient"`
	IBAN          *string         `json:"iban"`
}

type RowStatus string

const (
	RowStatusUnmatched RowStatus = "Unmatched"
	RowStatusMatched   RowStatus = "Matched"
	RowStatusProcessed RowStatus = "Processed"
)

type MatchSource string

const (
	MatchSourceAuto   MatchSource = "auto"
	MatchSourceManual MatchSource = "manual"
)

type Confidence string

const (
	ConfidenceFull    Confidence = "full"
	ConfidencePartial Confidence = "partial"
)

type ReconciledRow struct {
	BankTransaction
	Status           RowStatus   `json:"status"`
	MatchedPaymentID *string     `json:"matched_payment_id,omitempty"`
	MatchSource      MatchSource `json:"match_source,omitempty"`
	Confidence       Confidence  `json:"confidence,omitempty"`
	LastError        string      `json:"last_error,omitempty"`
}

type SessionSummary struct {
	Total     int `json:"total"`
	Unmatched int `json:"unmatched"`
	Matched   int `json:"matched"`
	Processed int `json:"processed"`
}

// ConfirmationSource tells the host which flow confirmed a payment.
type ConfirmationSource string

const (
	ConfirmationSourceBankFile ConfirmationSource = "bank_file"
	ConfirmationSourceProof    ConfirmationSource = "proof"
)

type ConfirmationDetails struct {
	TransactionID string             `json:"transaction_id"`
	Date          string             `json:"date"`
	Amount        decimal.Decimal    `json:"amount"`
	Source        ConfirmationSource `json:"source,omitempty"`
}

type RowResult struct {
	RowID        string `json:"row_id"`
	ObligationID string `json:"obligation_id"`
	Processed    bool   `json:"processed"`
	Error        string `json:"error,omitempty"`
}

type BatchResult struct {
	Results   []RowResult `json:"results"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Skipped   int         `json:"skipped"`
}

type ValidationState string

const (
	ValidationStateValid   ValidationState = "valid"
	ValidationStateInvalid ValidationState = "invalid"
	ValidationStateSkipped ValidationState = "skipped"
)

type Validation struct {
	State    ValidationState `json:"state"`
	Expected string          `json:"expected,omitempty"`
	Received string          `json:"received,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// Passed reports whether confirmation may proceed.
func (v Validation) Passed() bool {
	return v.State != ValidationStateInvalid
}

type ProofVerification struct {
	ID               string               `json:"id"`
	Data             ExtractedPaymentData `json:"data"`
	Validation       Validation           `json:"validation"`
	SuggestedMatchID *string              `json:"suggested_match_id,omitempty"`
	Confidence       Confidence           `json:"confidence,omitempty"`
	ConfirmedPayment *string              `json:"confirmed_payment,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

type ConfirmationRecord struct {
	EventID       string             `json:"event_id"`
	ObligationID  string             `json:"obligation_id"`
	TransactionID string             `json:"transaction_id"`
	Date          string             `json:"date"`
	Amount        decimal.Decimal    `json:"amount"`
	Source        ConfirmationSource `json:"source"`
	RecordedAt    time.Time          `json:"recorded_at"`
}
