package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrProofNotFound       = errors.New("proof not found")
	ErrRowNotFound         = errors.New("row not found")
	ErrRowProcessed        = errors.New("row already processed")
	ErrObligationNotFound  = errors.New("obligation not found")
	ErrObligationNotOpen   = errors.New("obligation is not due or late")
	ErrObligationClaimed   = errors.New("obligation already matched to another row")
	ErrObligationExists    = errors.New("obligation already exists")
	ErrInvalidObligation   = errors.New("invalid obligation")
	ErrExtractionFailed    = errors.New("could not read proof data")
	ErrNoMatch             = errors.New("no matching obligation")
	ErrAlreadyConfirmed    = errors.New("proof already confirmed")
	ErrSecurityMismatch    = errors.New("beneficiary account mismatch")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("file is empty")
)

// SecurityMismatchError blocks confirmation of a proof whose destination
// account is not the trusted account on file.
type SecurityMismatchError struct {
	Expected string
	Received string
	Reason   string
}

func (e *SecurityMismatchError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrSecurityMismatch, e.Reason)
	}
	return fmt.Sprintf("%s: expected account %s", ErrSecurityMismatch, e.Expected)
}

func (e *SecurityMismatchError) Unwrap() error {
	return ErrSecurityMismatch
}
