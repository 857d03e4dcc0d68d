package storage

import (
	"fmt"
	"strings"

	"github.com/grachmannico95/rent-recon/internal/domain"
)

func validateObligation(o domain.PaymentObligation) error {
	if strings.TrimSpace(o.ID) == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidObligation)
	}
	if strings.TrimSpace(o.ContractID) == "" {
		return fmt.Errorf("%w: contract_id is required", domain.ErrInvalidObligation)
	}
	if !o.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidObligation)
	}
	switch o.Status {
	case domain.ObligationStatusDue, domain.ObligationStatusLate, domain.ObligationStatusPaid:
	default:
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidObligation, o.Status)
	}
	return nil
}
