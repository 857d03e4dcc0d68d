// Package security checks that a payment proof was sent to the trusted
// beneficiary account before it can confirm anything.
package security

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/grachmannico95/rent-recon/internal/domain"
)

// NormalizeAccount strips dots and whitespace and upper-cases, so the dotted
// display form of an IBAN compares equal to the compact one.
func NormalizeAccount(account string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, account)
}

type Gate struct {
	// RequireTrustedAccount rejects every proof while no trusted account is
	// configured instead of skipping the check.
	RequireTrustedAccount bool
}

func NewGate(requireTrustedAccount bool) *Gate {
	return &Gate{RequireTrustedAccount: requireTrustedAccount}
}

// Validate compares the extracted destination account with the trusted one.
// A nil extracted account against a configured trusted account is a mismatch.
func (g *Gate) Validate(trusted string, extracted *string) domain.Validation {
	expected := NormalizeAccount(trusted)
	received := ""
	if extracted != nil {
		received = NormalizeAccount(*extracted)
	}

	if expected == "" {
		if g.RequireTrustedAccount {
			return domain.Validation{
				State:    domain.ValidationStateInvalid,
				Received: received,
				Message:  "trusted recipient account is not configured",
			}
		}
		return domain.Validation{
			State:    domain.ValidationStateSkipped,
			Received: received,
			Message:  "trusted recipient account is not configured, check skipped",
		}
	}

	if received != expected {
		return domain.Validation{
			State:    domain.ValidationStateInvalid,
			Expected: expected,
			Received: received,
			Message:  fmt.Sprintf("payment was not sent to the trusted account %s", expected),
		}
	}

	return domain.Validation{
		State:    domain.ValidationStateValid,
		Expected: expected,
		Received: received,
	}
}

// Enforce turns a failed validation into a *domain.SecurityMismatchError.
func Enforce(v domain.Validation) error {
	if v.Passed() {
		return nil
	}
	return &domain.SecurityMismatchError{
		Expected: v.Expected,
		Received: v.Received,
		Reason:   reasonFor(v),
	}
}

func reasonFor(v domain.Validation) string {
	if v.Expected == "" {
		return v.Message
	}
	return ""
}
