// Package matching correlates incoming payments with open obligations.
package matching

import (
	"strings"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	DefaultBankTolerance  = decimal.NewFromInt(1)
	DefaultProofTolerance = decimal.NewFromInt(100)
)

// Match is the obligation chosen for a transaction or proof.
type Match struct {
	Obligation domain.PaymentObligation
	Confidence domain.Confidence
}

// Engine applies one policy to both flows: amount within tolerance and
// obligation Due or Late. Candidates are taken in the order given, first wins.
type Engine struct {
	BankTolerance  decimal.Decimal
	ProofTolerance decimal.Decimal
}

func NewEngine(bankTolerance, proofTolerance decimal.Decimal) *Engine {
	if !bankTolerance.IsPositive() {
		bankTolerance = DefaultBankTolerance
	}
	if !proofTolerance.IsPositive() {
		proofTolerance = DefaultProofTolerance
	}
	return &Engine{
		BankTolerance:  bankTolerance,
		ProofTolerance: proofTolerance,
	}
}

// MatchBankTransaction returns the first open obligation within BankTolerance
// whose contract id appears in the transaction description. Obligations in
// claimed, those already matched by an earlier row of the same file, are
// skipped so one obligation is never auto-matched to two rows.
func (e *Engine) MatchBankTransaction(txn domain.BankTransaction, obligations []domain.PaymentObligation, claimed map[string]bool) (Match, bool) {
	description := strings.ToLower(txn.Description)

	for _, o := range obligations {
		if claimed[o.ID] || !o.Status.IsOpen() {
			continue
		}
		if !withinTolerance(o.Amount, txn.Amount, e.BankTolerance) {
			continue
		}
		if o.ContractID == "" || !strings.Contains(description, strings.ToLower(o.ContractID)) {
			continue
		}
		return Match{Obligation: o, Confidence: confidenceFor(o.Amount, txn.Amount)}, true
	}

	return Match{}, false
}

// MatchProof has no description to disambiguate with, hence the wider
// tolerance.
func (e *Engine) MatchProof(data domain.ExtractedPaymentData, obligations []domain.PaymentObligation) (Match, bool) {
	for _, o := range obligations {
		if !o.Status.IsOpen() {
			continue
		}
		if !withinTolerance(o.Amount, data.Amount, e.ProofTolerance) {
			continue
		}
		return Match{Obligation: o, Confidence: confidenceFor(o.Amount, data.Amount)}, true
	}

	return Match{}, false
}

// Candidates lists obligations a row may be manually matched to: open ones
// not claimed by another row, plus the row's current match.
func Candidates(obligations []domain.PaymentObligation, claimed map[string]bool, current string) []domain.PaymentObligation {
	out := []domain.PaymentObligation{}
	for _, o := range obligations {
		if o.ID == current && current != "" {
			out = append(out, o)
			continue
		}
		if !o.Status.IsOpen() || claimed[o.ID] {
			continue
		}
		out = append(out, o)
	}
	return out
}

func withinTolerance(a, b, tolerance decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tolerance)
}

func confidenceFor(expected, received decimal.Decimal) domain.Confidence {
	if expected.Equal(received) {
		return domain.ConfidenceFull
	}
	return domain.ConfidencePartial
}
