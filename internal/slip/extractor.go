// Package slip reads Multicaixa-style payment confirmations that were already
// converted to text.
package slip

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/grachmannico95/rent-recon/internal/amount"
	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"golang.org/x/text/unicode/norm"
)

// MaxTextLength caps the text fed to the patterns. Slip text comes from OCR of
// user uploads.
const MaxTextLength = 3000

const (
	dateLayout       = "2006-01-02 15:04:05"
	unknownRecipient = "Unknown"
)

// All quantifiers are bounded; regexp is RE2 so matching is linear anyway.
var (
	transactionPattern = regexp.MustCompile(`(?i)transa(?:c|ç){1,2}(?:a|ã)o[^0-9\n]{0,20}([0-9]{5,15})(?:[^0-9]|$)`)
	amountPattern      = regexp.MustCompile(`(?i)montante[^0-9\n]{0,20}([0-9][0-9., ]{0,24}?)[ \t]{0,5}kz`)
	datePattern        = regexp.MustCompile(`(?i)data[ \t]{0,3}-[ \t]{0,3}hora[^0-9\n]{0,20}([0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2})`)
	recipientPattern   = regexp.MustCompile(`(?i)destinat(?:a|á)rio[ \t]{0,10}:?[ \t]{0,10}([^\r\n]{1,100})`)
	ibanPattern        = regexp.MustCompile(`\bAO[0-9.]{21,30}`)
)

type Extractor struct {
	logger *logger.Logger
}

func NewExtractor(log *logger.Logger) *Extractor {
	return &Extractor{logger: log}
}

// Extract returns the payment fields of a slip. Transaction id, amount and
// date are mandatory: when one is missing the result is domain.ErrExtractionFailed
// and no partial record.
func (e *Extractor) Extract(ctx context.Context, text string) (domain.ExtractedPaymentData, error) {
	text = prepare(text)

	transactionID, ok := firstGroup(transactionPattern, text)
	if !ok {
		return e.fail(ctx, "transaction id")
	}

	rawAmount, ok := firstGroup(amountPattern, text)
	if !ok {
		return e.fail(ctx, "amount")
	}
	value, ok := amount.Normalize(rawAmount)
	if !ok {
		return e.fail(ctx, "amount")
	}

	date, ok := firstGroup(datePattern, text)
	if !ok {
		return e.fail(ctx, "date")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return e.fail(ctx, "date")
	}

	recipient := unknownRecipient
	if r, found := firstGroup(recipientPattern, text); found {
		if r = strings.TrimSpace(strings.TrimLeft(r, ": \t")); r != "" {
			recipient = r
		}
	}

	var iban *string
	if match := ibanPattern.FindString(text); match != "" {
		trimmed := strings.TrimRight(match, ".")
		iban = &trimmed
	}

	e.logger.Debug(ctx, "Slip fields extracted",
		"transaction_id", transactionID,
		"amount", value.String(),
		"has_iban", iban != nil,
	)

	return domain.ExtractedPaymentData{
		TransactionID: transactionID,
		Amount:        value,
		Date:          date,
		Recipient:     recipient,
		IBAN:          iban,
	}, nil
}

func (e *Extractor) fail(ctx context.Context, field string) (domain.ExtractedPaymentData, error) {
	e.logger.Debug(ctx, "Slip extraction failed", "missing", field)
	return domain.ExtractedPaymentData{}, fmt.Errorf("%w: missing %s", domain.ErrExtractionFailed, field)
}

// prepare applies the length cap and composes decomposed accents.
func prepare(text string) string {
	if len(text) > MaxTextLength {
		if runes := []rune(text); len(runes) > MaxTextLength {
			text = string(runes[:MaxTextLength])
		}
	}
	return norm.NFC.String(text)
}

func firstGroup(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}
