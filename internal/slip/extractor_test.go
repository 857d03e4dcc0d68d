package slip

import (
	"context"
	"strings"
	"testing"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullSlip = `MULTICAIXA Express
Comprovativo de Transferência
Transacção: 9412372
Montante: 592.051,05 Kz
Data - Hora: 2025-11-23 11:56:11
Destinatário: Imobiliária Horizonte Lda
IBAN: AO06.0040.0000.1234.5678.1012.3
Obrigado`

func TestExtract_AllFields(t *testing.T) {
	e := NewExtractor(logger.NewNop())

	data, err := e.Extract(context.Background(), fullSlip)

	require.NoError(t, err)
	assert.Equal(t, "9412372", data.TransactionID)
	assert.True(t, decimal.RequireFromString("592051.05").Equal(data.Amount))
	assert.Equal(t, "2025-11-23 11:56:11", data.Date)
	assert.Equal(t, "Imobiliária Horizonte Lda", data.Recipient)
	require.NotNil(t, data.IBAN)
	assert.Equal(t, "AO06.0040.0000.1234.5678.1012.3", *data.IBAN)
}

func TestExtract_AccentAndCaseVariants(t *testing.T) {
	e := NewExtractor(logger.NewNop())

	text := "TRANSACAO 12345\nmontante 1,500.00 KZ\ndata-hora 2024-01-05 08:00:00\nDESTINATARIO joao"

	data, err := e.Extract(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, "12345", data.TransactionID)
	assert.True(t, decimal.NewFromInt(1500).Equal(data.Amount))
	assert.Equal(t, "joao", data.Recipient)
	assert.Nil(t, data.IBAN)
}

func TestExtract_DecomposedAccents(t *testing.T) {
	e := NewExtractor(logger.NewNop())

	// "Transação" written with a combining cedilla and tilde.
	text := "Transac\u0327a\u0303o 777777\nMontante 10,00 Kz\nData - Hora 2024-02-02 10:10:10"

	data, err := e.Extract(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, "777777", data.TransactionID)
	assert.Equal(t, "Unknown", data.Recipient)
}

func TestExtract_EmptyRecipientLabel(t *testing.T) {
	e := NewExtractor(logger.NewNop())

	for _, label := range []string{"Destinatário:", "Destinatário: ", "Destinatário :"} {
		t.Run(label, func(t *testing.T) {
			text := "Transacção 123456\nMontante 10,00 Kz\nData - Hora 2024-02-02 10:10:10\n" + label + "\nIBAN AO06.0040.0000.1234.5678.1012.3"

			data, err := e.Extract(context.Background(), text)

			require.NoError(t, err)
			assert.Equal(t, "Unknown", data.Recipient)
		})
	}
}

func TestExtract_MissingMandatoryField(t *testing.T) {
	e := NewExtractor(logger.NewNop())

	tests := []struct {
		name string
		text string
	}{
		{name: "no transaction", text: "Montante 10,00 Kz\nData - Hora 2024-02-02 10:10:10"},
		{name: "short transaction id", text: "Transacção 1234\nMontante 10,00 Kz\nData - Hora 2024-02-02 10:10:10"},
		{name: "transaction id too long", text: "Transacção 1234567890123456\nMontante 10,00 Kz\nData - Hora 2024-02-02 10:10:10"},
		{name: "no amount", text: "Transacção 123456\nData - Hora 2024-02-02 10:10:10"},
		{name: "amount without currency", text: "Transacção 123456\nMontante 10,00\nData - Hora 2024-02-02 10:10:10"},
		{name: "no date", text: "Transacção 123456\nMontante 10,00 Kz"},
		{name: "loose date", text: "Transacção 123456\nMontante 10,00 Kz\nData - Hora 2024-2-2 10:10"},
		{name: "impossible date", text: "Transacção 123456\nMontante 10,00 Kz\nData - Hora 2024-13-40 10:10:10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := e.Extract(context.Background(), tt.text)
			assert.ErrorIs(t, err, domain.ErrExtractionFailed)
			assert.Equal(t, domain.ExtractedPaymentData{}, data)
		})
	}
}

func TestExtract_RecipientCappedAt100Chars(t *testing.T) {
	e := NewExtractor(logger.NewNop())

	text := "Transacção 123456\nMontante 10,00 Kz\nData - Hora 2024-02-02 10:10:10\nDestinatário " + strings.Repeat("x", 150)

	data, err := e.Extract(context.Background(), text)

	require.NoError(t, err)
	assert.Len(t, data.Recipient, 100)
}

func TestExtract_IgnoresTextBeyondLimit(t *testing.T) {
	e := NewExtractor(logger.NewNop())

	text := strings.Repeat("é", MaxTextLength) + "\nTransacção 123456\nMontante 10,00 Kz\nData - Hora 2024-02-02 10:10:10"

	_, err := e.Extract(context.Background(), text)

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestPrepare_TruncatesByRune(t *testing.T) {
	out := prepare(strings.Repeat("ã", MaxTextLength+10))
	assert.Equal(t, MaxTextLength, len([]rune(out)))
}
