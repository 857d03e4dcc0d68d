package integration

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	trustedIBAN = "AO06.0040.0000.1234.5678.1012.3"
	paymentSlip = `BANCO DE FOMENTO
Comprovativo de Transferência
Transacção 9412372
Montante 592.051,05 Kz
Data - Hora 2025-11-23 11:56:11
Destinatário Imobiliária Horizonte
IBAN AO06.0040.0000.1234.5678.1012.3`
	foreignSlip = `Transacção 9412373
Montante 592.000,00 Kz
Data - Hora 2025-11-24 09:00:00
Destinatário Outra Conta
IBAN AO06.0055.0000.9999.0000.1111.2`
)

func configureTrustedAccount(t *testing.T, env *testEnv, account string) {
	t.Helper()

	var result map[string]interface{}
	code := env.do(t, http.MethodPut, "/settings/trusted-account", map[string]string{"account": account}, &result)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "AO06004000001234567810123", result["account"])
}

func TestProofVerificationFlow(t *testing.T) {
	env := newMemoryEnv(t)
	env.createObligation(t, "p7", "c7", "592000", "Due")
	configureTrustedAccount(t, env, trustedIBAN)

	var proof domain.ProofVerification
	code := env.upload(t, "/proofs", "slip.txt", []byte(paymentSlip), &proof)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "9412372", proof.Data.TransactionID)
	assert.Equal(t, "Imobiliária Horizonte", proof.Data.Recipient)
	assert.Equal(t, domain.ValidationStateValid, proof.Validation.State)
	require.NotNil(t, proof.SuggestedMatchID)
	assert.Equal(t, "p7", *proof.SuggestedMatchID)
	assert.Equal(t, domain.ConfidencePartial, proof.Confidence)

	var fetched domain.ProofVerification
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/proofs/"+proof.ID, nil, &fetched))
	assert.Equal(t, proof.ID, fetched.ID)

	var confirmed domain.ProofVerification
	code = env.do(t, http.MethodPost, "/proofs/"+proof.ID+"/confirm", nil, &confirmed)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, confirmed.ConfirmedPayment)
	assert.Equal(t, "p7", *confirmed.ConfirmedPayment)

	p7, err := env.repo.GetObligation(context.Background(), "p7")
	require.NoError(t, err)
	assert.Equal(t, domain.ObligationStatusPaid, p7.Status)
	require.NotNil(t, p7.TransactionID)
	assert.Equal(t, "9412372", *p7.TransactionID)

	var audit struct {
		Items []domain.ConfirmationRecord `json:"items"`
	}
	assert.Eventually(t, func() bool {
		env.do(t, http.MethodGet, "/confirmations", nil, &audit)
		return len(audit.Items) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, domain.ConfirmationSourceProof, audit.Items[0].Source)

	assert.Equal(t, http.StatusConflict, env.do(t, http.MethodPost, "/proofs/"+proof.ID+"/confirm", nil, nil))
}

func TestProofSecurityAlert(t *testing.T) {
	env := newMemoryEnv(t)
	env.createObligation(t, "p7", "c7", "592000", "Due")
	configureTrustedAccount(t, env, trustedIBAN)

	var proof domain.ProofVerification
	code := env.do(t, http.MethodPost, "/proofs", map[string]string{"text": foreignSlip}, &proof)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, domain.ValidationStateInvalid, proof.Validation.State)
	assert.Nil(t, proof.SuggestedMatchID)

	var alert map[string]interface{}
	code = env.do(t, http.MethodPost, "/proofs/"+proof.ID+"/confirm", map[string]string{"obligation_id": "p7"}, &alert)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, true, alert["security_alert"])
	assert.Equal(t, "AO06004000001234567810123", alert["expected_account"])

	p7, err := env.repo.GetObligation(context.Background(), "p7")
	require.NoError(t, err)
	assert.Equal(t, domain.ObligationStatusDue, p7.Status)
}

func TestProofWithoutTrustedAccountIsSkipped(t *testing.T) {
	env := newMemoryEnv(t)
	env.createObligation(t, "p7", "c7", "592000", "Due")

	var setting map[string]interface{}
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/settings/trusted-account", nil, &setting))
	assert.Equal(t, false, setting["configured"])

	var proof domain.ProofVerification
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/proofs", map[string]string{"text": foreignSlip}, &proof))
	assert.Equal(t, domain.ValidationStateSkipped, proof.Validation.State)
	require.NotNil(t, proof.SuggestedMatchID)
}

func TestProofRequiredTrustedAccount(t *testing.T) {
	env := setupTestServer(t, storage.NewMemoryStore(), true)

	var proof domain.ProofVerification
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/proofs", map[string]string{"text": paymentSlip}, &proof))
	assert.Equal(t, domain.ValidationStateInvalid, proof.Validation.State)

	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodPost, "/proofs/"+proof.ID+"/confirm", nil, nil))
}

func TestProofInputErrors(t *testing.T) {
	env := newMemoryEnv(t)

	var body map[string]interface{}
	code := env.do(t, http.MethodPost, "/proofs", map[string]string{"text": "Recibo sem dados"}, &body)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "could not read proof data", body["error"])

	code = env.do(t, http.MethodPost, "/proofs", map[string]string{"text": ""}, &body)
	assert.Equal(t, http.StatusBadRequest, code)

	code = env.do(t, http.MethodPost, "/proofs", map[string]string{"text": strings.Repeat("x", maxSlipBytes+1)}, &body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)

	code = env.upload(t, "/proofs", "slip.png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), &body)
	assert.Equal(t, http.StatusUnsupportedMediaType, code)

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/proofs/missing", nil, nil))
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPost, "/proofs/missing/confirm", nil, nil))
}
