package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dueObligation(id, contract string, amount int64) domain.PaymentObligation {
	return domain.PaymentObligation{
		ID:         id,
		ContractID: contract,
		Amount:     decimal.NewFromInt(amount),
		DueDate:    "2025-01-05",
		Status:     domain.ObligationStatusDue,
	}
}

func TestMemoryStore_CreateAndGetObligation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateObligation(ctx, dueObligation("p1", "C-101", 50000)))

	got, err := store.GetObligation(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "C-101", got.ContractID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, domain.ObligationStatusDue, got.Status)
	assert.Nil(t, got.PaidDate)
}

func TestMemoryStore_CreateObligation_Duplicate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateObligation(ctx, dueObligation("p1", "C-101", 50000)))

	err := store.CreateObligation(ctx, dueObligation("p1", "C-102", 10))
	assert.ErrorIs(t, err, domain.ErrObligationExists)
}

func TestMemoryStore_CreateObligation_Invalid(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	tests := []struct {
		name       string
		obligation domain.PaymentObligation
	}{
		{name: "missing id", obligation: dueObligation("", "C-1", 10)},
		{name: "missing contract", obligation: dueObligation("p1", " ", 10)},
		{name: "zero amount", obligation: dueObligation("p1", "C-1", 0)},
		{name: "unknown status", obligation: domain.PaymentObligation{ID: "p1", ContractID: "C-1", Amount: decimal.NewFromInt(1), Status: "Overdue"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, store.CreateObligation(ctx, tt.obligation), domain.ErrInvalidObligation)
		})
	}
}

func TestMemoryStore_GetObligation_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetObligation(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrObligationNotFound)
}

func TestMemoryStore_ListObligations_SortedByID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"p3", "p1", "p2"} {
		require.NoError(t, store.CreateObligation(ctx, dueObligation(id, "C-"+id, 100)))
	}

	list, err := store.ListObligations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "p1", list[0].ID)
	assert.Equal(t, "p2", list[1].ID)
	assert.Equal(t, "p3", list[2].ID)
}

func TestMemoryStore_MarkObligationPaid(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.CreateObligation(ctx, dueObligation("p1", "C-101", 50000)))

	details := domain.ConfirmationDetails{
		TransactionID: "TX-9",
		Date:          "2025-01-03",
		Amount:        decimal.NewFromInt(50000),
		Source:        domain.ConfirmationSourceBankFile,
	}

	updated, err := store.MarkObligationPaid(ctx, "p1", details)
	require.NoError(t, err)
	assert.Equal(t, domain.ObligationStatusPaid, updated.Status)
	require.NotNil(t, updated.PaidDate)
	assert.Equal(t, "2025-01-03", *updated.PaidDate)
	require.NotNil(t, updated.TransactionID)
	assert.Equal(t, "TX-9", *updated.TransactionID)

	_, err = store.MarkObligationPaid(ctx, "p1", details)
	assert.ErrorIs(t, err, domain.ErrObligationNotOpen)

	_, err = store.MarkObligationPaid(ctx, "missing", details)
	assert.ErrorIs(t, err, domain.ErrObligationNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.CreateObligation(ctx, dueObligation("p1", "C-101", 50000)))
	_, err := store.MarkObligationPaid(ctx, "p1", domain.ConfirmationDetails{TransactionID: "TX-1", Date: "2025-01-03"})
	require.NoError(t, err)

	got, err := store.GetObligation(ctx, "p1")
	require.NoError(t, err)
	*got.TransactionID = "tampered"
	got.Status = domain.ObligationStatusDue

	again, err := store.GetObligation(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "TX-1", *again.TransactionID)
	assert.Equal(t, domain.ObligationStatusPaid, again.Status)
}

func TestMemoryStore_MarkObligationPaid_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.CreateObligation(ctx, dueObligation("p1", "C-101", 50000)))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.MarkObligationPaid(ctx, "p1", domain.ConfirmationDetails{TransactionID: "TX", Date: "2025-01-03"}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestMemoryStore_TrustedAccount(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	account, err := store.GetTrustedAccount(ctx)
	require.NoError(t, err)
	assert.Empty(t, account)

	require.NoError(t, store.SetTrustedAccount(ctx, "AO06004000001234567810123"))

	account, err = store.GetTrustedAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AO06004000001234567810123", account)
}

func TestMemoryStore_Confirmations(t *testing.T) {
	store := NewMemoryStore()
	fixed := time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	require.NoError(t, store.AddConfirmation(ctx, domain.ConfirmationRecord{
		EventID:       "evt-1",
		ObligationID:  "p1",
		TransactionID: "TX-1",
		Amount:        decimal.NewFromInt(100),
		Source:        domain.ConfirmationSourceProof,
	}))

	records, err := store.ListConfirmations(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, fixed, records[0].RecordedAt)
	assert.Equal(t, domain.ConfirmationSourceProof, records[0].Source)
}

func TestMemoryStore_EventIdempotency(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	processed, err := store.IsEventProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, store.MarkEventProcessed(ctx, "evt-1"))

	processed, err = store.IsEventProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, processed)
}
