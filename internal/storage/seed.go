package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/grachmannico95/rent-recon/internal/domain"
)

type ObligationCreator interface {
	CreateObligation(ctx context.Context, obligation domain.PaymentObligation) error
}

// ReadObligations decodes a JSON array of obligations from path.
func ReadObligations(path string) ([]domain.PaymentObligation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read obligations file: %w", err)
	}

	var obligations []domain.PaymentObligation
	if err := json.Unmarshal(raw, &obligations); err != nil {
		return nil, fmt.Errorf("failed to decode obligations file: %w", err)
	}

	return obligations, nil
}

// Seed creates every obligation in path, skipping ids that already exist.
// It returns the number of obligations created.
func Seed(ctx context.Context, repo ObligationCreator, path string) (int, error) {
	obligations, err := ReadObligations(path)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, o := range obligations {
		err := repo.CreateObligation(ctx, o)
		if errors.Is(err, domain.ErrObligationExists) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("obligation %q: %w", o.ID, err)
		}
		created++
	}

	return created, nil
}

// BootstrapTrustedAccount stores account only when no trusted account is
// configured yet, so a value changed later through the API survives restarts.
// It reports whether account was written.
func BootstrapTrustedAccount(ctx context.Context, repo domain.SettingsRepository, account string) (bool, error) {
	current, err := repo.GetTrustedAccount(ctx)
	if err != nil {
		return false, err
	}
	if current != "" {
		return false, nil
	}

	if err := repo.SetTrustedAccount(ctx, account); err != nil {
		return false, err
	}

	return true, nil
}
