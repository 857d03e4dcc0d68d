package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/matching"
	"github.com/grachmannico95/rent-recon/internal/service"
	"github.com/grachmannico95/rent-recon/internal/storage"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel       string
	bankTolerance  string
	proofTolerance string
	maxBytes       int64

	log    *logger.Logger
	engine *matching.Engine
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile rent payments from bank exports and payment slips",
		Long: `reconcile matches bank statement rows and payment slips against rent
obligations read from a JSON file. Nothing outside the given files is changed.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.init,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.bankTolerance, "bank-tolerance", matching.DefaultBankTolerance.String(), "amount tolerance for bank rows")
	flags.StringVar(&opts.proofTolerance, "proof-tolerance", matching.DefaultProofTolerance.String(), "amount tolerance for payment slips")
	flags.Int64Var(&opts.maxBytes, "max-bytes", 5<<20, "largest input file accepted")

	cmd.AddCommand(newStatementCmd(opts))
	cmd.AddCommand(newSlipCmd(opts))

	return cmd
}

func (o *rootOptions) init(_ *cobra.Command, _ []string) error {
	bank, err := decimal.NewFromString(o.bankTolerance)
	if err != nil {
		return fmt.Errorf("invalid --bank-tolerance: %w", err)
	}
	proof, err := decimal.NewFromString(o.proofTolerance)
	if err != nil {
		return fmt.Errorf("invalid --proof-tolerance: %w", err)
	}

	o.engine = matching.NewEngine(bank, proof)
	o.log = logger.NewWithFormat(o.logLevel, "console")

	return nil
}

// readInput returns the text content of path under the same checks as an
// HTTP upload.
func (o *rootOptions) readInput(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	text, err := service.ReadTextUpload(f, o.maxBytes)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// loadLedger returns a memory store holding the obligations in path. An empty
// path yields an empty store.
func loadLedger(ctx context.Context, path string) (*storage.MemoryStore, error) {
	store := storage.NewMemoryStore()
	if path == "" {
		return store, nil
	}
	if _, err := storage.Seed(ctx, store, path); err != nil {
		return nil, err
	}
	return store, nil
}

// ledgerConfirmer settles obligations in the local store only.
type ledgerConfirmer struct {
	store *storage.MemoryStore
}

func (c ledgerConfirmer) ConfirmPayment(ctx context.Context, obligationID string, details domain.ConfirmationDetails) error {
	_, err := c.store.MarkObligationPaid(ctx, obligationID, details)
	return err
}
