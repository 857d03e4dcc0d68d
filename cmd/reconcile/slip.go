package main

import (
	"errors"
	"fmt"

	"github.com/grachmannico95/rent-recon/internal/reconciliation"
	"github.com/grachmannico95/rent-recon/internal/security"
	"github.com/grachmannico95/rent-recon/internal/slip"
	"github.com/spf13/cobra"
)

var errSecurityAlert = errors.New("security alert: slip was not paid to the trusted account")

type slipOptions struct {
	obligations    string
	trustedAccount string
	requireTrusted bool
}

func newSlipCmd(root *rootOptions) *cobra.Command {
	opts := &slipOptions{}

	cmd := &cobra.Command{
		Use:   "slip <file>",
		Short: "Read a payment slip and check its beneficiary account",
		Long: `Extract the transaction id, amount, date, recipient and IBAN from the text
of a payment slip, compare the IBAN with the trusted account and suggest the
obligation it pays.

The command fails when the slip cannot be read or the account check rejects it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlip(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.obligations, "obligations", "", "JSON file with the payment obligations")
	cmd.Flags().StringVar(&opts.trustedAccount, "trusted-account", "", "IBAN the payment must have been sent to")
	cmd.Flags().BoolVar(&opts.requireTrusted, "require-trusted-account", false, "reject slips when no trusted account is given")

	return cmd
}

func runSlip(cmd *cobra.Command, root *rootOptions, opts *slipOptions, path string) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	text, err := root.readInput(path)
	if err != nil {
		return err
	}

	store, err := loadLedger(ctx, opts.obligations)
	if err != nil {
		return err
	}
	if err := store.SetTrustedAccount(ctx, security.NormalizeAccount(opts.trustedAccount)); err != nil {
		return err
	}

	verifier := reconciliation.NewProofVerifier(
		slip.NewExtractor(root.log),
		security.NewGate(opts.requireTrusted),
		root.engine,
		store,
		store,
		ledgerConfirmer{store: store},
		root.log,
	)

	verification, err := verifier.Verify(ctx, text)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, titleStyle.Render("Payment slip "+path))
	if err := printProof(w, verification); err != nil {
		return err
	}

	if !verification.Validation.Passed() {
		return errSecurityAlert
	}
	return nil
}
