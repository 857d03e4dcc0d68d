package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grachmannico95/rent-recon/internal/bankfile"
	"github.com/grachmannico95/rent-recon/internal/reconciliation"
	"github.com/grachmannico95/rent-recon/internal/storage"
	"github.com/spf13/cobra"
)

type statementOptions struct {
	obligations string
	apply       bool
	out         string
}

func newStatementCmd(root *rootOptions) *cobra.Command {
	opts := &statementOptions{}

	cmd := &cobra.Command{
		Use:   "statement <file>",
		Short: "Auto-match a bank statement export",
		Long: `Parse a delimited bank export, match each row to an open obligation and
print the result.

With --apply the matched rows are confirmed against the obligations file and,
when --out is set, the updated obligations are written there as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatement(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.obligations, "obligations", "", "JSON file with the payment obligations")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "confirm matched rows")
	cmd.Flags().StringVar(&opts.out, "out", "", "write updated obligations to this file (with --apply)")
	_ = cmd.MarkFlagRequired("obligations")

	return cmd
}

func runStatement(cmd *cobra.Command, root *rootOptions, opts *statementOptions, path string) error {
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

	session := reconciliation.NewSession(
		"cli",
		bankfile.NewParser(root.log),
		root.engine,
		store,
		ledgerConfirmer{store: store},
		root.log,
		reconciliation.DefaultConfig(),
	)

	rows, err := session.LoadFile(ctx, text)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, titleStyle.Render("Bank statement "+path))
	if err := printRows(w, rows); err != nil {
		return err
	}
	printSummary(w, session.Summary())

	if !opts.apply {
		return nil
	}

	batch := session.ProcessAll(ctx)
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Confirmations"))
	if err := printBatch(w, batch); err != nil {
		return err
	}

	if opts.out != "" {
		if err := writeObligations(cmd, store, opts.out); err != nil {
			return err
		}
		fmt.Fprintln(w, successStyle.Render("Updated obligations written to "+opts.out))
	}

	if batch.Failed > 0 {
		return fmt.Errorf("%d confirmation(s) failed", batch.Failed)
	}
	return nil
}

func writeObligations(cmd *cobra.Command, store *storage.MemoryStore, path string) error {
	obligations, err := store.ListObligations(cmd.Context())
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(obligations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode obligations: %w", err)
	}

	if err := os.WriteFile(path, append(raw, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
