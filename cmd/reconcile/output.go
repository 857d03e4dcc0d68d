package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/grachmannico95/rent-recon/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4")).MarginBottom(1)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func printRows(w io.Writer, rows []domain.ReconciledRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, warningStyle.Render("No transactions found."))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("DATE"),
		headerStyle.Render("REFERENCE"),
		headerStyle.Render("DESCRIPTION"),
		headerStyle.Render("AMOUNT"),
		headerStyle.Render("STATUS"),
		headerStyle.Render("MATCH"))

	for _, row := range rows {
		match := subtleStyle.Render("-")
		if row.MatchedPaymentID != nil {
			match = fmt.Sprintf("%s (%s, %s)", *row.MatchedPaymentID, row.MatchSource, row.Confidence)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Date,
			row.Reference,
			truncate(row.Description, 40),
			row.Amount.StringFixed(2),
			statusLabel(row.Status),
			match)
	}

	return tw.Flush()
}

func printSummary(w io.Writer, s domain.SessionSummary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d rows: %d matched, %d unmatched, %d processed\n",
		s.Total, s.Matched, s.Unmatched, s.Processed)
}

func printBatch(w io.Writer, batch domain.BatchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("ROW"),
		headerStyle.Render("OBLIGATION"),
		headerStyle.Render("RESULT"))

	for _, r := range batch.Results {
		result := successStyle.Render("paid")
		if !r.Processed {
			result = errorStyle.Render(r.Error)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.RowID, r.ObligationID, result)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d succeeded, %d failed, %d skipped\n", batch.Succeeded, batch.Failed, batch.Skipped)
	return nil
}

func printProof(w io.Writer, v *domain.ProofVerification) error {
	iban := subtleStyle.Render("not found")
	if v.Data.IBAN != nil {
		iban = *v.Data.IBAN
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Transaction\t%s\n", v.Data.TransactionID)
	fmt.Fprintf(tw, "Amount\t%s\n", v.Data.Amount.StringFixed(2))
	fmt.Fprintf(tw, "Date\t%s\n", v.Data.Date)
	fmt.Fprintf(tw, "Recipient\t%s\n", v.Data.Recipient)
	fmt.Fprintf(tw, "IBAN\t%s\n", iban)
	fmt.Fprintf(tw, "Account check\t%s\n", validationLabel(v.Validation))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	switch {
	case !v.Validation.Passed():
		fmt.Fprintln(w, errorStyle.Render("SECURITY ALERT: "+v.Validation.Message))
	case v.SuggestedMatchID != nil:
		fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Suggested obligation: %s (%s)", *v.SuggestedMatchID, v.Confidence)))
	default:
		fmt.Fprintln(w, warningStyle.Render("No open obligation matches this amount."))
	}
	return nil
}

func statusLabel(s domain.RowStatus) string {
	switch s {
	case domain.RowStatusMatched:
		return successStyle.Render(string(s))
	case domain.RowStatusProcessed:
		return subtleStyle.Render(string(s))
	default:
		return warningStyle.Render(string(s))
	}
}

func validationLabel(v domain.Validation) string {
	switch v.State {
	case domain.ValidationStateValid:
		return successStyle.Render("valid")
	case domain.ValidationStateSkipped:
		return warningStyle.Render("skipped (no trusted account)")
	default:
		return errorStyle.Render("invalid")
	}
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
