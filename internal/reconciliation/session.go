// Package reconciliation holds the working set of a bank-file reconciliation
// and the payment-proof verification flow.
package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/grachmannico95/rent-recon/internal/bankfile"
	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/internal/matching"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/grachmannico95/rent-recon/pkg/retry"
)

type Config struct {
	// Workers bounds concurrent confirmation calls in ProcessAll.
	Workers        int
	MaxAttempts    int
	RetryBaseDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Workers:        4,
		MaxAttempts:    3,
		RetryBaseDelay: 200 * time.Millisecond,
	}
}

// Session is one reconciliation of one bank file. Rows live in an arena keyed
// by id; order keeps file order.
type Session struct {
	id          string
	parser      *bankfile.Parser
	engine      *matching.Engine
	obligations domain.ObligationReader
	confirmer   domain.PaymentConfirmer
	logger      *logger.Logger
	cfg         Config

	mu        sync.Mutex
	rows      map[string]*domain.ReconciledRow
	order     []string
	createdAt time.Time
}

func NewSession(
	id string,
	parser *bankfile.Parser,
	engine *matching.Engine,
	obligations domain.ObligationReader,
	confirmer domain.PaymentConfirmer,
	log *logger.Logger,
	cfg Config,
) *Session {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Session{
		id:          id,
		parser:      parser,
		engine:      engine,
		obligations: obligations,
		confirmer:   confirmer,
		logger:      log,
		cfg:         cfg,
		rows:        make(map[string]*domain.ReconciledRow),
		createdAt:   time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// LoadFile replaces the session rows with the parsed content of text and
// auto-matches every transaction. Only an obligations lookup failure is
// returned as an error; unreadable rows are dropped.
func (s *Session) LoadFile(ctx context.Context, text string) ([]domain.ReconciledRow, error) {
	ctx = logger.WithSessionID(ctx, s.id)

	obligations, err := s.obligations.ListObligations(ctx)
	if err != nil {
		s.logger.Error(ctx, "Failed to list obligations",
			"error", err,
		)
		return nil, fmt.Errorf("list obligations: %w", err)
	}

	transactions := s.parser.Parse(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()

	claimed := make(map[string]bool)
	matched := 0
	for _, txn := range transactions {
		row := &domain.ReconciledRow{
			BankTransaction: txn,
			Status:          domain.RowStatusUnmatched,
		}

		if m, ok := s.engine.MatchBankTransaction(txn, obligations, claimed); ok {
			id := m.Obligation.ID
			row.Status = domain.RowStatusMatched
			row.MatchedPaymentID = &id
			row.MatchSource = domain.MatchSourceAuto
			row.Confidence = m.Confidence
			claimed[id] = true
			matched++
		}

		s.rows[txn.ID] = row
		s.order = append(s.order, txn.ID)
	}

	s.logger.Info(ctx, "Bank file loaded",
		"transactions", len(transactions),
		"matched", matched,
		"unmatched", len(transactions)-matched,
	)

	return s.snapshotLocked(), nil
}

// ManualMatch assigns obligationID to a row with full confidence. Processed
// rows are frozen; an obligation held by another row cannot be taken.
func (s *Session) ManualMatch(ctx context.Context, rowID, obligationID string) (domain.ReconciledRow, error) {
	ctx = logger.WithSessionID(ctx, s.id)

	obligations, err := s.obligations.ListObligations(ctx)
	if err != nil {
		return domain.ReconciledRow{}, fmt.Errorf("list obligations: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[rowID]
	if !ok {
		return domain.ReconciledRow{}, domain.ErrRowNotFound
	}
	if row.Status == domain.RowStatusProcessed {
		return domain.ReconciledRow{}, domain.ErrRowProcessed
	}

	var target *domain.PaymentObligation
	for i := range obligations {
		if obligations[i].ID == obligationID {
			target = &obligations[i]
			break
		}
	}
	if target == nil {
		return domain.ReconciledRow{}, domain.ErrObligationNotFound
	}
	if !target.Status.IsOpen() {
		return domain.ReconciledRow{}, domain.ErrObligationNotOpen
	}
	if owner := s.claimOwnerLocked(obligationID); owner != "" && owner != rowID {
		return domain.ReconciledRow{}, domain.ErrObligationClaimed
	}

	id := target.ID
	row.Status = domain.RowStatusMatched
	row.MatchedPaymentID = &id
	row.MatchSource = domain.MatchSourceManual
	row.Confidence = domain.ConfidenceFull
	row.LastError = ""

	s.logger.Info(ctx, "Row matched manually",
		"row_id", rowID,
		"obligation_id", obligationID,
	)

	return *row, nil
}

// Candidates returns the obligations offered when overriding rowID's match.
func (s *Session) Candidates(ctx context.Context, rowID string) ([]domain.PaymentObligation, error) {
	obligations, err := s.obligations.ListObligations(logger.WithSessionID(ctx, s.id))
	if err != nil {
		return nil, fmt.Errorf("list obligations: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[rowID]
	if !ok {
		return nil, domain.ErrRowNotFound
	}

	current := ""
	if row.MatchedPaymentID != nil {
		current = *row.MatchedPaymentID
	}

	return matching.Candidates(obligations, s.claimedLocked(), current), nil
}

// ProcessAll confirms every Matched row. A row becomes Processed only when its
// confirmation call succeeded; failures stay Matched with LastError set.
// Processed and Unmatched rows are left alone.
func (s *Session) ProcessAll(ctx context.Context) domain.BatchResult {
	ctx = logger.WithSessionID(ctx, s.id)

	s.mu.Lock()
	defer s.mu.Unlock()

	type job struct {
		index int
		row   *domain.ReconciledRow
	}

	var jobs []job
	skipped := 0
	for _, id := range s.order {
		row := s.rows[id]
		if row.Status != domain.RowStatusMatched || row.MatchedPaymentID == nil {
			skipped++
			continue
		}
		jobs = append(jobs, job{index: len(jobs), row: row})
	}

	results := make([]domain.RowResult, len(jobs))
	sem := make(chan struct{}, s.cfg.Workers)
	var wg sync.WaitGroup

	for _, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(j job) {
			defer wg.Done()
			defer func() { <-sem }()
			results[j.index] = s.confirmRow(ctx, j.row)
		}(j)
	}
	wg.Wait()

	batch := domain.BatchResult{Results: results, Skipped: skipped}
	for i, r := range results {
		row := jobs[i].row
		if r.Processed {
			row.Status = domain.RowStatusProcessed
			row.LastError = ""
			batch.Succeeded++
		} else {
			row.LastError = r.Error
			batch.Failed++
		}
	}

	s.logger.Info(ctx, "Batch processed",
		"succeeded", batch.Succeeded,
		"failed", batch.Failed,
		"skipped", batch.Skipped,
	)

	return batch
}

func (s *Session) confirmRow(ctx context.Context, row *domain.ReconciledRow) domain.RowResult {
	obligationID := *row.MatchedPaymentID
	details := domain.ConfirmationDetails{
		TransactionID: row.Reference,
		Date:          row.Date,
		Amount:        row.Amount,
		Source:        domain.ConfirmationSourceBankFile,
	}

	err := retry.Do(ctx, func() error {
		return permanentIfRejected(s.confirmer.ConfirmPayment(ctx, obligationID, details))
	}, retry.WithMaxAttempts(s.cfg.MaxAttempts), retry.WithBaseDelay(s.cfg.RetryBaseDelay))

	result := domain.RowResult{
		RowID:        row.ID,
		ObligationID: obligationID,
		Processed:    err == nil,
	}
	if err != nil {
		result.Error = err.Error()
		s.logger.Warn(ctx, "Payment confirmation failed",
			"row_id", row.ID,
			"obligation_id", obligationID,
			"error", err,
		)
	}
	return result
}

// permanentIfRejected stops retries for errors a second attempt cannot fix.
func permanentIfRejected(err error) error {
	if errors.Is(err, domain.ErrObligationNotFound) || errors.Is(err, domain.ErrObligationNotOpen) {
		return retry.Permanent(err)
	}
	return err
}

// Reset discards every row.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Rows returns a copy of the rows in file order.
func (s *Session) Rows() []domain.ReconciledRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) Summary() domain.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := domain.SessionSummary{Total: len(s.order)}
	for _, id := range s.order {
		switch s.rows[id].Status {
		case domain.RowStatusUnmatched:
			summary.Unmatched++
		case domain.RowStatusMatched:
			summary.Matched++
		case domain.RowStatusProcessed:
			summary.Processed++
		}
	}
	return summary
}

func (s *Session) resetLocked() {
	s.rows = make(map[string]*domain.ReconciledRow)
	s.order = nil
}

func (s *Session) snapshotLocked() []domain.ReconciledRow {
	out := make([]domain.ReconciledRow, 0, len(s.order))
	for _, id := range s.order {
		row := *s.rows[id]
		if row.MatchedPaymentID != nil {
			matched := *row.MatchedPaymentID
			row.MatchedPaymentID = &matched
		}
		out = append(out, row)
	}
	return out
}

func (s *Session) claimedLocked() map[string]bool {
	claimed := make(map[string]bool, len(s.order))
	for _, row := range s.rows {
		if row.MatchedPaymentID != nil {
			claimed[*row.MatchedPaymentID] = true
		}
	}
	return claimed
}

func (s *Session) claimOwnerLocked(obligationID string) string {
	for _, id := range s.order {
		row := s.rows[id]
		if row.MatchedPaymentID != nil && *row.MatchedPaymentID == obligationID {
			return id
		}
	}
	return ""
}
