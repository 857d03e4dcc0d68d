package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

const trustedAccountKey = "trusted_recipient_account"

// SQLiteStore implements domain.Repository on a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, errors.New("sqlite path is required")
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers anyway; one connection also keeps :memory: shared.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateObligation(ctx context.Context, obligation domain.PaymentObligation) error {
	if err := validateObligation(obligation); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO obligations (id, contract_id, amount, due_date, status, paid_date, transaction_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		obligation.ID,
		obligation.ContractID,
		obligation.Amount.String(),
		obligation.DueDate,
		string(obligation.Status),
		nullString(obligation.PaidDate),
		nullString(obligation.TransactionID),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return domain.ErrObligationExists
		}
		return fmt.Errorf("failed to insert obligation: %w", err)
	}

	return nil
}

func (s *SQLiteStore) GetObligation(ctx context.Context, id string) (*domain.PaymentObligation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, contract_id, amount, due_date, status, paid_date, transaction_id
		FROM obligations WHERE id = ?`, id)

	obligation, err := scanObligation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrObligationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get obligation: %w", err)
	}

	return obligation, nil
}

// ListObligations returns every obligation ordered by id.
func (s *SQLiteStore) ListObligations(ctx context.Context) ([]domain.PaymentObligation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, contract_id, amount, due_date, status, paid_date, transaction_id
		FROM obligations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.PaymentObligation{}
	for rows.Next() {
		obligation, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan obligation: %w", err)
		}
		out = append(out, *obligation)
	}

	return out, rows.Err()
}

func (s *SQLiteStore) MarkObligationPaid(ctx context.Context, obligationID string, details domain.ConfirmationDetails) (*domain.PaymentObligation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE obligations SET status = ?, paid_date = ?, transaction_id = ?
		WHERE id = ? AND status IN (?, ?)`,
		string(domain.ObligationStatusPaid),
		details.Date,
		details.TransactionID,
		obligationID,
		string(domain.ObligationStatusDue),
		string(domain.ObligationStatusLate),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update obligation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM obligations WHERE id = ?`, obligationID).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check obligation: %w", err)
		}
		if exists == 0 {
			return nil, domain.ErrObligationNotFound
		}
		return nil, domain.ErrObligationNotOpen
	}

	obligation, err := scanObligation(tx.QueryRowContext(ctx, `
		SELECT id, contract_id, amount, due_date, status, paid_date, transaction_id
		FROM obligations WHERE id = ?`, obligationID))
	if err != nil {
		return nil, fmt.Errorf("failed to reload obligation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return obligation, nil
}

func (s *SQLiteStore) GetTrustedAccount(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, trustedAccountKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read trusted account: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) SetTrustedAccount(ctx context.Context, account string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		trustedAccountKey, account)
	if err != nil {
		return fmt.Errorf("failed to save trusted account: %w", err)
	}
	return nil
}

// AddConfirmation ignores a record whose event id is already stored.
func (s *SQLiteStore) AddConfirmation(ctx context.Context, record domain.ConfirmationRecord) error {
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO confirmations (event_id, obligation_id, transaction_id, date, amount, source, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.EventID,
		record.ObligationID,
		record.TransactionID,
		record.Date,
		record.Amount.String(),
		string(record.Source),
		record.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert confirmation: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListConfirmations(ctx context.Context) ([]domain.ConfirmationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT event_id, obligation_id, transaction_id, date, amount, source, recorded_at
		FROM confirmations ORDER BY recorded_at, event_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.ConfirmationRecord{}
	for rows.Next() {
		var (
			record     domain.ConfirmationRecord
			amountText string
			source     string
			recordedAt string
		)
		if err := rows.Scan(&record.EventID, &record.ObligationID, &record.TransactionID, &record.Date, &amountText, &source, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan confirmation: %w", err)
		}
		if record.Amount, err = decimal.NewFromString(amountText); err != nil {
			return nil, fmt.Errorf("invalid stored amount %q: %w", amountText, err)
		}
		if record.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt); err != nil {
			return nil, fmt.Errorf("invalid stored timestamp %q: %w", recordedAt, err)
		}
		record.Source = domain.ConfirmationSource(source)
		out = append(out, record)
	}

	return out, rows.Err()
}

func (s *SQLiteStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM processed_events WHERE event_id = ?`, eventID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check event: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO processed_events (event_id, processed_at) VALUES (?, ?)`,
		eventID, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanObligation(row rowScanner) (*domain.PaymentObligation, error) {
	var (
		obligation    domain.PaymentObligation
		amountText    string
		status        string
		paidDate      sql.NullString
		transactionID sql.NullString
	)

	if err := row.Scan(&obligation.ID, &obligation.ContractID, &amountText, &obligation.DueDate, &status, &paidDate, &transactionID); err != nil {
		return nil, err
	}

	value, err := decimal.NewFromString(amountText)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amountText, err)
	}

	obligation.Amount = value
	obligation.Status = domain.ObligationStatus(status)
	if paidDate.Valid {
		obligation.PaidDate = &paidDate.String
	}
	if transactionID.Valid {
		obligation.TransactionID = &transactionID.String
	}

	return &obligation, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
