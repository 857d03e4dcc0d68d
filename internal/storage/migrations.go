package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// ExpectedSchemaVersion is the schema version this build writes and reads.
const ExpectedSchemaVersion = 2

type migration struct {
	version     int
	description string
	up          func(*sql.Tx) error
}

var migrations = []migration{
	{
		version:     1,
		description: "Obligations and settings",
		up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS obligations (
					id TEXT PRIMARY KEY,
					contract_id TEXT NOT NULL,
					amount TEXT NOT NULL,
					due_date TEXT NOT NULL DEFAULT '',
					status TEXT NOT NULL,
					paid_date TEXT,
					transaction_id TEXT
				)`,
				`CREATE INDEX IF NOT EXISTS idx_obligations_status ON obligations(status)`,
				`CREATE TABLE IF NOT EXISTS settings (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL
				)`,
			)
		},
	},
	{
		version:     2,
		description: "Confirmation audit trail and event idempotency",
		up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS confirmations (
					event_id TEXT PRIMARY KEY,
					obligation_id TEXT NOT NULL,
					transaction_id TEXT NOT NULL,
					date TEXT NOT NULL,
					amount TEXT NOT NULL,
					source TEXT NOT NULL,
					recorded_at TEXT NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_confirmations_obligation ON confirmations(obligation_id)`,
				`CREATE TABLE IF NOT EXISTS processed_events (
					event_id TEXT PRIMARY KEY,
					processed_at TEXT NOT NULL
				)`,
			)
		},
	},
}

func execAll(tx *sql.Tx, queries ...string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		if err := m.up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.description, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
	}

	var finalVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion); err != nil {
		return fmt.Errorf("failed to verify schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
