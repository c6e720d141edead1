package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shiddaha/internal/modules/session/domain"
	sessionout "shiddaha/internal/modules/session/port/out"
	"shiddaha/internal/platform/tx"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteRecordStore is the append-only session history table.
type SQLiteRecordStore struct {
	db *sql.DB
}

func NewSQLiteRecordStore(db *sql.DB) (sessionout.RecordStore, error) {
	store := &SQLiteRecordStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteRecordStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  minutes_studied INTEGER NOT NULL,
  dates_earned INTEGER NOT NULL,
  occurred_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_occurred_at ON sessions (occurred_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteRecordStore) Append(ctx context.Context, record domain.Record) error {
	const stmt = `
INSERT INTO sessions (id, minutes_studied, dates_earned, occurred_at)
VALUES (?, ?, ?, ?)
`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		record.ID,
		record.MinutesStudied,
		record.DatesEarned,
		record.OccurredAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("append session record: %w", err)
	}
	return nil
}

func (s *SQLiteRecordStore) Since(ctx context.Context, since time.Time) ([]domain.Record, error) {
	const query = `
SELECT id, minutes_studied, dates_earned, occurred_at
FROM sessions
WHERE occurred_at >= ?
ORDER BY occurred_at ASC
`
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, query, since.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("query session records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var r domain.Record
		var occurredAt string
		if err := rows.Scan(&r.ID, &r.MinutesStudied, &r.DatesEarned, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		if r.OccurredAt, err = time.Parse(timeLayout, occurredAt); err != nil {
			return nil, fmt.Errorf("parse session timestamp: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session records: %w", err)
	}
	return records, nil
}

func (s *SQLiteRecordStore) DeleteAll(ctx context.Context) error {
	if _, err := tx.From(ctx, s.db).ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("delete session records: %w", err)
	}
	return nil
}
