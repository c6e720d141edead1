package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shiddaha/internal/modules/profile/domain"
	profileout "shiddaha/internal/modules/profile/port/out"
	apperrors "shiddaha/internal/platform/errors"
	"shiddaha/internal/platform/tx"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore keeps the singleton profile in one row. Owned-id sets are
// stored as JSON text columns.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (profileout.Store, error) {
	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS profile (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  character_image_id TEXT NOT NULL,
  character_name TEXT NOT NULL,
  currency INTEGER NOT NULL,
  total_minutes_studied INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  selected_tent_id TEXT NOT NULL,
  owned_tent_ids TEXT NOT NULL,
  owned_character_ids TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create profile table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (domain.Profile, error) {
	const query = `
SELECT character_image_id, character_name, currency, total_minutes_studied, created_at, selected_tent_id, owned_tent_ids, owned_character_ids
FROM profile WHERE id = 1
`
	var p domain.Profile
	var createdAt, tents, characters string
	err := tx.From(ctx, s.db).QueryRowContext(ctx, query).Scan(
		&p.CharacterImageID,
		&p.CharacterName,
		&p.Currency,
		&p.TotalMinutesStudied,
		&createdAt,
		&p.SelectedTentID,
		&tents,
		&characters,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, apperrors.ErrNoProfile
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if p.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return domain.Profile{}, fmt.Errorf("parse profile created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(tents), &p.OwnedTentIDs); err != nil {
		return domain.Profile{}, fmt.Errorf("decode owned tents: %w", err)
	}
	if err := json.Unmarshal([]byte(characters), &p.OwnedCharacterIDs); err != nil {
		return domain.Profile{}, fmt.Errorf("decode owned characters: %w", err)
	}
	return p, nil
}

func (s *SQLiteStore) Save(ctx context.Context, profile domain.Profile) error {
	tents, err := json.Marshal(profile.OwnedTentIDs)
	if err != nil {
		return fmt.Errorf("encode owned tents: %w", err)
	}
	characters, err := json.Marshal(profile.OwnedCharacterIDs)
	if err != nil {
		return fmt.Errorf("encode owned characters: %w", err)
	}
	const stmt = `
INSERT INTO profile (id, character_image_id, character_name, currency, total_minutes_studied, created_at, selected_tent_id, owned_tent_ids, owned_character_ids)
VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  character_image_id=excluded.character_image_id,
  character_name=excluded.character_name,
  currency=excluded.currency,
  total_minutes_studied=excluded.total_minutes_studied,
  selected_tent_id=excluded.selected_tent_id,
  owned_tent_ids=excluded.owned_tent_ids,
  owned_character_ids=excluded.owned_character_ids;
`
	_, err = tx.From(ctx, s.db).ExecContext(ctx, stmt,
		profile.CharacterImageID,
		profile.CharacterName,
		profile.Currency,
		profile.TotalMinutesStudied,
		profile.CreatedAt.Format(timeLayout),
		profile.SelectedTentID,
		string(tents),
		string(characters),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context) error {
	if _, err := tx.From(ctx, s.db).ExecContext(ctx, `DELETE FROM profile`); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
