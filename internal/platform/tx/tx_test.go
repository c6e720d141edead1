package tx_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"shiddaha/internal/platform/storage"
	"shiddaha/internal/platform/tx"
)

func openDB(t *testing.T) (*tx.SQLiteManager, *sql.DB) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "tx.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(`CREATE TABLE kv (k TEXT PRIMARY KEY, v INTEGER NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return tx.NewSQLiteManager(db), db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithinCommitsOnSuccess(t *testing.T) {
	t.Parallel()
	manager, db := openDB(t)
	ctx := context.Background()

	err := manager.Within(ctx, func(ctx context.Context) error {
		_, err := tx.From(ctx, db).ExecContext(ctx, `INSERT INTO kv (k, v) VALUES ('a', 1)`)
		return err
	})
	if err != nil {
		t.Fatalf("within: %v", err)
	}
	if got := countRows(t, db); got != 1 {
		t.Fatalf("rows = %d, want 1", got)
	}
}

func TestWithinRollsBackOnError(t *testing.T) {
	t.Parallel()
	manager, db := openDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := manager.Within(ctx, func(ctx context.Context) error {
		if _, err := tx.From(ctx, db).ExecContext(ctx, `INSERT INTO kv (k, v) VALUES ('a', 1)`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("within: got %v, want boom", err)
	}
	if got := countRows(t, db); got != 0 {
		t.Fatalf("rows = %d after rollback, want 0", got)
	}
}

func TestNestedWithinJoinsOuterTransaction(t *testing.T) {
	t.Parallel()
	manager, db := openDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := manager.Within(ctx, func(ctx context.Context) error {
		if _, err := tx.From(ctx, db).ExecContext(ctx, `INSERT INTO kv (k, v) VALUES ('outer', 1)`); err != nil {
			return err
		}
		return manager.Within(ctx, func(ctx context.Context) error {
			if _, err := tx.From(ctx, db).ExecContext(ctx, `INSERT INTO kv (k, v) VALUES ('inner', 2)`); err != nil {
				return err
			}
			return boom
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("within: got %v, want boom", err)
	}
	// The inner failure unwinds the whole outer transaction.
	if got := countRows(t, db); got != 0 {
		t.Fatalf("rows = %d after nested rollback, want 0", got)
	}
}

func TestFromFallsBackOutsideTransaction(t *testing.T) {
	t.Parallel()
	_, db := openDB(t)
	if tx.From(context.Background(), db) != tx.DBTX(db) {
		t.Fatal("From outside a transaction did not return the fallback")
	}
}
