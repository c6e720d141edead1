package tx

import (
	"context"
	"database/sql"
	"fmt"
)

// Manager wraps transactional boundaries for multi-adapter operations. A
// session credit (profile save plus record append) and a full reset each run
// inside one boundary: either every write lands or none do.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. Stores
// resolve their executor through From so they transparently join an open
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ctxKey struct{}

// From returns the transaction carried by ctx, or fallback when none is open.
func From(ctx context.Context, fallback DBTX) DBTX {
	if t, ok := ctx.Value(ctxKey{}).(*sql.Tx); ok {
		return t
	}
	return fallback
}

// SQLiteManager runs fn inside a database transaction carried by context.
// Nested Within calls join the outer transaction.
type SQLiteManager struct {
	db *sql.DB
}

func NewSQLiteManager(db *sql.DB) *SQLiteManager {
	return &SQLiteManager{db: db}
}

func (m *SQLiteManager) Within(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(ctxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}
	t, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(context.WithValue(ctx, ctxKey{}, t)); err != nil {
		_ = t.Rollback()
		return err
	}
	if err := t.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NoopManager runs fn without a transaction. Used in tests of pure paths.
type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
