package out

import (
	"context"
	"time"

	"shiddaha/internal/modules/session/domain"
)

// RecordStore is the append-only session history. Since returns records with
// OccurredAt >= since, oldest first.
type RecordStore interface {
	Append(ctx context.Context, record domain.Record) error
	Since(ctx context.Context, since time.Time) ([]domain.Record, error)
	DeleteAll(ctx context.Context) error
}
