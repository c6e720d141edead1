package out

import (
	"context"

	"shiddaha/internal/modules/profile/domain"
)

// Store persists the singleton profile. Load reports
// apperrors.ErrNoProfile when none has been created.
type Store interface {
	Load(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
	Delete(ctx context.Context) error
}
