package out

import (
	"context"

	"shiddaha/internal/modules/shop/domain"
)

// CatalogStore supplies the shop catalog.
type CatalogStore interface {
	Items(ctx context.Context) ([]domain.Item, error)
}
