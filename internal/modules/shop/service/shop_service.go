package service

import (
	"context"
	"fmt"

	"shiddaha/internal/modules/shop/domain"
	shopout "shiddaha/internal/modules/shop/port/out"
)

// ShopService loads and validates the catalog.
type ShopService struct {
	catalog shopout.CatalogStore
}

func NewShopService(catalog shopout.CatalogStore) *ShopService {
	return &ShopService{catalog: catalog}
}

func (s *ShopService) Items(ctx context.Context) ([]domain.Item, error) {
	items, err := s.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("catalog item invalid: %w", err)
		}
	}
	return items, nil
}

func (s *ShopService) Find(ctx context.Context, id string) (domain.Item, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return domain.Item{}, err
	}
	return domain.Find(items, id)
}
