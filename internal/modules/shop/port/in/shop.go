package in

import (
	"context"

	"shiddaha/internal/modules/shop/dto"
)

type Usecase interface {
	List(ctx context.Context, category string) ([]dto.ItemView, error)
	Buy(ctx context.Context, itemID string) (dto.PurchaseOutput, error)
	Select(ctx context.Context, itemID string) (dto.ItemView, error)
}
