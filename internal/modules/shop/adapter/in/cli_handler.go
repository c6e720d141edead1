package in

import (
	"context"

	"shiddaha/internal/modules/shop/dto"
	shopin "shiddaha/internal/modules/shop/port/in"
)

type CLIHandler struct {
	usecase shopin.Usecase
}

func NewCLIHandler(usecase shopin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, category string) ([]dto.ItemView, error) {
	return h.usecase.List(ctx, category)
}

func (h CLIHandler) Buy(ctx context.Context, itemID string) (dto.PurchaseOutput, error) {
	return h.usecase.Buy(ctx, itemID)
}

func (h CLIHandler) Select(ctx context.Context, itemID string) (dto.ItemView, error) {
	return h.usecase.Select(ctx, itemID)
}
