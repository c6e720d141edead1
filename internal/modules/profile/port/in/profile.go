package in

import (
	"context"

	"shiddaha/internal/modules/profile/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.ProfileOutput, error)
	Get(ctx context.Context) (dto.ProfileOutput, error)
	Credit(ctx context.Context, minutes int) (dto.ProfileOutput, error)
	Purchase(ctx context.Context, input dto.PurchaseInput) (dto.ProfileOutput, error)
	SelectTent(ctx context.Context, tentID string) (dto.ProfileOutput, error)
	SelectCharacter(ctx context.Context, characterID string) (dto.ProfileOutput, error)
	Reset(ctx context.Context) error
}
