package in

import (
	"context"

	"shiddaha/internal/modules/profile/dto"
	profilein "shiddaha/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, characterID, name string) (dto.ProfileOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{CharacterID: characterID, Name: name})
}

func (h CLIHandler) Get(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) SelectTent(ctx context.Context, tentID string) (dto.ProfileOutput, error) {
	return h.usecase.SelectTent(ctx, tentID)
}

func (h CLIHandler) SelectCharacter(ctx context.Context, characterID string) (dto.ProfileOutput, error) {
	return h.usecase.SelectCharacter(ctx, characterID)
}
