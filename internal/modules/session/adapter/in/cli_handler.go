package in

import (
	"context"

	"shiddaha/internal/modules/session/dto"
	sessionin "shiddaha/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, durationMinutes int) (dto.SessionState, error) {
	return h.usecase.Start(ctx, durationMinutes)
}

func (h CLIHandler) Tick(ctx context.Context) (dto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) Cancel(ctx context.Context) (dto.SessionState, error) {
	return h.usecase.Cancel(ctx)
}

func (h CLIHandler) State(ctx context.Context) dto.SessionState {
	return h.usecase.State(ctx)
}

func (h CLIHandler) Weekly(ctx context.Context) (dto.WeeklyOutput, error) {
	return h.usecase.Weekly(ctx)
}

func (h CLIHandler) ResetAll(ctx context.Context) error {
	return h.usecase.ResetAll(ctx)
}
