package in

import (
	"context"

	"shiddaha/internal/modules/session/dto"
)

// Usecase is the application state controller for focus sessions: it owns
// the single in-flight machine and wires its completion into the reward
// ledger.
type Usecase interface {
	Start(ctx context.Context, durationMinutes int) (dto.SessionState, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	Cancel(ctx context.Context) (dto.SessionState, error)
	State(ctx context.Context) dto.SessionState
	Weekly(ctx context.Context) (dto.WeeklyOutput, error)
	ResetAll(ctx context.Context) error
}
