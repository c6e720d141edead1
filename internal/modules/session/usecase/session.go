package usecase

import (
	"context"
	"sync"

	"shiddaha/internal/modules/session/domain"
	"shiddaha/internal/modules/session/dto"
	sessionin "shiddaha/internal/modules/session/port/in"
	"shiddaha/internal/modules/session/service"
	"shiddaha/internal/platform/log"
)

// Interactor is the application state controller: it holds the single
// in-flight session machine and consumes its terminal states exactly once.
// The mutex serializes callers; Bubble Tea delivers tick commands from
// goroutines.
type Interactor struct {
	mu      sync.Mutex
	machine domain.Machine
	svc     *service.SessionService
	events  *log.Logger
}

func NewInteractor(svc *service.SessionService, rules domain.Rules, events *log.Logger) sessionin.Usecase {
	return &Interactor{machine: domain.NewMachine(rules), svc: svc, events: events}
}

func (i *Interactor) Start(_ context.Context, durationMinutes int) (dto.SessionState, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	next, err := i.machine.Start(durationMinutes)
	if err != nil {
		return dto.SessionState{}, err
	}
	i.machine = next
	_ = i.events.Append(log.Event{Event: log.EventSessionStarted, Minutes: durationMinutes})
	return toState(i.machine), nil
}

// Tick advances the machine one second. The tick that completes the session
// credits the reward and appends the history record atomically, then resets
// to idle, so completion fires exactly once. If persistence fails the
// machine stays completed and the next tick retries the credit; nothing was
// committed, so no double reward is possible.
func (i *Interactor) Tick(ctx context.Context) (dto.TickOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	switch i.machine.Phase {
	case domain.PhaseIdle, domain.PhaseCancelled:
		return dto.TickOutput{State: toState(i.machine)}, nil
	case domain.PhaseCompleted:
		return i.consumeCompletion(ctx)
	}

	i.machine = i.machine.Tick()
	if i.machine.Phase == domain.PhaseCompleted {
		return i.consumeCompletion(ctx)
	}
	return dto.TickOutput{State: toState(i.machine)}, nil
}

func (i *Interactor) consumeCompletion(ctx context.Context) (dto.TickOutput, error) {
	minutes := i.machine.DurationMinutes
	record, result, err := i.svc.Complete(ctx, minutes)
	if err != nil {
		// Leave the machine in completed so the reward is not lost; the
		// caller may retry.
		return dto.TickOutput{State: toState(i.machine)}, err
	}
	i.machine = i.machine.Reset()
	_ = i.events.Append(log.Event{Event: log.EventSessionCompleted, Minutes: record.MinutesStudied, Dates: record.DatesEarned})
	return dto.TickOutput{
		State:           toState(i.machine),
		Completed:       true,
		MinutesCredited: record.MinutesStudied,
		DatesEarned:     record.DatesEarned,
		Currency:        result.Currency,
	}, nil
}

// Cancel discards the in-flight session immediately; no reward, no record.
func (i *Interactor) Cancel(_ context.Context) (dto.SessionState, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	next, err := i.machine.Cancel()
	if err != nil {
		return dto.SessionState{}, err
	}
	// Cancelled is consumed synchronously: no tick can land after this.
	i.machine = next.Reset()
	_ = i.events.Append(log.Event{Event: log.EventSessionCancelled})
	return toState(i.machine), nil
}

func (i *Interactor) State(_ context.Context) dto.SessionState {
	i.mu.Lock()
	defer i.mu.Unlock()
	return toState(i.machine)
}

func (i *Interactor) Weekly(ctx context.Context) (dto.WeeklyOutput, error) {
	weekStart, days, err := i.svc.Weekly(ctx)
	if err != nil {
		return dto.WeeklyOutput{}, err
	}
	total := 0
	for _, minutes := range days {
		total += minutes
	}
	today := int(i.svc.Now().In(weekStart.Location()).Weekday())
	return dto.WeeklyOutput{WeekStart: weekStart, Today: today, DailyMinutes: days, TotalMinutes: total}, nil
}

// ResetAll deletes the profile and all session records, and discards any
// in-flight session.
func (i *Interactor) ResetAll(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.svc.ResetAll(ctx); err != nil {
		return err
	}
	i.machine = i.machine.Reset()
	_ = i.events.Append(log.Event{Event: log.EventReset})
	return nil
}

func toState(m domain.Machine) dto.SessionState {
	return dto.SessionState{
		Phase:              string(m.Phase),
		DurationMinutes:    m.DurationMinutes,
		CountdownRemaining: m.CountdownRemaining,
		ElapsedSeconds:     m.ElapsedSeconds,
		RemainingSeconds:   m.RemainingSeconds(),
		TotalSeconds:       m.TotalSeconds,
	}
}
