package domain

import (
	"fmt"

	apperrors "shiddaha/internal/platform/errors"
)

// Rules bound what durations a focus session may be started with. Durations
// must fall inside [MinMinutes, MaxMinutes] and be a multiple of StepMinutes,
// matching the timer popup's stepper.
type Rules struct {
	MinMinutes       int
	MaxMinutes       int
	StepMinutes      int
	CountdownSeconds int
}

func DefaultRules() Rules {
	return Rules{MinMinutes: 5, MaxMinutes: 240, StepMinutes: 5, CountdownSeconds: 5}
}

func (r Rules) ValidateDuration(minutes int) error {
	if minutes < r.MinMinutes || minutes > r.MaxMinutes {
		return fmt.Errorf("%w: %d minutes, want %d..%d", apperrors.ErrInvalidDuration, minutes, r.MinMinutes, r.MaxMinutes)
	}
	if minutes%r.StepMinutes != 0 {
		return fmt.Errorf("%w: %d minutes is not a multiple of %d", apperrors.ErrInvalidDuration, minutes, r.StepMinutes)
	}
	return nil
}

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseCountdown Phase = "countdown"
	PhaseRunning   Phase = "running"
	PhaseCompleted Phase = "completed"
	PhaseCancelled Phase = "cancelled"
)

// Machine is the focus session lifecycle as a pure value: every transition
// returns a new Machine, so it is testable without real time passing. The
// only inputs are Start, Tick (one per second, from whatever scheduler the
// caller uses), Cancel, and Reset.
//
//	idle → countdown → running → completed
//	          └──────────┴─────→ cancelled
type Machine struct {
	Rules              Rules
	Phase              Phase
	DurationMinutes    int
	CountdownRemaining int
	ElapsedSeconds     int
	TotalSeconds       int
}

func NewMachine(rules Rules) Machine {
	return Machine{Rules: rules, Phase: PhaseIdle}
}

// Start enters the get-ready countdown. Only valid from idle.
func (m Machine) Start(durationMinutes int) (Machine, error) {
	if m.Phase != PhaseIdle {
		return Machine{}, apperrors.ErrSessionActive
	}
	if err := m.Rules.ValidateDuration(durationMinutes); err != nil {
		return Machine{}, err
	}
	next := m
	next.DurationMinutes = durationMinutes
	next.TotalSeconds = durationMinutes * 60
	next.ElapsedSeconds = 0
	if m.Rules.CountdownSeconds == 0 {
		next.Phase = PhaseRunning
		return next, nil
	}
	next.Phase = PhaseCountdown
	next.CountdownRemaining = m.Rules.CountdownSeconds
	return next, nil
}

// Tick advances one second. Idle and terminal phases are unchanged; from
// Start, exactly DurationMinutes*60 + CountdownSeconds ticks reach completed.
func (m Machine) Tick() Machine {
	next := m
	switch m.Phase {
	case PhaseCountdown:
		next.CountdownRemaining--
		if next.CountdownRemaining <= 0 {
			next.Phase = PhaseRunning
			next.CountdownRemaining = 0
			next.ElapsedSeconds = 0
		}
	case PhaseRunning:
		next.ElapsedSeconds++
		if next.ElapsedSeconds >= next.TotalSeconds {
			next.Phase = PhaseCompleted
		}
	}
	return next
}

// Cancel discards the session immediately, from countdown or running only.
// No reward is ever granted for a cancelled session.
func (m Machine) Cancel() (Machine, error) {
	if m.Phase != PhaseCountdown && m.Phase != PhaseRunning {
		return Machine{}, apperrors.ErrNoActiveSession
	}
	next := m
	next.Phase = PhaseCancelled
	return next, nil
}

// Reset consumes a terminal phase back to idle. The caller must credit a
// completed session before resetting; Reset itself carries no side effects.
func (m Machine) Reset() Machine {
	return NewMachine(m.Rules)
}

func (m Machine) Terminal() bool {
	return m.Phase == PhaseCompleted || m.Phase == PhaseCancelled
}

// RemainingSeconds is the running-phase time left, for display.
func (m Machine) RemainingSeconds() int {
	if m.Phase == PhaseCountdown {
		return m.TotalSeconds
	}
	return m.TotalSeconds - m.ElapsedSeconds
}
