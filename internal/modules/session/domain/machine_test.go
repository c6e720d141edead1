package domain_test

import (
	"errors"
	"testing"

	"shiddaha/internal/modules/session/domain"
	apperrors "shiddaha/internal/platform/errors"
)

func TestMachineCompletesAfterExactTickCount(t *testing.T) {
	t.Parallel()
	rules := domain.DefaultRules()
	for minutes := rules.MinMinutes; minutes <= rules.MaxMinutes; minutes += rules.StepMinutes {
		m, err := domain.NewMachine(rules).Start(minutes)
		if err != nil {
			t.Fatalf("start %d minutes: %v", minutes, err)
		}
		totalTicks := minutes*60 + rules.CountdownSeconds
		completions := 0
		for tick := 1; tick <= totalTicks; tick++ {
			next := m.Tick()
			if next.Phase == domain.PhaseCompleted && m.Phase != domain.PhaseCompleted {
				completions++
				if tick != totalTicks {
					t.Fatalf("%d minutes: completed at tick %d, want %d", minutes, tick, totalTicks)
				}
			}
			m = next
		}
		if completions != 1 {
			t.Fatalf("%d minutes: got %d completions, want exactly one", minutes, completions)
		}
		if m.Phase != domain.PhaseCompleted || m.DurationMinutes != minutes {
			t.Fatalf("%d minutes: final state %s/%d", minutes, m.Phase, m.DurationMinutes)
		}
	}
}

func TestMachineCountdownHandsOffToRunning(t *testing.T) {
	t.Parallel()
	m, err := domain.NewMachine(domain.DefaultRules()).Start(5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if m.Phase != domain.PhaseCountdown || m.CountdownRemaining != 5 {
		t.Fatalf("expected countdown(5), got %s(%d)", m.Phase, m.CountdownRemaining)
	}
	for i := 0; i < 4; i++ {
		m = m.Tick()
		if m.Phase != domain.PhaseCountdown {
			t.Fatalf("tick %d: left countdown early, phase %s", i+1, m.Phase)
		}
	}
	m = m.Tick()
	if m.Phase != domain.PhaseRunning || m.ElapsedSeconds != 0 || m.TotalSeconds != 300 {
		t.Fatalf("expected running(0/300), got %s(%d/%d)", m.Phase, m.ElapsedSeconds, m.TotalSeconds)
	}
}

func TestMachineZeroCountdownStartsRunning(t *testing.T) {
	t.Parallel()
	rules := domain.DefaultRules()
	rules.CountdownSeconds = 0
	m, err := domain.NewMachine(rules).Start(5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if m.Phase != domain.PhaseRunning {
		t.Fatalf("expected running, got %s", m.Phase)
	}
}

func TestMachineRejectsInvalidDurations(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine(domain.DefaultRules())
	for _, minutes := range []int{-5, 0, 3, 4, 7, 241, 245, 1000} {
		if _, err := m.Start(minutes); !errors.Is(err, apperrors.ErrInvalidDuration) {
			t.Fatalf("start %d minutes: got %v, want ErrInvalidDuration", minutes, err)
		}
	}
}

func TestMachineStartRequiresIdle(t *testing.T) {
	t.Parallel()
	m, err := domain.NewMachine(domain.DefaultRules()).Start(5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := m.Start(10); !errors.Is(err, apperrors.ErrSessionActive) {
		t.Fatalf("second start: got %v, want ErrSessionActive", err)
	}
}

func TestMachineCancelFromCountdownAndRunning(t *testing.T) {
	t.Parallel()
	m, err := domain.NewMachine(domain.DefaultRules()).Start(5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	cancelled, err := m.Cancel()
	if err != nil {
		t.Fatalf("cancel from countdown: %v", err)
	}
	if cancelled.Phase != domain.PhaseCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Phase)
	}

	for i := 0; i < 100; i++ {
		m = m.Tick()
	}
	if m.Phase != domain.PhaseRunning {
		t.Fatalf("expected running after 100 ticks, got %s", m.Phase)
	}
	cancelled, err = m.Cancel()
	if err != nil {
		t.Fatalf("cancel from running: %v", err)
	}
	if cancelled.Phase != domain.PhaseCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Phase)
	}
}

func TestMachineCancelInvalidOutsideActivePhases(t *testing.T) {
	t.Parallel()
	idle := domain.NewMachine(domain.DefaultRules())
	if _, err := idle.Cancel(); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("cancel idle: got %v, want ErrNoActiveSession", err)
	}

	m, err := idle.Start(5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 5*60+5; i++ {
		m = m.Tick()
	}
	if m.Phase != domain.PhaseCompleted {
		t.Fatalf("expected completed, got %s", m.Phase)
	}
	if _, err := m.Cancel(); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("cancel completed: got %v, want ErrNoActiveSession", err)
	}
}

func TestMachineTickIsNoOpOnIdleAndTerminal(t *testing.T) {
	t.Parallel()
	idle := domain.NewMachine(domain.DefaultRules())
	if got := idle.Tick(); got != idle {
		t.Fatalf("tick on idle changed state: %+v", got)
	}

	m, err := idle.Start(5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 5*60+5; i++ {
		m = m.Tick()
	}
	if got := m.Tick(); got != m {
		t.Fatalf("tick on completed changed state: %+v", got)
	}
}

func TestMachineResetReturnsToIdle(t *testing.T) {
	t.Parallel()
	m, err := domain.NewMachine(domain.DefaultRules()).Start(5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	cancelled, err := m.Cancel()
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	reset := cancelled.Reset()
	if reset.Phase != domain.PhaseIdle {
		t.Fatalf("expected idle after reset, got %s", reset.Phase)
	}
	if _, err := reset.Start(10); err != nil {
		t.Fatalf("start after reset: %v", err)
	}
}

func TestMachineRemainingSeconds(t *testing.T) {
	t.Parallel()
	m, err := domain.NewMachine(domain.DefaultRules()).Start(5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := m.RemainingSeconds(); got != 300 {
		t.Fatalf("remaining during countdown: got %d, want 300", got)
	}
	for i := 0; i < 5+30; i++ {
		m = m.Tick()
	}
	if got := m.RemainingSeconds(); got != 270 {
		t.Fatalf("remaining after 30s running: got %d, want 270", got)
	}
}
