package dto

import "time"

// SessionState is a snapshot of the focus session machine for display.
type SessionState struct {
	Phase              string
	DurationMinutes    int
	CountdownRemaining int
	ElapsedSeconds     int
	RemainingSeconds   int
	TotalSeconds       int
}

// TickOutput reports the result of one tick. Completed is true for exactly
// one tick per session, the one whose reward was credited and persisted.
type TickOutput struct {
	State           SessionState
	Completed       bool
	MinutesCredited int
	DatesEarned     int
	Currency        int
}

// WeeklyOutput is the data behind the weekly progress chart: per-day minute
// totals for the week containing Today, Sunday first.
type WeeklyOutput struct {
	WeekStart    time.Time
	Today        int
	DailyMinutes [7]int
	TotalMinutes int
}
