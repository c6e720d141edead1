package domain

import (
	"fmt"
	"time"
)

// Record is one completed focus session in the append-only history. Created
// exactly once when a session completes; never mutated, deleted only by a
// full reset. DatesEarned tracks MinutesStudied one-to-one.
type Record struct {
	ID             string
	MinutesStudied int
	DatesEarned    int
	OccurredAt     time.Time
}

func NewRecord(id string, minutes int, occurredAt time.Time) Record {
	return Record{
		ID:             id,
		MinutesStudied: minutes,
		DatesEarned:    minutes,
		OccurredAt:     occurredAt,
	}
}

func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record id is required")
	}
	if r.MinutesStudied <= 0 {
		return fmt.Errorf("record minutes must be positive, got %d", r.MinutesStudied)
	}
	if r.DatesEarned != r.MinutesStudied {
		return fmt.Errorf("dates earned %d must equal minutes studied %d", r.DatesEarned, r.MinutesStudied)
	}
	if r.OccurredAt.IsZero() {
		return fmt.Errorf("record timestamp is required")
	}
	return nil
}
