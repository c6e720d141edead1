package domain_test

import (
	"testing"
	"time"

	"shiddaha/internal/modules/session/domain"
)

func TestNewRecordEarnsOneDatePerMinute(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	r := domain.NewRecord("rec-1", 25, at)
	if r.DatesEarned != 25 {
		t.Fatalf("dates earned = %d, want 25", r.DatesEarned)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestRecordValidateRejectsBadValues(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	cases := map[string]domain.Record{
		"missing id":     {MinutesStudied: 25, DatesEarned: 25, OccurredAt: at},
		"zero minutes":   {ID: "r", MinutesStudied: 0, DatesEarned: 0, OccurredAt: at},
		"mismatch":       {ID: "r", MinutesStudied: 25, DatesEarned: 30, OccurredAt: at},
		"zero timestamp": {ID: "r", MinutesStudied: 25, DatesEarned: 25},
	}
	for name, r := range cases {
		if err := r.Validate(); err == nil {
			t.Errorf("%s: validate passed, want error", name)
		}
	}
}
