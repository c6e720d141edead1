package clock

import "time"

// Clock abstracts wall time so session and ledger logic stays deterministic
// in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports real time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
