// Package log appends structured JSON events to events.jsonl in the data
// directory. Logging is best-effort: a failed append never fails the
// operation that produced the event.
package log

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	EventProfileCreated   = "profile_created"
	EventSessionStarted   = "session_started"
	EventSessionCompleted = "session_completed"
	EventSessionCancelled = "session_cancelled"
	EventPurchase         = "purchase"
	EventItemSelected     = "item_selected"
	EventReset            = "reset"
)

// Event is a single line of the event log.
type Event struct {
	Time    time.Time `json:"time"`
	Event   string    `json:"event"`
	Name    string    `json:"name,omitempty"`
	ItemID  string    `json:"item,omitempty"`
	Minutes int       `json:"minutes,omitempty"`
	Dates   int       `json:"dates,omitempty"`
	Price   int       `json:"price,omitempty"`
	Error   string    `json:"error,omitempty"`
}

// Logger writes append-only JSONL events. Safe for concurrent use.
type Logger struct {
	path string
	mu   sync.Mutex
}

func New(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return &Logger{path: path}, nil
}

// Append writes event as one JSON line. A zero Time is set to now.
func (l *Logger) Append(event Event) error {
	if l == nil {
		return nil
	}
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}
	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}
