// Package audit records a line-delimited JSON trail of anonymization runs
// for compliance review.
package audit

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types emitted over the course of a run.
const (
	EventRunStart        = "ANONYMIZATION_START"
	EventColumnProcessed = "COLUMN_PROCESSED"
	EventScored          = "SCORING_COMPLETED"
	EventRunComplete     = "ANONYMIZATION_COMPLETE"
)

// Event is one JSONL record in the audit trail.
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	RunID     string         `json:"run_id"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details,omitempty"`
}

// Trail writes audit events for a single run. Safe for concurrent use.
type Trail struct {
	mu    sync.Mutex
	enc   *json.Encoder
	runID string
	now   func() time.Time
}

// New creates a trail for a fresh run writing JSONL to w. A nil writer
// produces a no-op trail so callers need not branch on whether auditing is
// enabled.
func New(w io.Writer) *Trail {
	t := &Trail{runID: uuid.NewString(), now: time.Now}
	if w != nil {
		t.enc = json.NewEncoder(w)
	}
	return t
}

// RunID returns the identifier stamped on every event of this run.
func (t *Trail) RunID() string {
	return t.runID
}

// Record appends one event to the trail.
func (t *Trail) Record(eventType string, details map[string]any) {
	if t.enc == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	err := t.enc.Encode(Event{
		Timestamp: t.now().UTC(),
		RunID:     t.runID,
		EventType: eventType,
		Details:   details,
	})
	if err != nil {
		slog.Warn("failed to write audit event", "event_type", eventType, "error", err)
	}
}
