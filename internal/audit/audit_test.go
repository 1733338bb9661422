package audit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTrailWritesJSONL(t *testing.T) {
	var buf bytes.Buffer
	trail := New(&buf)

	trail.Record(EventRunStart, map[string]any{"input": "data.csv"})
	trail.Record(EventColumnProcessed, map[string]any{"column": "name", "method": "hash"})
	trail.Record(EventRunComplete, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}

	var first Event
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not valid JSON: %v", err)
	}
	if first.EventType != EventRunStart {
		t.Errorf("event_type = %q, want %q", first.EventType, EventRunStart)
	}
	if first.RunID != trail.RunID() {
		t.Errorf("run_id = %q, want %q", first.RunID, trail.RunID())
	}
	if first.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	var second Event
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	if second.RunID != first.RunID {
		t.Error("events of one run must share a run_id")
	}
	if second.Details["column"] != "name" {
		t.Errorf("details = %v, want column name", second.Details)
	}
}

func TestTrailNilWriterIsNoOp(t *testing.T) {
	trail := New(nil)
	trail.Record(EventRunStart, nil) // must not panic
	if trail.RunID() == "" {
		t.Error("no-op trail still needs a run id")
	}
}

func TestTrailRunIDsAreUnique(t *testing.T) {
	if New(nil).RunID() == New(nil).RunID() {
		t.Error("two runs got the same run id")
	}
}
