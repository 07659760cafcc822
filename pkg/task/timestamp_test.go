package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	noon := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local)
	ts := Timestamp{Time: noon}

	if !ts.SameDay(noon.Add(9 * time.Hour)) {
		t.Fatal("same calendar day expected")
	}
	if ts.SameDay(noon.Add(24 * time.Hour)) {
		t.Fatal("next day should not match")
	}
}

func TestTimestampUnmarshalEmpty(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`""`), &ts); err != nil {
		t.Fatalf("empty timestamp should unmarshal to zero: %v", err)
	}
	if !ts.IsZero() {
		t.Fatalf("expected zero time, got %v", ts)
	}
}
