package task

import (
	"fmt"
	"strings"

	"tableflip.dev/whittle/pkg/glyph"
)

// Task is a single thing the user wants or needs to get done.
type Task struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Kind          glyph.Kind   `json:"kind"`
	Timing        glyph.Timing `json:"timing"`
	Weight        int          `json:"weight"`
	Completed     bool         `json:"completed"`
	TodaySelected bool         `json:"todaySelected"`
	Created       Timestamp    `json:"created"`
	Updated       Timestamp    `json:"updated"`
}

func New(name string, kind glyph.Kind, timing glyph.Timing) *Task {
	t := &Task{
		Name:   strings.TrimSpace(name),
		Kind:   kind,
		Timing: timing,
	}
	t.Reweigh()
	return t
}

var (
	kindWeights = map[glyph.Kind]int{
		glyph.Want: 1,
		glyph.Need: 2,
		glyph.Both: 3,
	}
	timingWeights = map[glyph.Timing]int{
		glyph.Today: 2,
		glyph.Later: 1,
	}
)

// Weight scores a kind/timing pair. Unrecognized values score 1 so a task
// never disappears from prioritization just because its tags are stale.
func Weight(kind glyph.Kind, timing glyph.Timing) int {
	kw, ok := kindWeights[kind]
	if !ok {
		kw = 1
	}
	tw, ok := timingWeights[timing]
	if !ok {
		tw = 1
	}
	return kw * tw
}

// Reweigh recomputes the derived weight from the current kind and timing.
// Persisted weights are never trusted; loaders call this after every read.
func (t *Task) Reweigh() {
	t.Weight = Weight(t.Kind, t.Timing)
}

func (t *Task) Row() (string, string, string, string) {
	return t.Kind.String(), t.Timing.String(), fmt.Sprintf("%d", t.Weight), t.Name
}

func (t *Task) String() string {
	name := t.Name
	if t.Completed {
		name = glyph.Strike(name)
	}
	return fmt.Sprintf("%s %s  %s", t.Kind.String(), t.Timing.String(), name)
}
