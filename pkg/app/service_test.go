package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/whittle/pkg/glyph"
	"tableflip.dev/whittle/pkg/store"
	"tableflip.dev/whittle/pkg/task"
)

type memoryPersistence struct {
	tasks      map[string]*task.Task
	lastActive string
	storeErr   error
	stores     int
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{tasks: make(map[string]*task.Task)}
}

func (m *memoryPersistence) Tasks(_ context.Context) []*task.Task {
	out := make([]*task.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		cp := *t
		cp.Reweigh()
		out = append(out, &cp)
	}
	return out
}

func (m *memoryPersistence) Store(t *task.Task) error {
	m.stores++
	if m.storeErr != nil {
		return m.storeErr
	}
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *memoryPersistence) Delete(id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *memoryPersistence) LastActiveDate() (string, bool) {
	return m.lastActive, m.lastActive != ""
}

func (m *memoryPersistence) SetLastActiveDate(day string) error {
	m.lastActive = day
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newTestService(p store.Persistence) *Service {
	s := NewService(p)
	tick := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	n := 0
	s.Now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	s.NewID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s
}

func TestAddValidatesName(t *testing.T) {
	s := newTestService(newMemoryPersistence())
	ctx := context.Background()

	if _, err := s.Add(ctx, "   ", glyph.Want, glyph.Later); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if got := s.Tasks(ctx); len(got) != 0 {
		t.Fatalf("rejected add must not mutate, got %d tasks", len(got))
	}
}

func TestAddPrependsNewest(t *testing.T) {
	s := newTestService(newMemoryPersistence())
	ctx := context.Background()

	if _, err := s.Add(ctx, "first", glyph.Want, glyph.Later); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(ctx, "second", glyph.Need, glyph.Today); err != nil {
		t.Fatal(err)
	}

	got := s.Tasks(ctx)
	if len(got) != 2 || got[0].Name != "second" || got[1].Name != "first" {
		t.Fatalf("expected newest first, got %v", got)
	}
	if got[0].Weight != 4 {
		t.Fatalf("expected derived weight 4, got %d", got[0].Weight)
	}
}

func TestUpdateRecomputesWeight(t *testing.T) {
	s := newTestService(newMemoryPersistence())
	ctx := context.Background()

	tk, err := s.Add(ctx, "flexible", glyph.Want, glyph.Later)
	if err != nil {
		t.Fatal(err)
	}
	before := tk.Updated

	kind := glyph.Both
	timing := glyph.Today
	got, err := s.Update(ctx, tk.ID, Fields{Kind: &kind, Timing: &timing})
	if err != nil {
		t.Fatal(err)
	}
	if got.Weight != 6 {
		t.Fatalf("expected weight 6 after update, got %d", got.Weight)
	}
	if got.Name != "flexible" {
		t.Fatalf("unset fields must be preserved, got name %q", got.Name)
	}
	if !got.Updated.After(before.Time) {
		t.Fatal("expected refreshed updated timestamp")
	}
}

func TestUpdateUnknownID(t *testing.T) {
	s := newTestService(newMemoryPersistence())
	name := "x"
	if _, err := s.Update(context.Background(), "nope", Fields{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveUnknownIDLeavesSetUnchanged(t *testing.T) {
	s := newTestService(newMemoryPersistence())
	ctx := context.Background()

	if _, err := s.Add(ctx, "keeper", glyph.Want, glyph.Later); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := s.Tasks(ctx); len(got) != 1 {
		t.Fatalf("collection must be unchanged, got %d tasks", len(got))
	}
}

func TestRemoveThenRetry(t *testing.T) {
	s := newTestService(newMemoryPersistence())
	ctx := context.Background()

	tk, err := s.Add(ctx, "gone soon", glyph.Want, glyph.Later)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(ctx, tk.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(ctx, tk.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("retrying a remove yields ErrNotFound, got %v", err)
	}
}

func TestToggleCompletedKeepsSelectionThenClearsIt(t *testing.T) {
	s := newTestService(newMemoryPersistence())
	ctx := context.Background()

	tk, err := s.Add(ctx, "selected", glyph.Both, glyph.Today)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetTodaySelected(ctx, tk.ID, true); err != nil {
		t.Fatal(err)
	}

	// incomplete -> complete: selection untouched
	got, err := s.ToggleCompleted(ctx, tk.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Completed || !got.TodaySelected {
		t.Fatalf("completing must not change todaySelected: %+v", got)
	}

	// complete -> incomplete: selection forced off
	got, err = s.ToggleCompleted(ctx, tk.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Completed || got.TodaySelected {
		t.Fatalf("reopening must clear todaySelected: %+v", got)
	}
}

func TestClearTodaySelections(t *testing.T) {
	s := newTestService(newMemoryPersistence())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		tk, err := s.Add(ctx, fmt.Sprintf("t%d", i), glyph.Need, glyph.Today)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.SetTodaySelected(ctx, tk.ID, true); err != nil {
			t.Fatal(err)
		}
	}

	s.ClearTodaySelections(ctx)
	for _, tk := range s.Tasks(ctx) {
		if tk.TodaySelected {
			t.Fatalf("expected all selections cleared, %q still set", tk.Name)
		}
	}
}

func TestPersistenceErrorsDoNotBlockMutations(t *testing.T) {
	p := newMemoryPersistence()
	p.storeErr = errors.New("disk full")
	s := newTestService(p)
	ctx := context.Background()

	tk, err := s.Add(ctx, "survives", glyph.Want, glyph.Today)
	if err != nil {
		t.Fatalf("storage failure must not surface: %v", err)
	}
	got, err := s.Get(ctx, tk.ID)
	if err != nil {
		t.Fatalf("in-memory op must succeed: %v", err)
	}
	if got.Name != "survives" {
		t.Fatalf("unexpected task %+v", got)
	}
	if p.stores == 0 {
		t.Fatal("expected a write attempt")
	}
}
