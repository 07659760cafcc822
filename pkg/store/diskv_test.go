package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/whittle/pkg/glyph"
	"tableflip.dev/whittle/pkg/task"
)

type testConfig struct{ path string }

func (c *testConfig) BasePath() string { return c.path }

func testStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p
}

func TestStoreRoundTrip(t *testing.T) {
	p := testStore(t)
	ctx := context.Background()

	tk := task.New("water the plants", glyph.Need, glyph.Today)
	tk.Created = task.Timestamp{Time: time.Now()}
	tk.Updated = tk.Created
	if err := p.Store(tk); err != nil {
		t.Fatalf("store: %v", err)
	}
	if tk.ID == "" {
		t.Fatal("store must assign an id when missing")
	}

	all := p.Tasks(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 task, got %d", len(all))
	}
	got := all[0]
	if got.ID != tk.ID || got.Name != tk.Name || got.Kind != glyph.Need || got.Timing != glyph.Today {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Weight != 4 {
		t.Fatalf("expected weight 4, got %d", got.Weight)
	}
}

func TestLoadRecomputesStaleWeight(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	tk := task.New("stale", glyph.Want, glyph.Later)
	tk.ID = "fixed-id"
	tk.TodaySelected = true
	tk.Weight = 999 // pretend an old weighting scheme wrote this
	data, err := json.Marshal(tk)
	if err != nil {
		t.Fatal(err)
	}
	inner := p.(*persistence)
	if err := inner.d.Write(toKey(tk.ID), data); err != nil {
		t.Fatal(err)
	}

	all := p.Tasks(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 task, got %d", len(all))
	}
	got := all[0]
	if got.Weight != 1 {
		t.Fatalf("load must recompute weight, got %d", got.Weight)
	}
	if !got.TodaySelected || got.Name != "stale" {
		t.Fatalf("other fields must survive untouched: %+v", got)
	}
}

func TestTasksNewestFirst(t *testing.T) {
	p := testStore(t)
	now := time.Now()

	older := task.New("older", glyph.Want, glyph.Later)
	older.ID = "a-older"
	older.Created = task.Timestamp{Time: now.Add(-time.Hour)}
	newer := task.New("newer", glyph.Want, glyph.Later)
	newer.ID = "b-newer"
	newer.Created = task.Timestamp{Time: now}

	if err := p.Store(older); err != nil {
		t.Fatal(err)
	}
	if err := p.Store(newer); err != nil {
		t.Fatal(err)
	}

	all := p.Tasks(context.Background())
	if len(all) != 2 || all[0].Name != "newer" || all[1].Name != "older" {
		t.Fatalf("expected newest first, got %+v", all)
	}
}

func TestDelete(t *testing.T) {
	p := testStore(t)
	ctx := context.Background()

	tk := task.New("short lived", glyph.Want, glyph.Later)
	if err := p.Store(tk); err != nil {
		t.Fatal(err)
	}
	if err := p.Delete(tk.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := p.Tasks(ctx); len(got) != 0 {
		t.Fatalf("expected empty store, got %d", len(got))
	}
}

func TestLastActiveDate(t *testing.T) {
	p := testStore(t)

	if _, ok := p.LastActiveDate(); ok {
		t.Fatal("fresh store has no last active date")
	}
	if err := p.SetLastActiveDate("2024-06-01"); err != nil {
		t.Fatalf("set: %v", err)
	}
	day, ok := p.LastActiveDate()
	if !ok || day != "2024-06-01" {
		t.Fatalf("expected 2024-06-01, got %q ok=%v", day, ok)
	}

	if err := p.SetLastActiveDate("June first"); err == nil {
		t.Fatal("non-ISO dates must be rejected")
	}
}

func TestKeyTransformRoundTrip(t *testing.T) {
	// uuid file names contain dashes; only the bucket prefix splits
	key := toKey("bd45fd29-7f10-4f9a-9d5c-6bb4d0a3f2e1")
	pk := keyToPathTransform(key)
	if len(pk.Path) != 1 || pk.Path[0] != taskBucket {
		t.Fatalf("unexpected path %v", pk.Path)
	}
	if pk.FileName != "bd45fd29-7f10-4f9a-9d5c-6bb4d0a3f2e1" {
		t.Fatalf("unexpected file name %q", pk.FileName)
	}
	if back := pathToKeyTransform(pk); back != key {
		t.Fatalf("inverse transform mismatch: %q vs %q", back, key)
	}
}
