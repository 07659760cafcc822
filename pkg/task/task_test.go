package task

import (
	"testing"

	"tableflip.dev/whittle/pkg/glyph"
)

func TestWeightTable(t *testing.T) {
	tests := []struct {
		kind   glyph.Kind
		timing glyph.Timing
		want   int
	}{
		{glyph.Want, glyph.Today, 2},
		{glyph.Want, glyph.Later, 1},
		{glyph.Need, glyph.Today, 4},
		{glyph.Need, glyph.Later, 2},
		{glyph.Both, glyph.Today, 6},
		{glyph.Both, glyph.Later, 3},
	}
	for _, tc := range tests {
		if got := Weight(tc.kind, tc.timing); got != tc.want {
			t.Errorf("Weight(%s, %s) = %d, want %d", tc.kind, tc.timing, got, tc.want)
		}
	}
}

func TestWeightUnknownValues(t *testing.T) {
	if got := Weight("chore", glyph.Today); got != 2 {
		t.Errorf("unknown kind should weigh 1: got %d, want 2", got)
	}
	if got := Weight(glyph.Need, "tomorrow"); got != 2 {
		t.Errorf("unknown timing should weigh 1: got %d, want 2", got)
	}
	if got := Weight("", ""); got != 1 {
		t.Errorf("fully unknown tags should weigh 1x1: got %d", got)
	}
}

func TestNewTrimsNameAndWeighs(t *testing.T) {
	tk := New("  walk the dog  ", glyph.Both, glyph.Today)
	if tk.Name != "walk the dog" {
		t.Fatalf("expected trimmed name, got %q", tk.Name)
	}
	if tk.Weight != 6 {
		t.Fatalf("expected weight 6, got %d", tk.Weight)
	}
	if tk.Completed || tk.TodaySelected {
		t.Fatal("new tasks start neither completed nor today-selected")
	}
}

func TestReweighCorrectsStaleWeight(t *testing.T) {
	tk := &Task{Name: "x", Kind: glyph.Want, Timing: glyph.Later, Weight: 99}
	tk.Reweigh()
	if tk.Weight != 1 {
		t.Fatalf("expected recomputed weight 1, got %d", tk.Weight)
	}
}
