package segment

import (
	"os"
	"path/filepath"
	"testing"
)

func mustSegment(t *testing.T, id string, start, end float64) *Segment {
	t.Helper()
	seg, err := New(Options{
		ID:        id,
		StartTime: start,
		EndTime:   end,
		Editable:  true,
	})
	if err != nil {
		t.Fatalf("New(%s) returned error: %v", id, err)
	}
	return seg
}

func TestStoreOrdersByStartTime(t *testing.T) {
	store := NewStore()
	c := mustSegment(t, "c", 5.0, 6.0)
	a := mustSegment(t, "a", 1.0, 2.0)
	b := mustSegment(t, "b", 3.0, 4.0)
	for _, s := range []*Segment{c, a, b} {
		if err := store.Add(s); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	got := store.All()
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got[i].ID() != id {
			t.Errorf("All()[%d] = %s, want %s", i, got[i].ID(), id)
		}
	}
}

func TestStoreRejectsDuplicateID(t *testing.T) {
	store := NewStore()
	if err := store.Add(mustSegment(t, "dup", 1, 2)); err != nil {
		t.Fatalf("first Add returned error: %v", err)
	}
	if err := store.Add(mustSegment(t, "dup", 3, 4)); err == nil {
		t.Error("expected error for duplicate ID")
	}
}

func TestNeighborLookup(t *testing.T) {
	store := NewStore()
	a := mustSegment(t, "a", 1.0, 2.0)
	b := mustSegment(t, "b", 3.0, 4.0)
	c := mustSegment(t, "c", 5.0, 6.0)
	for _, s := range []*Segment{a, b, c} {
		if err := store.Add(s); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	if got := store.FindPreviousSegment(b); got != a {
		t.Errorf("previous of b = %v, want a", got)
	}
	if got := store.FindNextSegment(b); got != c {
		t.Errorf("next of b = %v, want c", got)
	}
	if got := store.FindPreviousSegment(a); got != nil {
		t.Errorf("previous of first = %v, want nil", got)
	}
	if got := store.FindNextSegment(c); got != nil {
		t.Errorf("next of last = %v, want nil", got)
	}

	outsider := mustSegment(t, "x", 9, 10)
	if got := store.FindPreviousSegment(outsider); got != nil {
		t.Errorf("previous of unknown segment = %v, want nil", got)
	}
}

func TestNeighborLookupTracksLiveReordering(t *testing.T) {
	store := NewStore()
	a := mustSegment(t, "a", 1.0, 2.0)
	b := mustSegment(t, "b", 3.0, 4.0)
	for _, s := range []*Segment{a, b} {
		if err := store.Add(s); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	// move a past b; ordering is recomputed from current times
	a.SetEndTime(6.0)
	a.SetStartTime(5.0)

	if got := store.FindPreviousSegment(a); got != b {
		t.Errorf("previous of a after move = %v, want b", got)
	}
	if got := store.FindNextSegment(b); got != a {
		t.Errorf("next of b after move = %v, want a", got)
	}
}

func TestSegmentAt(t *testing.T) {
	store := NewStore()
	a := mustSegment(t, "a", 1.0, 2.0)
	if err := store.Add(a); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if got := store.SegmentAt(1.5); got != a {
		t.Errorf("SegmentAt(1.5) = %v, want a", got)
	}
	if got := store.SegmentAt(2.5); got != nil {
		t.Errorf("SegmentAt(2.5) = %v, want nil", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segments.json")

	store := NewStore()
	seg := mustSegment(t, "intro", 0.5, 4.25)
	seg.SetLabelText("Intro")
	seg.SetColor("#ff0000")
	if err := store.Add(seg); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := store.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("loaded %d segments, want 1", loaded.Len())
	}

	got := loaded.Get("intro")
	if got == nil {
		t.Fatal("segment 'intro' missing after reload")
	}
	if got.StartTime() != 0.5 || got.EndTime() != 4.25 {
		t.Errorf("times = [%v, %v], want [0.5, 4.25]", got.StartTime(), got.EndTime())
	}
	if got.LabelText() != "Intro" || got.Color() != "#ff0000" || !got.Editable() {
		t.Errorf("metadata not preserved: %+v", got)
	}
}

func TestLoadRejectsInvalidSegment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	data := `[{"id":"x","startTime":2,"endTime":1}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for inverted segment times")
	}
}
