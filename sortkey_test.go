package rectpack

import "testing"

func TestSortEntriesLongSide(t *testing.T) {
	entries := []sizeLike{
		{Width: 5, Height: 5},
		{Width: 10, Height: 2},
		{Width: 2, Height: 10},
		{Width: 8, Height: 8},
	}
	sortEntries(entries, LongSide, func(s sizeLike) sizeLike { return s })

	want := []sizeLike{
		{Width: 10, Height: 2},
		{Width: 2, Height: 10},
		{Width: 8, Height: 8},
		{Width: 5, Height: 5},
	}
	if len(entries) != len(want) {
		t.Fatalf("length mismatch")
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("index %d: want %v, got %v", i, want[i], entries[i])
		}
	}
}

func TestSortEntriesShortSide(t *testing.T) {
	entries := []sizeLike{
		{Width: 10, Height: 2},
		{Width: 5, Height: 5},
		{Width: 2, Height: 10},
	}
	sortEntries(entries, ShortSide, func(s sizeLike) sizeLike { return s })

	// Primary key is min(w,h) descending: 5 (from 5x5) beats 2 (from both
	// 10x2 and 2x10); those two tie on both min and max(10), so the
	// tertiary key (w descending) decides between them.
	if entries[0] != (sizeLike{Width: 5, Height: 5}) {
		t.Errorf("expected the 5x5 entry first under ShortSide, got %v", entries[0])
	}
	if entries[1] != (sizeLike{Width: 10, Height: 2}) || entries[2] != (sizeLike{Width: 2, Height: 10}) {
		t.Errorf("expected the wider entry first among min-side ties, got %v, %v", entries[1], entries[2])
	}
}

func TestSortEntriesStableOnFullTie(t *testing.T) {
	type named struct {
		name          string
		width, height int
	}
	entries := []named{
		{"first", 4, 4},
		{"second", 4, 4},
		{"third", 4, 4},
	}
	sortEntries(entries, LongSide, func(n named) sizeLike { return sizeLike{Width: n.width, Height: n.height} })
	if entries[0].name != "first" || entries[1].name != "second" || entries[2].name != "third" {
		t.Errorf("expected full ties to preserve input order, got %v", entries)
	}
}

// vim: ts=4
