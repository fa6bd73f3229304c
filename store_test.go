package rectpack

import "testing"

func TestFreeRectStoreInitialState(t *testing.T) {
	s := newFreeRectStore(100, 50)
	if len(s.free) != 1 || !s.free[0].Eq(NewRect(0, 0, 100, 50)) {
		t.Fatalf("expected single full-page free rect, got %v", s.free)
	}
}

func TestFreeRectStoreFindBestNoFit(t *testing.T) {
	s := newFreeRectStore(10, 10)
	if _, ok := s.findBest(20, 5, false, BestAreaFit); ok {
		t.Fatalf("expected no fit for an oversized candidate")
	}
}

func TestFreeRectStoreCommitSplitsAndPrunes(t *testing.T) {
	s := newFreeRectStore(10, 10)
	cand, ok := s.findBest(4, 4, false, BestShortSideFit)
	if !ok {
		t.Fatal("expected a fit")
	}
	s.commit(cand.rect)

	// No remaining free rect should overlap the placed rect.
	for _, f := range s.free {
		if f.Overlaps(cand.rect) {
			t.Errorf("free rect %v overlaps placed %v after commit", f, cand.rect)
		}
	}
	// No remaining free rect should be strictly contained in another.
	for i, a := range s.free {
		for j, b := range s.free {
			if i == j {
				continue
			}
			if b.Contains(a) && !a.Contains(b) {
				t.Errorf("free rect %v is strictly contained in %v after pruning", a, b)
			}
		}
	}
}

// TestFreeRectStoreTieBreak pins the tie-break order: lower score,
// then smaller (y, x) lexicographically, then non-rotated wins. Two
// identical free squares at different positions score equally under
// BestAreaFit for a square candidate, so the position tiebreak decides.
func TestFreeRectStoreTieBreak(t *testing.T) {
	s := &freeRectStore{
		width:  20,
		height: 10,
		free: []Rect{
			NewRect(10, 0, 5, 5),
			NewRect(0, 5, 5, 5),
		},
	}
	cand, ok := s.findBest(5, 5, false, BestAreaFit)
	if !ok {
		t.Fatal("expected a fit")
	}
	want := NewRect(10, 0, 5, 5)
	if !cand.rect.Eq(want) {
		t.Errorf("expected the lexicographically smaller (y, x) candidate %v, got %v", want, cand.rect)
	}
}

// vim: ts=4
