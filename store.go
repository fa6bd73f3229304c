package rectpack

import "math"

// freeRectStore is the MAXRECTS working set: a collection of maximal free
// rectangles whose union covers all unoccupied pixels of a page. It starts
// as a single rectangle covering the whole page, and mutates only through
// commit, which splits every free rectangle overlapping a newly placed
// rectangle and prunes members that have become strictly contained in
// another.
type freeRectStore struct {
	width, height int
	free          []Rect
	scratch       []Rect // reused buffer for newly split rectangles
}

func newFreeRectStore(width, height int) *freeRectStore {
	return &freeRectStore{
		width:  width,
		height: height,
		free:   []Rect{NewRect(0, 0, width, height)},
	}
}

// findBest enumerates every free rectangle, testing both orientations (if
// rotation is allowed and width != height), and returns the best-scoring
// placement under policy. Ties break on lower score, then smaller (y, x)
// lexicographically, then non-rotated. Returns ok=false if nothing fits.
func (s *freeRectStore) findBest(width, height int, allowRotation bool, policy FitPolicy) (placed candidate, ok bool) {
	bestPrimary, bestSecondary := math.MaxInt, math.MaxInt
	found := false

	consider := func(free Rect, w, h int, rotated bool) {
		if free.Width < w || free.Height < h {
			return
		}
		p1, p2 := score(policy, free, w, h)
		cand := Rect{X: free.X, Y: free.Y, Width: w, Height: h}

		better := false
		switch {
		case !found:
			better = true
		case p1 != bestPrimary:
			better = p1 < bestPrimary
		case p2 != bestSecondary:
			better = p2 < bestSecondary
		default:
			// Score tie: smaller (y, x) lexicographically, then non-rotated.
			if cand.Y != placed.rect.Y {
				better = cand.Y < placed.rect.Y
			} else if cand.X != placed.rect.X {
				better = cand.X < placed.rect.X
			} else {
				better = !rotated && placed.rotated
			}
		}

		if better {
			bestPrimary, bestSecondary = p1, p2
			placed = candidate{rect: cand, rotated: rotated}
			found = true
		}
	}

	for _, free := range s.free {
		consider(free, width, height, false)
		if allowRotation && width != height {
			consider(free, height, width, true)
		}
	}

	return placed, found
}

// commit updates the store to reflect a newly placed rectangle: every
// overlapping free rectangle is removed and replaced with its Subtract
// remainder, then the combined list is pruned of strictly-contained
// members.
func (s *freeRectStore) commit(placed Rect) {
	s.scratch = s.scratch[:0]

	kept := s.free[:0]
	for _, f := range s.free {
		if f.Overlaps(placed) {
			s.scratch = append(s.scratch, f.Subtract(placed)...)
		} else {
			kept = append(kept, f)
		}
	}
	s.free = append(kept, s.scratch...)
	s.prune()
}

// prune removes any member strictly contained in another, via a linear
// two-pass sweep: first mark every rectangle that some other rectangle
// strictly contains, then rebuild the list skipping marked entries. Order
// of pruning does not change the final set.
func (s *freeRectStore) prune() {
	n := len(s.free)
	remove := make([]bool, n)
	for i := 0; i < n; i++ {
		if remove[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || remove[j] {
				continue
			}
			if s.free[i].Contains(s.free[j]) && !s.free[j].Contains(s.free[i]) {
				remove[j] = true
			}
		}
	}

	kept := s.free[:0]
	for i, f := range s.free {
		if !remove[i] {
			kept = append(kept, f)
		}
	}
	s.free = kept
}

// vim: ts=4
