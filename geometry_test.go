package rectpack

import "testing"

func TestRectContains(t *testing.T) {
	outer := NewRect(0, 0, 10, 10)
	inner := NewRect(2, 2, 5, 5)
	if !outer.Contains(inner) {
		t.Fatalf("expected %v to contain %v", outer, inner)
	}
	if outer.Contains(NewRect(2, 2, 9, 9)) {
		t.Fatalf("rect should not contain one that extends past its bounds")
	}
	if !outer.Contains(outer) {
		t.Fatalf("a rect must contain itself")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	if !a.Overlaps(b) {
		t.Fatalf("expected overlap between %v and %v", a, b)
	}
	c := NewRect(10, 0, 10, 10)
	if a.Overlaps(c) {
		t.Fatalf("edge-sharing rects must not count as overlapping: %v, %v", a, c)
	}
}

func TestRectSubtract(t *testing.T) {
	free := NewRect(0, 0, 10, 10)
	placed := NewRect(3, 3, 4, 4)

	slabs := free.Subtract(placed)
	if len(slabs) != 4 {
		t.Fatalf("expected 4 slabs when placed is interior, got %d: %v", len(slabs), slabs)
	}

	wantArea := free.Area() - placed.Area()
	for _, s := range slabs {
		if s.Overlaps(placed) {
			t.Errorf("slab %v overlaps placed rect %v", s, placed)
		}
		if !free.Contains(s) {
			t.Errorf("slab %v not contained within original free rect %v", s, free)
		}
	}
	// Slabs overlap each other (maximality permits that): with a fully
	// interior cut every corner region lies in two slabs, so only the union
	// area is meaningful. Count the cells of free covered by some slab; the
	// union must be exactly free minus placed.
	gotArea := 0
	for y := free.Y; y < free.Bottom(); y++ {
		for x := free.X; x < free.Right(); x++ {
			for _, s := range slabs {
				if s.Contains(NewRect(x, y, 1, 1)) {
					gotArea++
					break
				}
			}
		}
	}
	if gotArea != wantArea {
		t.Errorf("expected slab union area %d, got %d", wantArea, gotArea)
	}
}

func TestRectSubtractFlushEdge(t *testing.T) {
	free := NewRect(0, 0, 10, 10)
	placed := NewRect(0, 0, 10, 4) // flush against left, right, and top edges
	slabs := free.Subtract(placed)
	if len(slabs) != 1 {
		t.Fatalf("expected a single bottom slab, got %d: %v", len(slabs), slabs)
	}
	want := NewRect(0, 4, 10, 6)
	if !slabs[0].Eq(want) {
		t.Errorf("expected slab %v, got %v", want, slabs[0])
	}
}

func TestRectSubtractNoOverlap(t *testing.T) {
	free := NewRect(0, 0, 10, 10)
	placed := NewRect(20, 20, 5, 5)
	slabs := free.Subtract(placed)
	if len(slabs) != 1 || !slabs[0].Eq(free) {
		t.Errorf("expected subtract of a non-overlapping rect to return the rect unchanged, got %v", slabs)
	}
}

// vim: ts=4
