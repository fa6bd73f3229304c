package rectpack

// packPage runs the single-page MAXRECTS loop: pre-sort items descending
// per opts.Sort, then greedily place each into the best-scoring free
// rectangle under opts.Fit, committing as it goes. The loop never
// backtracks. Items that don't fit on this page are returned in unplaced,
// in sorted order.
func packPage(items []Item, width, height int, opts Options) (placements []Placement, unplaced []Item) {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sortEntries(sorted, opts.Sort, func(it Item) sizeLike {
		return sizeLike{Width: it.Width, Height: it.Height}
	})

	store := newFreeRectStore(width, height)

	for _, it := range sorted {
		w, h := it.Width+opts.Spacing, it.Height+opts.Spacing
		cand, ok := store.findBest(w, h, opts.Rotate, opts.Fit)
		if !ok {
			unplaced = append(unplaced, it)
			continue
		}

		store.commit(cand.rect)

		inner := cand.rect
		inner.Width -= opts.Spacing
		inner.Height -= opts.Spacing

		placements = append(placements, Placement{
			ID:      it.ID,
			Rect:    inner,
			Rotated: cand.rotated,
		})
	}

	return placements, unplaced
}

// fitsPage reports whether every item in items can be placed on a single
// page of the given size.
func fitsPage(items []Item, width, height int, opts Options) bool {
	_, unplaced := packPage(items, width, height, opts)
	return len(unplaced) == 0
}

// itemFits reports whether a single item's inflated size fits within a
// width x height page, accounting for rotation if allowed.
func itemFits(it Item, width, height int, opts Options) bool {
	w, h := it.Width+opts.Spacing, it.Height+opts.Spacing
	if w <= width && h <= height {
		return true
	}
	return opts.Rotate && h <= width && w <= height
}

// vim: ts=4
