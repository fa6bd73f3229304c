package rectpack

import (
	"fmt"
	"math"
)

// names, when non-nil, maps an Item's ID to a human-readable name used only
// for error messages (PageTooSmallError). It is optional; callers that
// don't care about friendly error text may pass nil.
type names map[int]string

func (n names) lookup(id int) string {
	if n == nil {
		return fmt.Sprintf("item#%d", id)
	}
	if s, ok := n[id]; ok {
		return s
	}
	return fmt.Sprintf("item#%d", id)
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrInvalidInput
	}
	for _, it := range items {
		if it.Width <= 0 || it.Height <= 0 {
			return fmt.Errorf("%w: item #%d has non-positive size %dx%d", ErrInvalidInput, it.ID, it.Width, it.Height)
		}
	}
	return nil
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PackFixed opens pages of the given fixed size, one at a time, packing as
// many remaining items as fit into each, until every item has a placement.
// It fails with PageTooSmallError if any single item can never fit a page
// of this size (checked up front, in input order, so the first offender is
// reported deterministically), ErrInvalidPageSize if width/height are
// invalid, or ErrInvalidInput if items is empty or contains a degenerate
// size.
func PackFixed(items []Item, width, height int, opts Options, itemNames map[int]string) (Result, error) {
	if width <= 0 || height <= 0 {
		return Result{}, ErrInvalidPageSize
	}
	if opts.PO2 && (!isPow2(width) || !isPow2(height)) {
		return Result{}, fmt.Errorf("%w: %dx%d is not a power-of-two size", ErrInvalidPageSize, width, height)
	}
	if err := validateItems(items); err != nil {
		return Result{}, err
	}

	nm := names(itemNames)
	for _, it := range items {
		if !itemFits(it, width, height, opts) {
			w, h := it.Width+opts.Spacing, it.Height+opts.Spacing
			logger().Debug("item exceeds fixed page size", "name", nm.lookup(it.ID), "w", w, "h", h, "pageW", width, "pageH", height)
			return Result{}, &PageTooSmallError{
				Name: nm.lookup(it.ID), Width: w, Height: h,
				PageWidth: width, PageHeight: height,
			}
		}
	}

	var result Result
	remaining := append([]Item(nil), items...)

	for len(remaining) > 0 {
		pageIndex := len(result.Pages)
		placements, unplaced := packPage(remaining, width, height, opts)
		if len(placements) == 0 {
			// Defensive: every remaining item passed itemFits above, so a
			// fresh empty page must accept at least one of them.
			break
		}
		for i := range placements {
			placements[i].Page = pageIndex
		}
		result.Pages = append(result.Pages, PageSize{Width: width, Height: height})
		result.Placements = append(result.Placements, placements...)
		remaining = unplaced
		logger().Debug("opened page", "index", pageIndex, "placed", len(placements), "remaining", len(remaining))
	}

	result.Unplaced = remaining
	return result, nil
}

// PackAuto finds the smallest single page (by area, breaking ties toward
// squareness) that fits every item. See §4.E for the search algorithm:
// a lower-bound side length seeds a width sweep, and for each width a
// binary search finds the minimal feasible height.
func PackAuto(items []Item, opts Options) (Result, error) {
	if err := validateItems(items); err != nil {
		return Result{}, err
	}

	sumArea, maxW, maxH, sumH := 0, 0, 0, 0
	for _, it := range items {
		w, h := it.Width+opts.Spacing, it.Height+opts.Spacing
		sumArea += w * h
		maxW = max(maxW, w)
		maxH = max(maxH, h)
		sumH += h
	}

	// widthFloor is where the width sweep starts: the largest side of any
	// single item. Heights are searched upward from maxH, the tallest
	// single item. seedSide additionally folds in
	// the trivially-feasible square root of the total area, but that term
	// only seeds the best-area tracker below — using it as a search floor
	// would put every elongated optimum out of reach (e.g. two stacked
	// squares, whose minimal page is taller than it is wide).
	widthFloor := max(maxW, maxH)
	if opts.PO2 {
		widthFloor = nextPow2(widthFloor)
	}
	seedSide := max(maxW, maxH, int(math.Ceil(math.Sqrt(float64(sumArea)))))
	if opts.PO2 {
		seedSide = nextPow2(seedSide)
	}
	upperH := max(widthFloor, sumH)
	if opts.PO2 {
		upperH = nextPow2(upperH)
	}

	bestArea := seedSide * seedSide
	bestW, bestH := 0, 0
	found := false

	// w*maxH is the best-case area for a given width: height can never drop
	// below the tallest single item, no matter how wide the page gets. Once
	// even that best case can't beat the best area found so far, wider
	// widths are never worth trying. The seed square isn't guaranteed
	// feasible for every input shape, so the sweep keeps going past it
	// until a first real candidate is found regardless of the pruning test.
	for w := widthFloor; !found || w*maxH < bestArea; w = nextWidth(w, opts.PO2) {
		h, ok := searchHeight(maxH, upperH, opts.PO2, func(h int) bool {
			return fitsPage(items, w, h, opts)
		})
		if !ok {
			continue
		}
		area := w * h
		if !found || area < bestArea || (area == bestArea && absInt(w-h) < absInt(bestW-bestH)) {
			bestArea, bestW, bestH = area, w, h
			found = true
		}
		logger().Debug("auto-size trial", "w", w, "h", h, "area", area, "best", bestArea)
	}

	placements, unplaced := packPage(items, bestW, bestH, opts)
	if len(unplaced) != 0 {
		// Should not happen: upperH is always sufficient (vertical stack).
		return Result{}, fmt.Errorf("rectpack: auto-size search failed to converge")
	}
	for i := range placements {
		placements[i].Page = 0
	}

	return Result{
		Pages:      []PageSize{{Width: bestW, Height: bestH}},
		Placements: placements,
	}, nil
}

// nextWidth advances the width sweep in PackAuto: +1 normally, or to the
// next power of two when the search is constrained to the po2 lattice.
func nextWidth(w int, po2 bool) int {
	if !po2 {
		return w + 1
	}
	return w << 1
}

// searchHeight binary-searches the minimal height in [lo, hi] (optionally
// restricted to powers of two) for which fits returns true. fits is
// assumed monotonic non-decreasing in h. If fits(hi) is false, it returns
// ok == false.
func searchHeight(lo, hi int, po2 bool, fits func(h int) bool) (int, bool) {
	if !fits(hi) {
		return 0, false
	}
	if !po2 {
		for lo < hi {
			mid := lo + (hi-lo)/2
			if fits(mid) {
				hi = mid
			} else {
				lo = mid + 1
			}
		}
		return lo, true
	}

	// Binary search over the exponent e such that h = 1<<e.
	eLo, eHi := 0, 0
	for 1<<eLo < lo {
		eLo++
	}
	for 1<<eHi < hi {
		eHi++
	}
	for eLo < eHi {
		eMid := eLo + (eHi-eLo)/2
		if fits(1 << eMid) {
			eHi = eMid
		} else {
			eLo = eMid + 1
		}
	}
	return 1 << eLo, true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// vim: ts=4
