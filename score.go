package rectpack

// FitPolicy selects the tie-break policy used to score candidate
// placements within the free-rectangle store. Exactly one is active per
// pack run; each is a pure function of candidate geometry and holds no
// state.
type FitPolicy int

const (
	// BestShortSideFit scores a candidate by the smaller of the two
	// leftover slacks (free rect minus candidate, per axis).
	BestShortSideFit FitPolicy = iota
	// BestAreaFit scores a candidate by the leftover area of the free
	// rectangle once the candidate is removed.
	BestAreaFit
	// BottomLeftDistance scores a candidate by its squared distance from
	// the page origin, preferring placements closer to the top-left.
	BottomLeftDistance
)

// candidate is a placement under consideration: rect is anchored at the
// top-left of the free rectangle it was drawn from and has the size
// actually placed (post-rotation); rotated reports whether that placement
// required rotating the source 90 degrees.
type candidate struct {
	rect    Rect
	rotated bool
}

// score computes the (primary, secondary) score pair for placing a
// width x height rectangle into free, under the given policy. Lower is
// better for both values. The candidate is assumed to already fit
// (free.Width >= width && free.Height >= height).
func score(policy FitPolicy, free Rect, width, height int) (primary, secondary int) {
	slackW := free.Width - width
	slackH := free.Height - height

	switch policy {
	case BestAreaFit:
		primary = free.Area() - width*height
		secondary = min(slackW, slackH)
	case BottomLeftDistance:
		primary = free.X*free.X + free.Y*free.Y
		secondary = min(slackW, slackH)
	default: // BestShortSideFit
		primary = min(slackW, slackH)
		secondary = max(slackW, slackH)
	}
	return
}

// vim: ts=4
