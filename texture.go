package rectpack

// Item is a single rectangle to be packed, identified by a caller-supplied
// ID used to correlate placements back to their source (typically a dedup
// group index — see rectpack/dedup).
type Item struct {
	ID            int
	Width, Height int
}

// Options bundles every tunable knob for a single pack run. Exactly one
// Sort key and one Fit policy are active at a time; Rotate and PO2 are
// independent flags.
type Options struct {
	// Sort selects the pre-sort key applied before packing (§4.D).
	Sort SortKey
	// Fit selects the tie-break scoring policy (§4.C).
	Fit FitPolicy
	// Rotate allows 90-degree rotation of a texture to improve its fit.
	Rotate bool
	// Spacing is the gutter reserved to the right of and below every
	// placed texture, baked into the store but not into the recorded
	// sidecar rectangle (§4.D).
	Spacing int
	// PO2 constrains page dimensions to powers of two. Only meaningful
	// for PackAuto; PackFixed validates a fixed size against it directly.
	PO2 bool
}

// PageSize is the width/height of one opened page.
type PageSize struct {
	Width, Height int
}

// Placement records where a single Item landed: which page, its inner
// (unspaced) rectangle, and whether it was rotated 90 degrees to fit.
type Placement struct {
	ID      int
	Page    int
	Rect    Rect
	Rotated bool
}

// Result is the outcome of a pack run: the pages that were opened, the
// placement of every item that fit, and any items that did not (always
// empty on success; see PackFixed/PackAuto for when it can be non-empty).
type Result struct {
	Pages      []PageSize
	Placements []Placement
	Unplaced   []Item
}

// vim: ts=4
