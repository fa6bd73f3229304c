// Package query runs the packer's variant-search harness: the same input
// set packed under every combination of sort key, fit policy, and rotation
// flag, ranked by efficiency.
package query

import (
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/texpack/rectpack"
)

// Variant names one point in the {LongSide,ShortSide} x
// {BestAreaFit,BottomLeftDistance} x {NoRotation,Rotation} search space.
type Variant struct {
	Sort   rectpack.SortKey
	Fit    rectpack.FitPolicy
	Rotate bool
}

func (v Variant) String() string {
	rot := "no-rotation"
	if v.Rotate {
		rot = "rotation"
	}
	return fmt.Sprintf("%s/%s/%s", sortName(v.Sort), fitName(v.Fit), rot)
}

func sortName(s rectpack.SortKey) string {
	if s == rectpack.ShortSide {
		return "short-side"
	}
	return "long-side"
}

func fitName(f rectpack.FitPolicy) string {
	if f == rectpack.BottomLeftDistance {
		return "bottom-left"
	}
	return "best-area"
}

// Variants is the fixed eight-point search space named in §4.G: every sort
// key crossed with every fit policy named there (BestShortSideFit is a
// valid rectpack.FitPolicy but is not part of this search space) crossed
// with rotation on/off.
var Variants = []Variant{
	{Sort: rectpack.LongSide, Fit: rectpack.BestAreaFit, Rotate: false},
	{Sort: rectpack.LongSide, Fit: rectpack.BestAreaFit, Rotate: true},
	{Sort: rectpack.LongSide, Fit: rectpack.BottomLeftDistance, Rotate: false},
	{Sort: rectpack.LongSide, Fit: rectpack.BottomLeftDistance, Rotate: true},
	{Sort: rectpack.ShortSide, Fit: rectpack.BestAreaFit, Rotate: false},
	{Sort: rectpack.ShortSide, Fit: rectpack.BestAreaFit, Rotate: true},
	{Sort: rectpack.ShortSide, Fit: rectpack.BottomLeftDistance, Rotate: false},
	{Sort: rectpack.ShortSide, Fit: rectpack.BottomLeftDistance, Rotate: true},
}

// Outcome is one variant's result: either a packed Result with its
// efficiency, or an error if the variant failed (e.g. PageTooSmallError
// under a fixed page size).
type Outcome struct {
	Variant    Variant
	Result     rectpack.Result
	Efficiency float64
	Err        error
}

// Options configures a Run: the input items, spacing/po2 policy shared by
// every variant, and an optional fixed page size (zero means auto-size).
type Options struct {
	Items         []rectpack.Item
	Spacing       int
	PO2           bool
	FixedWidth    int
	FixedHeight   int
	MemberArea    int // sum of member area across all items; efficiency numerator
	ItemNames     map[int]string
}

// Run packs items under every Variant, concurrently, and returns a ranked
// table (highest efficiency first; stable on ties so the report is
// deterministic across runs). Run only returns an error if every variant
// failed; individual failures are recorded in their Outcome instead.
func Run(opts Options) ([]Outcome, error) {
	n := len(Variants)
	workers := min(runtime.GOMAXPROCS(0), n)
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	results := make([]Outcome, n)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = runVariant(Variants[i], opts)
			}
		}()
	}
	wg.Wait()

	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
		}
	}
	if failures == n {
		return results, fmt.Errorf("query: every variant failed, first error: %w", results[0].Err)
	}

	ranked := make([]Outcome, len(results))
	copy(ranked, results)
	slices.SortStableFunc(ranked, compareOutcomes)

	rectpack.Logger().Info("variant search complete", "variants", n, "failed", failures)
	return ranked, nil
}

// runVariant packs under a single variant, in isolation: its own copy of
// the item slice and a fresh driver call, so no state crosses variant
// boundaries (§SPEC_FULL-9).
func runVariant(v Variant, opts Options) Outcome {
	items := make([]rectpack.Item, len(opts.Items))
	copy(items, opts.Items)

	packOpts := rectpack.Options{
		Sort: v.Sort, Fit: v.Fit, Rotate: v.Rotate,
		Spacing: opts.Spacing, PO2: opts.PO2,
	}

	var (
		result rectpack.Result
		err    error
	)
	if opts.FixedWidth > 0 && opts.FixedHeight > 0 {
		result, err = rectpack.PackFixed(items, opts.FixedWidth, opts.FixedHeight, packOpts, opts.ItemNames)
	} else {
		result, err = rectpack.PackAuto(items, packOpts)
	}
	if err != nil {
		return Outcome{Variant: v, Err: err}
	}

	pageArea := 0
	for _, p := range result.Pages {
		pageArea += p.Width * p.Height
	}
	efficiency := 0.0
	if pageArea > 0 {
		efficiency = float64(opts.MemberArea) / float64(pageArea)
	}

	return Outcome{Variant: v, Result: result, Efficiency: efficiency}
}

// compareOutcomes orders successes before failures, then by descending
// efficiency; slices.SortStableFunc preserves Variants order on ties, which
// is what keeps the report byte-identical across runs.
func compareOutcomes(a, b Outcome) int {
	if (a.Err == nil) != (b.Err == nil) {
		if a.Err == nil {
			return -1
		}
		return 1
	}
	if a.Efficiency > b.Efficiency {
		return -1
	}
	if a.Efficiency < b.Efficiency {
		return 1
	}
	return 0
}

// BestRotationDisabled returns the highest-efficiency outcome among the
// variants with Rotate == false, or ok == false if none succeeded.
func BestRotationDisabled(ranked []Outcome) (Outcome, bool) {
	for _, o := range ranked {
		if o.Err == nil && !o.Variant.Rotate {
			return o, true
		}
	}
	return Outcome{}, false
}

// vim: ts=4
