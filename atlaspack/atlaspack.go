// Package atlaspack wires the dedup, page-allocation, and atlas components
// into the single end-to-end Pack entry point described in §1: decode and
// filesystem traversal stay the caller's job, but everything from grouping
// identical pixels through writing the PNG pages and JSON sidecar happens
// here.
package atlaspack

import (
	"image"

	"github.com/texpack/rectpack"
	"github.com/texpack/rectpack/atlas"
	"github.com/texpack/rectpack/atlaspng"
	"github.com/texpack/rectpack/dedup"
)

// Input is a single named, already-decoded texture.
type Input struct {
	Name          string
	Width, Height int
	Pixels        []byte
}

// Request bundles everything a Pack call needs: the inputs, packing
// options, and the dedup on/off switch (the `--no-dedup` policy of §4.F).
type Request struct {
	Inputs  []Input
	Options rectpack.Options
	Dedup   bool

	// FixedWidth/FixedHeight select PackFixed when both are positive;
	// otherwise PackAuto is used.
	FixedWidth  int
	FixedHeight int
}

// Output is the fully assembled result: the page bitmaps plus the result
// that produced them and the dedup groups that back each group ID.
type Output struct {
	Images     []*image.RGBA
	Pages      []rectpack.PageSize
	Placements []rectpack.Placement
	Groups     []dedup.Group
	Unplaced   []rectpack.Item
}

// Pack runs the full pipeline: group identical pixels (§4.F), pack the
// group representatives (§4.D/E), and blit the result into page bitmaps
// (§4.H). It does not write files; call Output.WriteFiles for that.
func Pack(req Request) (Output, error) {
	textures := make([]dedup.Texture, len(req.Inputs))
	for i, in := range req.Inputs {
		textures[i] = dedup.Texture{Name: in.Name, Width: in.Width, Height: in.Height, Pixels: in.Pixels}
	}

	groups, err := dedup.Groups(textures, req.Dedup)
	if err != nil {
		return Output{}, err
	}

	items := make([]rectpack.Item, len(groups))
	names := make(map[int]string, len(groups))
	for i, g := range groups {
		items[i] = rectpack.Item{ID: i, Width: g.Width, Height: g.Height}
		names[i] = g.Members[0]
	}

	var result rectpack.Result
	if req.FixedWidth > 0 && req.FixedHeight > 0 {
		result, err = rectpack.PackFixed(items, req.FixedWidth, req.FixedHeight, req.Options, names)
	} else {
		result, err = rectpack.PackAuto(items, req.Options)
	}
	if err != nil {
		return Output{}, err
	}

	sources := make([]atlas.Source, len(groups))
	for i, g := range groups {
		sources[i] = atlas.Source{Group: g}
	}
	imgs, err := atlas.Assemble(result.Pages, result.Placements, sources)
	if err != nil {
		return Output{}, err
	}

	return Output{
		Images: imgs, Pages: result.Pages, Placements: result.Placements,
		Groups: groups, Unplaced: result.Unplaced,
	}, nil
}

// WriteFiles serializes o to <dir>/<stem>.png[, .1.png, …] and
// <dir>/<stem>.json, per §6.
func (o Output) WriteFiles(dir, stem string) error {
	return atlaspng.Write(dir, stem, o.Images, o.Pages, o.Placements, o.Groups)
}

// Efficiency reports the packing efficiency defined in §6: summed member
// area over summed page area.
func (o Output) Efficiency() float64 {
	memberArea := 0
	for _, g := range o.Groups {
		memberArea += g.MemberArea()
	}
	pageArea := 0
	for _, p := range o.Pages {
		pageArea += p.Width * p.Height
	}
	if pageArea == 0 {
		return 0
	}
	return float64(memberArea) / float64(pageArea)
}

// vim: ts=4
