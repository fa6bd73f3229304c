// Package atlas assembles packed placements and their source pixels into
// page bitmaps.
package atlas

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/texpack/rectpack"
	"github.com/texpack/rectpack/dedup"
)

// Source supplies the raw RGBA pixels for one dedup group, keyed by the
// group's index in the slice passed to Assemble.
type Source struct {
	Group dedup.Group
}

// image returns the group's pixels as a read-only *image.RGBA, sharing the
// backing array rather than copying it.
func (s Source) image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.Group.Pixels,
		Stride: s.Group.Width * 4,
		Rect:   image.Rect(0, 0, s.Group.Width, s.Group.Height),
	}
}

// Assemble allocates one transparent image.RGBA per page (sized from pages)
// and blits every placement's source pixels at its rectangle, per §4.H.
// placements[i].ID must index into sources. A rotated placement is
// pre-rotated 90 degrees clockwise into a scratch buffer before blitting,
// so both orientations share one blit code path.
func Assemble(pages []rectpack.PageSize, placements []rectpack.Placement, sources []Source) ([]*image.RGBA, error) {
	imgs := make([]*image.RGBA, len(pages))
	for i, p := range pages {
		// image.NewRGBA zero-fills, which is already fully transparent.
		imgs[i] = image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	}

	for _, pl := range placements {
		if pl.ID < 0 || pl.ID >= len(sources) {
			return nil, fmt.Errorf("atlas: placement references out-of-range source id %d", pl.ID)
		}
		if pl.Page < 0 || pl.Page >= len(imgs) {
			return nil, fmt.Errorf("atlas: placement references out-of-range page %d", pl.Page)
		}
		src := sources[pl.ID].image()
		if pl.Rotated {
			src = rotate90CW(src)
		}

		dstRect := image.Rect(pl.Rect.X, pl.Rect.Y, pl.Rect.Right(), pl.Rect.Bottom())
		draw.Draw(imgs[pl.Page], dstRect, src, image.Point{}, draw.Src)
	}

	return imgs, nil
}

// rotate90CW rotates src 90 degrees clockwise: source pixel (i, j) lands at
// destination pixel (h-1-j, i), per §4.H.
func rotate90CW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			dst.Set(h-1-j, i, src.At(b.Min.X+i, b.Min.Y+j))
		}
	}
	return dst
}

// vim: ts=4
