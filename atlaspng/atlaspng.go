// Package atlaspng writes a packed atlas to disk: one PNG per page plus a
// JSON sidecar describing every original input name's placement, per §6.
package atlaspng

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/texpack/rectpack"
	"github.com/texpack/rectpack/dedup"
)

// PageEntry is one page's sidecar record.
type PageEntry struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	File   string `json:"file"`
}

// TextureEntry is one original input name's placement record. Dedup
// members share identical (Page, X, Y, W, H, Rotated).
type TextureEntry struct {
	Name    string `json:"name"`
	Page    int    `json:"page"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	W       int    `json:"w"`
	H       int    `json:"h"`
	Rotated bool   `json:"rotated"`
}

// Sidecar is the full JSON description written alongside the page PNGs.
type Sidecar struct {
	Pages    []PageEntry    `json:"pages"`
	Textures []TextureEntry `json:"textures"`
}

// Write encodes imgs as `<stem>.png`, `<stem>.1.png`, … and writes
// `<stem>.json` describing every group member's placement. groups supplies
// the member names for each placement's dedup group, keyed by
// Placement.ID; every member of a group gets its own TextureEntry sharing
// that group's placement rectangle, preserving §6's "one entry per
// original input name" rule.
func Write(dir, stem string, imgs []*image.RGBA, pages []rectpack.PageSize, placements []rectpack.Placement, groups []dedup.Group) error {
	if len(imgs) != len(pages) {
		return fmt.Errorf("atlaspng: %d images but %d pages", len(imgs), len(pages))
	}

	sidecar := Sidecar{
		Pages:    make([]PageEntry, len(pages)),
		Textures: make([]TextureEntry, 0, len(placements)),
	}

	for i, p := range pages {
		file := pageFileName(stem, i)
		sidecar.Pages[i] = PageEntry{Width: p.Width, Height: p.Height, File: file}

		f, err := os.Create(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("atlaspng: creating %s: %w", file, err)
		}
		err = png.Encode(f, imgs[i])
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("atlaspng: encoding %s: %w", file, err)
		}
		if closeErr != nil {
			return fmt.Errorf("atlaspng: closing %s: %w", file, closeErr)
		}
	}

	for _, pl := range placements {
		if pl.ID < 0 || pl.ID >= len(groups) {
			return fmt.Errorf("atlaspng: placement references out-of-range group id %d", pl.ID)
		}
		for _, name := range groups[pl.ID].Members {
			sidecar.Textures = append(sidecar.Textures, TextureEntry{
				Name: name, Page: pl.Page,
				X: pl.Rect.X, Y: pl.Rect.Y, W: pl.Rect.Width, H: pl.Rect.Height,
				Rotated: pl.Rotated,
			})
		}
	}

	jsonPath := filepath.Join(dir, stem+".json")
	f, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("atlaspng: creating %s: %w", jsonPath, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sidecar); err != nil {
		return fmt.Errorf("atlaspng: encoding %s: %w", jsonPath, err)
	}
	return nil
}

// pageFileName returns "<stem>.png" for the first page and
// "<stem>.N.png" for subsequent ones, per §6.
func pageFileName(stem string, index int) string {
	if index == 0 {
		return stem + ".png"
	}
	return fmt.Sprintf("%s.%d.png", stem, index)
}

// vim: ts=4
