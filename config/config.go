// Package config persists named packing option bundles to TOML, so a
// caller can remember a good sort/fit/rotation combination between runs.
// It has zero influence on packing semantics (§SPEC_FULL-10).
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/texpack/rectpack"
)

// PackProfile is a named, persistable bundle of rectpack.Options.
type PackProfile struct {
	Name    string
	Sort    string // "long-side" or "short-side"
	Fit     string // "best-short-side", "best-area", or "bottom-left"
	Rotate  bool
	Spacing int
	PO2     bool
}

// Options converts the profile's string-encoded keys into rectpack.Options.
func (p PackProfile) Options() (rectpack.Options, error) {
	var sort rectpack.SortKey
	switch p.Sort {
	case "long-side", "":
		sort = rectpack.LongSide
	case "short-side":
		sort = rectpack.ShortSide
	default:
		return rectpack.Options{}, fmt.Errorf("config: unknown sort key %q", p.Sort)
	}

	var fit rectpack.FitPolicy
	switch p.Fit {
	case "best-short-side", "":
		fit = rectpack.BestShortSideFit
	case "best-area":
		fit = rectpack.BestAreaFit
	case "bottom-left":
		fit = rectpack.BottomLeftDistance
	default:
		return rectpack.Options{}, fmt.Errorf("config: unknown fit policy %q", p.Fit)
	}

	return rectpack.Options{
		Sort: sort, Fit: fit, Rotate: p.Rotate, Spacing: p.Spacing, PO2: p.PO2,
	}, nil
}

// Load decodes a PackProfile from a TOML file at path.
func Load(path string) (PackProfile, error) {
	var p PackProfile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return PackProfile{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return p, nil
}

// Save encodes p as TOML and writes it to path, creating or truncating the
// file (mode 0644).
func Save(path string, p PackProfile) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("config: encoding profile %q: %w", p.Name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// vim: ts=4
