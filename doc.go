// Package rectpack packs rectangular textures into as few rectangular pages
// as possible using a MAXRECTS free-rectangle bin packer, and reports the
// placement of every input.
//
// The core lives here: geometry (Rect, Subtract), a free-rectangle store
// (freeRectStore), placement scorers (FitPolicy), a single-page packer
// (packPage), and a multi-page/auto-size driver (PackFixed, PackAuto).
// Deduplication, variant search, atlas assembly, PNG/JSON serialization,
// and profile persistence live in the rectpack/dedup, rectpack/query,
// rectpack/atlas, rectpack/atlaspng, and rectpack/config sub-packages;
// rectpack/atlaspack wires all of them into one end-to-end entry point.
package rectpack

// vim: ts=4
