// Package dedup collapses byte-identical texture payloads into a single
// group before packing, so the packer places one representative rectangle
// per group instead of one per input name.
package dedup

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// namespace seeds the deterministic content hash. It has no meaning beyond
// giving uuid.NewMD5 a fixed salt so the same pixel bytes always produce the
// same UUID across runs and processes.
var namespace = uuid.MustParse("6f6e6520-7465-7874-7572-652061746c61")

// Texture is a single named input payload, decoded to raw pixels ahead of
// time (decoding itself is out of scope — see §SPEC_FULL-4.F).
type Texture struct {
	Name          string
	Width, Height int
	Pixels        []byte
}

// Group is a set of Textures sharing identical (width, height, pixels).
// Members preserves the caller-supplied order textures with this content
// were first seen in.
type Group struct {
	Width, Height int
	Pixels        []byte
	Members       []string
}

// MemberArea is the sum of each member's width*height — used by callers
// computing efficiency, since a group placed once can represent many times
// its own area's worth of input.
func (g Group) MemberArea() int {
	return len(g.Members) * g.Width * g.Height
}

// Groups buckets textures by a content hash of their dimensions and pixels,
// then verifies every bucket by a full byte compare before merging its
// members — the hash alone is never trusted as an equality proof. When
// enabled is false, every texture becomes its own singleton group (the
// identity partition), preserving input order.
//
// Groups are returned in the order their first member appeared in textures.
func Groups(textures []Texture, enabled bool) ([]Group, error) {
	if !enabled {
		groups := make([]Group, len(textures))
		for i, tx := range textures {
			groups[i] = Group{
				Width: tx.Width, Height: tx.Height,
				Pixels:  tx.Pixels,
				Members: []string{tx.Name},
			}
		}
		return groups, nil
	}

	type bucket struct {
		order int
		group Group
	}
	buckets := make(map[string][]int) // hash -> indices into ordered
	ordered := make([]bucket, 0, len(textures))

	for _, tx := range textures {
		if tx.Width <= 0 || tx.Height <= 0 {
			return nil, fmt.Errorf("dedup: texture %q has non-positive size %dx%d", tx.Name, tx.Width, tx.Height)
		}
		key := contentHash(tx)

		merged := false
		for _, idx := range buckets[key] {
			g := &ordered[idx].group
			if g.Width == tx.Width && g.Height == tx.Height && bytes.Equal(g.Pixels, tx.Pixels) {
				g.Members = append(g.Members, tx.Name)
				merged = true
				break
			}
		}
		if !merged {
			buckets[key] = append(buckets[key], len(ordered))
			ordered = append(ordered, bucket{
				order: len(ordered),
				group: Group{Width: tx.Width, Height: tx.Height, Pixels: tx.Pixels, Members: []string{tx.Name}},
			})
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })
	groups := make([]Group, len(ordered))
	for i, b := range ordered {
		groups[i] = b.group
	}
	return groups, nil
}

// contentHash derives a deterministic bucket key from a texture's dimensions
// and pixels via uuid.NewMD5, seeded from a fixed namespace so identical
// content always hashes identically across runs (§8 property 7,
// determinism). Collisions are possible (MD5 is not collision-proof) which
// is why every bucket is still verified by a full pixel compare before two
// textures are merged.
func contentHash(tx Texture) string {
	buf := make([]byte, 8, 8+len(tx.Pixels))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(tx.Width))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(tx.Height))
	buf = append(buf, tx.Pixels...)
	return uuid.NewMD5(namespace, buf).String()
}

// vim: ts=4
