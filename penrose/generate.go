package penrose

import (
	"github.com/katalvlaran/quasitile/tile"
)

// Generate builds a Penrose P3 rhombus patch covering the
// [0,width]×[0,height] viewport. It is a deterministic pure function of its
// inputs: the same arguments always produce the same ordered tile sequence.
//
// Pipeline:
//  1. sun: 10 large half-tiles around the viewport center.
//  2. subdivide `iterations` times (deflation).
//  3. reassemble half-tile pairs into thick/thin rhombi.
//  4. cull tiles whose center lies more than CullMargin outside the viewport.
//
// A nil opts uses DefaultOptions; a non-positive EdgeTolerance falls back to
// the default, since edge matching degenerates without one.
//
// Returns ErrNegativeIterations when iterations < 0. iterations = 0 yields
// an empty patch (no half-tile pair shares a base edge in the sun).
//
// Time: O(3^iterations). Memory: O(3^iterations).
func Generate(width, height float64, iterations int, opts *Options) ([]tile.Tile, error) {
	if iterations < 0 {
		return nil, ErrNegativeIterations
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.EdgeTolerance <= 0 {
			o.EdgeTolerance = DefaultOptions().EdgeTolerance
		}
	}

	halves := subdivideAll(sun(width, height), iterations)
	tiles := assemble(halves, o.EdgeTolerance)

	return cull(tiles, width, height, o.CullMargin), nil
}

// cull keeps tiles whose center lies within margin of the viewport.
func cull(tiles []tile.Tile, width, height, margin float64) []tile.Tile {
	out := make([]tile.Tile, 0, len(tiles))
	for _, t := range tiles {
		if t.Center.X < -margin || t.Center.X > width+margin ||
			t.Center.Y < -margin || t.Center.Y > height+margin {
			continue
		}
		out = append(out, t)
	}
	return out
}
