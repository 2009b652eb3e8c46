package penrose

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/quasitile/tile"
)

// edgeKey is a spatial-hash bucket for a base-edge midpoint, quantized to
// cells of 4×EdgeTolerance. Coincident edges land in the same or an adjacent
// bucket, so a 3×3 probe around a key finds every candidate partner.
type edgeKey struct {
	x, y int
}

func midpointKey(h halfTile, cell float64) edgeKey {
	mx := (h.b1.X + h.b2.X) / 2
	my := (h.b1.Y + h.b2.Y) / 2
	return edgeKey{x: int(math.Floor(mx / cell)), y: int(math.Floor(my / cell))}
}

// basesMatch reports whether the base edges of two half-tiles coincide
// within tol, in either traversal direction.
func basesMatch(a, b halfTile, tol float64) bool {
	if tile.AlmostEqualCoords(a.b1, b.b1, tol) && tile.AlmostEqualCoords(a.b2, b.b2, tol) {
		return true
	}
	return tile.AlmostEqualCoords(a.b1, b.b2, tol) && tile.AlmostEqualCoords(a.b2, b.b1, tol)
}

// assemble pairs half-tiles of equal kind whose base edges coincide and
// reassembles each pair into one rhombus: vertices [h1.apex, h1.b1, h2.apex,
// h1.b2]. A large pair (36° apexes, base = short diagonal) forms a thin
// rhombus; a small pair (108° apexes, base = long diagonal) forms a thick
// one. Unmatched half-tiles (possible at the patch boundary) are dropped.
//
// A shared base edge is the interior diagonal of exactly one rhombus, so
// each half-tile has at most one partner; the spatial hash therefore yields
// the same pairing as a pairwise search, in the same first-seen order.
// Time: O(n) expected. Memory: O(n).
func assemble(halves []halfTile, tol float64) []tile.Tile {
	cell := 4 * tol
	buckets := make(map[edgeKey][]int, len(halves))
	for i, h := range halves {
		k := midpointKey(h, cell)
		buckets[k] = append(buckets[k], i)
	}

	matched := make([]bool, len(halves))
	tiles := make([]tile.Tile, 0, len(halves)/2)

	for i, h := range halves {
		if matched[i] {
			continue
		}
		k := midpointKey(h, cell)
		partner := -1
	probe:
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range buckets[edgeKey{x: k.x + dx, y: k.y + dy}] {
					if j == i || matched[j] || halves[j].kind != h.kind {
						continue
					}
					if basesMatch(h, halves[j], tol) {
						partner = j
						break probe
					}
				}
			}
		}
		if partner < 0 {
			continue
		}
		matched[i] = true
		matched[partner] = true

		kind := tile.Thin
		if h.kind == halfSmall {
			kind = tile.Thick
		}
		tiles = append(tiles, tile.New(kind, [4]geom.Coord{
			h.apex, h.b1, halves[partner].apex, h.b2,
		}))
	}
	return tiles
}
