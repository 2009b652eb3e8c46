package recovery

import (
	"sort"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/quasitile/tile"
)

// DiskIndices returns the indices of all tiles whose center lies strictly
// within radius of center — the documented erase-selection rule drivers use.
// Output follows source order. Time: O(n).
func DiskIndices(tiles []tile.Tile, center geom.Coord, radius float64) []int {
	var out []int
	for i, t := range tiles {
		if t.Center.DistanceFrom(center) < radius {
			out = append(out, i)
		}
	}
	return out
}

// Boundary returns the indices of non-erased tiles whose center lies in the
// annulus [BoundaryInner·radius, BoundaryOuter·radius] around center — the
// constraining ring a driver highlights during recovery. Output follows
// source order; no other ordering is guaranteed. A nil opts uses
// DefaultOptions. Time: O(n).
func Boundary(tiles []tile.Tile, erased map[int]struct{}, center geom.Coord, radius float64, opts *Options) []int {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	lo, hi := o.BoundaryInner*radius, o.BoundaryOuter*radius

	var out []int
	for i, t := range tiles {
		if _, gone := erased[i]; gone {
			continue
		}
		d := t.Center.DistanceFrom(center)
		if d >= lo && d <= hi {
			out = append(out, i)
		}
	}
	return out
}

// Order permutes erased into non-increasing distance of tile center from
// center: farthest first, so recovery propagates outside-in from the known
// boundary. The sort is stable, so ties keep their input order. The input
// slice is not mutated. Time: O(k log k) for k erased indices.
func Order(tiles []tile.Tile, erased []int, center geom.Coord) []int {
	out := make([]int, len(erased))
	copy(out, erased)
	sort.SliceStable(out, func(a, b int) bool {
		return tiles[out[a]].Center.DistanceFrom(center) > tiles[out[b]].Center.DistanceFrom(center)
	})
	return out
}

// Neighbors returns the indices of all tiles edge-adjacent to target: those
// sharing at least 2 vertices with it within VertexTolerance. Two shared
// vertices are an edge, which makes this a geometric proxy for adjacency in
// the tiling rather than a maintained graph — it is recomputed on demand.
// The target itself is never included. A nil opts uses DefaultOptions.
// Returns ErrIndexOutOfRange for an invalid target.
//
// Time: O(n·16) all-pairs vertex comparison.
func Neighbors(target int, tiles []tile.Tile, opts *Options) ([]int, error) {
	if target < 0 || target >= len(tiles) {
		return nil, ErrIndexOutOfRange
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	var out []int
	for i, t := range tiles {
		if i == target {
			continue
		}
		if sharedVertices(tiles[target], t, o.VertexTolerance) >= 2 {
			out = append(out, i)
		}
	}
	return out, nil
}

// sharedVertices counts vertices of a that coincide with some vertex of b
// within tol.
func sharedVertices(a, b tile.Tile, tol float64) int {
	n := 0
	for _, va := range a.Vertices {
		for _, vb := range b.Vertices {
			if tile.AlmostEqualCoords(va, vb, tol) {
				n++
				break
			}
		}
	}
	return n
}
