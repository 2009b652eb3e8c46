package penrose

import (
	"math"

	"github.com/jbeda/geom"
)

// sun constructs the initial configuration: 10 large half-tiles sharing an
// apex at the viewport center, base vertices on a circle of radius
// max(width, height) at 36° increments. Orientation alternates every other
// wedge so that subdivision produces rhombi with consistent matching-rule
// orientation; the alternation is required for correctness, not cosmetic.
func sun(width, height float64) []halfTile {
	center := geom.Coord{X: width / 2, Y: height / 2}
	radius := math.Max(width, height)

	halves := make([]halfTile, 0, 10)
	for i := 0; i < 10; i++ {
		a1 := float64(i) * 36 * math.Pi / 180
		a2 := float64(i+1) * 36 * math.Pi / 180
		v1 := center.Plus(geom.Coord{X: radius * math.Cos(a1), Y: radius * math.Sin(a1)})
		v2 := center.Plus(geom.Coord{X: radius * math.Cos(a2), Y: radius * math.Sin(a2)})
		if i%2 == 1 {
			v1, v2 = v2, v1
		}
		halves = append(halves, halfTile{kind: halfLarge, apex: center, b1: v1, b2: v2})
	}
	return halves
}

// split returns the point at parameter 1/φ on the segment a→b.
func split(a, b geom.Coord) geom.Coord {
	return a.Times(C2).Plus(b.Times(C1))
}

// subdivide applies one P3 deflation step to a single half-tile.
//
// Large (A, B, C) with P on A→B at 1/φ:
//
//	large (C, P, B), small (P, C, A)
//
// Small (A, B, C) with Q on B→A and R on B→C, each at 1/φ:
//
//	small (Q, R, B), small (R, C, A), large (R, Q, A)
func (h halfTile) subdivide() []halfTile {
	if h.kind == halfLarge {
		p := split(h.apex, h.b1)
		return []halfTile{
			{kind: halfLarge, apex: h.b2, b1: p, b2: h.b1},
			{kind: halfSmall, apex: p, b1: h.b2, b2: h.apex},
		}
	}
	q := split(h.b1, h.apex)
	r := split(h.b1, h.b2)
	return []halfTile{
		{kind: halfSmall, apex: q, b1: r, b2: h.b1},
		{kind: halfSmall, apex: r, b1: h.b2, b2: h.apex},
		{kind: halfLarge, apex: r, b1: q, b2: h.apex},
	}
}

// subdivideAll applies `iterations` deflation steps to the whole patch.
func subdivideAll(halves []halfTile, iterations int) []halfTile {
	r := halves
	for i := 0; i < iterations; i++ {
		next := make([]halfTile, 0, 3*len(r))
		for _, h := range r {
			next = append(next, h.subdivide()...)
		}
		r = next
	}
	return r
}
