package tile

import (
	"math"

	"github.com/jbeda/geom"
)

// Lerp returns the point at parameter t on the segment a→b.
// t=0 yields a, t=1 yields b. Complexity: O(1).
func Lerp(a, b geom.Coord, t float64) geom.Coord {
	return a.Times(1 - t).Plus(b.Times(t))
}

// AlmostEqual reports whether two scalars differ by less than tol.
func AlmostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// AlmostEqualCoords reports whether two points coincide within tol on both
// axes.
func AlmostEqualCoords(a, b geom.Coord, tol float64) bool {
	return AlmostEqual(a.X, b.X, tol) && AlmostEqual(a.Y, b.Y, tol)
}
