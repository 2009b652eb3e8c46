// Package penrose defines options and sentinel errors for P3 generation.
package penrose

import (
	"errors"
	"math"

	"github.com/jbeda/geom"
)

// Interpolation constants for the P3 deflation step.
// C1 = φ−1 = 1/φ, C2 = 2−φ = 1−1/φ; a split point at parameter 1/φ on the
// segment a→b is a·C2 + b·C1.
const (
	C1 = math.Phi - 1.0
	C2 = 2.0 - math.Phi
)

// Sentinel errors for penrose operations.
var (
	// ErrNegativeIterations indicates a subdivision depth below zero.
	ErrNegativeIterations = errors.New("penrose: iterations must be ≥ 0")
)

// Options contains tunable parameters for patch generation.
type Options struct {
	// CullMargin keeps tiles whose center lies within this distance outside
	// the [0,width]×[0,height] viewport.
	CullMargin float64
	// EdgeTolerance is the absolute per-axis tolerance used when matching
	// the shared base edges of half-tile pairs during reassembly.
	EdgeTolerance float64
}

// DefaultOptions returns Options tuned for viewport coordinates in the
// hundreds of pixels: CullMargin=30, EdgeTolerance=2.
func DefaultOptions() Options {
	return Options{
		CullMargin:    30,
		EdgeTolerance: 2,
	}
}

// halfKind distinguishes the two triangle species of the P3 substitution.
type halfKind int

const (
	// halfLarge is the acute Robinson triangle (36° apex); two of them glued
	// along the base form a thin rhombus.
	halfLarge halfKind = iota
	// halfSmall is the obtuse Robinson triangle (108° apex); two of them
	// form a thick rhombus. Smalls outnumber larges by φ after deflation,
	// which is why thick rhombi dominate the patch.
	halfSmall
)

// halfTile is a labeled triangle: an apex and two base vertices. It exists
// only during generation and is discarded after reassembly.
type halfTile struct {
	kind   halfKind
	apex   geom.Coord
	b1, b2 geom.Coord
}
