// Package recovery defines modes, options, and sentinel errors for the
// erasure-recovery queries of quasitile.
package recovery

import (
	"errors"

	"github.com/jbeda/geom"
)

// Sentinel errors for recovery operations.
var (
	// ErrUnknownMode indicates a Mode value outside Penrose/Periodic.
	ErrUnknownMode = errors.New("recovery: unknown tiling mode")
	// ErrIndexOutOfRange indicates an index that does not address the given
	// tile collection.
	ErrIndexOutOfRange = errors.New("recovery: tile index out of range")
)

// Mode selects the recovery semantics of a tiling family.
type Mode int

const (
	// Penrose recovers the unique completion: geometry is returned unchanged.
	Penrose Mode = iota
	// Periodic exhibits phase ambiguity: erased tiles come back translated.
	Periodic
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case Penrose:
		return "penrose"
	case Periodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// Options contains tunable parameters for recovery queries.
type Options struct {
	// Shift is the rigid translation applied to erased tiles in Periodic
	// mode — one representative of the infinitely many valid completions.
	Shift geom.Coord
	// VertexTolerance is the per-axis tolerance for the shared-vertex test
	// in Neighbors. Scaled to coordinates in the hundreds of pixels.
	VertexTolerance float64
	// BoundaryInner and BoundaryOuter scale the erase radius into the
	// annulus [Inner·r, Outer·r] queried by Boundary.
	BoundaryInner float64
	BoundaryOuter float64
}

// DefaultOptions returns Options with Shift=(8,6), VertexTolerance=1,
// and the boundary annulus [0.8r, 1.5r].
func DefaultOptions() Options {
	return Options{
		Shift:           geom.Coord{X: 8, Y: 6},
		VertexTolerance: 1,
		BoundaryInner:   0.8,
		BoundaryOuter:   1.5,
	}
}
