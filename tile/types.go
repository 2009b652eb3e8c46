// Package tile defines core types and geometry helpers for quasitile.
package tile

import (
	"github.com/jbeda/geom"
)

// Kind tags the shape of a Tile.
type Kind int

const (
	// Thick is the fat Penrose rhombus (72°/108°).
	Thick Kind = iota
	// Thin is the skinny Penrose rhombus (36°/144°).
	Thin
	// Cell is the single parallelogram kind of the periodic grid.
	Cell
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Thick:
		return "thick"
	case Thin:
		return "thin"
	case Cell:
		return "cell"
	default:
		return "unknown"
	}
}

// Tile is one quadrilateral of a tiling. Vertices are listed in a consistent
// winding order, so connecting them in sequence and closing the loop traces
// the tile boundary. Center is cached at construction; for Penrose tiles it
// is the vertex mean, for periodic cells a fixed visual centroid.
// Tiles are immutable values; positional index in the generated sequence is
// their only identity.
type Tile struct {
	Kind     Kind
	Vertices [4]geom.Coord
	Center   geom.Coord
}

// New builds a Tile whose Center is the arithmetic mean of its vertices.
func New(kind Kind, vertices [4]geom.Coord) Tile {
	var sum geom.Coord
	for _, v := range vertices {
		sum = sum.Plus(v)
	}
	return Tile{Kind: kind, Vertices: vertices, Center: sum.Times(0.25)}
}

// NewAt builds a Tile with an explicitly chosen center point.
func NewAt(kind Kind, vertices [4]geom.Coord, center geom.Coord) Tile {
	return Tile{Kind: kind, Vertices: vertices, Center: center}
}

// Translate returns a copy of t with every vertex and the center shifted
// by delta.
func (t Tile) Translate(delta geom.Coord) Tile {
	out := Tile{Kind: t.Kind, Center: t.Center.Plus(delta)}
	for i, v := range t.Vertices {
		out.Vertices[i] = v.Plus(delta)
	}
	return out
}
