// Package render provides closed-polygon paths and SVG output for tiles.
package render

import (
	"fmt"
	"strings"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/quasitile/tile"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point geom.Coord
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point geom.Coord
}

func (LineTo) isPathElement() {}

// Close closes the current subpath back to its starting point.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of path elements.
type Path struct {
	elements []PathElement
}

// MoveTo appends a move to (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: geom.Coord{X: x, Y: y}})
}

// LineTo appends a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: geom.Coord{X: x, Y: y}})
}

// Close appends a subpath close.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path elements in order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// TilePath returns the closed polygon tracing t's boundary: move-to the
// first vertex, line-to each subsequent vertex, close.
func TilePath(t tile.Tile) *Path {
	p := &Path{elements: make([]PathElement, 0, 5)}
	p.MoveTo(t.Vertices[0].X, t.Vertices[0].Y)
	for _, v := range t.Vertices[1:] {
		p.LineTo(v.X, v.Y)
	}
	p.Close()
	return p
}

// PathData returns t's boundary as an SVG path "d" attribute:
// "M x,y L x,y L x,y L x,y Z".
func PathData(t tile.Tile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%f,%f", t.Vertices[0].X, t.Vertices[0].Y)
	for _, v := range t.Vertices[1:] {
		fmt.Fprintf(&b, " L%f,%f", v.X, v.Y)
	}
	b.WriteString(" Z")
	return b.String()
}
