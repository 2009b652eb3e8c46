package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/quasitile/tile"
)

// SVG serializes tiles into a standalone SVG document.
type SVG struct {
	writer io.Writer
}

// NewSVG wraps w in an SVG serializer.
func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	fmt.Fprintf(svg.writer, format, a...)
}

// Start writes the SVG header with a viewBox of the given extent.
func (svg *SVG) Start(width, height float64) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="0 0 %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, width, height)
}

// End closes the document.
func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

// Tile writes one tile as a filled path, styled with the given CSS.
func (svg *SVG) Tile(t tile.Tile, style string) {
	svg.printf("<path d='%s' style='%s'/>\n", PathData(t), style)
}
