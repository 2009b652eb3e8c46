// Package periodic defines the periodic grid generator of quasitile.
package periodic

import (
	"errors"
	"math"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/quasitile/tile"
)

// Sentinel errors for periodic operations.
var (
	// ErrNonPositiveTileSize indicates tileSize ≤ 0.
	ErrNonPositiveTileSize = errors.New("periodic: tileSize must be > 0")
)

// Cell geometry, in units of tileSize. Rows are rowSpacing apart; the cell
// itself is rowSpacing tall, sheared shearX to the right. The center sits at
// a fixed visual centroid of the parallelogram, not at the vertex mean.
const (
	rowSpacing = 0.9
	shearX     = 0.3
	centerOffX = 0.65
	centerOffY = 0.4
)

// Options contains tunable parameters for grid generation.
type Options struct {
	// CullMargin keeps tiles whose center lies within this distance outside
	// the [0,width]×[0,height] viewport.
	CullMargin float64
}

// DefaultOptions returns Options with CullMargin=50.
func DefaultOptions() Options {
	return Options{CullMargin: 50}
}

// Generate builds a staggered parallelogram grid covering the
// [0,width]×[0,height] viewport. Deterministic pure function of its inputs;
// a nil opts uses DefaultOptions.
//
// Each cell's anchor is (col·tileSize, row·0.9·tileSize), with odd rows
// shifted right by half a tile. Vertices, in winding order from the anchor:
//
//	anchor, anchor+(ts,0), anchor+(1.3ts,0.9ts), anchor+(0.3ts,0.9ts)
//
// Returns ErrNonPositiveTileSize when tileSize ≤ 0.
//
// Time: O((width/tileSize)·(height/tileSize)).
func Generate(width, height, tileSize float64, opts *Options) ([]tile.Tile, error) {
	if tileSize <= 0 {
		return nil, ErrNonPositiveTileSize
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	rows := int(math.Ceil(height / (rowSpacing * tileSize)))
	cols := int(math.Ceil(width / tileSize))

	tiles := make([]tile.Tile, 0, (rows+4)*(cols+4))
	for row := -2; row <= rows+2; row++ {
		for col := -2; col <= cols+2; col++ {
			anchor := geom.Coord{
				X: float64(col) * tileSize,
				Y: float64(row) * rowSpacing * tileSize,
			}
			// row&1 is 1 for odd rows, negative ones included.
			if row&1 == 1 {
				anchor.X += tileSize / 2
			}
			center := anchor.Plus(geom.Coord{X: centerOffX * tileSize, Y: centerOffY * tileSize})
			if center.X < -o.CullMargin || center.X > width+o.CullMargin ||
				center.Y < -o.CullMargin || center.Y > height+o.CullMargin {
				continue
			}
			tiles = append(tiles, tile.NewAt(tile.Cell, [4]geom.Coord{
				anchor,
				anchor.Plus(geom.Coord{X: tileSize, Y: 0}),
				anchor.Plus(geom.Coord{X: (1 + shearX) * tileSize, Y: rowSpacing * tileSize}),
				anchor.Plus(geom.Coord{X: shearX * tileSize, Y: rowSpacing * tileSize}),
			}, center))
		}
	}
	return tiles, nil
}
