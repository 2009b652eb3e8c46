// Command quasitile-svg generates a tiling patch, erases a disk of tiles,
// recovers it, and writes the result as an SVG. It is the reference driver
// for the engine: every entry point the presentation layer would call is
// exercised here once.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/quasitile/penrose"
	"github.com/katalvlaran/quasitile/periodic"
	"github.com/katalvlaran/quasitile/recovery"
	"github.com/katalvlaran/quasitile/render"
	"github.com/katalvlaran/quasitile/tile"
)

// Fill styles per tile role.
const (
	thickStyle     = "fill: #d9a441; stroke: #5a4632; stroke-width: 0.5"
	thinStyle      = "fill: #f0e3c0; stroke: #5a4632; stroke-width: 0.5"
	cellStyle      = "fill: #b8c9d9; stroke: #3f5266; stroke-width: 0.5"
	recoveredStyle = "fill: #d96459; stroke: #6b2321; stroke-width: 0.5"
	boundaryStyle  = "fill: none; stroke: #2a7f62; stroke-width: 1.5"
)

func kindStyle(k tile.Kind) string {
	switch k {
	case tile.Thick:
		return thickStyle
	case tile.Thin:
		return thinStyle
	default:
		return cellStyle
	}
}

func main() {
	var (
		mode       = flag.String("mode", "penrose", "tiling mode: penrose or periodic")
		width      = flag.Float64("width", 1100, "viewport width in pixels")
		height     = flag.Float64("height", 500, "viewport height in pixels")
		iterations = flag.Int("iterations", 7, "penrose subdivision depth")
		tileSize   = flag.Float64("tile", 25, "periodic tile size in pixels")
		radius     = flag.Float64("radius", 80, "erase disk radius; 0 disables erasure")
		out        = flag.String("out", "", "output file (default stdout)")
	)
	flag.Parse()

	var (
		tiles   []tile.Tile
		recMode recovery.Mode
		err     error
	)
	switch *mode {
	case "penrose":
		recMode = recovery.Penrose
		tiles, err = penrose.Generate(*width, *height, *iterations, nil)
	case "periodic":
		recMode = recovery.Periodic
		tiles, err = periodic.Generate(*width, *height, *tileSize, nil)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "quasitile-svg: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "generated %d tiles (%s)\n", len(tiles), *mode)

	center := geom.Coord{X: *width / 2, Y: *height / 2}
	erased := recovery.DiskIndices(tiles, center, *radius)
	ring := recovery.Boundary(tiles, indexSet(erased), center, *radius, nil)
	order := recovery.Order(tiles, erased, center)

	recovered, err := recovery.Recover(tiles, erased, recMode, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quasitile-svg: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "erased %d tiles, %d on the boundary ring\n", len(erased), len(ring))

	w := os.Stdout
	if *out != "" {
		f, ferr := os.Create(*out)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "quasitile-svg: %v\n", ferr)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	gone := indexSet(erased)
	svg := render.NewSVG(w)
	svg.Start(*width, *height)
	for i, t := range recovered {
		if _, hit := gone[i]; hit {
			continue // recovered tiles drawn on top, in reveal order
		}
		svg.Tile(t, kindStyle(t.Kind))
	}
	for _, i := range order {
		svg.Tile(recovered[i], recoveredStyle)
	}
	for _, i := range ring {
		svg.Tile(recovered[i], boundaryStyle)
	}
	svg.End()
}

func indexSet(indices []int) map[int]struct{} {
	set := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		set[i] = struct{}{}
	}
	return set
}
