// Package render turns tiles into closed-polygon path descriptions for
// presentation layers. The engine itself never draws; this package is the
// narrow bridge a driver uses to do so.
//
// What:
//
//   - PathElement / Path: a retained vector path (MoveTo, LineTo, Close).
//   - TilePath: move-to the first vertex, line-to each subsequent one, close.
//   - PathData: the same polygon as an SVG "d" attribute string.
//   - SVG: a minimal document writer over an io.Writer for demo output.
//
// Complexity: all operations O(1) per tile.
package render
