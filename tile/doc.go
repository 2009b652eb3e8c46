// Package tile defines the shared data model of the quasitile engine.
//
// What:
//
//   - Tile: an immutable quadrilateral with a Kind tag, four vertices in a
//     consistent winding order, and a cached Center point.
//   - Kind: Thick/Thin for Penrose rhombi, Cell for the periodic grid.
//   - Floating-point helpers: Lerp, AlmostEqual, AlmostEqualCoords.
//
// Why:
//
//   - Both generators and every recovery query exchange []Tile; a single
//     value type keeps the index-as-identity contract trivial to honor.
//   - The Center is cached because the external erase-selection contract
//     (disk membership over tile centers) queries it constantly.
//
// Invariants:
//
//   - Tiles are values; transforms return new Tiles, never mutate.
//   - Vertices of edge-adjacent tiles coincide within a small tolerance,
//     enforced by matching tolerances in generation and adjacency, not by
//     exact equality.
//
// Complexity: all operations O(1).
package tile
