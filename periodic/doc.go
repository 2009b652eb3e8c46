// Package periodic generates a finite patch of a staggered parallelogram
// grid — the translation-symmetric baseline that the Penrose patch is
// contrasted against.
//
// What:
//
//   - Generate lays out one congruent parallelogram per (row, col) cell,
//     rows 0.9×tileSize apart, odd rows offset by half a tile, iteration
//     padded two cells beyond the viewport on every side.
//   - No subdivision, no reassembly: the grid is written down directly.
//
// Why:
//
//   - A periodic tiling admits infinitely many completions of an erased
//     region (phase ambiguity); the recovery package exhibits one shifted
//     alternative. This generator exists purely to make that contrast.
//
// Complexity: O(rows×cols) time and memory.
//
// Options:
//
//   - Options.CullMargin: how far outside the viewport a tile center may lie.
//
// Errors:
//
//   - ErrNonPositiveTileSize: tileSize ≤ 0.
package periodic
