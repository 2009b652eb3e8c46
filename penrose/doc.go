// Package penrose generates a finite patch of the Penrose P3 rhombus tiling
// by recursive half-tile subdivision.
//
// What:
//
//   - Generate builds an ordered []tile.Tile covering a width×height
//     viewport, from a "sun" of 10 large half-tiles subdivided `iterations`
//     times and reassembled pairwise into thick/thin rhombi.
//   - Subdivision is the standard P3 deflation: split parameters are exactly
//     1/φ, φ = (1+√5)/2. The ratios and apex/base role assignments are
//     load-bearing — any deviation produces locally plausible but globally
//     inconsistent patches.
//
// Why:
//
//   - The aperiodic matching rules admit exactly one completion of any
//     erased region, so the generator's own output doubles as the recovery
//     oracle (see the recovery package).
//
// Complexity:
//
//   - Subdivision: O(k·n) where n grows by a constant factor (<3) per
//     iteration; iterations beyond ~9–10 are impractical.
//   - Reassembly: near-linear via a spatial hash over quantized base-edge
//     midpoints; identical output to the naive O(n²) pairwise search.
//
// Options:
//
//   - Options.CullMargin: how far outside the viewport a tile center may lie.
//   - Options.EdgeTolerance: absolute tolerance for base-edge coincidence.
//     Tolerances are scaled to coordinates in the hundreds of pixels;
//     rescale them proportionally for other coordinate scales.
//
// Errors:
//
//   - ErrNegativeIterations: iterations < 0.
//
// Edge cases: iterations = 0 leaves all 10 half-tiles unmatched, so the
// result is empty. Use iterations ≥ 5 for a visually dense patch.
package penrose
