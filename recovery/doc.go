// Package recovery computes deterministic reconstructions of an erased disk
// of tiles, together with the spatial queries a driver needs to stage the
// reveal: boundary rings, outside-in ordering, and edge-adjacency.
//
// What:
//
//   - Recover: Penrose mode returns the original geometry untouched (the
//     matching rules admit exactly one completion, and the generator already
//     computed it); Periodic mode translates every erased tile by a fixed
//     shift, exhibiting one of the infinitely many equally valid completions.
//   - Boundary: non-erased tiles in an annulus around the erase center — the
//     ring of constraints the reveal narrative leans on.
//   - Order: erased indices sorted outside-in (non-increasing distance).
//   - Neighbors: tiles sharing an edge (≥2 vertices within tolerance) with a
//     target tile, recomputed on demand.
//   - DiskIndices: the documented erase-selection contract (center strictly
//     inside a disk), provided for drivers.
//
// Why:
//
//   - Recovery is not a constraint solver. The Penrose branch is a staged
//     reveal of known-correct tiles; the periodic branch makes phase
//     ambiguity visible instead of proving it exhaustively.
//
// Invariants:
//
//   - Every transform preserves collection length, order, and positional
//     indexing; callers correlate erased indices purely positionally.
//   - Order returns a permutation of its input index list.
//   - Neighbors never reports the target itself.
//
// Complexity:
//
//   - Recover, Boundary, Order, DiskIndices: O(n) or O(n log n).
//   - Neighbors: O(n·16) all-pairs vertex comparison per call.
//
// Errors:
//
//   - ErrUnknownMode: mode is neither Penrose nor Periodic.
//   - ErrIndexOutOfRange: an index does not address the given collection.
package recovery
