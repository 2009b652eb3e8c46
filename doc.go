// Package quasitile is an in-memory engine for generating planar rhombus
// tilings and demonstrating how much of an erased region they determine.
//
// 🚀 What is quasitile?
//
//	A small, dependency-light library that brings together:
//		• Penrose P3 generation: half-tile deflation + rhombus reassembly
//		• Periodic generation: a staggered parallelogram grid
//		• Adjacency queries: shared-edge neighbor detection with tolerances
//		• Erasure recovery: outside-in ordering, boundary rings, and the
//		  periodic phase-ambiguity shift
//
// ✨ Why quasitile?
//
//   - Deterministic – every operation is a pure function of its inputs
//   - Index-as-identity – transforms never reorder or filter a collection
//   - Tunable – tolerances and margins live in Options, not magic constants
//   - Pure Go – no cgo, no GPU, no I/O inside the engine
//
// Everything is organized under five subpackages:
//
//	tile/     — Tile, Kind, and the floating-point geometry helpers
//	penrose/  — aperiodic P3 patch generation by subdivision
//	periodic/ — periodic parallelogram-grid patch generation
//	recovery/ — erasure, boundary, ordering, neighbors, ambiguity shift
//	render/   — closed-polygon paths and SVG serialization for drivers
//
// The accompanying cmd/quasitile-svg writes an SVG of a generated patch with
// an erased-and-recovered disk, exercising every engine entry point.
//
// The mathematical punchline: an aperiodic patch admits exactly one valid
// completion of an erased disk (its matching rules force it), while a
// periodic patch admits infinitely many, differing by a rigid translation.
// Recovery therefore never solves constraints — it replays the generator's
// own output for Penrose, and exhibits one shifted alternative for the grid.
package quasitile
