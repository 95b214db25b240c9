// Package energy scores duct paths with a deterministic energy model.
//
// What:
//
//   - Model holds the five cost constants: horizontal movement, vertical
//     ascent, vertical descent, turning, and per-step base pressure.
//   - Model.Cost sums those constants over an ordered position sequence
//     and is the single source of truth for cost anywhere in ductroute.
//
// Why:
//
//   - Pushing air costs more upward (3.0) than downward (2.0) and every
//     bend (0.5) adds resistance on top of straight runs (1.0); a small
//     base pressure (0.1) penalizes sheer length.
//   - A pure function makes path comparison deterministic and testable.
//
// Complexity:
//
//   - Cost: O(n) over the path length, no allocation.
//
// Turn detection compares the (Δfloor, Δrow, Δcol) direction vector of
// consecutive steps, so the result depends on whether a sparse or a dense
// path is supplied. ductroute scores dense expansions uniformly; callers
// mixing representations will get incomparable numbers.
package energy
