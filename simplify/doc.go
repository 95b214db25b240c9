// Package simplify reduces routed duct paths by dropping waypoints whose
// neighbors can be joined directly, re-scoring candidates with the
// energy model and keeping only strict improvements.
//
// What:
//
//   - Optimize runs a greedy, single left-to-right pass per path: an
//     interior waypoint is dropped when the previously kept waypoint can
//     reach the next input waypoint along one unobstructed straight,
//     same-floor line (CanGoDirect).
//   - A candidate replaces the original only when its dense-expansion
//     cost is strictly lower; otherwise the original survives unchanged
//     with EnergySaved 0.
//
// Why:
//
//   - BFS minimizes hops, not energy; its routes often stagger around
//     obstacles with turns that a straight run would avoid.
//
// Complexity:
//
//   - Optimize: O(Σ per path (waypoints × line length)) grid probes,
//     plus one dense re-scoring per path.
//
// Known limitation, kept deliberately: the pass is greedy and
// non-exhaustive. It never enumerates skip combinations, never skips
// across floor changes, and never introduces diagonals, so the result is
// not guaranteed to be the cheapest reduction of the input path. A full
// search over skip sets is out of scope.
package simplify
