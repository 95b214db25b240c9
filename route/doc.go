// Package route finds duct paths from the single air-conditioning source
// to every destination room of a building grid, using per-target
// breadth-first search.
//
// What:
//
//   - Route runs one independent BFS per room, in FindAll(Room) order,
//     and returns a PathResult per reachable room plus the list of rooms
//     no duct can reach.
//   - Path is an ordered position sequence; Path.Dense expands waypoint
//     paths cell-by-cell for rendering.
//
// Why:
//
//   - BFS yields the fewest-hop route, which is deterministic and cheap;
//     minimum-energy search is explicitly out of scope (see simplify for
//     the post-hoc cost reduction pass).
//
// Search behavior:
//
//   - Neighbor order at each cell is fixed: row-1, row+1, col-1, col+1 on
//     the same floor; then, only from a Stair cell, every other floor in
//     ascending index whose identical (row, col) cell is also a Stair.
//   - Positions are marked visited on enqueue, so each search enqueues a
//     cell at most once and terminates after at most F×R×C dequeues.
//   - Queue entries carry the full path prefix; the first dequeue of the
//     target fixes that target's path.
//
// Complexity:
//
//   - Route: O(T × F×R×C × L) time in the worst case, where T is the room
//     count and L the mean prefix length copied per enqueue;
//     O(F×R×C) queue and visited memory per target.
//
// Errors:
//
//   - ErrGridNil:          nil grid supplied.
//   - ErrOptionViolation:  an invalid Option was supplied.
//
// A missing source or an empty room list is not an error: Route returns
// an empty Result. Unreachable rooms land in Result.Unreached and fire
// the OnUnreachable hook; they never abort the batch.
//
// Execution is synchronous and single-threaded. Per-target searches are
// independent, so callers needing parallelism may shard targets across
// goroutines themselves; the shared Grid is read-only.
package route
