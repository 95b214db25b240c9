// Package building models a multi-floor building as a read-only 3D grid
// of cell kinds, addressed by (floor, row, col) positions.
//
// What:
//
//   - Position is the immutable (Floor, Row, Col) coordinate triple used
//     as the unit of location everywhere in ductroute.
//   - CellKind tags each cell: Empty, Wall, Source, Room or Stair.
//   - Grid wraps a rectangular [floors][rows][cols]CellKind volume and
//     answers validity, lookup and scan queries. It is immutable once built.
//
// Why:
//
//   - Duct routing: walls block pipes, stairs gate floor changes, and the
//     single air-conditioning source feeds every destination room.
//   - A read-only grid is safely shared by the router, the simplifier and
//     the blueprint renderer without synchronization.
//
// Complexity:
//
//   - From3D:     O(F×R×C) time and memory (deep copy).
//   - InBounds, IsValid, KindAt: O(1).
//   - FindAll, SourcePosition:   O(F×R×C) single scan.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no floors, rows or columns.
//   - ErrNonRectangular: floors or rows of differing dimensions.
//   - ErrOutOfBounds:    KindAt called outside the grid.
//
// FindAll returns positions in row-major, floor-ascending order; callers
// rely on that order to enumerate routing targets deterministically.
package building
