// Package layout reads building blueprints from plain text into a
// building.Grid.
//
// What:
//
//   - Parse consumes a text layout: one character row per line, floors
//     separated by "---" lines, using the alphabet
//     S (source), R (room), T (stair), W (wall), . (empty).
//   - Load opens a file and parses it.
//
// Input tolerance:
//
//   - Blank lines are skipped.
//   - Spaces inside a row are ignored, so "S . R" and "S.R" agree.
//   - On lines containing ']', only the text after the first ']' is
//     considered, so numbered listings like "[1] SWR" paste cleanly.
//   - Characters outside the alphabet are dropped; lines with no
//     surviving symbol are skipped entirely.
//   - Ragged rows are right-padded with Empty to the widest row in the
//     file, and short floors are padded with all-Empty rows to the
//     tallest floor, producing the rectangular volume the grid model
//     requires.
//
// Errors:
//
//   - ErrNoLayout: the input contained no parseable rows.
//   - Load wraps file-system errors with the path for context.
package layout
