// Package blueprint renders routed duct installations as ASCII floor
// plans with box-drawing pipe runs, plus the accompanying legend and
// per-path reports.
//
// What:
//
//   - Render draws every floor of the building with walls (█), the
//     source (S), rooms (R), stairs (T), untouched cells (·) and the
//     dense duct paths as connection-aware pipe characters
//     (─ │ ┌ ┐ └ ┘ ┼), inside a numbered, bordered frame.
//   - Legend emits the symbol key, a per-path energy analysis, the cost
//     model table and system totals in one framed block.
//   - DescribePath lists a single path's coordinates with cell-kind
//     annotations and its energy figures.
//
// Why:
//
//   - The routing core returns structured data only; all formatting
//     lives here so callers can ship the strings to a terminal, a file
//     or a test assertion unchanged.
//
// All functions are pure string builders over read-only inputs; nothing
// here prints or mutates.
package blueprint
