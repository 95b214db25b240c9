// Package layout implements the text blueprint loader of
// github.com/katalvlaran/ductroute.
package layout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/ductroute/building"
)

// ErrNoLayout indicates input with no parseable blueprint rows.
var ErrNoLayout = errors.New("layout: no parseable rows in input")

// floorSeparator splits the input into floors.
const floorSeparator = "---"

// Load reads and parses the blueprint file at path.
// File-system and parse errors are wrapped with the path for context.
func Load(path string) (*building.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("layout: parse %s: %w", path, err)
	}
	return g, nil
}

// Parse reads a text blueprint from r and builds the rectangular grid.
// See the package documentation for the accepted syntax and the padding
// rules applied to ragged input. Returns ErrNoLayout when nothing
// parseable remains after filtering.
func Parse(r io.Reader) (*building.Grid, error) {
	var (
		floors [][][]building.CellKind
		floor  [][]building.CellKind
	)
	flush := func() {
		if len(floor) > 0 {
			floors = append(floors, floor)
			floor = nil
		}
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == floorSeparator {
			flush()
			continue
		}
		if row := parseRow(line); len(row) > 0 {
			floor = append(floor, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("layout: read: %w", err)
	}
	flush()

	if len(floors) == 0 {
		return nil, ErrNoLayout
	}
	return building.From3D(pad(floors))
}

// parseRow filters one line down to its cell kinds. Text up to and
// including the first ']' is discarded; spaces and symbols outside the
// alphabet are dropped.
func parseRow(line string) []building.CellKind {
	if i := strings.IndexByte(line, ']'); i >= 0 {
		line = line[i+1:]
	}
	var row []building.CellKind
	for _, sym := range line {
		if kind, ok := building.KindFromSymbol(sym); ok {
			row = append(row, kind)
		}
	}
	return row
}

// pad right-pads every row with Empty to the widest row and every floor
// with all-Empty rows to the tallest floor, yielding the rectangular
// volume building.From3D demands.
func pad(floors [][][]building.CellKind) [][][]building.CellKind {
	maxRows, maxCols := 0, 0
	for _, floor := range floors {
		if len(floor) > maxRows {
			maxRows = len(floor)
		}
		for _, row := range floor {
			if len(row) > maxCols {
				maxCols = len(row)
			}
		}
	}

	for fi, floor := range floors {
		for ri, row := range floor {
			for len(row) < maxCols {
				row = append(row, building.Empty)
			}
			floor[ri] = row
		}
		for len(floor) < maxRows {
			floor = append(floor, make([]building.CellKind, maxCols))
		}
		floors[fi] = floor
	}
	return floors
}
