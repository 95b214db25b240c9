// Package building defines core types and sentinel errors for the
// building grid model of github.com/katalvlaran/ductroute.
package building

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyGrid indicates the input volume has no floors, rows or columns.
	ErrEmptyGrid = errors.New("building: grid must have at least one floor, row and column")
	// ErrNonRectangular indicates floors or rows of differing dimensions.
	ErrNonRectangular = errors.New("building: all floors must share identical row and column counts")
	// ErrOutOfBounds indicates a lookup outside the grid dimensions.
	ErrOutOfBounds = errors.New("building: position out of bounds")
)

// Position identifies one cell as an immutable (Floor, Row, Col) triple.
// Positions are compared and hashed by value and are valid map keys.
type Position struct {
	Floor, Row, Col int
}

// String renders the position as "(floor,row,col)" for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Floor, p.Row, p.Col)
}

// CellKind enumerates what occupies a grid cell.
type CellKind uint8

const (
	// Empty is open space a duct may pass through.
	Empty CellKind = iota
	// Wall blocks ducts entirely.
	Wall
	// Source is the single air-conditioning outdoor unit.
	Source
	// Room is a destination requiring a duct from the source.
	Room
	// Stair permits floor changes to any other floor whose cell at the
	// identical (row, col) is also a Stair.
	Stair
)

// kindSymbols maps each CellKind to its layout-file symbol.
var kindSymbols = [...]rune{Empty: '.', Wall: 'W', Source: 'S', Room: 'R', Stair: 'T'}

// Symbol returns the layout-file symbol for k ('.', 'W', 'S', 'R' or 'T').
func (k CellKind) Symbol() rune {
	if int(k) < len(kindSymbols) {
		return kindSymbols[k]
	}
	return '?'
}

// String names the kind for diagnostics.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Source:
		return "Source"
	case Room:
		return "Room"
	case Stair:
		return "Stair"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// KindFromSymbol converts a layout symbol to its CellKind.
// The second return value is false for symbols outside the alphabet.
func KindFromSymbol(sym rune) (CellKind, bool) {
	switch sym {
	case '.':
		return Empty, true
	case 'W':
		return Wall, true
	case 'S':
		return Source, true
	case 'R':
		return Room, true
	case 'T':
		return Stair, true
	default:
		return Empty, false
	}
}

// Grid stores a rectangular 3D volume of cell kinds. It is immutable once
// built; all queries are read-only and safe for concurrent use.
type Grid struct {
	floors, rows, cols int
	cells              [][][]CellKind
}
