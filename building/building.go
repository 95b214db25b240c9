package building

// From3D constructs a Grid from a non-empty [floor][row][col] volume.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if any dimension is zero,
// ErrNonRectangular if any floor or row dimension differs from the first.
// Complexity: O(F×R×C) time and memory.
func From3D(cells [][][]CellKind) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 || len(cells[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	floors, rows, cols := len(cells), len(cells[0]), len(cells[0][0])
	for _, floor := range cells {
		if len(floor) != rows {
			return nil, ErrNonRectangular
		}
		for _, row := range floor {
			if len(row) != cols {
				return nil, ErrNonRectangular
			}
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][][]CellKind, floors)
	for f := 0; f < floors; f++ {
		cp[f] = make([][]CellKind, rows)
		for r := 0; r < rows; r++ {
			cp[f][r] = make([]CellKind, cols)
			copy(cp[f][r], cells[f][r])
		}
	}

	return &Grid{floors: floors, rows: rows, cols: cols, cells: cp}, nil
}

// Floors returns the number of floors.
func (g *Grid) Floors() int { return g.floors }

// Rows returns the number of rows per floor.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns per row.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (f,r,c) lies within the grid dimensions.
// Complexity: O(1).
func (g *Grid) InBounds(f, r, c int) bool {
	return f >= 0 && f < g.floors &&
		r >= 0 && r < g.rows &&
		c >= 0 && c < g.cols
}

// IsValid reports whether (f,r,c) is in-bounds and not a Wall,
// i.e. whether a duct may occupy the cell.
// Complexity: O(1).
func (g *Grid) IsValid(f, r, c int) bool {
	return g.InBounds(f, r, c) && g.cells[f][r][c] != Wall
}

// KindAt returns the cell kind stored at (f,r,c).
// Returns ErrOutOfBounds for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) KindAt(f, r, c int) (CellKind, error) {
	if !g.InBounds(f, r, c) {
		return Empty, ErrOutOfBounds
	}
	return g.cells[f][r][c], nil
}

// KindAtPosition is KindAt addressed by a Position value.
func (g *Grid) KindAtPosition(p Position) (CellKind, error) {
	return g.KindAt(p.Floor, p.Row, p.Col)
}

// FindAll scans the grid once and returns every position holding kind,
// in row-major, floor-ascending order. That order defines target
// enumeration order for routing.
// Complexity: O(F×R×C).
func (g *Grid) FindAll(kind CellKind) []Position {
	var out []Position
	for f := 0; f < g.floors; f++ {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if g.cells[f][r][c] == kind {
					out = append(out, Position{Floor: f, Row: r, Col: c})
				}
			}
		}
	}
	return out
}

// SourcePosition returns the first Source cell in scan order.
// The second return value is false when the grid holds no Source.
// Complexity: O(F×R×C).
func (g *Grid) SourcePosition() (Position, bool) {
	for f := 0; f < g.floors; f++ {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if g.cells[f][r][c] == Source {
					return Position{Floor: f, Row: r, Col: c}, true
				}
			}
		}
	}
	return Position{}, false
}
