package route

import "github.com/katalvlaran/ductroute/building"

// Dense expands a waypoint path into a cell-by-cell sequence for
// rendering. Floor changes stay single hops (a stair transition has no
// intermediate cells); same-row or same-column runs are filled with every
// integer coordinate strictly between the waypoints, in traversal order.
// Endpoints are preserved and already-dense paths pass through unchanged,
// so Dense is idempotent. Cost decisions in this module are made on dense
// paths; rendering consumes them directly.
// Complexity: O(total dense length).
func (p Path) Dense() Path {
	if len(p) < 2 {
		return p
	}

	dense := make(Path, 1, len(p))
	dense[0] = p[0]
	for i := 0; i < len(p)-1; i++ {
		from, to := p[i], p[i+1]

		if from.Floor != to.Floor {
			dense = append(dense, to)
			continue
		}

		switch {
		case from.Col == to.Col:
			step := 1
			if to.Row < from.Row {
				step = -1
			}
			for r := from.Row + step; r != to.Row; r += step {
				dense = append(dense, building.Position{Floor: from.Floor, Row: r, Col: from.Col})
			}
		case from.Row == to.Row:
			step := 1
			if to.Col < from.Col {
				step = -1
			}
			for c := from.Col + step; c != to.Col; c += step {
				dense = append(dense, building.Position{Floor: from.Floor, Row: from.Row, Col: c})
			}
		}

		dense = append(dense, to)
	}
	return dense
}
