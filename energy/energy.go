// Package energy defines the duct energy-cost model of
// github.com/katalvlaran/ductroute.
package energy

import "github.com/katalvlaran/ductroute/building"

// Default cost constants, per unit of movement.
const (
	// DefaultHorizontal is the cost of one same-floor step.
	DefaultHorizontal = 1.0
	// DefaultVerticalUp is the cost of ascending one stair transition.
	DefaultVerticalUp = 3.0
	// DefaultVerticalDown is the cost of descending one stair transition.
	DefaultVerticalDown = 2.0
	// DefaultTurn is the surcharge for each change of direction.
	DefaultTurn = 0.5
	// DefaultBasePressure is the pressure cost added to every step.
	DefaultBasePressure = 0.1
)

// Model holds the cost constants applied by Cost. The zero value scores
// everything as free; use DefaultModel for the standard constants.
type Model struct {
	Horizontal   float64
	VerticalUp   float64
	VerticalDown float64
	Turn         float64
	BasePressure float64
}

// DefaultModel returns the standard duct energy model.
func DefaultModel() Model {
	return Model{
		Horizontal:   DefaultHorizontal,
		VerticalUp:   DefaultVerticalUp,
		VerticalDown: DefaultVerticalDown,
		Turn:         DefaultTurn,
		BasePressure: DefaultBasePressure,
	}
}

// Cost returns the total energy of traversing path in order.
// Paths shorter than two positions cost 0.
//
// Per consecutive pair: BasePressure always; VerticalUp when the floor
// increases, VerticalDown when it decreases, Horizontal otherwise; and,
// from the second pair onward, Turn whenever the step's direction vector
// differs from the previous step's.
//
// Pure and deterministic: identical paths always yield identical costs.
// Complexity: O(len(path)).
func (m Model) Cost(path []building.Position) float64 {
	if len(path) < 2 {
		return 0
	}

	var total float64
	for i := 1; i < len(path); i++ {
		prev, curr := path[i-1], path[i]

		total += m.BasePressure

		switch {
		case curr.Floor > prev.Floor:
			total += m.VerticalUp
		case curr.Floor < prev.Floor:
			total += m.VerticalDown
		default:
			total += m.Horizontal
		}

		if i >= 2 && isTurn(path[i-2], prev, curr) {
			total += m.Turn
		}
	}
	return total
}

// isTurn reports whether the direction vector a→b differs from b→c.
func isTurn(a, b, c building.Position) bool {
	return b.Floor-a.Floor != c.Floor-b.Floor ||
		b.Row-a.Row != c.Row-b.Row ||
		b.Col-a.Col != c.Col-b.Col
}
