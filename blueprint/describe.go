package blueprint

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ductroute/building"
	"github.com/katalvlaran/ductroute/route"
)

// DescribePath lists one routed duct: its length, energy figures and the
// annotated coordinate sequence, 1-based for reading off the blueprint.
func DescribePath(g *building.Grid, pr route.PathResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== DUCT TO ROOM %d ===\n", pr.TargetIndex+1)
	fmt.Fprintf(&b, "Path length: %d steps\n", pr.Steps)
	fmt.Fprintf(&b, "Energy cost: %.2f units\n", pr.EnergyCost)
	if pr.Steps > 0 {
		fmt.Fprintf(&b, "Energy efficiency: %.2f units per step\n", pr.EnergyCost/float64(pr.Steps))
	}
	if pr.EnergySaved > 0 {
		fmt.Fprintf(&b, "Energy saved: %.2f units\n", pr.EnergySaved)
	}

	b.WriteString("Path coordinates (floor, row, col):\n")
	for i, p := range pr.Path {
		fmt.Fprintf(&b, "  %d. Floor %d, Row %d, Col %d%s\n",
			i+1, p.Floor+1, p.Row+1, p.Col+1, annotate(g, p))
	}
	return b.String()
}

// annotate names the notable cell kinds along a path.
func annotate(g *building.Grid, p building.Position) string {
	kind, err := g.KindAtPosition(p)
	if err != nil {
		return ""
	}
	switch kind {
	case building.Source:
		return " [AC source]"
	case building.Room:
		return " [destination room]"
	case building.Stair:
		return " [stair/lift]"
	default:
		return ""
	}
}
