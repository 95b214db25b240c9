package blueprint

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ductroute/building"
	"github.com/katalvlaran/ductroute/energy"
	"github.com/katalvlaran/ductroute/route"
)

// legendWidth is the inner text width of the legend frame.
const legendWidth = bannerWidth - 4

// Legend builds the framed legend block: symbol key, per-path energy
// analysis, the active cost model and system totals. Per-path lengths
// count dense (visual) cells, matching what Render drew.
func Legend(g *building.Grid, model energy.Model, results []route.PathResult) string {
	var b strings.Builder

	line := func(text string) {
		fmt.Fprintf(&b, "│ %-*s │\n", legendWidth, text)
	}
	heading := func(text string) {
		fmt.Fprintf(&b, "│ %s │\n", center(text, legendWidth))
	}
	separator := func() {
		b.WriteString("├" + strings.Repeat("─", legendWidth+2) + "┤\n")
	}

	rule := strings.Repeat("=", bannerWidth)
	b.WriteString("\n" + rule + "\n")
	b.WriteString(center("BLUEPRINT LEGEND & ENERGY ANALYSIS", bannerWidth) + "\n")
	b.WriteString(rule + "\n")

	b.WriteString("┌" + strings.Repeat("─", legendWidth+2) + "┐\n")
	heading("SYMBOL LEGEND")
	separator()
	line("S = AC source (outdoor unit)")
	line("R = destination room (indoor unit)")
	line("T = stair/lift (vertical access)")
	line("█ = wall/obstacle")
	line("· = open space")
	line("─ │ └ ┘ ┌ ┐ ┼ = duct run (straight, corner, crossing)")

	separator()
	heading("ROUTED PATH ANALYSIS")
	separator()
	var totalEnergy float64
	var totalCells int
	for _, pr := range results {
		cells := len(pr.Path.Dense())
		efficiency := 0.0
		if cells > 0 {
			efficiency = pr.EnergyCost / float64(cells)
		}
		line(fmt.Sprintf("Room @%s: %d cells, %.1f energy (efficiency: %.2f)",
			pr.Target, cells, pr.EnergyCost, efficiency))
		totalEnergy += pr.EnergyCost
		totalCells += cells
	}
	if len(results) == 0 {
		line("No routed paths.")
	}

	separator()
	heading("ENERGY COST PER MOVEMENT")
	separator()
	line(fmt.Sprintf("Horizontal: %.1f | Up: %.1f | Down: %.1f | Turn: %.1f | Pressure: %.1f (per unit)",
		model.Horizontal, model.VerticalUp, model.VerticalDown, model.Turn, model.BasePressure))

	separator()
	heading("SYSTEM TOTALS")
	separator()
	meanEfficiency := 0.0
	if totalCells > 0 {
		meanEfficiency = totalEnergy / float64(totalCells)
	}
	line(fmt.Sprintf("Total system energy: %.2f units", totalEnergy))
	line(fmt.Sprintf("Total duct length (visual): %d cells", totalCells))
	line(fmt.Sprintf("Mean efficiency: %.3f energy per cell", meanEfficiency))
	line(fmt.Sprintf("Rooms routed: %d", len(results)))
	line(fmt.Sprintf("Floors: %d | Plan: %d×%d | Stairs/lifts: %d",
		g.Floors(), g.Rows(), g.Cols(), len(g.FindAll(building.Stair))))
	b.WriteString("└" + strings.Repeat("─", legendWidth+2) + "┘\n")

	return b.String()
}
