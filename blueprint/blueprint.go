package blueprint

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ductroute/building"
	"github.com/katalvlaran/ductroute/route"
)

// bannerWidth is the outer width of titles and the legend frame.
const bannerWidth = 80

// Render draws the whole building: a title banner followed by one framed
// floor plan per floor, with every result's dense path overlaid.
// Complexity: O(F×R×C + Σ dense path lengths).
func Render(g *building.Grid, results []route.PathResult) string {
	var b strings.Builder
	rule := strings.Repeat("=", bannerWidth)
	b.WriteString(rule + "\n")
	b.WriteString(center("DUCT INSTALLATION BLUEPRINT", bannerWidth) + "\n")
	b.WriteString(rule + "\n")
	for f := 0; f < g.Floors(); f++ {
		b.WriteString("\n")
		b.WriteString(RenderFloor(g, f, results))
	}
	return b.String()
}

// RenderFloor draws a single floor inside a bordered frame with 1-based
// row and column numbers. Duct cells take connection-aware pipe runes;
// Source, Room and Stair symbols always win over pipe runes.
func RenderFloor(g *building.Grid, floor int, results []route.PathResult) string {
	style := DefaultPipeStyle()
	canvas := baseCanvas(g, floor)
	for _, pr := range results {
		overlayPath(canvas, floor, pr.Path.Dense(), style)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- FLOOR %d ---\n", floor+1)

	// column header, then the frame
	b.WriteString("    ")
	for c := 0; c < g.Cols(); c++ {
		b.WriteString(center(fmt.Sprintf("%d", c+1), 3))
	}
	b.WriteString("\n")
	b.WriteString("  ┌" + strings.Repeat("─", g.Cols()*3) + "┐\n")
	for r := 0; r < g.Rows(); r++ {
		fmt.Fprintf(&b, "%-2d│", r+1)
		for c := 0; c < g.Cols(); c++ {
			b.WriteRune(' ')
			b.WriteRune(canvas[r][c])
			b.WriteRune(' ')
		}
		b.WriteString("│\n")
	}
	b.WriteString("  └" + strings.Repeat("─", g.Cols()*3) + "┘\n")
	return b.String()
}

// baseCanvas fills one floor with its building symbols: walls, the
// source, rooms, stairs, and · for open space.
func baseCanvas(g *building.Grid, floor int) [][]rune {
	canvas := make([][]rune, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		canvas[r] = make([]rune, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			kind, _ := g.KindAt(floor, r, c)
			switch kind {
			case building.Wall:
				canvas[r][c] = wallRune
			case building.Source, building.Room, building.Stair:
				canvas[r][c] = kind.Symbol()
			default:
				canvas[r][c] = emptyRune
			}
		}
	}
	return canvas
}

// overlayPath writes pipe runes for the dense path cells lying on floor.
// Only open cells are painted: source, rooms, stairs and walls keep
// their symbols.
func overlayPath(canvas [][]rune, floor int, dense route.Path, style PipeStyle) {
	for i, p := range dense {
		if p.Floor != floor {
			continue
		}
		if canvas[p.Row][p.Col] != emptyRune && !isPipeRune(canvas[p.Row][p.Col], style) {
			continue
		}
		canvas[p.Row][p.Col] = pathRune(dense, i, style)
	}
}

// isPipeRune reports whether r belongs to the pipe rune set, so crossing
// paths may repaint each other's cells.
func isPipeRune(r rune, style PipeStyle) bool {
	switch r {
	case style.Horizontal, style.Vertical, style.TopLeft, style.TopRight,
		style.BottomLeft, style.BottomRight, style.Cross:
		return true
	default:
		return false
	}
}

// pathRune picks the pipe rune for dense[i] from its same-floor
// connections to the previous and next path cells.
func pathRune(dense route.Path, i int, style PipeStyle) rune {
	p := dense[i]
	var up, down, left, right bool

	mark := func(n building.Position) {
		if n.Floor != p.Floor {
			return
		}
		switch {
		case n.Row < p.Row:
			up = true
		case n.Row > p.Row:
			down = true
		case n.Col < p.Col:
			left = true
		case n.Col > p.Col:
			right = true
		}
	}
	if i > 0 {
		mark(dense[i-1])
	}
	if i < len(dense)-1 {
		mark(dense[i+1])
	}

	connections := 0
	for _, on := range []bool{up, down, left, right} {
		if on {
			connections++
		}
	}
	switch {
	case connections >= 3:
		return style.Cross
	case up && down:
		return style.Vertical
	case left && right:
		return style.Horizontal
	case down && right:
		return style.TopLeft
	case down && left:
		return style.TopRight
	case up && right:
		return style.BottomLeft
	case up && left:
		return style.BottomRight
	case up || down:
		return style.Vertical
	case left || right:
		return style.Horizontal
	default:
		return emptyRune
	}
}

// center pads text to width with spaces on both sides.
func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
