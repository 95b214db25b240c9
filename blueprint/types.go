// Package blueprint defines the pipe drawing style used by the
// ductroute renderers.
package blueprint

// PipeStyle holds the rune set used to draw duct runs.
type PipeStyle struct {
	// Straight segments
	Horizontal rune
	Vertical   rune

	// Corner characters
	TopLeft     rune // ┌ : duct continues down and right
	TopRight    rune // ┐ : duct continues down and left
	BottomLeft  rune // └ : duct continues up and right
	BottomRight rune // ┘ : duct continues up and left

	// Cross marks cells threaded from three or four sides.
	Cross rune
}

// DefaultPipeStyle returns the Unicode box-drawing rune set.
func DefaultPipeStyle() PipeStyle {
	return PipeStyle{
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Cross:       '┼',
	}
}

// Building symbols on the rendered canvas.
const (
	wallRune  = '█'
	emptyRune = '·'
)
