package engine

import (
	"github.com/salad-chan/TextEditor/input"
	"github.com/salad-chan/TextEditor/terminal"
)

// Cursor is the 0-indexed cursor cell
type Cursor struct {
	X int
	Y int
}

// Apply moves the cursor by op, saturating at the window edges
func (c *Cursor) Apply(op input.MotionOp, g terminal.Geometry) {
	switch op {
	case input.MotionLeft:
		if c.X > 0 {
			c.X--
		}
	case input.MotionRight:
		if c.X < g.Cols-1 {
			c.X++
		}
	case input.MotionUp:
		if c.Y > 0 {
			c.Y--
		}
	case input.MotionDown:
		if c.Y < g.Rows-1 {
			c.Y++
		}
	case input.MotionLineStart:
		c.X = 0
	case input.MotionLineEnd:
		c.X = g.Cols - 1
	case input.MotionPageUp:
		// A page is rows single steps, each clamped, rather than a direct jump
		for i := 0; i < g.Rows; i++ {
			c.Apply(input.MotionUp, g)
		}
	case input.MotionPageDown:
		for i := 0; i < g.Rows; i++ {
			c.Apply(input.MotionDown, g)
		}
	}
}
