package render

import "github.com/salad-chan/TextEditor/terminal"

// RenderContext is the state a frame is drawn from
type RenderContext struct {
	Geometry terminal.Geometry

	// Cursor cell, 0-indexed
	CursorX int
	CursorY int
}
