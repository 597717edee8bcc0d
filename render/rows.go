package render

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/salad-chan/TextEditor/terminal"
)

// fillerMarker marks a screen row past the end of the document
const fillerMarker = '~'

// welcomeRow returns the row index carrying the banner
func welcomeRow(rows int) int {
	return rows / 3
}

// drawRows appends every visible row. Each row ends with an erase-to-EOL;
// every row but the last is followed by CR LF so the screen never scrolls.
func drawRows(buf *terminal.AppendBuffer, g terminal.Geometry, banner string) {
	bannerAt := welcomeRow(g.Rows)

	for y := 0; y < g.Rows; y++ {
		if y == bannerAt && banner != "" {
			drawBanner(buf, g.Cols, banner)
		} else {
			buf.AppendByte(fillerMarker)
		}

		buf.EraseLine()
		if y < g.Rows-1 {
			buf.NewLine()
		}
	}
}

// drawBanner centers banner within cols, clipping it to the row first.
// Padding (cols-width)/2 starts with the filler marker when there is room.
func drawBanner(buf *terminal.AppendBuffer, cols int, banner string) {
	if ansi.StringWidth(banner) > cols {
		banner = ansi.Truncate(banner, cols, "")
	}

	padding := (cols - ansi.StringWidth(banner)) / 2
	if padding > 0 {
		buf.AppendByte(fillerMarker)
		buf.AppendRepeat(' ', padding-1)
	}
	buf.AppendString(banner)
}
