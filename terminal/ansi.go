package terminal

import "strconv"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J")
	csiHome  = []byte("\x1b[H")
	csiSGR0  = []byte("\x1b[0m")

	// Line control
	csiEraseLine = []byte("\x1b[K")
	crlf         = []byte("\r\n")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Geometry probe: park cursor at the far corner, then ask where it landed
	// C and B stop at the screen edge, unlike H which is undefined past it
	csiCursorFarCorner = []byte("\x1b[999C\x1b[999B")
	csiCursorReport    = []byte("\x1b[6n")
)

// appendInt appends a decimal integer without intermediate allocation
// Optimized for terminal values (0-999 typical max)
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	return strconv.AppendInt(dst, int64(n), 10)
}

// appendCursorPos appends a cursor positioning sequence (0-indexed input, 1-based output)
func appendCursorPos(dst []byte, x, y int) []byte {
	dst = append(dst, csi...)
	dst = appendInt(dst, y+1)
	dst = append(dst, ';')
	dst = appendInt(dst, x+1)
	return append(dst, 'H')
}
