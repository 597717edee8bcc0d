package terminal

import "io"

// AppendBuffer accumulates one frame of output and hands it to the terminal in a single write.
// The zero value is ready to use; the backing array is kept across Reset to avoid regrowth.
type AppendBuffer struct {
	buf []byte
}

// NewAppendBuffer creates a buffer with the given initial capacity
func NewAppendBuffer(size int) *AppendBuffer {
	return &AppendBuffer{buf: make([]byte, 0, size)}
}

// Append appends raw bytes
func (b *AppendBuffer) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

// AppendString appends s without converting it to a byte slice first
func (b *AppendBuffer) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// AppendByte appends a single byte
func (b *AppendBuffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// AppendRepeat appends n copies of c
func (b *AppendBuffer) AppendRepeat(c byte, n int) {
	for ; n > 0; n-- {
		b.buf = append(b.buf, c)
	}
}

// HideCursor appends ESC[?25l
func (b *AppendBuffer) HideCursor() { b.Append(csiCursorHide) }

// ShowCursor appends ESC[?25h
func (b *AppendBuffer) ShowCursor() { b.Append(csiCursorShow) }

// CursorHome appends ESC[H
func (b *AppendBuffer) CursorHome() { b.Append(csiHome) }

// ClearScreen appends ESC[2J
func (b *AppendBuffer) ClearScreen() { b.Append(csiClear) }

// EraseLine appends ESC[K, clearing from the cursor to the end of the line
func (b *AppendBuffer) EraseLine() { b.Append(csiEraseLine) }

// NewLine appends CR LF; output post-processing is off in raw mode so both are needed
func (b *AppendBuffer) NewLine() { b.Append(crlf) }

// CursorPos appends an absolute positioning sequence for the 0-indexed cell (x, y)
func (b *AppendBuffer) CursorPos(x, y int) {
	b.buf = appendCursorPos(b.buf, x, y)
}

// Len returns the number of pending bytes
func (b *AppendBuffer) Len() int { return len(b.buf) }

// Bytes returns the pending bytes. The slice is only valid until the next mutation.
func (b *AppendBuffer) Bytes() []byte { return b.buf }

// Reset discards pending bytes, keeping capacity
func (b *AppendBuffer) Reset() { b.buf = b.buf[:0] }

// FlushTo issues exactly one Write with everything accumulated, then resets.
// A short write is returned as-is and not retried.
func (b *AppendBuffer) FlushTo(w io.Writer) (int, error) {
	if len(b.buf) == 0 {
		return 0, nil
	}
	n, err := w.Write(b.buf)
	b.Reset()
	return n, err
}
