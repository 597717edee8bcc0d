package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendBufferSingleWrite(t *testing.T) {
	var b AppendBuffer
	b.HideCursor()
	b.CursorHome()
	b.AppendString("~")
	b.EraseLine()
	b.NewLine()
	b.AppendByte('~')
	b.EraseLine()
	b.CursorPos(4, 2)
	b.ShowCursor()

	w := &countingWriter{}
	n, err := b.FlushTo(w)
	require.NoError(t, err)

	want := "\x1b[?25l\x1b[H~\x1b[K\r\n~\x1b[K\x1b[3;5H\x1b[?25h"
	require.Len(t, w.calls, 1, "a frame is one write")
	assert.Equal(t, want, string(w.calls[0]))
	assert.Equal(t, len(want), n)
	assert.Zero(t, b.Len(), "buffer is discarded after flush")
}

func TestAppendBufferEmptyFlush(t *testing.T) {
	b := NewAppendBuffer(64)
	w := &countingWriter{}

	n, err := b.FlushTo(w)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, w.calls)
}

func TestAppendBufferReuse(t *testing.T) {
	b := NewAppendBuffer(8)
	w := &countingWriter{}

	b.AppendString("first")
	_, _ = b.FlushTo(w)
	b.AppendString("second")
	_, _ = b.FlushTo(w)

	require.Len(t, w.calls, 2)
	assert.Equal(t, "first", string(w.calls[0]))
	assert.Equal(t, "second", string(w.calls[1]))
}

func TestCursorPosIsOneBased(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "\x1b[1;1H"},
		{79, 23, "\x1b[24;80H"},
		{131, 49, "\x1b[50;132H"},
		{999, 0, "\x1b[1;1000H"},
	}

	for _, tt := range tests {
		var b AppendBuffer
		b.CursorPos(tt.x, tt.y)
		assert.Equal(t, tt.want, string(b.Bytes()))
	}
}

func TestAppendRepeat(t *testing.T) {
	var b AppendBuffer
	b.AppendRepeat(' ', 3)
	b.AppendRepeat('x', 0)
	b.AppendRepeat('x', -2)
	assert.Equal(t, "   ", string(b.Bytes()))
}
