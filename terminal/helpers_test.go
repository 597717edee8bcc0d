package terminal

import (
	"bytes"
	"io"
)

// timeout marks a scripted read that times out with nothing available
const timeout = -1

// scriptReader replays bytes and timeouts, then reports io.EOF
type scriptReader struct {
	steps []int
	pos   int
}

func script(steps ...int) *scriptReader {
	return &scriptReader{steps: steps}
}

// bytesScript scripts every byte of s with no timeouts
func bytesScript(s string) *scriptReader {
	steps := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		steps[i] = int(s[i])
	}
	return script(steps...)
}

func (r *scriptReader) ReadByte() (byte, error) {
	if r.pos >= len(r.steps) {
		return 0, io.EOF
	}
	step := r.steps[r.pos]
	r.pos++
	if step == timeout {
		return 0, ErrReadTimeout
	}
	return byte(step), nil
}

func (r *scriptReader) remaining() int {
	return len(r.steps) - r.pos
}

// fakeBackend is a scripted Backend recording lifecycle calls and writes
type fakeBackend struct {
	*scriptReader

	size    Geometry
	sizeErr error
	initErr error

	out    bytes.Buffer
	writes int
	inits  int
	finis  int
}

func (b *fakeBackend) Init() error {
	b.inits++
	return b.initErr
}

func (b *fakeBackend) Fini() error {
	b.finis++
	return nil
}

func (b *fakeBackend) WindowSize() (Geometry, error) {
	return b.size, b.sizeErr
}

func (b *fakeBackend) Write(p []byte) (int, error) {
	b.writes++
	return b.out.Write(p)
}

// countingWriter records every Write call separately
type countingWriter struct {
	calls [][]byte
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls = append(w.calls, append([]byte(nil), p...))
	return len(p), nil
}
