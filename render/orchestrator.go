package render

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/salad-chan/TextEditor/terminal"
)

// Orchestrator composes frames and hands each to the terminal in one write
type Orchestrator struct {
	out    io.Writer
	buffer *terminal.AppendBuffer
	banner string
	log    *slog.Logger
}

// NewOrchestrator creates an orchestrator writing to out. An empty banner
// leaves the welcome row as filler. A nil logger discards.
func NewOrchestrator(out io.Writer, banner string, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Orchestrator{
		out:    out,
		buffer: terminal.NewAppendBuffer(4096),
		banner: banner,
		log:    log,
	}
}

// RenderFrame executes the render pipeline: hide cursor, home, rows,
// place cursor, show cursor, flush
func (o *Orchestrator) RenderFrame(ctx RenderContext) error {
	Compose(o.buffer, ctx, o.banner)

	size := o.buffer.Len()
	n, err := o.buffer.FlushTo(o.out)
	if err != nil {
		return errors.Wrap(err, "flush frame")
	}
	if n < size {
		// Partial frame is accepted; the next frame redraws everything
		o.log.Debug("short frame write", "wrote", n, "size", size)
	}
	return nil
}

// Compose appends one complete frame to buf without flushing it
func Compose(buf *terminal.AppendBuffer, ctx RenderContext, banner string) {
	buf.HideCursor()
	buf.CursorHome()

	drawRows(buf, ctx.Geometry, banner)

	buf.CursorPos(ctx.CursorX, ctx.CursorY)
	buf.ShowCursor()
}
