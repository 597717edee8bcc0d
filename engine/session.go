package engine

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/salad-chan/TextEditor/input"
	"github.com/salad-chan/TextEditor/render"
	"github.com/salad-chan/TextEditor/terminal"
)

// Terminal is the byte stream a session drives: keys in, frames out
type Terminal interface {
	terminal.ByteReader
	io.Writer
}

// Config carries the optional collaborators of a session
type Config struct {
	// Banner is shown on the welcome row; empty draws filler only
	Banner string

	// Keys overrides DefaultKeyTable
	Keys *input.KeyTable

	// Logger receives debug records; nil discards
	Logger *slog.Logger
}

// Session holds the editor state and runs the render/dispatch loop.
// All fields are touched only by the goroutine running the loop.
type Session struct {
	// ===== Immutable After Init =====
	geometry terminal.Geometry
	decoder  *terminal.Decoder
	renderer *render.Orchestrator
	keys     *input.KeyTable
	log      *slog.Logger

	// ===== Mutated By Dispatch =====
	cursor Cursor
	frames int64
}

// NewSession creates a session over term. Geometry must already be resolved.
func NewSession(term Terminal, g terminal.Geometry, cfg Config) (*Session, error) {
	if !g.Valid() {
		return nil, &terminal.GeometryError{Reason: "session requires positive rows and cols"}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	keys := cfg.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}

	return &Session{
		geometry: g,
		decoder:  terminal.NewDecoder(term, log),
		renderer: render.NewOrchestrator(term, cfg.Banner, log),
		keys:     keys,
		log:      log,
	}, nil
}

// Geometry returns the window geometry the session was started with
func (s *Session) Geometry() terminal.Geometry {
	return s.geometry
}

// Cursor returns the current cursor cell
func (s *Session) Cursor() Cursor {
	return s.cursor
}

// Frames returns the number of frames rendered so far
func (s *Session) Frames() int64 {
	return s.frames
}

// Run renders, then decodes and dispatches one key, until the quit chord.
// It returns nil on quit and the read or write error otherwise; restoring
// the terminal is left to the owner of the raw mode guard.
func (s *Session) Run() error {
	s.log.Debug("session started", "rows", s.geometry.Rows, "cols", s.geometry.Cols)
	for {
		if err := s.Render(); err != nil {
			return err
		}
		quit, err := s.Step()
		if err != nil {
			return err
		}
		if quit {
			s.log.Debug("quit requested", "frames", s.frames)
			return nil
		}
	}
}

// Render draws the current state as one frame
func (s *Session) Render() error {
	err := s.renderer.RenderFrame(render.RenderContext{
		Geometry: s.geometry,
		CursorX:  s.cursor.X,
		CursorY:  s.cursor.Y,
	})
	if err != nil {
		return err
	}
	s.frames++
	return nil
}

// Step reads one key and dispatches it, reporting whether it asked to quit
func (s *Session) Step() (bool, error) {
	ev, err := s.decoder.ReadKey()
	if err != nil {
		return false, errors.Wrap(err, "read key")
	}
	return s.Dispatch(ev), nil
}

// Dispatch applies one key event to the session state and reports whether it is the quit chord
func (s *Session) Dispatch(ev terminal.KeyEvent) bool {
	intent := s.keys.Resolve(ev)

	switch intent.Type {
	case input.IntentQuit:
		return true
	case input.IntentMotion:
		s.cursor.Apply(intent.Motion, s.geometry)
		s.log.Debug("cursor moved", "key", ev, "x", s.cursor.X, "y", s.cursor.Y)
	default:
		s.log.Debug("key ignored", "key", ev)
	}
	return false
}
