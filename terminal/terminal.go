package terminal

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Terminal owns the raw mode lifecycle of a backend and guarantees the
// terminal is handed back in a sane state on every exit path
type Terminal struct {
	backend Backend
	log     *slog.Logger

	mu          sync.Mutex
	initialized bool
	finalized   bool

	sigCh    chan os.Signal
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once

	// exit terminates the process after a signal-triggered restore
	exit func(code int)
}

// New creates a Terminal over backend. A nil logger discards.
func New(backend Backend, log *slog.Logger) *Terminal {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Terminal{
		backend: backend,
		log:     log,
		exit:    os.Exit,
	}
}

// Init enters raw mode and starts watching for termination signals
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.sigCh = make(chan os.Signal, 1)
	t.stopCh = make(chan struct{})
	t.doneCh = make(chan struct{})
	signal.Notify(t.sigCh, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT)
	go t.watchSignals()

	t.initialized = true
	t.log.Debug("raw mode enabled")
	return nil
}

// Fini clears the screen, homes the cursor and restores the original
// terminal attributes, in that order. Safe to call multiple times.
func (t *Terminal) Fini() error {
	t.stopWatcher()
	return t.restore()
}

// restore performs the shutdown output and attribute restore once
func (t *Terminal) restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	t.finalized = true

	var buf AppendBuffer
	buf.ClearScreen()
	buf.CursorHome()
	if _, err := buf.FlushTo(t.backend); err != nil {
		t.log.Debug("shutdown output failed", "err", err)
	}

	if err := t.backend.Fini(); err != nil {
		return err
	}
	t.log.Debug("terminal restored")
	return nil
}

func (t *Terminal) stopWatcher() {
	t.mu.Lock()
	started := t.stopCh != nil
	t.mu.Unlock()
	if !started {
		return
	}

	t.stopOnce.Do(func() {
		signal.Stop(t.sigCh)
		close(t.stopCh)
	})
	<-t.doneCh
}

// watchSignals restores the terminal before the process dies from a signal.
// With ISIG off Ctrl-C arrives as a byte, so these only come from outside.
func (t *Terminal) watchSignals() {
	defer close(t.doneCh)

	select {
	case <-t.stopCh:
		return
	case sig := <-t.sigCh:
		t.log.Debug("terminating on signal", "signal", sig)
		if err := t.restore(); err != nil {
			t.log.Debug("restore on signal failed", "err", err)
		}
		t.exit(1)
	}
}

// Geometry resolves the window size, probing with a cursor position report
// when the OS query is unusable
func (t *Terminal) Geometry() (Geometry, error) {
	return ResolveGeometry(t.backend, t.log)
}

// ReadByte reads one input byte with raw mode timeout semantics
func (t *Terminal) ReadByte() (byte, error) {
	return t.backend.ReadByte()
}

// Write writes raw bytes to the terminal
func (t *Terminal) Write(p []byte) (int, error) {
	return t.backend.Write(p)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiClear)
	w.Write(csiHome)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetControllingTerminal()
}
