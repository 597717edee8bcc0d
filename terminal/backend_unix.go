//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in          *os.File
	out         *os.File
	inFd        int
	outFd       int
	readTimeout uint8
	raw         *RawMode

	buf [1]byte
}

// NewBackend creates a backend reading from in and writing to out, normally
// os.Stdin and os.Stdout. readTimeout is in deciseconds; 0 selects DefaultReadTimeout.
func NewBackend(in, out *os.File, readTimeout uint8) Backend {
	if readTimeout == 0 {
		readTimeout = DefaultReadTimeout
	}
	return &unixBackend{
		in:          in,
		out:         out,
		inFd:        int(in.Fd()),
		outFd:       int(out.Fd()),
		readTimeout: readTimeout,
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return controlError("tcgetattr", ErrNotTerminal)
	}

	raw, err := EnableRawMode(b.inFd, b.readTimeout)
	if err != nil {
		return err
	}
	b.raw = raw
	return nil
}

func (b *unixBackend) Fini() error {
	if b.raw == nil {
		return nil
	}
	return b.raw.Restore()
}

func (b *unixBackend) WindowSize() (Geometry, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return Geometry{}, errors.Wrap(err, "TIOCGWINSZ")
	}
	return Geometry{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}

// ReadByte performs one timeout-bounded read.
// With VMIN=0 the kernel returns 0 bytes once VTIME expires.
func (b *unixBackend) ReadByte() (byte, error) {
	n, err := unix.Read(b.inFd, b.buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, ErrReadTimeout
		}
		return 0, errors.Wrap(err, "read")
	}
	if n == 0 {
		return 0, ErrReadTimeout
	}
	return b.buf[0], nil
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}
