//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// DefaultReadTimeout is the raw mode read timeout in deciseconds (100ms)
const DefaultReadTimeout uint8 = 1

// RawMode holds the terminal attributes captured before entering raw mode
type RawMode struct {
	fd       int
	original unix.Termios
	once     sync.Once
	err      error
}

// EnableRawMode captures the current attributes of fd and switches it to raw mode.
// Reads on fd then return as soon as any byte is available, or after
// readTimeout deciseconds with nothing (VMIN=0, VTIME=readTimeout).
func EnableRawMode(fd int, readTimeout uint8) (*RawMode, error) {
	original, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, controlError("tcgetattr", err)
	}

	raw := makeRaw(*original, readTimeout)
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, controlError("tcsetattr", err)
	}

	return &RawMode{fd: fd, original: *original}, nil
}

// makeRaw derives the raw attribute set from the original one
func makeRaw(t unix.Termios, readTimeout uint8) unix.Termios {
	// No break-to-SIGINT, CR->NL translation, parity check, 8th-bit strip or XON/XOFF
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// No output post-processing ("\n" is no longer turned into "\r\n")
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	// No echo, canonical mode, signal chars or Ctrl-V literal-next
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = readTimeout
	return t
}

// Restore reapplies the captured attributes. Only the first call touches the
// terminal; later calls return the first result.
func (r *RawMode) Restore() error {
	r.once.Do(func() {
		if err := unix.IoctlSetTermios(r.fd, ioctlSetTermios, &r.original); err != nil {
			r.err = controlError("tcsetattr", err)
		}
	})
	return r.err
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode(fd int) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL | unix.IXON
	termios.Oflag |= unix.OPOST
	unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
}

// resetControllingTerminal restores cooked mode via /dev/tty (works even if stdin redirected)
func resetControllingTerminal() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()
	resetTerminalMode(int(tty.Fd()))
}
