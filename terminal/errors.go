package terminal

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrReadTimeout reports a read that returned no byte within the raw mode timeout.
// It is not a failure: callers retry or, mid-sequence, give up on the lookahead.
var ErrReadTimeout = errors.New("terminal: read timeout")

// ErrMalformedSequence marks an escape sequence that matched no known key.
// The decoder recovers locally by emitting KeyEscape; the error only reaches logs.
var ErrMalformedSequence = errors.New("terminal: malformed escape sequence")

// ErrNotTerminal is the cause of a TerminalControlError when the input is not a tty
var ErrNotTerminal = errors.New("not a terminal")

// TerminalControlError reports a failed terminal attribute get/set.
// There is no recovery path: a half-configured terminal leaves the program unusable.
type TerminalControlError struct {
	Op  string
	Err error
}

func (e *TerminalControlError) Error() string {
	return fmt.Sprintf("terminal control: %s: %v", e.Op, e.Err)
}

func (e *TerminalControlError) Unwrap() error { return e.Err }

// GeometryError reports that neither the window size query nor the
// cursor position fallback produced usable dimensions
type GeometryError struct {
	Reason string
	Err    error
}

func (e *GeometryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("window geometry: %s: %v", e.Reason, e.Err)
	}
	return "window geometry: " + e.Reason
}

func (e *GeometryError) Unwrap() error { return e.Err }

func controlError(op string, err error) error {
	return &TerminalControlError{Op: op, Err: errors.WithStack(err)}
}
