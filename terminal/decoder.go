package terminal

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// ByteReader delivers one input byte at a time.
// A read that times out with nothing available returns ErrReadTimeout.
type ByteReader interface {
	ReadByte() (byte, error)
}

// decodeState tracks progress through an escape sequence within a single Decode call
type decodeState uint8

const (
	stateIdle decodeState = iota
	stateEscape
	stateEscapeBracket
	stateEscapeBracketDigit
)

// Decoder turns raw input bytes into key events.
// Lookahead is bounded to the current sequence and nothing is pushed back:
// a lone ESC is told apart from a sequence prefix only by the read timeout.
type Decoder struct {
	r   ByteReader
	log *slog.Logger
}

// NewDecoder creates a decoder reading from r
func NewDecoder(r ByteReader, log *slog.Logger) *Decoder {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Decoder{r: r, log: log}
}

// ReadKey blocks, in timeout-sized steps, until a key is decoded.
// Timeouts while idle are retried; any other read error is returned.
func (d *Decoder) ReadKey() (KeyEvent, error) {
	for {
		b, err := d.r.ReadByte()
		if errors.Is(err, ErrReadTimeout) {
			continue
		}
		if err != nil {
			return KeyEvent{}, err
		}
		return d.Decode(b), nil
	}
}

// Decode resolves the key that starts with first, reading further bytes only
// when first is ESC. A failed, timed out or unrecognized lookahead yields KeyEscape.
func (d *Decoder) Decode(first byte) KeyEvent {
	state := stateIdle
	seq := [4]byte{first}
	n := 1
	var digit byte

	for {
		switch state {
		case stateIdle:
			if first != keyESC {
				return Char(first)
			}
			state = stateEscape

		case stateEscape:
			b, ok := d.lookahead()
			if !ok {
				return KeyEvent{Key: KeyEscape}
			}
			seq[n] = b
			n++
			switch b {
			case '[':
				state = stateEscapeBracket
			case 'O':
				b, ok = d.lookahead()
				if !ok {
					return d.collapse(seq[:n])
				}
				seq[n] = b
				n++
				if k, found := ss3Keys[b]; found {
					return KeyEvent{Key: k}
				}
				return d.collapse(seq[:n])
			default:
				return d.collapse(seq[:n])
			}

		case stateEscapeBracket:
			b, ok := d.lookahead()
			if !ok {
				return d.collapse(seq[:n])
			}
			seq[n] = b
			n++
			if k, found := csiFinalKeys[b]; found {
				return KeyEvent{Key: k}
			}
			if b < '0' || b > '9' {
				return d.collapse(seq[:n])
			}
			digit = b
			state = stateEscapeBracketDigit

		case stateEscapeBracketDigit:
			b, ok := d.lookahead()
			if !ok {
				return d.collapse(seq[:n])
			}
			if b != '~' {
				return d.collapse(append(seq[:n], b))
			}
			if k, found := csiTildeKeys[digit]; found {
				return KeyEvent{Key: k}
			}
			return d.collapse(append(seq[:n], b))
		}
	}
}

// lookahead reads the next byte of a pending sequence
func (d *Decoder) lookahead() (byte, bool) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

// collapse surfaces an interrupted or unknown sequence as a bare escape
func (d *Decoder) collapse(seq []byte) KeyEvent {
	d.log.Debug("escape sequence collapsed", "seq", seq, "err", ErrMalformedSequence)
	return KeyEvent{Key: KeyEscape}
}
