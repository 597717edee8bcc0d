package terminal

import (
	"bytes"
	"io"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
)

// Geometry is the window size in character cells
type Geometry struct {
	Rows int
	Cols int
}

// Valid reports whether both dimensions are strictly positive
func (g Geometry) Valid() bool {
	return g.Rows > 0 && g.Cols > 0
}

// cursorReportMax bounds the cursor position report read; a real report is
// ESC [ rows ; cols R, at most 11 bytes for four-digit dimensions
const cursorReportMax = 32

// cursorReportPatience is how many consecutive empty timed reads to tolerate while waiting
// for the report, covering slow links where the reply lags the request
const cursorReportPatience = 10

// ResolveGeometry asks the backend for the window size and, when that is
// unavailable or reports zero columns, falls back to a cursor position report
// exchanged over the backend's own input and output streams.
func ResolveGeometry(b Backend, log *slog.Logger) (Geometry, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g, err := b.WindowSize()
	if err == nil && g.Valid() {
		return g, nil
	}
	log.Debug("window size query unusable, probing cursor position", "err", err, "rows", g.Rows, "cols", g.Cols)

	return QueryGeometry(b, b, log)
}

// QueryGeometry moves the cursor to the bottom-right corner, requests a cursor
// position report and parses the reply. Input is consumed only up to and
// including the report terminator, so a key typed afterwards stays unread.
func QueryGeometry(r ByteReader, w io.Writer, log *slog.Logger) (Geometry, error) {
	if _, err := w.Write(csiCursorFarCorner); err != nil {
		return Geometry{}, &GeometryError{Reason: "move cursor", Err: errors.WithStack(err)}
	}
	if _, err := w.Write(csiCursorReport); err != nil {
		return Geometry{}, &GeometryError{Reason: "request cursor position", Err: errors.WithStack(err)}
	}

	buf := make([]byte, 0, cursorReportMax)
	timeouts := 0
	for len(buf) < cursorReportMax-1 {
		c, err := r.ReadByte()
		if errors.Is(err, ErrReadTimeout) && timeouts < cursorReportPatience {
			timeouts++
			continue
		}
		if err != nil {
			break
		}
		timeouts = 0
		buf = append(buf, c)
		if c == 'R' {
			break
		}
	}
	if log != nil {
		log.Debug("cursor position report", "reply", buf)
	}

	return ParseCursorReport(buf)
}

// ParseCursorReport parses a reply of the form ESC [ rows ; cols R.
// The terminator may be missing if the read bound or a timeout cut the reply short.
func ParseCursorReport(buf []byte) (Geometry, error) {
	if len(buf) < 2 || buf[0] != keyESC || buf[1] != '[' {
		return Geometry{}, &GeometryError{Reason: "cursor report: missing ESC [ prefix"}
	}
	body := bytes.TrimSuffix(buf[2:], []byte{'R'})

	rowPart, colPart, found := bytes.Cut(body, []byte{';'})
	if !found {
		return Geometry{}, &GeometryError{Reason: "cursor report: missing ';' separator"}
	}

	rows, err := parseDimension(rowPart)
	if err != nil {
		return Geometry{}, &GeometryError{Reason: "cursor report: rows", Err: err}
	}
	cols, err := parseDimension(colPart)
	if err != nil {
		return Geometry{}, &GeometryError{Reason: "cursor report: cols", Err: err}
	}

	return Geometry{Rows: rows, Cols: cols}, nil
}

func parseDimension(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, errors.New("empty")
	}
	for _, c := range p {
		if c < '0' || c > '9' {
			return 0, errors.Errorf("unexpected byte %q", c)
		}
	}
	n, err := strconv.Atoi(string(p))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if n <= 0 {
		return 0, errors.Errorf("non-positive value %d", n)
	}
	return n, nil
}
