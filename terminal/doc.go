// Package terminal provides direct ANSI terminal control for a single-threaded editor loop.
//
// Features:
//   - Raw mode with byte-at-a-time, timeout-bounded reads (VMIN=0, VTIME=n)
//   - Escape sequence key decoding with bounded lookahead and no pushback
//   - Window geometry from TIOCGWINSZ, with a cursor position report fallback
//   - Append-only frame buffer flushed with a single write
//   - Clean terminal restoration on exit, fatal error, signal or panic
//
// This package bypasses terminfo/termcap entirely, emitting direct VT100 sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
