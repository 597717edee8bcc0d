package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/pkg/errors"

	"github.com/salad-chan/TextEditor/terminal"
)

func main() {
	// Panic Recovery: hand the terminal back before printing anything
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// \r\n in case termios could not be restored
			fmt.Fprintf(os.Stderr, "\r\ntexteditor crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var uerr usageError
		if errors.As(err, &uerr) {
			printError(os.Stderr, uerr.Err)
			fmt.Fprintln(os.Stderr, "Run 'texteditor --help' for usage.")
			os.Exit(1)
		}
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "texteditor: %v\n", err)
}

// usageError marks command line mistakes so main can point at --help
type usageError struct {
	Err error
}

func (e usageError) Error() string {
	return e.Err.Error()
}

func (e usageError) Unwrap() error {
	return e.Err
}
