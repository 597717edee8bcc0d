package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/salad-chan/TextEditor/config"
	"github.com/salad-chan/TextEditor/input"
	"github.com/salad-chan/TextEditor/terminal"
)

const keysTitle = "Key decoder - press keys, Ctrl-Q quits"

func newKeysCmd(a *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show how key presses decode",
		Long:  "Puts the terminal in raw mode and lists each decoded key with the editor action it is bound to. Useful for checking what a terminal sends for arrow, Home/End and Page keys.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{Err: fmt.Errorf("unexpected argument: %s", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *opts)
			if err != nil {
				return err
			}
			logger, closer, err := setupLogging(cfg.Debug, cfg.LogFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			return a.showKeys(cfg, logger)
		},
	}
}

// keyLog keeps the most recent entries, oldest first
type keyLog struct {
	entries []string
	max     int
}

func (l *keyLog) add(s string) {
	if l.max <= 0 {
		return
	}
	if len(l.entries) >= l.max {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.max-1]
	}
	l.entries = append(l.entries, s)
}

func formatKey(ev terminal.KeyEvent, intent input.Intent) string {
	k, r := ev.TcellKey()
	return fmt.Sprintf("%-10s tcell=%-4d rune=%-3d -> %s", ev, k, r, intent)
}

// composeKeyLog draws the title row followed by the log, one entry per row
func composeKeyLog(buf *terminal.AppendBuffer, g terminal.Geometry, entries []string) {
	buf.HideCursor()
	buf.CursorHome()

	for y := 0; y < g.Rows; y++ {
		line := ""
		switch {
		case y == 0:
			line = keysTitle
		case y-1 < len(entries):
			line = entries[y-1]
		}
		buf.AppendString(ansi.Truncate(line, g.Cols, ""))

		buf.EraseLine()
		if y < g.Rows-1 {
			buf.NewLine()
		}
	}

	buf.CursorPos(0, 0)
	buf.ShowCursor()
}

// showKeys runs the decoder diagnostic until the quit chord
func (a *app) showKeys(cfg config.Config, log *slog.Logger) (err error) {
	tty, err := a.openTerminal(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if ferr := tty.Fini(); ferr != nil && err == nil {
			err = errors.Wrap(ferr, "restore terminal")
		}
	}()

	g, err := tty.Geometry()
	if err != nil {
		return errors.Wrap(err, "get window size")
	}

	keys := input.DefaultKeyTable()
	decoder := terminal.NewDecoder(tty, log)
	history := keyLog{max: g.Rows - 1}
	buf := terminal.NewAppendBuffer(4096)

	for {
		composeKeyLog(buf, g, history.entries)
		if _, err := buf.FlushTo(tty); err != nil {
			return errors.Wrap(err, "flush frame")
		}

		ev, err := decoder.ReadKey()
		if err != nil {
			return errors.Wrap(err, "read key")
		}
		intent := keys.Resolve(ev)
		if intent.Type == input.IntentQuit {
			return nil
		}
		history.add(formatKey(ev, intent))
		log.Debug("key decoded", "key", ev, "intent", intent)
	}
}
