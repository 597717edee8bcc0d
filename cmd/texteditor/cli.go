package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salad-chan/TextEditor/config"
	"github.com/salad-chan/TextEditor/engine"
	"github.com/salad-chan/TextEditor/render"
	"github.com/salad-chan/TextEditor/terminal"
)

// version is overridden at link time with -X main.version=...
var version = render.Version

// app binds the command to its terminal files and output streams
type app struct {
	in     *os.File
	out    *os.File
	stdout io.Writer
	stderr io.Writer
}

type options struct {
	configPath string
	debug      bool
	logFile    string
	version    bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return execute(ctx, args, &app{in: os.Stdin, out: os.Stdout, stdout: stdout, stderr: stderr})
}

func execute(ctx context.Context, args []string, a *app) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	// Usage errors arrive wrapped by the flag error func and the Args validators
	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "texteditor",
		Short:         "Full-screen terminal editor shell",
		Long:          "Puts the terminal in raw mode, draws a tilde-filled screen with a welcome banner and moves the cursor with the arrow, Home/End and Page keys. Ctrl-Q quits.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{Err: fmt.Errorf("unexpected argument: %s", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.version {
				fmt.Fprintln(cmd.OutOrStdout(), render.WelcomeBanner(version))
				return nil
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			logger, closer, err := setupLogging(cfg.Debug, cfg.LogFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			return a.edit(cfg, logger)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{Err: err}
	})

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/texteditor/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "write debug logs to the log file")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "log file path (default is $XDG_CACHE_HOME/texteditor/texteditor.log)")
	cmd.Flags().BoolVarP(&opts.version, "version", "v", false, "print the version banner and exit")

	cmd.AddCommand(newKeysCmd(a, &opts))

	return cmd
}

// loadConfig reads the config file and lays the command line flags over it
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	path, explicit := opts.configPath, opts.configPath != ""
	if !explicit {
		// Without a per-user config dir the defaults apply
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path, explicit); err != nil {
			return config.Config{}, err
		}
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug = opts.debug
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if cfg.Debug && cfg.LogFile == "" {
		p, err := config.DefaultLogPath()
		if err != nil {
			return config.Config{}, err
		}
		cfg.LogFile = p
	}
	return cfg, nil
}

// openTerminal enters raw mode on the app's terminal files. On failure the
// screen is cleared, when out is a terminal, before the error is returned.
func (a *app) openTerminal(cfg config.Config, log *slog.Logger) (*terminal.Terminal, error) {
	tty := terminal.New(terminal.NewBackend(a.in, a.out, cfg.ReadTimeoutDeciseconds()), log)
	if err := tty.Init(); err != nil {
		a.clearScreen()
		return nil, errors.Wrap(err, "initialize terminal")
	}
	return tty, nil
}

// clearScreen is the best-effort cleanup written ahead of a fatal diagnostic
func (a *app) clearScreen() {
	if a.out == nil || !term.IsTerminal(int(a.out.Fd())) {
		return
	}
	buf := terminal.NewAppendBuffer(16)
	buf.ClearScreen()
	buf.CursorHome()
	_, _ = buf.FlushTo(a.out)
}

// edit runs one editor session on the app's terminal. Raw mode is restored
// and the screen cleared before any error reaches the caller.
func (a *app) edit(cfg config.Config, log *slog.Logger) (err error) {
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
	log.Info("editor started", "rows", g.Rows, "cols", g.Cols, "read_timeout", cfg.ReadTimeout)

	session, err := engine.NewSession(tty, g, engine.Config{
		Banner: render.WelcomeBanner(version),
		Logger: log,
	})
	if err != nil {
		return err
	}
	if err := session.Run(); err != nil {
		return err
	}
	log.Info("editor stopped", "frames", session.Frames())
	return nil
}
