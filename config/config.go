// Package config loads the optional texteditor.toml settings file.
// Only the command layer reads it; core packages receive plain values.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	appDir         = "texteditor"
	configFileName = "config.toml"
	logFileName    = "texteditor.log"

	// DefaultReadTimeout is the raw mode read timeout in deciseconds
	DefaultReadTimeout = 1
)

// Config holds the user settings
type Config struct {
	// Debug enables the file logger
	Debug bool `toml:"debug"`

	// LogFile overrides the default log path
	LogFile string `toml:"log_file,omitempty"`

	// ReadTimeout is VTIME for raw mode reads, in deciseconds
	ReadTimeout int `toml:"read_timeout"`
}

// Default returns the settings used when no file is present
func Default() Config {
	return Config{ReadTimeout: DefaultReadTimeout}
}

// DefaultPath returns the per-user config file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate config dir")
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

// DefaultLogPath returns the per-user log file location
func DefaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(err, "locate cache dir")
	}
	return filepath.Join(dir, appDir, logFileName), nil
}

// Load reads path over the defaults. When explicit is false a missing file
// yields the defaults; an explicitly named file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.ReadTimeout < 1 || c.ReadTimeout > 255 {
		return errors.Errorf("read_timeout must be within 1..255 deciseconds, got %d", c.ReadTimeout)
	}
	return nil
}

// ReadTimeoutDeciseconds returns ReadTimeout as the termios VTIME byte
func (c Config) ReadTimeoutDeciseconds() uint8 {
	if c.ReadTimeout < 1 || c.ReadTimeout > 255 {
		return DefaultReadTimeout
	}
	return uint8(c.ReadTimeout)
}
