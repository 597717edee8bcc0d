package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	_, err := Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.toml")
}

func TestLoadValues(t *testing.T) {
	path := writeConfig(t, `
debug = true
log_file = "/tmp/te.log"
read_timeout = 5
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{Debug: true, LogFile: "/tmp/te.log", ReadTimeout: 5}, cfg)
	assert.Equal(t, uint8(5), cfg.ReadTimeoutDeciseconds())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "debug = true\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero timeout", "read_timeout = 0\n", "read_timeout"},
		{"large timeout", "read_timeout = 300\n", "read_timeout"},
		{"unknown key", "colour = \"red\"\n", "unknown key"},
		{"bad syntax", "debug = \n", "load config"},
		{"wrong type", "debug = \"yes\"\n", "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadTimeoutFallback(t *testing.T) {
	assert.Equal(t, uint8(DefaultReadTimeout), Config{}.ReadTimeoutDeciseconds())
	assert.Equal(t, uint8(255), Config{ReadTimeout: 255}.ReadTimeoutDeciseconds())
}

func TestDefaultPaths(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG variables only apply on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_CACHE_HOME", "/cache")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cfg", "texteditor", "config.toml"), path)

	logPath, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cache", "texteditor", "texteditor.log"), logPath)
}
