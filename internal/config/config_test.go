package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/cowring/api"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ringtail.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Tail.Lines)
	assert.False(t, cfg.Tail.ShowEvicted)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
tail:
  lines: 3
  show_evicted: true
logging:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Tail.Lines)
	assert.True(t, cfg.Tail.ShowEvicted)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "tail:\n  lines: 3\n")
	t.Setenv("RINGTAIL_TAIL_LINES", "42")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Tail.Lines)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveLines(t *testing.T) {
	path := writeConfig(t, "tail:\n  lines: 0\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInvalidCapacity)
	assert.Equal(t, api.ErrCodeInvalidArgument, api.CodeOf(err))
}

func TestValidate_Format(t *testing.T) {
	cfg := Config{Tail: TailConfig{Lines: 1}, Logging: LoggingConfig{Format: "xml"}}
	assert.Error(t, cfg.Validate())
	cfg.Logging.Format = "json"
	assert.NoError(t, cfg.Validate())
}
