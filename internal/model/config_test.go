package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultAppConfig(), cfg)
	assert.Equal(t, string(DefaultColor), cfg.Display.DefaultColor)
}

func TestLoadConfigReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
storage:
  path: /tmp/other.db
display:
  default_color: blue
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.Storage.Path)
	assert.Equal(t, "blue", cfg.Display.DefaultColor)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, defaultAppConfig().Log.File, cfg.Log.File, "unset keys keep defaults")
}

func TestLoadConfigRejectsUnknownColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  default_color: pink\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "default_color")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	want := &AppConfig{
		Storage: StorageConfig{Path: "/data/notes.db"},
		Display: DisplayConfig{DefaultColor: "yellow"},
		Log:     LogConfig{File: "/data/notes.log", Level: "warn"},
	}

	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
