package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/nhle/notes/internal/model"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	log, err := New(model.LogConfig{}, true)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "notes.log")

	log, err := New(model.LogConfig{File: path, Level: "warn"}, false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	log.Warn("slot unreadable")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slot unreadable")
}

func TestVerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.log")

	log, err := New(model.LogConfig{File: path, Level: "error"}, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(model.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}, false)
	assert.Error(t, err)
}
