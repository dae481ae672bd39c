package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.log")

	logger, closer, err := NewLogger(path, "debug")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger.Info("hello", "n", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "tetris")
}

func TestNewLoggerDiscard(t *testing.T) {
	logger, closer, err := NewLogger("", "")
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNewLoggerErrors(t *testing.T) {
	_, _, err := NewLogger("", "loud")
	assert.Error(t, err)

	_, _, err = NewLogger(filepath.Join(t.TempDir(), "missing", "x.log"), "info")
	assert.Error(t, err)
}
