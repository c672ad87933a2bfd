package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDebugOffWritesNothing(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, false)
	require.NoError(t, err)
	logger.Info("should go nowhere")
	require.NoError(t, logger.Sync())

	_, err = os.Stat(filepath.Join(dir, "logs"))
	assert.True(t, os.IsNotExist(err), "no-op logger must not create the logs dir")
}

func TestNewDebugOnWritesFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, true)
	require.NoError(t, err)
	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "logs", "rez.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
