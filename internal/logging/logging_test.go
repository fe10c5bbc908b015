package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesAndAppends(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	path := filepath.Join(t.TempDir(), "morph.log")

	logger, closeFn, err := New(path, false)
	require.NoError(t, err)
	logger.Info("morphed", "old", "abc", "new", "bca")
	logger.Debug("hidden")
	require.NoError(t, closeFn())

	logger, closeFn, err = New(path, true)
	require.NoError(t, err)
	logger.Debug("shown")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "msg=morphed old=abc new=bca")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
}

func TestNew_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvLogFile, path)

	logger, closeFn, err := New("", false)
	require.NoError(t, err)
	logger.Info("from env")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "from env")
}

func TestNew_NoPathDiscards(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	logger, closeFn, err := New("", true)
	require.NoError(t, err)
	logger.Info("nowhere")
	require.NoError(t, closeFn())
}

func TestNew_BadPath(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	_, _, err := New(t.TempDir(), false)
	require.Error(t, err)
}
