package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Makepad-fr/tada/internal/config"
)

func Test_setupLogsWithLogsDisabled(t *testing.T) {
	assert.Equal(t, io.Discard, setupLogs(config.Log{}))
}

func Test_setupLogsToStderr(t *testing.T) {
	defer setupLogs(config.Log{})
	assert.Equal(t, os.Stderr, setupLogs(config.Log{Enabled: true}))
}

func Test_setupLogsToFile(t *testing.T) {
	defer setupLogs(config.Log{})
	name := filepath.Join(t.TempDir(), "todo.log")

	out := setupLogs(config.Log{Enabled: true, Debug: true, File: name, MaxSize: 100, MaxBackups: 7})
	require.IsType(t, &lumberjack.Logger{}, out)

	logger := out.(*lumberjack.Logger)
	defer logger.Close()
	assert.Equal(t, name, logger.Filename)
	assert.Equal(t, 100, logger.MaxSize)
	assert.Equal(t, 7, logger.MaxBackups)
	assert.Equal(t, 0, logger.MaxAge)
	assert.False(t, logger.Compress)
}

func Test_makeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_path = \"file.db\"\ntheme = \"neon\"\n"), 0o600))

	t.Run("file only", func(t *testing.T) {
		cfg, err := makeConfig(options{Config: path})
		require.NoError(t, err)
		assert.Equal(t, "file.db", cfg.DBPath)
		assert.Equal(t, "neon", cfg.Theme)
		assert.Equal(t, config.DeleteByID, cfg.DeleteMode)
	})

	t.Run("flags win", func(t *testing.T) {
		o := options{Config: path, DB: "flag.db", DeleteMode: "text", Dbg: true}
		cfg, err := makeConfig(o)
		require.NoError(t, err)
		assert.Equal(t, "flag.db", cfg.DBPath)
		assert.Equal(t, "neon", cfg.Theme)
		assert.Equal(t, config.DeleteByText, cfg.DeleteMode)
		assert.True(t, cfg.Log.Enabled)
		assert.True(t, cfg.Log.Debug)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := makeConfig(options{Config: filepath.Join(t.TempDir(), "none.toml")})
		assert.Error(t, err)
	})
}
