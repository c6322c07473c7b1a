package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logger, logFile, err := setupLogging(false, false)
	require.NoError(t, err)
	assert.Nil(t, logFile, "no log file without debug")
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestSetupLogging_VerboseOnly(t *testing.T) {
	logger, logFile, err := setupLogging(false, true)
	require.NoError(t, err)
	assert.Nil(t, logFile, "no log file without debug")
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "console stays at info")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, logFile, err := setupLogging(true, false)
	require.NoError(t, err)
	require.NotNil(t, logFile)
	defer logFile.Close()

	_, err = os.Stat(logDir)
	assert.NoError(t, err, "expected logs directory to be created")

	logger.Debug("Test log message")
	logger.Sync()

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.NotZero(t, info.Size(), "expected log file to contain content")
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.MkdirAll(logDir, 0755))
	logPath := filepath.Join(logDir, logFileName)

	// Write just over the rotation threshold
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	_, logFile, err := setupLogging(true, false)
	require.NoError(t, err)
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	assert.True(t, rotatedFound, "expected to find rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize))
}
