package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/festy23/travel_together/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_OUTPUT", "stdout")

	logger, err := New()
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNewWithConfig(t *testing.T) {
	t.Run("production logger with info level", func(t *testing.T) {
		logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		assert.False(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
		assert.True(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "loud", Format: "json", Output: "stderr"})
		require.NoError(t, err)
		assert.True(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "info", Format: "json", Output: path, Service: "travel_together"})
		require.NoError(t, err)

		logger.Infow("group created", "group_id", 1)
		require.NoError(t, logger.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "group created")
		assert.Contains(t, string(data), `"service":"travel_together"`)
	})
}

func TestNewWithConfig_NoService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Infow("inbox viewed")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"service"`)
}
