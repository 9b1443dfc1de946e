package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestInit verifies logger initialization for different environments.
func TestInit(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		err := Init("development", "debug")
		require.NoError(t, err)
		assert.NotNil(t, globalLogger)
		assert.True(t, globalLogger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		err := Init("production", "warn")
		require.NoError(t, err)
		assert.False(t, globalLogger.Core().Enabled(zap.InfoLevel))
		assert.True(t, globalLogger.Core().Enabled(zap.WarnLevel))
	})

	t.Run("InvalidLevelKeepsDefault", func(t *testing.T) {
		err := Init("production", "loud")
		require.NoError(t, err)
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
		assert.False(t, globalLogger.Core().Enabled(zap.DebugLevel))
	})
}

// TestGet verifies the no-op fallback before Init.
func TestGet(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, Get())
	assert.False(t, Get().Core().Enabled(zap.ErrorLevel))

	require.NoError(t, Init("development", "info"))
	assert.Same(t, globalLogger, Get())
}

// TestWith verifies child loggers share the global level.
func TestWith(t *testing.T) {
	require.NoError(t, Init("development", "error"))
	child := With(zap.String("ray_id", "abc"))
	require.NotNil(t, child)
	assert.False(t, child.Core().Enabled(zap.InfoLevel))
	assert.True(t, child.Core().Enabled(zap.ErrorLevel))
}

// TestSync verifies that Sync does not panic even if logger is nil.
func TestSync(t *testing.T) {
	globalLogger = nil
	Sync()

	require.NoError(t, Init("development", "info"))
	Sync()
}
