package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("production logs at info", func(t *testing.T) {
		l, err := New("production")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.DebugLevel))
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
	})

	t.Run("development logs at debug", func(t *testing.T) {
		l, err := New("development")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("sync tolerates nil", func(t *testing.T) {
		assert.NotPanics(t, func() { Sync(nil) })
	})
}
