package domain

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJitterPositions(t *testing.T) {
	t.Run("stays within spread of canvas midpoint", func(t *testing.T) {
		gen := NewJitterPositions(800, 400, DefaultJitter, 42)
		for i := 0; i < 1000; i++ {
			pos := gen.NextPosition()
			assert.InDelta(t, 400, pos.X, DefaultJitter)
			assert.InDelta(t, 200, pos.Y, DefaultJitter)
		}
	})

	t.Run("same seed yields same sequence", func(t *testing.T) {
		a := NewJitterPositions(800, 400, DefaultJitter, 7)
		b := NewJitterPositions(800, 400, DefaultJitter, 7)
		for i := 0; i < 10; i++ {
			assert.Equal(t, a.NextPosition(), b.NextPosition())
		}
	})

	t.Run("axes vary independently", func(t *testing.T) {
		gen := NewJitterPositions(0, 0, DefaultJitter, 1)
		differ := false
		for i := 0; i < 20; i++ {
			pos := gen.NextPosition()
			if pos.X != pos.Y {
				differ = true
			}
		}
		assert.True(t, differ)
	})

	t.Run("zero spread returns midpoint", func(t *testing.T) {
		gen := NewJitterPositions(800, 400, 0, 3)
		assert.Equal(t, Position{X: 400, Y: 200}, gen.NextPosition())
	})
}

func TestCounterIDs(t *testing.T) {
	t.Run("issues monotonic identifiers", func(t *testing.T) {
		ids := NewCounterIDs("fund")
		assert.Equal(t, "fund-1", ids.NextID())
		assert.Equal(t, "fund-2", ids.NextID())
		assert.Equal(t, "fund-3", ids.NextID())
	})

	t.Run("identifiers are unique under concurrent use", func(t *testing.T) {
		ids := NewCounterIDs("f")
		var mu sync.Mutex
		seen := make(map[string]struct{})
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					id := ids.NextID()
					mu.Lock()
					seen[id] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Len(t, seen, 800)
	})
}

func TestNewIDGenerator(t *testing.T) {
	t.Run("defaults to counter", func(t *testing.T) {
		gen, err := NewIDGenerator("")
		require.NoError(t, err)
		assert.IsType(t, &CounterIDs{}, gen)
	})

	t.Run("uuid source", func(t *testing.T) {
		gen, err := NewIDGenerator(IDSourceUUID)
		require.NoError(t, err)
		_, err = uuid.Parse(gen.NextID())
		assert.NoError(t, err)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := NewIDGenerator("snowflake")
		assert.Error(t, err)
	})
}
