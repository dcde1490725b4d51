package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStats(t *testing.T) {
	t.Run("fps only updates on a full window", func(t *testing.T) {
		fs := NewFrameStats(4, 3)
		for i := 0; i < 3; i++ {
			assert.False(t, fs.Push(0.01))
			assert.Zero(t, fs.FPS)
		}
		require.True(t, fs.Push(0.01))
		assert.InDelta(t, 100, fs.FPS, 1e-6)
		assert.Equal(t, []float32{100, 0, 0}, fs.History)
		assert.Equal(t, int64(4), fs.Frames)
	})

	t.Run("history shifts right newest first", func(t *testing.T) {
		fs := NewFrameStats(2, 3)
		for _, dt := range []float64{0.01, 0.01, 0.02, 0.02, 0.005, 0.005, 0.5, 0.5} {
			fs.Push(dt)
		}
		assert.InDelta(t, 2, fs.FPS, 1e-6)
		assert.InDeltaSlice(t, []float32{2, 200, 50}, fs.History, 1e-3)
		assert.Len(t, fs.History, 3)
	})

	t.Run("zero durations", func(t *testing.T) {
		fs := NewFrameStats(1, 2)
		assert.True(t, fs.Push(0))
		assert.Zero(t, fs.FPS)
	})

	t.Run("degenerate sizes", func(t *testing.T) {
		fs := NewFrameStats(0, 0)
		assert.Equal(t, 1, fs.Window)
		assert.True(t, fs.Push(0.5))
		assert.Equal(t, []float32{2}, fs.History)
	})
}

func TestFrameStatsMillis(t *testing.T) {
	fs := NewFrameStats(1, 4)
	fs.Push(0.004)
	fs.Push(0.010)

	ms, peak := fs.Millis()
	assert.InDeltaSlice(t, []float32{10, 4, 0, 0}, ms, 1e-3)
	assert.InDelta(t, 10, peak, 1e-3)

	empty := NewFrameStats(1, 2)
	ms, peak = empty.Millis()
	assert.Equal(t, []float32{0, 0}, ms)
	assert.Zero(t, peak)
}
