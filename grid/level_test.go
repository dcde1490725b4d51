package grid_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/raycaster/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallLevel = `
name: box
spawn:
  x: 1.5
  y: 1.5
  angle: 90
rows:
  - "1111"
  - "1..1"
  - "1..1"
  - "1111"
`

func TestParseLevel(t *testing.T) {
	level, err := grid.ParseLevel([]byte(smallLevel))
	require.NoError(t, err)

	assert.Equal(t, "box", level.Name)
	assert.InDelta(t, math.Pi/2, level.Spawn.Radians(), 1e-12)

	m, err := level.Map()
	require.NoError(t, err)
	assert.Equal(t, 4, m.Width)
	assert.Equal(t, 4, m.Height)
}

func TestLevelSpawnValidation(t *testing.T) {
	tests := []struct {
		name  string
		spawn grid.Spawn
		want  error
	}{
		{"inside a wall", grid.Spawn{X: 0.5, Y: 0.5}, grid.ErrSpawnBlocked},
		{"negative", grid.Spawn{X: -1, Y: 1.5}, grid.ErrSpawnOutOfBounds},
		{"past the edge", grid.Spawn{X: 1.5, Y: 4}, grid.ErrSpawnOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := &grid.Level{Spawn: tt.spawn, Rows: []string{"1111", "1..1", "1..1", "1111"}}
			_, err := level.Map()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallLevel), 0o644))

	level, err := grid.LoadLevel(path)
	require.NoError(t, err)
	assert.Len(t, level.Rows, 4)

	_, err = grid.LoadLevel(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLevelMarshalRoundTrip(t *testing.T) {
	data, err := grid.Default().Marshal()
	require.NoError(t, err)

	level, err := grid.ParseLevel(data)
	require.NoError(t, err)
	assert.Equal(t, grid.Default(), level)
}

func TestDefaultLevel(t *testing.T) {
	level := grid.Default()
	m, err := level.Map()
	require.NoError(t, err)

	assert.Equal(t, 16, m.Width)
	assert.Equal(t, 16, m.Height)
	for i := 0; i < 16; i++ {
		assert.True(t, m.Solid(i, 0))
		assert.True(t, m.Solid(i, 15))
		assert.True(t, m.Solid(0, i))
		assert.True(t, m.Solid(15, i))
	}

	level.Rows[1] = "1111111111111111"
	assert.NotEqual(t, level.Rows[1], grid.Default().Rows[1], "Default must not share rows")
}
