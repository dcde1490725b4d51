package player_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/player"
	"github.com/plus3/raycaster/raycast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func room(t *testing.T) *grid.Map {
	t.Helper()
	m, err := grid.Parse([]string{
		"11111",
		"1...1",
		"1.1.1",
		"1...1",
		"11111",
	})
	require.NoError(t, err)
	return m
}

func TestStepMovesAlongHeading(t *testing.T) {
	m := room(t)
	params := player.DefaultParams()
	start := player.Pose{Pos: mgl64.Vec2{1.5, 1.5}, Angle: 0}

	tests := []struct {
		name  string
		in    player.Input
		angle float64
		want  mgl64.Vec2
	}{
		{"forward", player.Input{Forward: true}, 0, mgl64.Vec2{1.75, 1.5}},
		{"back", player.Input{Back: true}, math.Pi, mgl64.Vec2{1.75, 1.5}},
		{"strafe right", player.Input{StrafeRight: true}, 0, mgl64.Vec2{1.5, 1.75}},
		{"strafe left", player.Input{StrafeLeft: true}, math.Pi, mgl64.Vec2{1.5, 1.75}},
		{"forward cancels back", player.Input{Forward: true, Back: true}, 0, mgl64.Vec2{1.5, 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pose := start
			pose.Angle = tt.angle
			got := player.Step(pose, tt.in, 0.1, m, params)
			assert.InDelta(t, tt.want.X(), got.Pos.X(), 1e-9)
			assert.InDelta(t, tt.want.Y(), got.Pos.Y(), 1e-9)
		})
	}
}

func TestStepCollision(t *testing.T) {
	m := room(t)
	params := player.DefaultParams()

	t.Run("blocked by the wall ahead", func(t *testing.T) {
		pose := player.Pose{Pos: mgl64.Vec2{1.25, 1.5}, Angle: math.Pi}
		got := player.Step(pose, player.Input{Forward: true}, 0.1, m, params)
		assert.Equal(t, 1.25, got.Pos.X())
		assert.InDelta(t, 1.5, got.Pos.Y(), 1e-9)
	})

	t.Run("slides along a wall", func(t *testing.T) {
		// Heading north-west into the west wall: X is blocked, Y still moves.
		pose := player.Pose{Pos: mgl64.Vec2{1.25, 2.5}, Angle: 5 * math.Pi / 4}
		got := player.Step(pose, player.Input{Forward: true}, 0.1, m, params)
		assert.Equal(t, 1.25, got.Pos.X())
		assert.Less(t, got.Pos.Y(), 2.5)
	})

	t.Run("long frames do not tunnel", func(t *testing.T) {
		pose := player.Pose{Pos: mgl64.Vec2{1.5, 2.5}, Angle: 0}
		got := player.Step(pose, player.Input{Forward: true}, 2, m, params)
		assert.Less(t, got.Pos.X(), 2.0)
	})

	t.Run("long frames do not tunnel without a radius", func(t *testing.T) {
		thin, err := grid.Parse([]string{"11111", "1.1.1", "11111"})
		require.NoError(t, err)
		bare := player.Params{MoveSpeed: 2.5}
		pose := player.Pose{Pos: mgl64.Vec2{1.5, 1.5}, Angle: 0}
		got := player.Step(pose, player.Input{Forward: true}, 0.8, thin, bare)
		assert.Less(t, got.Pos.X(), 2.0)
		assert.Greater(t, got.Pos.X(), 1.5, "open space up to the wall is still crossed")
	})

	t.Run("pillar", func(t *testing.T) {
		pose := player.Pose{Pos: mgl64.Vec2{1.5, 2.5}, Angle: 0}
		for range 20 {
			pose = player.Step(pose, player.Input{Forward: true}, 0.1, m, params)
		}
		assert.Less(t, pose.Pos.X(), 2.0)
		assert.False(t, m.Solid(int(pose.Pos.X()), int(pose.Pos.Y())))
	})

	t.Run("never leaves open maps", func(t *testing.T) {
		open, err := grid.Parse([]string{"...", "..."})
		require.NoError(t, err)
		pose := player.Pose{Pos: mgl64.Vec2{1.5, 1.0}, Angle: 0}
		for range 50 {
			pose = player.Step(pose, player.Input{Forward: true}, 0.1, open, params)
		}
		assert.Less(t, pose.Pos.X(), 3.0)
		assert.GreaterOrEqual(t, pose.Pos.X(), 0.0)
	})
}

func TestStepTurning(t *testing.T) {
	m := room(t)
	params := player.DefaultParams()
	pose := player.Pose{Pos: mgl64.Vec2{1.5, 1.5}, Angle: 0.1}

	got := player.Step(pose, player.Input{MouseDX: 100}, 0.016, m, params)
	assert.InDelta(t, 0.2, got.Angle, 1e-9)

	got = player.Step(pose, player.Input{MouseDX: -200}, 0.016, m, params)
	assert.InDelta(t, 2*math.Pi-0.1, got.Angle, 1e-9)

	got = player.Step(pose, player.Input{TurnRight: true}, 0.5, m, params)
	assert.InDelta(t, 1.1, got.Angle, 1e-9)

	got = player.Step(pose, player.Input{TurnLeft: true, TurnRight: true}, 0.5, m, params)
	assert.InDelta(t, 0.1, got.Angle, 1e-9)
}

func TestStepAngleStaysNormalised(t *testing.T) {
	m := room(t)
	params := player.DefaultParams()
	pose := player.Pose{Pos: mgl64.Vec2{1.5, 1.5}}

	for i := range 500 {
		in := player.Input{MouseDX: float64(i*37%1000 - 500)}
		pose = player.Step(pose, in, 0.016, m, params)
		require.GreaterOrEqual(t, pose.Angle, 0.0)
		require.Less(t, pose.Angle, raycast.TwoPi)
	}
}

func TestFromSpawn(t *testing.T) {
	pose := player.FromSpawn(grid.Spawn{X: 2.5, Y: 3.5, Angle: -90})
	assert.Equal(t, mgl64.Vec2{2.5, 3.5}, pose.Pos)
	assert.InDelta(t, 3*math.Pi/2, pose.Angle, 1e-9)

	cam := pose.Camera(math.Pi / 3)
	assert.Equal(t, pose.Pos, cam.Pos)
	assert.InDelta(t, math.Pi/3, cam.FOV, 1e-12)
}

func TestParamsClamped(t *testing.T) {
	got := player.Params{MoveSpeed: -1, MouseTurn: -0.1, KeyTurn: -2, Radius: 0.8}.Clamped()
	assert.Equal(t, player.Params{Radius: player.MaxRadius}, got)

	assert.Equal(t, player.DefaultParams(), player.DefaultParams().Clamped())
	assert.Equal(t, 0.0, player.Params{Radius: -0.3}.Clamped().Radius)
}
