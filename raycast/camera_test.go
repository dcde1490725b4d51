package raycast_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/raycaster/raycast"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-4 * math.Pi, 0},
	}
	for _, tt := range tests {
		got := raycast.NormalizeAngle(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "NormalizeAngle(%v)", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, raycast.TwoPi)
	}
}

func TestCameraPlane(t *testing.T) {
	cam := raycast.Camera{Angle: 0, FOV: math.Pi / 2}

	assert.True(t, cam.Dir().ApproxEqual(mgl64.Vec2{1, 0}))
	assert.True(t, cam.Plane().ApproxEqual(mgl64.Vec2{0, 1}))
	assert.InDelta(t, 0, cam.Dir().Dot(cam.Plane()), 1e-12)
}

func TestRayDirSpansFieldOfView(t *testing.T) {
	cam := raycast.Camera{Angle: math.Pi / 4, FOV: math.Pi / 3}
	const width = 1000

	centre := cam.RayAngle(width/2, width)
	left := cam.RayAngle(0, width)
	right := cam.RayAngle(width-1, width)

	assert.InDelta(t, cam.Angle, centre, 0.01)
	assert.InDelta(t, cam.Angle-cam.FOV/2, left, 0.01)
	assert.InDelta(t, cam.Angle+cam.FOV/2, right, 0.01)
}

func TestSkyU(t *testing.T) {
	assert.InDelta(t, 0, raycast.SkyU(0), 1e-12)
	assert.InDelta(t, 0.5, raycast.SkyU(math.Pi), 1e-12)
	assert.InDelta(t, 0.75, raycast.SkyU(-math.Pi/2), 1e-12)
}
