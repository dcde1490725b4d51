// Package raycast implements the grid ray marching the renderers share: the
// camera model that turns a screen column into a ray, and the DDA walk that
// finds the first wall the ray meets.
//
// The Kage shader in package render is a line-for-line port of this code, so
// anything changed here must be changed there too.
package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const TwoPi = 2 * math.Pi

// NormalizeAngle wraps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// Camera is a pinhole camera on the map plane. Angle 0 looks down +X and
// angles grow towards +Y, so the right edge of the screen is towards +Y.
type Camera struct {
	Pos   mgl64.Vec2
	Angle float64
	FOV   float64
}

func (c Camera) Dir() mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(c.Angle), math.Sin(c.Angle)}
}

// Plane is the camera plane: perpendicular to Dir, scaled so that its ends
// sit at the edges of the field of view.
func (c Camera) Plane() mgl64.Vec2 {
	k := math.Tan(c.FOV / 2)
	return mgl64.Vec2{-math.Sin(c.Angle) * k, math.Cos(c.Angle) * k}
}

// RayDir returns the (unnormalised) ray through the centre of a screen column.
func (c Camera) RayDir(column, width int) mgl64.Vec2 {
	cameraX := 2*(float64(column)+0.5)/float64(width) - 1
	return c.Dir().Add(c.Plane().Mul(cameraX))
}

// RayAngle returns the heading of the ray through a screen column.
func (c Camera) RayAngle(column, width int) float64 {
	d := c.RayDir(column, width)
	return NormalizeAngle(math.Atan2(d.Y(), d.X()))
}

// SkyU maps a heading onto the horizontal sky texture coordinate in [0, 1).
func SkyU(angle float64) float64 {
	return NormalizeAngle(angle) / TwoPi
}
