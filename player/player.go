// Package player moves the viewer through the grid.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/raycast"
)

type Pose struct {
	Pos   mgl64.Vec2
	Angle float64
}

// FromSpawn converts a level spawn point (angle in degrees) into a pose.
func FromSpawn(s grid.Spawn) Pose {
	return Pose{
		Pos:   mgl64.Vec2{s.X, s.Y},
		Angle: raycast.NormalizeAngle(s.Radians()),
	}
}

func (p Pose) Camera(fov float64) raycast.Camera {
	return raycast.Camera{Pos: p.Pos, Angle: p.Angle, FOV: fov}
}

// Input is the per-frame control state.
type Input struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	// MouseDX is the horizontal cursor travel in pixels since the last frame.
	MouseDX float64
}

type Params struct {
	// MoveSpeed is in cells per second.
	MoveSpeed float64
	// MouseTurn is in radians per pixel of cursor travel.
	MouseTurn float64
	// KeyTurn is in radians per second.
	KeyTurn float64
	Radius  float64
}

// MaxRadius is the largest collision radius that still fits through a
// one-cell corridor.
const MaxRadius = 0.49

// maxSubStep is the longest distance moved between two collision probes.
const maxSubStep = 0.25

// Clamped returns p with every field in its usable range.
func (p Params) Clamped() Params {
	p.MoveSpeed = max(p.MoveSpeed, 0)
	p.MouseTurn = max(p.MouseTurn, 0)
	p.KeyTurn = max(p.KeyTurn, 0)
	p.Radius = min(max(p.Radius, 0), MaxRadius)
	return p
}

func DefaultParams() Params {
	return Params{
		MoveSpeed: 2.5,
		MouseTurn: 0.001,
		KeyTurn:   2.0,
		Radius:    0.2,
	}
}

// Step advances the pose by one frame.
//
// Movement is resolved one axis at a time, X first: the player's leading
// edge after the move (destination plus Radius in the direction of travel)
// is probed against the map and the axis move is dropped when the probe
// lands in a wall or off the map. Sliding along walls falls out of this.
func Step(pose Pose, in Input, dt float64, m *grid.Map, params Params) Pose {
	speed := params.MoveSpeed * dt
	dir := mgl64.Vec2{math.Cos(pose.Angle), math.Sin(pose.Angle)}
	right := mgl64.Vec2{-math.Sin(pose.Angle), math.Cos(pose.Angle)}

	var move mgl64.Vec2
	if in.Forward {
		move = move.Add(dir.Mul(speed))
	}
	if in.Back {
		move = move.Sub(dir.Mul(speed))
	}
	if in.StrafeLeft {
		move = move.Sub(right.Mul(speed))
	}
	if in.StrafeRight {
		move = move.Add(right.Mul(speed))
	}

	// Long moves are split so a single frame cannot step over a wall.
	bound := maxSubStep
	if params.Radius > 0 && params.Radius < bound {
		bound = params.Radius
	}
	steps := 1
	if l := move.Len(); l > bound {
		steps = int(math.Ceil(l / bound))
	}
	part := move.Mul(1 / float64(steps))

	pos := pose.Pos
	for range steps {
		pos = slide(pos, part, m, params.Radius)
	}

	angle := pose.Angle + in.MouseDX*params.MouseTurn
	if in.TurnRight {
		angle += params.KeyTurn * dt
	}
	if in.TurnLeft {
		angle -= params.KeyTurn * dt
	}

	return Pose{Pos: pos, Angle: raycast.NormalizeAngle(angle)}
}

func slide(pos, d mgl64.Vec2, m *grid.Map, radius float64) mgl64.Vec2 {
	if d.X() != 0 {
		probe := pos.X() + d.X() + math.Copysign(radius, d.X())
		if probe >= 0 && probe < float64(m.Width) && !m.Solid(int(probe), int(pos.Y())) {
			pos[0] += d.X()
		}
	}
	if d.Y() != 0 {
		probe := pos.Y() + d.Y() + math.Copysign(radius, d.Y())
		if probe >= 0 && probe < float64(m.Height) && !m.Solid(int(pos.X()), int(probe)) {
			pos[1] += d.Y()
		}
	}
	return pos
}
