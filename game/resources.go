// Package game wires the raycaster together: world resources, the systems
// that update them each frame, and the ebiten.Game that drives the loop and
// draws the view.
package game

import (
	"math"

	"github.com/plus3/raycaster/engine"
	"github.com/plus3/raycaster/engine/debugui"
	debugui_ebiten "github.com/plus3/raycaster/engine/debugui/ebiten"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/player"
	"github.com/plus3/raycaster/raycast"
)

// Player is the viewer: where it stands, how it moves and what it sees.
type Player struct {
	Pose   player.Pose
	Params player.Params
	FOV    float64
}

func (p Player) Camera() raycast.Camera {
	return p.Pose.Camera(p.FOV)
}

const (
	minFOV = math.Pi / 180
	maxFOV = 179 * math.Pi / 180
)

// Clamp brings hand-edited values back into range. The resource inspector
// calls it after every edit.
func (p *Player) Clamp() {
	p.Params = p.Params.Clamped()
	p.FOV = min(max(p.FOV, minFOV), maxFOV)
	p.Pose.Angle = raycast.NormalizeAngle(p.Pose.Angle)
}

// Level is the map being played.
type Level struct {
	Name string
	Map  *grid.Map
}

// Controls is this frame's input plus the toggles the player flips with
// function keys.
type Controls struct {
	Input    player.Input
	Captured bool
}

// Session identifies one run of the game in logs and reports.
type Session struct {
	ID       string
	Renderer string
}

// Register adds every resource type the game uses to registry.
func Register(registry *engine.Registry) {
	engine.RegisterResource[Player](registry)
	engine.RegisterResource[Level](registry)
	engine.RegisterResource[Controls](registry)
	engine.RegisterResource[Session](registry)
	engine.RegisterResource[FrameStats](registry)
	engine.RegisterResource[Automap](registry)
	engine.RegisterResource[debugui_ebiten.ImguiBackend](registry)
	debugui.Register(registry)
}
