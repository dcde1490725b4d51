package game

import (
	"github.com/plus3/raycaster/engine"
	"github.com/plus3/raycaster/player"
)

// MovementSystem applies Controls.Input to the player.
type MovementSystem struct {
	Player   engine.Resource[Player]
	Level    engine.Resource[Level]
	Controls engine.Resource[Controls]
}

func (s *MovementSystem) Execute(frame *engine.UpdateFrame) {
	p, level, controls := s.Player.Get(), s.Level.Get(), s.Controls.Get()
	if p == nil || level == nil || controls == nil {
		return
	}
	p.Pose = player.Step(p.Pose, controls.Input, frame.DeltaTime, level.Map, p.Params)
}

// FrameStatsSystem feeds each frame's duration to FrameStats.
type FrameStatsSystem struct {
	Stats engine.Resource[FrameStats]
}

func (s *FrameStatsSystem) Execute(frame *engine.UpdateFrame) {
	if stats := s.Stats.Get(); stats != nil {
		stats.Push(frame.DeltaTime)
	}
}

// AutomapSystem reveals what the player can see.
type AutomapSystem struct {
	Player  engine.Resource[Player]
	Level   engine.Resource[Level]
	Automap engine.Resource[Automap]
	// Rays is the number of rays cast across the view per frame.
	Rays int
}

func (s *AutomapSystem) Execute(frame *engine.UpdateFrame) {
	p, level, automap := s.Player.Get(), s.Level.Get(), s.Automap.Get()
	if p == nil || level == nil || automap == nil {
		return
	}
	automap.Reveal(level.Map, p.Camera(), max(s.Rays, 1))
}
