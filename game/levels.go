package game

import (
	"fmt"

	"github.com/plus3/raycaster/engine"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/player"
)

// NextLevel returns the level after the one named current, wrapping around
// to the first. An unknown name also gives the first level.
func NextLevel(levels []*grid.Level, current string) *grid.Level {
	if len(levels) == 0 {
		return nil
	}
	for i, l := range levels {
		if l.Name == current {
			return levels[(i+1)%len(levels)]
		}
	}
	return levels[0]
}

// ChangeLevel swaps in level: its map, the player back on its spawn and an
// empty automap. prepare, when set, sees the new map first and can refuse
// it, leaving the world untouched. Movement settings, FOV and the automap
// toggle carry over.
func (w *World) ChangeLevel(level *grid.Level, prepare func(*grid.Map) error) error {
	m, err := level.Map()
	if err != nil {
		return fmt.Errorf("level %q: %w", level.Name, err)
	}
	if prepare != nil {
		if err := prepare(m); err != nil {
			return fmt.Errorf("level %q: %w", level.Name, err)
		}
	}
	useLevel(w.World, level, m)
	return nil
}

func useLevel(world *engine.World, level *grid.Level, m *grid.Map) {
	world.Set(Level{Name: level.Name, Map: m})

	if p := engine.Get[Player](world); p != nil {
		p.Pose = player.FromSpawn(level.Spawn)
	}

	automap := NewAutomap(m)
	if old := engine.Get[Automap](world); old != nil {
		automap.Visible = old.Visible
	}
	world.Set(automap)
}
