package game

import (
	"fmt"

	"github.com/plus3/raycaster/config"
	"github.com/plus3/raycaster/engine"
	"github.com/plus3/raycaster/engine/debugui"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/player"
)

// automapRays is how many rays AutomapSystem casts per frame.
const automapRays = 64

// World bundles the resource world with the scheduler that updates it.
type World struct {
	*engine.World
	Scheduler *engine.Scheduler
}

// NewWorld stores the game's resources for level and registers the systems
// in frame order: input, movement, frame stats, automap and, when withUI is
// set, the Dear ImGui system.
func NewWorld(cfg config.Config, level *grid.Level, source InputSource, withUI bool) (*World, error) {
	m, err := level.Map()
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}

	registry := engine.NewRegistry()
	Register(registry)
	world := engine.NewWorld(registry)

	world.Set(Player{
		Pose: player.FromSpawn(level.Spawn),
		Params: player.Params{
			MoveSpeed: cfg.Player.MoveSpeed,
			MouseTurn: cfg.Player.MouseTurn,
			KeyTurn:   cfg.Player.KeyTurn,
			Radius:    cfg.Player.Radius,
		},
		FOV: cfg.FOVRadians(),
	})
	world.Set(Controls{Captured: true})
	world.Set(NewFrameStats(cfg.Debug.FPSWindow, cfg.Debug.FPSHistory))
	useLevel(world, level, m)
	world.Set(debugui.ImguiItems{})
	world.Set(debugui.ImguiInputState{})

	scheduler := engine.NewScheduler(world)
	scheduler.Register(&InputSystem{Source: source})
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&FrameStatsSystem{})
	scheduler.Register(&AutomapSystem{Rays: automapRays})
	if withUI {
		scheduler.Register(&debugui.ImguiSystem{})
	}

	return &World{World: world, Scheduler: scheduler}, nil
}

// DebugStats gathers what the debug window shows.
func DebugStats(world *engine.World) debugui.RaycasterStats {
	var stats debugui.RaycasterStats

	if fs := engine.Get[FrameStats](world); fs != nil {
		stats.FPS = float32(fs.FPS)
		stats.FPSHistory = fs.History
		stats.FrameMillis, stats.MaxMillis = fs.Millis()
	}
	if p := engine.Get[Player](world); p != nil {
		stats.PlayerX, stats.PlayerY = p.Pose.Pos.X(), p.Pose.Pos.Y()
		stats.Angle = p.Pose.Angle
	}
	if a := engine.Get[Automap](world); a != nil {
		stats.LookOK = a.Look.OK()
		stats.LookTile = a.Look.Tile
		stats.LookCell = a.Look.Cell
		stats.LookDistance = a.Look.Distance
		stats.SeenCells = a.SeenOpen()
		stats.OpenCells = a.OpenCells()
	}
	return stats
}

// AddDebugWindows registers the debug and resource inspector windows.
func (w *World) AddDebugWindows(renderer string) {
	items := engine.Get[debugui.ImguiItems](w.World)
	if items == nil {
		return
	}

	window := &debugui.RaycasterWindow{Scheduler: w.Scheduler, Renderer: renderer}
	items.Add("debug", func() { window.Render(DebugStats(w.World)) })

	inspector := &debugui.ResourceInspector{World: w.World}
	items.Add("resources", inspector.Render)
}
