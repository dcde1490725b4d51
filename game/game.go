package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/raycaster/assets"
	"github.com/plus3/raycaster/config"
	"github.com/plus3/raycaster/engine"
	"github.com/plus3/raycaster/engine/debugui"
	debugui_ebiten "github.com/plus3/raycaster/engine/debugui/ebiten"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/logging"
	"github.com/plus3/raycaster/render"
)

// automapCell is the on-screen size of one automap cell in pixels.
const automapCell = 8

// Game implements ebiten.Game.
type Game struct {
	cfg      config.Config
	logger   logging.Logger
	world    *World
	renderer render.Renderer

	backend  *engine.Resource[debugui_ebiten.ImguiBackend]
	player   *engine.Resource[Player]
	controls *engine.Resource[Controls]
	automap  *engine.Resource[Automap]
	items    *engine.Resource[debugui.ImguiItems]

	// levels is what the next-level key cycles through, loaded on first use.
	levels []*grid.Level

	automapImage *ebiten.Image
	last         time.Time
	announced    bool
}

func NewGame(cfg config.Config, logger logging.Logger, world *World, renderer render.Renderer) *Game {
	g := &Game{
		cfg:      cfg,
		logger:   logger,
		world:    world,
		renderer: renderer,
		player:   engine.NewResource[Player](world.World),
		controls: engine.NewResource[Controls](world.World),
		automap:  engine.NewResource[Automap](world.World),
		items:    engine.NewResource[debugui.ImguiItems](world.World),
	}
	if engine.Get[debugui_ebiten.ImguiBackend](world.World) != nil {
		g.backend = engine.NewResource[debugui_ebiten.ImguiBackend](world.World)
	}
	return g
}

func (g *Game) imguiReady() bool {
	return g.backend != nil && g.backend.Get().Ready()
}

func (g *Game) Update() error {
	if !g.announced {
		g.announce()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.setCaptured(!g.controls.Get().Captured)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		visible := g.items.Get().Toggle()
		g.logger.Debugf("debug UI visible: %t", visible)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a := g.automap.Get()
		a.Visible = !a.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.nextLevel()
	}

	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	if g.last.IsZero() {
		dt = 0
	}
	g.last = now

	if g.imguiReady() {
		g.backend.Get().BeginFrame()
	}
	g.world.Scheduler.Once(dt)
	if g.imguiReady() {
		g.backend.Get().EndFrame()
	}
	return nil
}

// nextLevel moves to the following built-in level. A level the renderer
// cannot draw is skipped with a warning and the current one stays.
func (g *Game) nextLevel() {
	if g.levels == nil {
		levels, err := assets.Builtin()
		if err != nil {
			g.logger.Errorf("Failed to load built-in levels: %v", err)
			return
		}
		g.levels = levels
	}

	current := engine.Get[Level](g.world.World)
	next := NextLevel(g.levels, current.Name)
	if next == nil {
		return
	}
	if err := g.world.ChangeLevel(next, g.renderer.SetLevel); err != nil {
		g.logger.Warnf("Cannot switch level: %v", err)
		return
	}
	m := engine.Get[Level](g.world.World).Map
	g.logger.Infof("Loaded level %q (%dx%d)", next.Name, m.Width, m.Height)
}

func (g *Game) setCaptured(captured bool) {
	g.controls.Get().Captured = captured
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// announce logs the graphics details once the backend is up.
func (g *Game) announce() {
	var info ebiten.DebugInfo
	ebiten.ReadDebugInfo(&info)
	g.logger.Infof("Renderer: %s, graphics library: %s", g.renderer.Name(), info.GraphicsLibrary)
	g.announced = true
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.player.Get().Camera())

	if a := g.automap.Get(); a.Visible {
		g.drawAutomap(screen, a)
	}

	if g.imguiReady() {
		g.backend.Get().Draw(screen)
	}
}

func (g *Game) drawAutomap(screen *ebiten.Image, a *Automap) {
	img := a.Image(automapCell, g.player.Get().Pose)
	b := img.Bounds()
	if g.automapImage == nil || g.automapImage.Bounds().Size() != b.Size() {
		g.automapImage = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.automapImage.WritePixels(img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-b.Dx()-16), 16)
	screen.DrawImage(g.automapImage, op)
}

// Layout keeps the logical screen at the configured resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cfg.Window.Width, g.cfg.Window.Height
	if g.imguiReady() {
		g.backend.Get().Layout(w, h)
	}
	return w, h
}
