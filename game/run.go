package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/raycaster/assets"
	"github.com/plus3/raycaster/config"
	"github.com/plus3/raycaster/engine"
	debugui_ebiten "github.com/plus3/raycaster/engine/debugui/ebiten"
	"github.com/plus3/raycaster/logging"
	"github.com/plus3/raycaster/render"
)

// GraphicsLibrary maps a config name onto ebiten's graphics library option.
func GraphicsLibrary(name string) (ebiten.GraphicsLibrary, error) {
	switch name {
	case "", "auto":
		return ebiten.GraphicsLibraryAuto, nil
	case "opengl":
		return ebiten.GraphicsLibraryOpenGL, nil
	case "directx":
		return ebiten.GraphicsLibraryDirectX, nil
	case "metal":
		return ebiten.GraphicsLibraryMetal, nil
	}
	return ebiten.GraphicsLibraryUnknown, fmt.Errorf("unknown graphics library %q", name)
}

// Run opens the window and plays until the player quits. Errors are setup
// failures; quitting normally returns nil.
func Run(cfg config.Config, logger logging.Logger) error {
	session := uuid.NewString()
	logger.Infof("Starting %s at %dx%d (session %s)", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, session)

	library, err := GraphicsLibrary(cfg.Window.Graphics)
	if err != nil {
		return err
	}

	level, err := assets.Level(cfg.Level)
	if err != nil {
		return err
	}
	textures := assets.LoadTextures(assets.TextureSpec{
		Sheet:     cfg.Textures.Sheet,
		Overlay:   cfg.Textures.Overlay,
		Sky:       cfg.Textures.Sky,
		SheetCols: cfg.Textures.SheetCols,
		SheetRows: cfg.Textures.SheetRows,
	}, logger)

	world, err := NewWorld(cfg, level, EbitenInput(), cfg.Debug.UI)
	if err != nil {
		return err
	}
	m := engine.Get[Level](world.World).Map
	logger.Infof("Loaded level %q (%dx%d)", level.Name, m.Width, m.Height)

	if cfg.Debug.UI {
		world.Set(debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height))
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	renderer, err := render.New(cfg.Render.Renderer, m, textures, render.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		PixelScale: cfg.Render.PixelScale,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s renderer: %w", cfg.Render.Renderer, err)
	}

	world.Set(Session{ID: session, Renderer: renderer.Name()})
	if cfg.Debug.UI {
		world.AddDebugWindows(renderer.Name())
	}

	game := NewGame(cfg, logger, world, renderer)
	err = ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{GraphicsLibrary: library})
	logger.Infof("Shutting down (session %s)", session)
	if err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
