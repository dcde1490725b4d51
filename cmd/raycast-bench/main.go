// Command raycast-bench renders the raycaster headlessly with the software
// renderer and reports frame times.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/raycaster/assets"
	"github.com/plus3/raycaster/config"
	"github.com/plus3/raycaster/engine"
	"github.com/plus3/raycaster/game"
	"github.com/plus3/raycaster/logging"
	"github.com/plus3/raycaster/render"
)

// spinInput holds the turn key down so the view sweeps the whole level.
type spinInput struct {
	spin bool
}

func (s spinInput) KeyPressed(key ebiten.Key) bool {
	return s.spin && key == ebiten.KeyArrowRight
}
func (spinInput) CursorPosition() (int, int) { return 0, 0 }
func (spinInput) Focused() bool              { return true }

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	width := flag.Int("width", 640, "Render width in pixels.")
	height := flag.Int("height", 360, "Render height in pixels.")
	pixelScale := flag.Int("pixel-scale", 1, "Render at 1/N of width and height.")
	levelPath := flag.String("level", "", "Level file, pack.txtar[:name] or builtin:name (empty for the built-in level).")
	snapshot := flag.String("snapshot", "", "Write the last frame as PNG to this file or directory.")
	spin := flag.Bool("spin", true, "Turn the camera while rendering.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	flag.Parse()

	logger := logging.New("bench", *debug)
	session := uuid.NewString()
	log.Printf("Starting raycast benchmark (session %s)...\n", session)

	cfg := config.Default()
	cfg.Window.Width, cfg.Window.Height = *width, *height
	cfg.Render.Renderer = "software"
	cfg.Render.PixelScale = *pixelScale
	cfg.Level = *levelPath
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	level, err := assets.Level(cfg.Level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	world, err := game.NewWorld(cfg, level, spinInput{spin: *spin}, false)
	if err != nil {
		log.Fatalf("Failed to set up world: %v", err)
	}
	// Textures come from the generators; the benchmark does not read files.
	textures := assets.LoadTextures(assets.TextureSpec{
		SheetCols: cfg.Textures.SheetCols,
		SheetRows: cfg.Textures.SheetRows,
	}, logger)

	opts := render.Options{Width: *width, Height: *height, PixelScale: *pixelScale}
	tw, th := opts.TargetSize()
	software := render.NewSoftware(engine.Get[game.Level](world.World).Map, textures)
	frame := image.NewRGBA(image.Rect(0, 0, tw, th))

	report := &Report{
		Session:    session,
		Duration:   *duration,
		Width:      tw,
		Height:     th,
		PixelScale: max(*pixelScale, 1),
		Level:      level.Name,
		Spin:       *spin,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Rendering %dx%d for %s...\n", tw, th, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frameStart := time.Now()
			dt := frameStart.Sub(lastFrameTime).Seconds()
			lastFrameTime = frameStart

			world.Scheduler.Once(dt)

			renderStart := time.Now()
			software.Render(frame, engine.Get[game.Player](world.World).Camera())
			report.RenderTime.Samples = append(report.RenderTime.Samples, time.Since(renderStart))
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
			report.TotalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	report.RenderTime.Finalize()
	report.Systems = world.Scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	if *snapshot != "" {
		path, err := writeSnapshot(*snapshot, session, frame)
		if err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		report.Snapshot = path
		logger.Infof("Wrote snapshot %s", path)
	}

	fmt.Println("\n\n--- Raycast Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Benchmark complete.")
}

// snapshotPath names the snapshot after the session when target is a
// directory.
func snapshotPath(target, session string) string {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, "raycast-"+session+".png")
	}
	return target
}

func writeSnapshot(target, session string, img image.Image) (string, error) {
	path := snapshotPath(target, session)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return path, f.Close()
}
