package render

import (
	_ "embed"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/plus3/raycaster/assets"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/raycast"
)

//go:embed raycast.kage
var shaderSource []byte

// ShaderRenderer draws the view with a single full-screen Kage pass.
type ShaderRenderer struct {
	shader   *ebiten.Shader
	level    *grid.Map
	textures *assets.Textures
	opts     Options

	layout  Layout
	sources [4]*ebiten.Image
	target  *ebiten.Image
	op      *ebiten.DrawRectShaderOptions
}

// NewShaderRenderer compiles the shader and uploads the packed map and
// textures. A compile error is returned wrapped in ErrShaderCompile.
func NewShaderRenderer(level *grid.Map, textures *assets.Textures, opts Options) (*ShaderRenderer, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, ErrBadTarget
	}
	if err := checkSteps(level); err != nil {
		return nil, err
	}

	shader, err := ebiten.NewShader(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderCompile, err)
	}

	r := &ShaderRenderer{
		shader:   shader,
		level:    level,
		textures: textures,
		opts:     opts,
	}
	if err := r.upload(); err != nil {
		return nil, err
	}
	return r, nil
}

func checkSteps(level *grid.Map) error {
	if steps := raycast.MaxSteps(level); steps > ShaderSteps {
		return fmt.Errorf("map needs %d steps, shader walks %d: %w", steps, ShaderSteps, ErrMapTooLarge)
	}
	return nil
}

func (r *ShaderRenderer) Name() string {
	return "shader"
}

func (r *ShaderRenderer) upload() error {
	w, h := r.opts.TargetSize()

	sheet, sheetRect := Pack(w, h, r.textures.Sheet, draw.ApproxBiLinear)
	overlay, overlayRect := Pack(w, h, r.textures.Overlay, draw.ApproxBiLinear)
	sky, skyRect := Pack(w, h, r.textures.Sky, draw.ApproxBiLinear)

	layout, mapImg, err := levelLayout(Layout{
		Sheet:     sheetRect,
		SheetCols: r.textures.SheetCols,
		SheetRows: r.textures.SheetRows,
		Overlay:   overlayRect,
		Sky:       skyRect,
	}, r.level, w, h)
	if err != nil {
		return err
	}
	r.layout = layout

	r.sources[SlotMap] = ebiten.NewImageFromImage(mapImg)
	r.sources[SlotSheet] = ebiten.NewImageFromImage(sheet)
	r.sources[SlotOverlay] = ebiten.NewImageFromImage(overlay)
	r.sources[SlotSky] = ebiten.NewImageFromImage(sky)

	if r.opts.PixelScale > 1 {
		r.target = ebiten.NewImage(w, h)
	}

	r.op = &ebiten.DrawRectShaderOptions{}
	copy(r.op.Images[:], r.sources[:])
	return nil
}

// SetLevel swaps the map texture.
func (r *ShaderRenderer) SetLevel(level *grid.Map) error {
	w, h := r.opts.TargetSize()
	layout, mapImg, err := levelLayout(r.layout, level, w, h)
	if err != nil {
		return err
	}
	r.level = level
	r.layout = layout
	r.sources[SlotMap].WritePixels(mapImg.Pix)
	return nil
}

// levelLayout checks that level can be drawn at w x h and returns layout
// updated for it together with the map image to upload.
func levelLayout(layout Layout, level *grid.Map, w, h int) (Layout, *image.RGBA, error) {
	if err := checkSteps(level); err != nil {
		return layout, nil, err
	}
	mapImg, err := MapImage(level, w, h)
	if err != nil {
		return layout, nil, err
	}
	layout.MapSize = image.Pt(level.Width, level.Height)
	layout.MaxSteps = raycast.MaxSteps(level)
	return layout, mapImg, nil
}

// Layout returns the packing the shader was given.
func (r *ShaderRenderer) Layout() Layout {
	return r.layout
}

func (r *ShaderRenderer) Draw(screen *ebiten.Image, cam raycast.Camera) {
	w, h := r.opts.TargetSize()
	r.op.Uniforms = NewUniforms(cam, w, h, r.layout).Map()

	if r.target == nil {
		screen.DrawRectShader(w, h, r.shader, r.op)
		return
	}
	r.target.Clear()
	r.target.DrawRectShader(w, h, r.shader, r.op)
	upscale(screen, r.target, r.opts.PixelScale)
}
