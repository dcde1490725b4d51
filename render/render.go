// Package render draws the first-person view. ShaderRenderer marches rays on
// the GPU with a Kage shader; Software does the same work on the CPU into an
// *image.RGBA. Both follow the rules in package raycast and the shading
// constants below, so they produce the same picture.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/raycaster/assets"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/raycast"
)

var (
	ErrMapTooLarge   = errors.New("map does not fit the render target")
	ErrBadTarget     = errors.New("render target must be at least 1x1")
	ErrShaderCompile = errors.New("shader compilation failed")
)

// ShaderSteps is the fixed loop bound of the shader's DDA walk. Maps whose
// raycast.MaxSteps exceeds it cannot be drawn by the shader.
const ShaderSteps = 256

const (
	// SideShade darkens faces crossed while stepping along Y.
	SideShade = 0.7
	// FloorShadeMin is the floor brightness at the horizon.
	FloorShadeMin = 0.25
)

// FloorColor is the floor colour at full brightness.
var FloorColor = color.RGBA{84, 76, 68, 255}

// Renderer draws the view from cam onto screen.
type Renderer interface {
	Draw(screen *ebiten.Image, cam raycast.Camera)
	SetLevel(level *grid.Map) error
	Name() string
}

// New builds the renderer named kind: "shader" or "software".
func New(kind string, level *grid.Map, textures *assets.Textures, opts Options) (Renderer, error) {
	var (
		r   Renderer
		err error
	)
	switch kind {
	case "shader":
		r, err = NewShaderRenderer(level, textures, opts)
	case "software":
		r, err = NewSoftwareRenderer(level, textures, opts)
	default:
		return nil, fmt.Errorf("unknown renderer %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Options control the render target.
type Options struct {
	Width, Height int
	// PixelScale > 1 renders at Width/PixelScale x Height/PixelScale and
	// scales the result up with nearest filtering.
	PixelScale int
}

// TargetSize returns the size of the image the renderer actually draws.
func (o Options) TargetSize() (int, int) {
	scale := max(o.PixelScale, 1)
	return max(o.Width/scale, 1), max(o.Height/scale, 1)
}

// floorShade is the floor brightness for a screen row below the horizon.
func floorShade(y, height float64) float64 {
	half := height / 2
	t := (y - half) / half
	return FloorShadeMin + (1-FloorShadeMin)*clamp01(t)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// upscale draws a low-resolution target onto screen with nearest filtering.
func upscale(screen, target *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(target, op)
}
