package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/raycaster/assets"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/raycast"
)

// Software renders the view on the CPU. It is the reference for the shader
// and backs the benchmark and the software renderer option.
type Software struct {
	level     *grid.Map
	sheet     *image.RGBA
	overlay   *image.RGBA
	sky       *image.RGBA
	sheetCols int
	sheetRows int
}

func NewSoftware(level *grid.Map, textures *assets.Textures) *Software {
	return &Software{
		level:     level,
		sheet:     toRGBA(textures.Sheet),
		overlay:   toRGBA(textures.Overlay),
		sky:       toRGBA(textures.Sky),
		sheetCols: max(textures.SheetCols, 1),
		sheetRows: max(textures.SheetRows, 1),
	}
}

// SetLevel swaps the map.
func (s *Software) SetLevel(level *grid.Map) {
	s.level = level
}

// Render draws the view from cam into dst, covering all of dst's bounds.
func (s *Software) Render(dst *image.RGBA, cam raycast.Camera) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	half := float64(h) / 2
	maxSteps := raycast.MaxSteps(s.level)

	for x := 0; x < w; x++ {
		ray := cam.RayDir(x, w)
		hit := raycast.Cast(s.level, cam.Pos, ray, maxSteps)

		top, bottom := 0, 0
		var height float64
		if hit.OK() {
			top, bottom, height = raycast.Column(hit, h)
		}

		for y := 0; y < h; y++ {
			var c color.RGBA
			switch {
			case y >= top && y < bottom:
				v := (float64(y) + 0.5 - (half - height/2)) / height
				c = s.wallAt(hit, v)
			case float64(y) < half:
				c = s.skyAt(ray, float64(y), half)
			default:
				c = floorAt(float64(y), float64(h))
			}
			c = over(s.overlayAt(x, y, w, h), c)
			dst.SetRGBA(b.Min.X+x, b.Min.Y+y, c)
		}
	}
}

func (s *Software) wallAt(hit raycast.Hit, v float64) color.RGBA {
	sheet := hit.Sheet()
	cx := sheet % s.sheetCols
	cy := (sheet / s.sheetCols) % s.sheetRows
	cellW := float64(s.sheet.Bounds().Dx()) / float64(s.sheetCols)
	cellH := float64(s.sheet.Bounds().Dy()) / float64(s.sheetRows)

	tx := int(math.Floor((float64(cx) + math.Min(math.Max(hit.TexU, 0), 0.9999)) * cellW))
	ty := int(math.Floor((float64(cy) + math.Min(math.Max(v, 0), 0.9999)) * cellH))
	c := s.sheet.RGBAAt(tx, ty)

	if hit.Side == raycast.SideY {
		c = scale(c, SideShade)
	}
	return c
}

func (s *Software) skyAt(ray mgl64.Vec2, y, half float64) color.RGBA {
	angle := raycast.NormalizeAngle(math.Atan2(ray.Y(), ray.X()))
	u := raycast.SkyU(angle)
	v := math.Min(math.Max((y+0.5)/half, 0), 0.9999)
	sb := s.sky.Bounds()
	return s.sky.RGBAAt(int(u*float64(sb.Dx())), int(v*float64(sb.Dy())))
}

func (s *Software) overlayAt(x, y, w, h int) color.RGBA {
	ob := s.overlay.Bounds()
	ox := int(math.Floor((float64(x) + 0.5) / float64(w) * float64(ob.Dx())))
	oy := int(math.Floor((float64(y) + 0.5) / float64(h) * float64(ob.Dy())))
	return s.overlay.RGBAAt(ox, oy)
}

func floorAt(y, height float64) color.RGBA {
	return scale(FloorColor, floorShade(y, height))
}

// scale multiplies the colour channels by k, leaving alpha alone.
func scale(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// over composites premultiplied src over dst.
func over(src, dst color.RGBA) color.RGBA {
	if src.A == 0 {
		return dst
	}
	k := 1 - float64(src.A)/255
	return color.RGBA{
		R: src.R + uint8(float64(dst.R)*k),
		G: src.G + uint8(float64(dst.G)*k),
		B: src.B + uint8(float64(dst.B)*k),
		A: src.A + uint8(float64(dst.A)*k),
	}
}

// SoftwareRenderer presents Software output through an ebiten image.
type SoftwareRenderer struct {
	software *Software
	opts     Options
	frame    *image.RGBA
	target   *ebiten.Image
}

func NewSoftwareRenderer(level *grid.Map, textures *assets.Textures, opts Options) (*SoftwareRenderer, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, ErrBadTarget
	}
	w, h := opts.TargetSize()
	return &SoftwareRenderer{
		software: NewSoftware(level, textures),
		opts:     opts,
		frame:    image.NewRGBA(image.Rect(0, 0, w, h)),
		target:   ebiten.NewImage(w, h),
	}, nil
}

func (r *SoftwareRenderer) Name() string {
	return "software"
}

func (r *SoftwareRenderer) SetLevel(level *grid.Map) error {
	r.software.SetLevel(level)
	return nil
}

func (r *SoftwareRenderer) Draw(screen *ebiten.Image, cam raycast.Camera) {
	r.software.Render(r.frame, cam)
	r.target.WritePixels(r.frame.Pix)
	upscale(screen, r.target, max(r.opts.PixelScale, 1))
}
