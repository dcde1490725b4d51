package assets

import (
	"image"
	"image/color"
	"math"
)

var wallPalette = []color.RGBA{
	{150, 60, 45, 255},
	{95, 95, 110, 255},
	{60, 110, 70, 255},
	{140, 120, 70, 255},
	{70, 90, 140, 255},
	{120, 70, 120, 255},
	{170, 140, 110, 255},
	{80, 80, 80, 255},
}

// WallSheet draws a cols x rows sheet of square wall textures. Even cells are
// bricks, odd cells are riveted panels, each in its own colour.
func WallSheet(cols, rows, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))
	for i := 0; i < cols*rows; i++ {
		base := wallPalette[i%len(wallPalette)]
		ox := (i % cols) * cell
		oy := (i / cols) * cell
		for y := 0; y < cell; y++ {
			for x := 0; x < cell; x++ {
				var c color.RGBA
				if i%2 == 0 {
					c = brick(base, x, y, cell)
				} else {
					c = panel(base, x, y, cell)
				}
				img.SetRGBA(ox+x, oy+y, c)
			}
		}
	}
	return img
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*f))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

func brick(base color.RGBA, x, y, cell int) color.RGBA {
	rowHeight := cell / 4
	row := y / rowHeight
	offset := 0
	if row%2 == 1 {
		offset = cell / 4
	}
	if y%rowHeight == 0 || (x+offset)%(cell/2) == 0 {
		return color.RGBA{40, 35, 30, 255}
	}
	// Cheap deterministic grain.
	grain := float64((x*7+y*13+row*5)%9) / 40
	return shade(base, 0.9+grain)
}

func panel(base color.RGBA, x, y, cell int) color.RGBA {
	edge := cell / 16
	if x < edge || y < edge || x >= cell-edge || y >= cell-edge {
		return shade(base, 0.6)
	}
	rivet := cell / 8
	if (x == rivet || x == cell-rivet-1) && (y == rivet || y == cell-rivet-1) {
		return shade(base, 1.5)
	}
	return shade(base, 1.0+0.15*float64(y)/float64(cell))
}

// SkyGradient draws a sky that is darker at the top, with a band of haze at
// the horizon (the bottom edge).
func SkyGradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	top := color.RGBA{20, 40, 110, 255}
	bottom := color.RGBA{170, 200, 230, 255}
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Crosshair draws a transparent overlay with a small cross in the middle.
// Colours are premultiplied, as image.RGBA expects.
func Crosshair(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := w/2, h/2
	arm := max(min(w, h)/32, 2)
	white := color.RGBA{200, 200, 200, 200}
	for d := -arm; d <= arm; d++ {
		img.SetRGBA(cx+d, cy, white)
		img.SetRGBA(cx, cy+d, white)
	}
	return img
}
