package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/plus3/raycaster/grid"
)

// Pack places src in the top-left corner of a w x h canvas and returns the
// canvas with the rectangle src occupies. Ebiten requires every source image
// of a shader pass to match the destination size, so textures travel to the
// GPU this way and the shader is told how much of each canvas is texture.
//
// A src that does not fit is scaled down with scaler, keeping its aspect
// ratio. A nil scaler means nearest neighbour.
func Pack(w, h int, src image.Image, scaler draw.Scaler) (*image.RGBA, image.Rectangle) {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()

	if sw <= w && sh <= h {
		used := image.Rect(0, 0, sw, sh)
		draw.Draw(canvas, used, src, sb.Min, draw.Src)
		return canvas, used
	}

	if scaler == nil {
		scaler = draw.NearestNeighbor
	}
	k := min(float64(w)/float64(sw), float64(h)/float64(sh))
	used := image.Rect(0, 0, max(int(float64(sw)*k), 1), max(int(float64(sh)*k), 1))
	scaler.Scale(canvas, used, src, sb, draw.Src, nil)
	return canvas, used
}

// MapImage encodes m for the shader: cell (x, y) becomes pixel (x, y) with
// the tile number in the red channel. Tiles are never rescaled, so the map
// must fit in w x h.
func MapImage(m *grid.Map, w, h int) (*image.RGBA, error) {
	if m.Width > w || m.Height > h {
		return nil, fmt.Errorf("%dx%d map into %dx%d target: %w", m.Width, m.Height, w, h, ErrMapTooLarge)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cells := m.Pixels()
	for y := 0; y < m.Height; y++ {
		row := cells[y*m.Width : (y+1)*m.Width]
		for x, tile := range row {
			img.SetRGBA(x, y, color.RGBA{R: tile, A: 255})
		}
	}
	return img, nil
}

// toRGBA returns img as an *image.RGBA with its origin at (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
