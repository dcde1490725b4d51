package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/raycaster/assets"
	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/raycast"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// testTextures has a two-cell sheet (tile 1 red, tile 2 green), a blue sky
// and a fully transparent overlay.
func testTextures() *assets.Textures {
	sheet := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				sheet.SetRGBA(x, y, red)
			} else {
				sheet.SetRGBA(x, y, green)
			}
		}
	}
	return &assets.Textures{
		Sheet:     sheet,
		Sky:       solid(8, 4, blue),
		Overlay:   image.NewRGBA(image.Rect(0, 0, 4, 4)),
		SheetCols: 2,
		SheetRows: 1,
	}
}

func testMap(t *testing.T) *grid.Map {
	t.Helper()
	m, err := grid.Parse([]string{
		"11111",
		"1...1",
		"1...2",
		"1...1",
		"11111",
	})
	require.NoError(t, err)
	return m
}

func TestOptionsTargetSize(t *testing.T) {
	tests := []struct {
		opts Options
		w, h int
	}{
		{Options{Width: 1920, Height: 1080}, 1920, 1080},
		{Options{Width: 1920, Height: 1080, PixelScale: 1}, 1920, 1080},
		{Options{Width: 1920, Height: 1080, PixelScale: 8}, 240, 135},
		{Options{Width: 4, Height: 4, PixelScale: 16}, 1, 1},
	}
	for _, tt := range tests {
		w, h := tt.opts.TargetSize()
		assert.Equal(t, tt.w, w)
		assert.Equal(t, tt.h, h)
	}
}

func TestPack(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		src := solid(3, 2, red)
		canvas, used := Pack(10, 8, src, nil)

		assert.Equal(t, image.Rect(0, 0, 10, 8), canvas.Bounds())
		assert.Equal(t, image.Rect(0, 0, 3, 2), used)
		assert.Equal(t, red, canvas.RGBAAt(2, 1))
		assert.Equal(t, color.RGBA{}, canvas.RGBAAt(3, 1))
	})

	t.Run("sub image origin", func(t *testing.T) {
		src := solid(6, 6, blue).SubImage(image.Rect(2, 2, 4, 4))
		canvas, used := Pack(4, 4, src, nil)
		assert.Equal(t, image.Rect(0, 0, 2, 2), used)
		assert.Equal(t, blue, canvas.RGBAAt(0, 0))
	})

	t.Run("scaled down keeps aspect", func(t *testing.T) {
		src := solid(200, 100, green)
		canvas, used := Pack(50, 50, src, nil)
		assert.Equal(t, image.Rect(0, 0, 50, 25), used)
		assert.Equal(t, green, canvas.RGBAAt(49, 24))
		assert.Equal(t, color.RGBA{}, canvas.RGBAAt(0, 25))
	})
}

func TestMapImage(t *testing.T) {
	m := testMap(t)

	img, err := MapImage(m, 8, 6)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
	assert.Equal(t, uint8(1), img.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(0), img.RGBAAt(2, 2).R)
	assert.Equal(t, uint8(2), img.RGBAAt(4, 2).R)
	assert.Equal(t, uint8(255), img.RGBAAt(4, 2).A)
	assert.Equal(t, uint8(0), img.RGBAAt(6, 0).A)

	_, err = MapImage(m, 4, 8)
	assert.ErrorIs(t, err, ErrMapTooLarge)
}

func TestLevelLayout(t *testing.T) {
	m := testMap(t)
	base := Layout{Sheet: image.Rect(0, 0, 8, 4), SheetCols: 2, SheetRows: 1}

	layout, img, err := levelLayout(base, m, 8, 6)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(m.Width, m.Height), layout.MapSize)
	assert.Equal(t, raycast.MaxSteps(m), layout.MaxSteps)
	assert.Equal(t, base.Sheet, layout.Sheet, "texture packing is kept")

	cells := m.Pixels()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			assert.Equal(t, cells[y*m.Width+x], img.RGBAAt(x, y).R)
		}
	}

	t.Run("too many steps for the shader", func(t *testing.T) {
		wide, err := grid.New(200, 60, make([]uint8, 200*60))
		require.NoError(t, err)
		got, _, err := levelLayout(base, wide, 320, 180)
		assert.ErrorIs(t, err, ErrMapTooLarge)
		assert.Equal(t, base, got)
	})

	t.Run("larger than the target", func(t *testing.T) {
		_, _, err := levelLayout(base, m, 4, 4)
		assert.ErrorIs(t, err, ErrMapTooLarge)
	})
}

func TestUniforms(t *testing.T) {
	cam := raycast.Camera{Pos: mgl64.Vec2{2.5, 3.5}, Angle: -math.Pi / 2, FOV: math.Pi / 3}
	layout := Layout{
		MapSize:   image.Pt(16, 12),
		MaxSteps:  30,
		Sheet:     image.Rect(0, 0, 256, 128),
		SheetCols: 4,
		SheetRows: 2,
		Overlay:   image.Rect(0, 0, 480, 270),
		Sky:       image.Rect(0, 0, 1024, 256),
	}

	u := NewUniforms(cam, 640, 360, layout)
	assert.Equal(t, [2]float32{640, 360}, u.Resolution)
	assert.Equal(t, [2]float32{2.5, 3.5}, u.PlayerPos)
	assert.InDelta(t, 3*math.Pi/2, float64(u.PlayerAngle), 1e-6)
	assert.Equal(t, [2]float32{16, 12}, u.MapSize)
	assert.Equal(t, float32(30), u.MaxSteps)
	assert.Equal(t, [2]float32{256, 128}, u.SheetSize)
	assert.Equal(t, float32(4), u.SheetCols)
	assert.Equal(t, [2]float32{1024, 256}, u.SkySize)
	assert.Equal(t, float32(SideShade), u.SideShade)

	m := u.Map()
	for _, name := range []string{
		"Resolution", "PlayerPos", "PlayerAngle", "FOV", "MapSize", "MaxSteps",
		"SheetSize", "SheetCols", "SheetRows", "OverlaySize", "SkySize",
		"SideShade", "FloorShade", "FloorColor",
	} {
		assert.Contains(t, m, name)
	}
	assert.Equal(t, []float32{2.5, 3.5}, m["PlayerPos"])

	layout.MaxSteps = 10_000
	assert.Equal(t, float32(ShaderSteps), NewUniforms(cam, 1, 1, layout).MaxSteps)
}

func TestSoftwareRender(t *testing.T) {
	m := testMap(t)
	sw := NewSoftware(m, testTextures())
	dst := image.NewRGBA(image.Rect(0, 0, 40, 30))

	t.Run("facing east sees tile 2", func(t *testing.T) {
		sw.Render(dst, raycast.Camera{Pos: mgl64.Vec2{2.5, 2.5}, Angle: 0, FOV: math.Pi / 3})

		// Wall 1.5 away on a 30px screen: 20px tall, rows 5..24.
		assert.Equal(t, green, dst.RGBAAt(20, 15))
		assert.Equal(t, green, dst.RGBAAt(20, 5))
		assert.Equal(t, blue, dst.RGBAAt(20, 4))
		assert.Equal(t, floorAt(25, 30), dst.RGBAAt(20, 25))
		assert.Equal(t, blue, dst.RGBAAt(20, 0))
	})

	t.Run("faces crossed along Y are shaded", func(t *testing.T) {
		sw.Render(dst, raycast.Camera{Pos: mgl64.Vec2{2.5, 2.5}, Angle: math.Pi / 2, FOV: math.Pi / 3})
		assert.Equal(t, color.RGBA{178, 0, 0, 255}, dst.RGBAAt(20, 15))
	})

	t.Run("standing in a wall fills the column", func(t *testing.T) {
		sw.Render(dst, raycast.Camera{Pos: mgl64.Vec2{0.5, 0.5}, Angle: 0, FOV: math.Pi / 3})
		assert.Equal(t, red, dst.RGBAAt(0, 0))
		assert.Equal(t, red, dst.RGBAAt(39, 29))
	})

	t.Run("offset destination", func(t *testing.T) {
		sub := image.NewRGBA(image.Rect(10, 10, 50, 40))
		sw.Render(sub, raycast.Camera{Pos: mgl64.Vec2{2.5, 2.5}, Angle: 0, FOV: math.Pi / 3})
		assert.Equal(t, green, sub.RGBAAt(30, 25))
	})

	t.Run("level swap", func(t *testing.T) {
		other, err := grid.Parse([]string{"11111", "1...1", "1...1", "1...1", "11111"})
		require.NoError(t, err)
		sw.SetLevel(other)
		defer sw.SetLevel(m)

		sw.Render(dst, raycast.Camera{Pos: mgl64.Vec2{2.5, 2.5}, Angle: 0, FOV: math.Pi / 3})
		assert.Equal(t, red, dst.RGBAAt(20, 15))
	})
}

func TestSoftwareOverlay(t *testing.T) {
	tex := testTextures()
	tex.Overlay = solid(2, 2, color.RGBA{255, 255, 255, 255})
	sw := NewSoftware(testMap(t), tex)

	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))
	sw.Render(dst, raycast.Camera{Pos: mgl64.Vec2{2.5, 2.5}, FOV: math.Pi / 3})
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(8, 8))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(0, 15))
}

func TestCompositing(t *testing.T) {
	assert.Equal(t, red, over(color.RGBA{}, red))
	assert.Equal(t, blue, over(blue, red))
	blended := over(color.RGBA{64, 0, 64, 128}, red)
	assert.InDelta(t, 64+127, int(blended.R), 1)
	assert.Equal(t, uint8(64), blended.B)
	assert.InDelta(t, 255, int(blended.A), 1)

	assert.Equal(t, color.RGBA{50, 100, 0, 255}, scale(color.RGBA{100, 200, 0, 255}, 0.5))
	assert.InDelta(t, FloorShadeMin, floorShade(15, 30), 1e-9)
	assert.InDelta(t, 1.0, floorShade(30, 30), 1e-9)
	assert.InDelta(t, FloorShadeMin, floorShade(0, 30), 1e-9)
}
