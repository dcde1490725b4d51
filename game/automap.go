package game

import (
	"image"
	"image/color"
	"math"

	"github.com/kamstrup/intmap"

	"github.com/plus3/raycaster/grid"
	"github.com/plus3/raycaster/player"
	"github.com/plus3/raycaster/raycast"
)

// Automap remembers which cells the player has seen. Cells are keyed by
// their index in the map; the value is the tile that was seen there.
type Automap struct {
	Width, Height int
	// Look is what the centre of the view points at.
	Look    raycast.Hit
	Visible bool

	cells     *intmap.Map[uint32, uint8]
	openSeen  int
	openTotal int
}

func NewAutomap(m *grid.Map) Automap {
	return Automap{
		Width:     m.Width,
		Height:    m.Height,
		cells:     intmap.New[uint32, uint8](m.Width * m.Height / 4),
		openTotal: m.EmptyCount(),
	}
}

// Mark records that cell (x, y) of m has been seen.
func (a *Automap) Mark(m *grid.Map, x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	key := uint32(m.Index(x, y))
	if a.cells.Has(key) {
		return
	}
	tile := m.At(x, y)
	a.cells.Put(key, tile)
	if tile == grid.Empty {
		a.openSeen++
	}
}

func (a *Automap) Seen(x, y int) bool {
	if x < 0 || y < 0 || x >= a.Width || y >= a.Height {
		return false
	}
	return a.cells.Has(uint32(y*a.Width + x))
}

// SeenCells returns how many cells, walls included, have been seen.
func (a *Automap) SeenCells() int {
	return a.cells.Len()
}

// SeenOpen returns how many empty cells have been seen.
func (a *Automap) SeenOpen() int {
	return a.openSeen
}

func (a *Automap) OpenCells() int {
	return a.openTotal
}

// Reveal casts rays rays across cam's view and marks every cell they pass
// through or stop at. It also updates Look.
func (a *Automap) Reveal(m *grid.Map, cam raycast.Camera, rays int) {
	maxSteps := raycast.MaxSteps(m)
	mark := func(x, y int) { a.Mark(m, x, y) }

	for i := 0; i < rays; i++ {
		hit := raycast.Trace(m, cam.Pos, cam.RayDir(i, rays), maxSteps, mark)
		if hit.OK() {
			a.Mark(m, hit.Cell[0], hit.Cell[1])
		}
	}

	a.Look = raycast.Trace(m, cam.Pos, cam.Dir(), maxSteps, mark)
	if a.Look.OK() {
		a.Mark(m, a.Look.Cell[0], a.Look.Cell[1])
	}
}

var (
	automapFloor  = color.RGBA{40, 40, 48, 220}
	automapWall   = color.RGBA{180, 170, 150, 240}
	automapPlayer = color.RGBA{230, 40, 40, 255}
)

// Image draws the seen part of the map with cell x cell pixels per cell and
// marks pose with a dot and a heading tick.
func (a *Automap) Image(cell int, pose player.Pose) *image.RGBA {
	cell = max(cell, 1)
	img := image.NewRGBA(image.Rect(0, 0, a.Width*cell, a.Height*cell))

	a.cells.ForEach(func(key uint32, tile uint8) bool {
		x, y := int(key)%a.Width, int(key)/a.Width
		c := automapFloor
		if tile != grid.Empty {
			c = automapWall
		}
		for py := y * cell; py < (y+1)*cell; py++ {
			for px := x * cell; px < (x+1)*cell; px++ {
				img.SetRGBA(px, py, c)
			}
		}
		return true
	})

	cx := pose.Pos.X() * float64(cell)
	cy := pose.Pos.Y() * float64(cell)
	r := max(cell/4, 1)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			img.SetRGBA(int(cx)+dx, int(cy)+dy, automapPlayer)
		}
	}
	for i := 0; i <= cell; i++ {
		px := cx + math.Cos(pose.Angle)*float64(i)
		py := cy + math.Sin(pose.Angle)*float64(i)
		img.SetRGBA(int(px), int(py), automapPlayer)
	}
	return img
}
