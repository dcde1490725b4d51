// Package grid holds the tile map the raycaster marches through.
//
// Cells are stored row-major, one byte per cell. Tile 0 is empty space and
// tiles 1..255 are walls; a wall's index into the wall sheet is tile-1.
package grid

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMap         = errors.New("grid: map has no cells")
	ErrRaggedRow        = errors.New("grid: rows have different lengths")
	ErrBadTile          = errors.New("grid: unknown tile character")
	ErrSpawnOutOfBounds = errors.New("grid: spawn is outside the map")
	ErrSpawnBlocked     = errors.New("grid: spawn is inside a wall")
)

const Empty uint8 = 0

type Map struct {
	Width  int
	Height int
	cells  []uint8
}

// New copies cells into a new map. len(cells) must be width*height.
func New(width, height int, cells []uint8) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyMap
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("grid: %d cells for a %dx%d map", len(cells), width, height)
	}

	m := &Map{
		Width:  width,
		Height: height,
		cells:  make([]uint8, len(cells)),
	}
	copy(m.cells, cells)
	return m, nil
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// At returns the tile at (x, y), or Empty outside the map.
func (m *Map) At(x, y int) uint8 {
	if !m.InBounds(x, y) {
		return Empty
	}
	return m.cells[y*m.Width+x]
}

// Solid reports whether (x, y) blocks movement. Everything outside the map is solid.
func (m *Map) Solid(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.cells[y*m.Width+x] != Empty
}

func (m *Map) Set(x, y int, tile uint8) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[y*m.Width+x] = tile
}

// Index returns the row-major cell index of (x, y).
func (m *Map) Index(x, y int) int {
	return y*m.Width + x
}

// Pixels returns one byte per cell in row-major order, the layout uploaded
// to the GPU as a single-channel texture.
func (m *Map) Pixels() []byte {
	out := make([]byte, len(m.cells))
	copy(out, m.cells)
	return out
}

// MaxTile returns the largest tile value present in the map.
func (m *Map) MaxTile() uint8 {
	var maxTile uint8
	for _, c := range m.cells {
		if c > maxTile {
			maxTile = c
		}
	}
	return maxTile
}

// EmptyCount returns the number of walkable cells.
func (m *Map) EmptyCount() int {
	n := 0
	for _, c := range m.cells {
		if c == Empty {
			n++
		}
	}
	return n
}
