package grid

import (
	"fmt"
	"strings"
)

// Parse builds a map from text rows, one character per cell:
// '.', '0' and ' ' are empty, '1'-'9' are tiles 1-9 and 'a'-'z' are tiles 10-35.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(rows[0])
	cells := make([]uint8, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, y, len(row), width)
		}
		for x, ch := range []byte(row) {
			tile, ok := TileFromChar(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadTile, ch, x, y)
			}
			cells = append(cells, tile)
		}
	}

	return New(width, len(rows), cells)
}

func TileFromChar(ch byte) (uint8, bool) {
	switch {
	case ch == '.' || ch == '0' || ch == ' ':
		return Empty, true
	case ch >= '1' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 10, true
	}
	return 0, false
}

func CharFromTile(tile uint8) byte {
	switch {
	case tile == Empty:
		return '.'
	case tile <= 9:
		return '0' + tile
	case tile <= 35:
		return 'a' + tile - 10
	}
	return '?'
}

// String renders the map back into the row format accepted by Parse.
func (m *Map) String() string {
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			b.WriteByte(CharFromTile(m.At(x, y)))
		}
		if y < m.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
