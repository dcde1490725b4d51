package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/raycaster/grid"
)

// minDistance keeps projected wall heights finite when the eye touches a wall.
const minDistance = 1e-4

type Side uint8

const (
	SideNone Side = iota
	// SideX is a wall face crossed while stepping along X (a vertical grid line).
	SideX
	// SideY is a wall face crossed while stepping along Y.
	SideY
)

func (s Side) String() string {
	switch s {
	case SideX:
		return "x"
	case SideY:
		return "y"
	}
	return "none"
}

type Hit struct {
	Tile uint8
	Cell [2]int
	Side Side
	// Distance is measured along the camera direction, not along the ray, so
	// walls do not bend at the edges of the screen.
	Distance float64
	Point    mgl64.Vec2
	// TexU is the horizontal texture coordinate on the wall face, in [0, 1).
	TexU  float64
	Steps int
}

func (h Hit) OK() bool {
	return h.Tile != grid.Empty
}

// Sheet returns the wall sheet index of the hit tile.
func (h Hit) Sheet() int {
	return int(h.Tile) - 1
}

// MaxSteps is the longest DDA walk that can stay inside m.
func MaxSteps(m *grid.Map) int {
	return m.Width + m.Height + 2
}

func deltaDist(d float64) float64 {
	if d == 0 {
		return math.Inf(1)
	}
	return math.Abs(1 / d)
}

// Cast walks the grid from origin along dir until it enters a wall cell,
// leaves the map or takes maxSteps steps. A ray that starts inside a wall
// hits it at distance zero.
func Cast(m *grid.Map, origin, dir mgl64.Vec2, maxSteps int) Hit {
	return Trace(m, origin, dir, maxSteps, nil)
}

// Trace is Cast that also calls visit for every empty cell the ray passes
// through, starting with the origin cell, in order.
func Trace(m *grid.Map, origin, dir mgl64.Vec2, maxSteps int, visit func(x, y int)) Hit {
	mapX := int(math.Floor(origin.X()))
	mapY := int(math.Floor(origin.Y()))

	if !m.InBounds(mapX, mapY) {
		return Hit{}
	}
	if tile := m.At(mapX, mapY); tile != grid.Empty {
		return Hit{Tile: tile, Cell: [2]int{mapX, mapY}, Point: origin}
	}
	if visit != nil {
		visit(mapX, mapY)
	}
	if dir.X() == 0 && dir.Y() == 0 {
		return Hit{}
	}

	deltaX := deltaDist(dir.X())
	deltaY := deltaDist(dir.Y())

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dir.X() < 0 {
		stepX = -1
		sideDistX = (origin.X() - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - origin.X()) * deltaX
	}
	if dir.Y() < 0 {
		stepY = -1
		sideDistY = (origin.Y() - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - origin.Y()) * deltaY
	}

	for steps := 1; steps <= maxSteps; steps++ {
		var side Side
		if sideDistX < sideDistY {
			sideDistX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideDistY += deltaY
			mapY += stepY
			side = SideY
		}

		if !m.InBounds(mapX, mapY) {
			return Hit{Steps: steps}
		}
		tile := m.At(mapX, mapY)
		if tile == grid.Empty {
			if visit != nil {
				visit(mapX, mapY)
			}
			continue
		}

		var dist float64
		if side == SideX {
			dist = sideDistX - deltaX
		} else {
			dist = sideDistY - deltaY
		}
		point := origin.Add(dir.Mul(dist))

		return Hit{
			Tile:     tile,
			Cell:     [2]int{mapX, mapY},
			Side:     side,
			Distance: dist,
			Point:    point,
			TexU:     texU(side, point, dir),
			Steps:    steps,
		}
	}

	return Hit{Steps: maxSteps}
}

// texU keeps textures reading left to right from whichever side a face is seen.
func texU(side Side, point, dir mgl64.Vec2) float64 {
	var u float64
	if side == SideX {
		u = point.Y() - math.Floor(point.Y())
		if dir.X() < 0 {
			u = 1 - u
		}
	} else {
		u = point.X() - math.Floor(point.X())
		if dir.Y() > 0 {
			u = 1 - u
		}
	}
	// A flipped hit on a cell edge lands on 1, which is the next face's 0.
	if u >= 1 {
		u = 0
	}
	return u
}

// Column projects a hit onto a screen of the given height. top and bottom are
// clamped to the screen (bottom is exclusive); height is the unclamped slice
// height in pixels.
func Column(hit Hit, screenHeight int) (top, bottom int, height float64) {
	dist := math.Max(hit.Distance, minDistance)
	height = float64(screenHeight) / dist
	half := float64(screenHeight) / 2

	top = int(math.Floor(half - height/2))
	bottom = int(math.Ceil(half + height/2))
	top = max(top, 0)
	bottom = min(bottom, screenHeight)
	return top, bottom, height
}

// Visible casts rays evenly across the camera's field of view.
func Visible(m *grid.Map, cam Camera, rays int) []Hit {
	hits := make([]Hit, rays)
	maxSteps := MaxSteps(m)
	for i := range rays {
		hits[i] = Cast(m, cam.Pos, cam.RayDir(i, rays), maxSteps)
	}
	return hits
}
