package render

import (
	"image"

	"github.com/plus3/raycaster/raycast"
)

// Image slots of the shader pass.
const (
	SlotMap = iota
	SlotSheet
	SlotOverlay
	SlotSky
)

// Layout describes the packed source images: the map dimensions and the
// rectangle each texture occupies in its canvas.
type Layout struct {
	MapSize   image.Point
	MaxSteps  int
	Sheet     image.Rectangle
	SheetCols int
	SheetRows int
	Overlay   image.Rectangle
	Sky       image.Rectangle
}

// Uniforms is everything the shader reads besides its images.
type Uniforms struct {
	Resolution  [2]float32
	PlayerPos   [2]float32
	PlayerAngle float32
	FOV         float32
	MapSize     [2]float32
	MaxSteps    float32
	SheetSize   [2]float32
	SheetCols   float32
	SheetRows   float32
	OverlaySize [2]float32
	SkySize     [2]float32
	SideShade   float32
	FloorShade  float32
	FloorColor  [3]float32
}

func NewUniforms(cam raycast.Camera, width, height int, layout Layout) Uniforms {
	return Uniforms{
		Resolution:  [2]float32{float32(width), float32(height)},
		PlayerPos:   [2]float32{float32(cam.Pos.X()), float32(cam.Pos.Y())},
		PlayerAngle: float32(raycast.NormalizeAngle(cam.Angle)),
		FOV:         float32(cam.FOV),
		MapSize:     [2]float32{float32(layout.MapSize.X), float32(layout.MapSize.Y)},
		MaxSteps:    float32(min(layout.MaxSteps, ShaderSteps)),
		SheetSize:   sizeOf(layout.Sheet),
		SheetCols:   float32(max(layout.SheetCols, 1)),
		SheetRows:   float32(max(layout.SheetRows, 1)),
		OverlaySize: sizeOf(layout.Overlay),
		SkySize:     sizeOf(layout.Sky),
		SideShade:   SideShade,
		FloorShade:  FloorShadeMin,
		FloorColor: [3]float32{
			float32(FloorColor.R) / 255,
			float32(FloorColor.G) / 255,
			float32(FloorColor.B) / 255,
		},
	}
}

func sizeOf(r image.Rectangle) [2]float32 {
	return [2]float32{float32(r.Dx()), float32(r.Dy())}
}

// Map returns the uniforms keyed by their shader names.
func (u Uniforms) Map() map[string]any {
	return map[string]any{
		"Resolution":  u.Resolution[:],
		"PlayerPos":   u.PlayerPos[:],
		"PlayerAngle": u.PlayerAngle,
		"FOV":         u.FOV,
		"MapSize":     u.MapSize[:],
		"MaxSteps":    u.MaxSteps,
		"SheetSize":   u.SheetSize[:],
		"SheetCols":   u.SheetCols,
		"SheetRows":   u.SheetRows,
		"OverlaySize": u.OverlaySize[:],
		"SkySize":     u.SkySize[:],
		"SideShade":   u.SideShade,
		"FloorShade":  u.FloorShade,
		"FloorColor":  u.FloorColor[:],
	}
}
