// Package ebiten connects the debug overlay to the Ebiten game loop through
// the cimgui-go Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten Dear ImGui backend. Store it as a world
// resource so the game loop can bracket the scheduler with BeginFrame and
// EndFrame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. Dear ImGui's ini file
// is disabled so window layout never leaks onto disk.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// Ready reports whether a backend is attached.
func (b ImguiBackend) Ready() bool {
	return b.EbitenBackend != nil
}
