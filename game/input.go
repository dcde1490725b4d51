package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/raycaster/engine"
	"github.com/plus3/raycaster/engine/debugui"
	"github.com/plus3/raycaster/player"
)

// InputSource is the slice of the windowing layer the input system reads.
type InputSource interface {
	KeyPressed(key ebiten.Key) bool
	CursorPosition() (int, int)
	Focused() bool
}

type ebitenInput struct{}

func (ebitenInput) KeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }
func (ebitenInput) CursorPosition() (int, int)     { return ebiten.CursorPosition() }
func (ebitenInput) Focused() bool                  { return ebiten.IsFocused() }

// EbitenInput reads the live ebiten window.
func EbitenInput() InputSource {
	return ebitenInput{}
}

// InputSystem turns keyboard and cursor state into Controls.Input. Input is
// ignored while the window is unfocused; the cursor only turns the player
// while it is captured, and keys are left to Dear ImGui when it wants them.
type InputSystem struct {
	Controls   engine.Resource[Controls]
	ImguiInput engine.Resource[debugui.ImguiInputState]
	Source     InputSource

	lastX    int
	tracking bool
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	controls := s.Controls.Get()
	if controls == nil || s.Source == nil {
		return
	}

	var in player.Input
	if !s.Source.Focused() {
		controls.Input = in
		s.tracking = false
		return
	}

	imgui := s.ImguiInput.Get()
	if imgui == nil || !imgui.WantCaptureKeyboard {
		key := s.Source.KeyPressed
		in.Forward = key(ebiten.KeyW) || key(ebiten.KeyArrowUp)
		in.Back = key(ebiten.KeyS) || key(ebiten.KeyArrowDown)
		in.StrafeLeft = key(ebiten.KeyA)
		in.StrafeRight = key(ebiten.KeyD)
		in.TurnLeft = key(ebiten.KeyArrowLeft) || key(ebiten.KeyQ)
		in.TurnRight = key(ebiten.KeyArrowRight) || key(ebiten.KeyE)
	}

	if controls.Captured {
		x, _ := s.Source.CursorPosition()
		if s.tracking {
			in.MouseDX = float64(x - s.lastX)
		}
		s.lastX = x
		s.tracking = true
	} else {
		s.tracking = false
	}

	controls.Input = in
}
