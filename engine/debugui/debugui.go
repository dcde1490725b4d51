// Package debugui provides the Dear ImGui overlay for the raycaster. Windows
// are ImguiItem render functions stored in the world; ImguiSystem queues them
// every frame so they run after all other systems have updated.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/raycaster/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// ImguiItems is the resource listing every window to draw.
type ImguiItems struct {
	Items  []ImguiItem
	Hidden bool
}

// Add appends an item.
func (i *ImguiItems) Add(name string, render func()) {
	i.Items = append(i.Items, ImguiItem{Name: name, Render: render})
}

// Toggle flips visibility and returns the new state.
func (i *ImguiItems) Toggle() bool {
	i.Hidden = !i.Hidden
	return !i.Hidden
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Input systems consult it before acting on events.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Register adds the debugui resource types to a registry.
func Register(registry *engine.Registry) {
	engine.RegisterResource[ImguiItems](registry)
	engine.RegisterResource[ImguiInputState](registry)
}

// ImguiSystem defers every item's render function and refreshes the
// ImguiInputState resource. It must run between the backend's BeginFrame
// and EndFrame.
type ImguiSystem struct {
	Items      engine.Resource[ImguiItems]
	InputState engine.Resource[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	items := i.Items.Get()
	if items == nil || items.Hidden {
		return
	}
	for _, item := range items.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
