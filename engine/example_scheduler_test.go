package engine_test

import (
	"fmt"

	"github.com/plus3/raycaster/engine"
)

type Heading struct {
	Degrees float64
}

type SpinSystem struct {
	Heading engine.Resource[Heading]
	Rate    float64
}

func (s *SpinSystem) Execute(frame *engine.UpdateFrame) {
	h := s.Heading.Get()
	h.Degrees += s.Rate * frame.DeltaTime
	if h.Degrees >= 360 {
		h.Degrees -= 360
	}
}

// ExampleScheduler wires a system's Resource fields to the world on
// registration and runs it for a few fixed-length frames.
func ExampleScheduler() {
	registry := engine.NewRegistry()
	engine.RegisterResource[Heading](registry)

	world := engine.NewWorld(registry)
	world.Set(Heading{Degrees: 300})

	scheduler := engine.NewScheduler(world)
	scheduler.Register(&SpinSystem{Rate: 90})

	for range 4 {
		scheduler.Once(0.25)
	}

	fmt.Printf("heading: %.1f\n", engine.Get[Heading](world).Degrees)
	fmt.Printf("frames: %d\n", scheduler.GetStats().Frames)
	// Output:
	// heading: 30.0
	// frames: 4
}
