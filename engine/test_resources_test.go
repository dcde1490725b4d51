package engine_test

import "github.com/plus3/raycaster/engine"

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Counter struct {
	N int
}

func newTestWorld() *engine.World {
	registry := engine.NewRegistry()
	engine.RegisterResource[Position](registry)
	engine.RegisterResource[Velocity](registry)
	engine.RegisterResource[Counter](registry)
	return engine.NewWorld(registry)
}
