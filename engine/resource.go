package engine

import "reflect"

// Resource is a cached accessor for the world's T. Declare it as an
// exported field of a system and the Scheduler initialises it.
type Resource[T any] struct {
	world *World
	entry *resourceEntry
}

// NewResource returns an accessor for T, storing initializer (or the zero
// value) first if the world does not hold a T yet.
func NewResource[T any](world *World, initializer ...T) *Resource[T] {
	if Get[T](world) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		world.Set(value)
	}

	r := &Resource[T]{}
	r.Init(world)
	return r
}

// Init binds the accessor to a world. Called by Scheduler.Register.
func (r *Resource[T]) Init(world *World) {
	r.world = world
	r.entry = world.entry(reflect.TypeFor[T]())
}

// Get returns the resource, or nil when the world does not hold one.
func (r *Resource[T]) Get() *T {
	if r.world == nil {
		return nil
	}
	if r.entry == nil || r.entry.removed {
		r.entry = r.world.entry(reflect.TypeFor[T]())
	}
	if r.entry == nil {
		return nil
	}
	return r.entry.value.Interface().(*T)
}

func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}

// Set replaces the resource value immediately.
func (r *Resource[T]) Set(value T) {
	r.world.Set(value)
	r.entry = r.world.entry(reflect.TypeFor[T]())
}

// Type returns the reflect type of T.
func (r *Resource[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}
