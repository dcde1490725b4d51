// Package engine runs the per-frame systems of the raycaster over a world of
// typed resources (player pose, tile map, frame statistics, ...).
//
// Systems are plain structs with an Execute method. Exported Resource[T]
// fields on a system are wired to the world when the system is registered
// with a Scheduler, so systems never look resources up by hand.
package engine

import (
	"hash/fnv"
	"reflect"
)

// Registry assigns each resource type a stable id.
type Registry struct {
	ids   map[reflect.Type]uint32
	types map[uint32]reflect.Type
}

func NewRegistry() *Registry {
	return &Registry{
		ids:   make(map[reflect.Type]uint32),
		types: make(map[uint32]reflect.Type),
	}
}

// RegisterResource registers T and returns its id. Registering the same type
// twice returns the same id.
func RegisterResource[T any](r *Registry) uint32 {
	return r.register(reflect.TypeFor[T]())
}

func (r *Registry) register(t reflect.Type) uint32 {
	if t.Kind() == reflect.Ptr || t.Kind() == reflect.Interface {
		panic("resources must be value types, got " + t.String())
	}
	if id, ok := r.ids[t]; ok {
		return id
	}

	id := hashType(t)
	for {
		if _, taken := r.types[id]; !taken {
			break
		}
		// Probe past hash collisions between distinct types.
		id++
	}

	r.ids[t] = id
	r.types[id] = t
	return id
}

func (r *Registry) lookup(t reflect.Type) (uint32, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// Len returns the number of registered resource types.
func (r *Registry) Len() int {
	return len(r.ids)
}

// hashType is FNV-1a over the package path and name of t.
func hashType(t reflect.Type) uint32 {
	h := fnv.New32a()
	h.Write([]byte(t.PkgPath()))
	h.Write([]byte{'.'})
	h.Write([]byte(t.String()))
	return h.Sum32()
}
