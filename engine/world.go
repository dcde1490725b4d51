package engine

import (
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

type resourceEntry struct {
	typ     reflect.Type
	value   reflect.Value // pointer to the stored T
	removed bool
}

// World holds at most one value of each registered resource type. Values
// live at a fixed address for as long as they are in the world, so
// pointers handed out by Get stay valid across Set.
type World struct {
	registry  *Registry
	resources *intmap.Map[uint32, *resourceEntry]
}

func NewWorld(registry *Registry) *World {
	return &World{
		registry:  registry,
		resources: intmap.New[uint32, *resourceEntry](32),
	}
}

func (w *World) Registry() *Registry {
	return w.registry
}

// Set stores value, replacing any previous value of the same type in place.
// It panics if the type was never registered.
func (w *World) Set(value any) {
	t := reflect.TypeOf(value)
	if t == nil {
		panic("cannot store a nil resource")
	}
	id, ok := w.registry.lookup(t)
	if !ok {
		panic("resource type " + t.String() + " not registered")
	}

	if entry, ok := w.resources.Get(id); ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	w.resources.Put(id, &resourceEntry{typ: t, value: ptr})
}

// Remove drops the resource of type t. Pointers obtained earlier keep the
// last value but are no longer seen by the world.
func (w *World) Remove(t reflect.Type) bool {
	id, ok := w.registry.lookup(t)
	if !ok {
		return false
	}
	entry, ok := w.resources.Get(id)
	if !ok {
		return false
	}
	entry.removed = true
	return w.resources.Del(id)
}

func (w *World) entry(t reflect.Type) *resourceEntry {
	id, ok := w.registry.lookup(t)
	if !ok {
		return nil
	}
	entry, ok := w.resources.Get(id)
	if !ok {
		return nil
	}
	return entry
}

// Read points *target at the stored resource. target must be a **T.
// It reports whether the resource exists.
func (w *World) Read(target any) bool {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Ptr {
		panic("Read needs a pointer to a pointer")
	}
	entry := w.entry(ptr.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	ptr.Elem().Set(entry.value)
	return true
}

// Get returns the stored T, or nil.
func Get[T any](w *World) *T {
	entry := w.entry(reflect.TypeFor[T]())
	if entry == nil {
		return nil
	}
	return entry.value.Interface().(*T)
}

// Len returns the number of stored resources.
func (w *World) Len() int {
	return w.resources.Len()
}

// WorldStats summarises the world for the debug UI.
type WorldStats struct {
	ResourceCount   int
	RegisteredCount int
	ResourceTypes   []string
}

func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		ResourceCount:   w.resources.Len(),
		RegisteredCount: w.registry.Len(),
		ResourceTypes:   make([]string, 0, w.resources.Len()),
	}
	w.resources.ForEach(func(_ uint32, entry *resourceEntry) bool {
		stats.ResourceTypes = append(stats.ResourceTypes, entry.typ.String())
		return true
	})
	sort.Strings(stats.ResourceTypes)
	return stats
}

// Each calls fn with a pointer to every stored resource, ordered by type
// name. Returning false stops the walk.
func (w *World) Each(fn func(t reflect.Type, value any) bool) {
	entries := make([]*resourceEntry, 0, w.resources.Len())
	w.resources.ForEach(func(_ uint32, entry *resourceEntry) bool {
		entries = append(entries, entry)
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].typ.String() < entries[j].typ.String()
	})
	for _, entry := range entries {
		if !fn(entry.typ, entry.value.Interface()) {
			return
		}
	}
}
