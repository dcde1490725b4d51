package engine

import "reflect"

// Commands buffers world changes and callbacks until every system of the
// frame has run.
type Commands struct {
	ops []func(world *World)
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run after the frame's systems.
func (c *Commands) Defer(fn func()) {
	c.ops = append(c.ops, func(*World) { fn() })
}

// Set queues a resource replacement.
func (c *Commands) Set(value any) {
	c.ops = append(c.ops, func(world *World) { world.Set(value) })
}

// Remove queues removal of the resource of type t.
func (c *Commands) Remove(t reflect.Type) {
	c.ops = append(c.ops, func(world *World) { world.Remove(t) })
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.ops)
}

// Flush applies the queued operations in the order they were queued and
// resets the buffer. Operations queued while flushing run in the same flush.
func (c *Commands) Flush(world *World) {
	for i := 0; i < len(c.ops); i++ {
		c.ops[i](world)
	}
	clear(c.ops)
	c.ops = c.ops[:0]
}
