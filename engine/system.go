package engine

// System is one step of the frame. Systems may keep their own state in
// fields; it persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
