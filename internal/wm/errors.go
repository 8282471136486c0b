package wm

import "fmt"

// UnknownWindowError reports an operation that addressed a window the engine
// does not manage. Layers pass it through unchanged, so callers see the same
// error no matter how deep the stack is.
type UnknownWindowError struct {
	Window WindowID
}

func (e *UnknownWindowError) Error() string {
	return fmt.Sprintf("unknown window %d", e.Window)
}

// UnknownWorkspaceError reports an out-of-range workspace index.
type UnknownWorkspaceError struct {
	Index int
}

func (e *UnknownWorkspaceError) Error() string {
	return fmt.Sprintf("unknown workspace %d", e.Index)
}

func errUnknownWindow(id WindowID) error {
	return &UnknownWindowError{Window: id}
}
