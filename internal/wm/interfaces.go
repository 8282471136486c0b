package wm

import "github.com/1broseidon/layerwm/internal/geometry"

// Manager is the base capability every layer exposes. Operations that address
// a window return *UnknownWindowError when the window is not managed.
type Manager interface {
	// Windows lists every managed window, including minimized and
	// fullscreen ones.
	Windows() []WindowID
	// Managed reports whether id is in the managed set.
	Managed(id WindowID) bool
	// AddWindow brings a window under management. Adding an already
	// managed window is a no-op.
	AddWindow(info WindowInfo) error
	// RemoveWindow drops a window from management.
	RemoveWindow(id WindowID) error
	// Layout returns the visible windows back to front plus the focused
	// window.
	Layout() RenderLayout
	// FocusWindow moves focus to id. Passing None clears focus.
	FocusWindow(id WindowID) error
	// CycleFocus moves focus to the previous or next window. A no-op when
	// nothing is managed; never errors.
	CycleFocus(dir Direction)
	// WindowInfo returns the current descriptor for a managed window.
	WindowInfo(id WindowID) (WindowInfo, error)
	Screen() geometry.Screen
	ResizeScreen(screen geometry.Screen)
	// FocusedWindow returns the focused window, or None.
	FocusedWindow() WindowID
}

// TilingSupport covers operations on the tiled ordering.
type TilingSupport interface {
	// MasterWindow returns the current master tile, or None when no window
	// is tiled.
	MasterWindow() WindowID
	// SwapWithMaster exchanges id with the master tile and focuses id.
	SwapWithMaster(id WindowID) error
	// SwapWindows exchanges the focused tile with its neighbor, keeping
	// focus on the moved window. A no-op when focus is absent or floating.
	SwapWindows(dir Direction)
}

// FloatSupport covers windows with explicit geometry.
type FloatSupport interface {
	// FloatingWindows lists floating windows in insertion order.
	FloatingWindows() []WindowID
	// ToggleFloating flips a window between tiled and floating.
	ToggleFloating(id WindowID) error
	// SetWindowGeometry records an explicit rectangle for a window. It is
	// applied immediately for floating windows and stored for tiled ones.
	SetWindowGeometry(id WindowID, geom geometry.Rect) error
}

// MinimiseSupport parks windows outside the visible layout.
type MinimiseSupport interface {
	// MinimisedWindows lists minimized windows oldest first.
	MinimisedWindows() []WindowID
	Minimised(id WindowID) bool
	// ToggleMinimised hides a visible window or restores a minimized one
	// with the descriptor it was hidden with.
	ToggleMinimised(id WindowID) error
}

// FullscreenSupport lets a single window eclipse the whole screen.
type FullscreenSupport interface {
	// FullscreenWindow returns the eclipsing window, or None.
	FullscreenWindow() WindowID
	ToggleFullscreen(id WindowID) error
}

// GapSupport adjusts the inset between tiles at runtime.
type GapSupport interface {
	Gap() int
	SetGap(size int)
}

// WorkspaceSupport routes between independent layer stacks.
type WorkspaceSupport interface {
	CurrentWorkspace() int
	// Workspace returns the stack at the given index.
	Workspace(index int) (*Fullscreen, error)
	SwitchWorkspace(index int) error
}

var (
	_ Manager           = (*Tiling)(nil)
	_ TilingSupport     = (*Tiling)(nil)
	_ GapSupport        = (*Tiling)(nil)
	_ FloatSupport      = (*Floater)(nil)
	_ MinimiseSupport   = (*Minimizer)(nil)
	_ FullscreenSupport = (*Fullscreen)(nil)
	_ Manager           = (*Router)(nil)
	_ TilingSupport     = (*Router)(nil)
	_ FloatSupport      = (*Router)(nil)
	_ MinimiseSupport   = (*Router)(nil)
	_ FullscreenSupport = (*Router)(nil)
	_ GapSupport        = (*Router)(nil)
	_ WorkspaceSupport  = (*Router)(nil)
)
