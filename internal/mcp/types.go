package mcp

// RectInput is an explicit window rectangle.
type RectInput struct {
	X      int `json:"x" jsonschema:"X of the top-left corner"`
	Y      int `json:"y" jsonschema:"Y of the top-left corner"`
	Width  int `json:"width" jsonschema:"Width in pixels"`
	Height int `json:"height" jsonschema:"Height in pixels"`
}

// AddWindowInput is the input for the add_window tool.
type AddWindowInput struct {
	ID         uint32     `json:"id" jsonschema:"required,Window identifier, unique and non-zero"`
	Floating   bool       `json:"floating,omitempty" jsonschema:"Place the window floating instead of tiled"`
	Fullscreen bool       `json:"fullscreen,omitempty" jsonschema:"Make the window eclipse the screen immediately"`
	Geometry   *RectInput `json:"geometry,omitempty" jsonschema:"Explicit rectangle; required for floating windows"`
}

// AddWindowOutput is the output for the add_window tool.
type AddWindowOutput struct {
	Workspace int         `json:"workspace"`
	State     LayoutState `json:"state"`
}

// RemoveWindowInput is the input for the remove_window tool.
type RemoveWindowInput struct {
	ID uint32 `json:"id" jsonschema:"required,Window identifier"`
}

// GetWindowsInput is the input for the get_windows tool.
type GetWindowsInput struct{}

// WindowSummary describes one managed window.
type WindowSummary struct {
	ID         uint32 `json:"id"`
	Workspace  int    `json:"workspace"`
	Mode       string `json:"mode"`
	Minimised  bool   `json:"minimised"`
	Fullscreen bool   `json:"fullscreen"`
}

// GetWindowsOutput is the output for the get_windows tool.
type GetWindowsOutput struct {
	Windows []WindowSummary `json:"windows"`
}

// GetLayoutInput is the input for the get_layout tool.
type GetLayoutInput struct{}

// LayoutEntry is one visible window in render order.
type LayoutEntry struct {
	ID     uint32 `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// LayoutState is the render state of the current workspace, returned by
// get_layout and by every mutating tool.
type LayoutState struct {
	Workspace int           `json:"workspace"`
	Focused   uint32        `json:"focused"`
	Entries   []LayoutEntry `json:"entries"`
}

// FocusWindowInput is the input for the focus_window tool.
type FocusWindowInput struct {
	ID uint32 `json:"id" jsonschema:"Window identifier; 0 clears focus"`
}

// CycleFocusInput is the input for the cycle_focus tool.
type CycleFocusInput struct {
	Direction string `json:"direction" jsonschema:"required,prev or next"`
}

// SwapWithMasterInput is the input for the swap_with_master tool.
type SwapWithMasterInput struct {
	ID uint32 `json:"id" jsonschema:"required,Window identifier"`
}

// SwapWindowsInput is the input for the swap_windows tool.
type SwapWindowsInput struct {
	Direction string `json:"direction" jsonschema:"required,prev or next"`
}

// ToggleFloatingInput is the input for the toggle_floating tool.
type ToggleFloatingInput struct {
	ID uint32 `json:"id" jsonschema:"required,Window identifier"`
}

// SetWindowGeometryInput is the input for the set_window_geometry tool.
type SetWindowGeometryInput struct {
	ID       uint32    `json:"id" jsonschema:"required,Window identifier"`
	Geometry RectInput `json:"geometry" jsonschema:"required,New rectangle"`
}

// ToggleMinimisedInput is the input for the toggle_minimised tool.
type ToggleMinimisedInput struct {
	ID uint32 `json:"id" jsonschema:"required,Window identifier"`
}

// ToggleFullscreenInput is the input for the toggle_fullscreen tool.
type ToggleFullscreenInput struct {
	ID uint32 `json:"id" jsonschema:"required,Window identifier"`
}

// SwitchWorkspaceInput is the input for the switch_workspace tool.
type SwitchWorkspaceInput struct {
	Index int `json:"index" jsonschema:"required,Workspace index, starting at 0"`
}

// ResizeScreenInput is the input for the resize_screen tool.
type ResizeScreenInput struct {
	Width  int `json:"width" jsonschema:"required,New screen width"`
	Height int `json:"height" jsonschema:"required,New screen height"`
}

// SetGapInput is the input for the set_gap tool.
type SetGapInput struct {
	Size int `json:"size" jsonschema:"required,Gap in pixels between tiles"`
}
