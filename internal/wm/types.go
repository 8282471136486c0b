// Package wm implements the layered window-layout engine. Each layer owns one
// concern (tiling, floating, minimizing, fullscreen, workspaces) and wraps the
// next layer down, delegating everything outside its concern.
package wm

import "github.com/1broseidon/layerwm/internal/geometry"

// WindowID identifies a managed window. IDs are assigned by the caller and
// must be unique across the managed set. The zero value means "no window",
// following the X11 convention.
type WindowID uint32

// None is the WindowID used when no window is addressed or focused.
const None WindowID = 0

// Mode says whether a window is placed by the tiling strategy or keeps an
// explicit caller-provided geometry.
type Mode int

const (
	Tiled Mode = iota
	Floating
)

func (m Mode) String() string {
	if m == Floating {
		return "floating"
	}
	return "tiled"
}

// Direction selects a neighbor when cycling focus or swapping tiles.
type Direction int

const (
	Prev Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Next {
		return "next"
	}
	return "prev"
}

// WindowInfo is the descriptor exchanged when adding a window or reading its
// current state. Geometry is the explicit rectangle for floating windows and
// the computed tile rectangle for tiled ones.
type WindowInfo struct {
	ID         WindowID
	Geometry   geometry.Rect
	Mode       Mode
	Fullscreen bool
}

// Entry pairs a window with its on-screen rectangle.
type Entry struct {
	ID       WindowID
	Geometry geometry.Rect
}

// RenderLayout is what a renderer consumes: the visible windows back to
// front, and the window holding input focus (None when nothing is focused).
// Minimized windows never appear in Entries.
type RenderLayout struct {
	Entries []Entry
	Focused WindowID
}
