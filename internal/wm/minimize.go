package wm

import (
	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/layout"
)

// Minimizer wraps the float layer and parks windows outside the visible
// layout. A minimized window stays in the managed set but leaves the wrapped
// layer entirely; its descriptor is frozen at the moment of minimizing and
// restored verbatim, so minimize and restore round-trip exactly.
//
// Operations that imply visibility (focusing, swapping with master, toggling
// floating) restore the window first and then apply.
type Minimizer struct {
	wrapped   *Floater
	minimised []WindowID // oldest first
	infos     map[WindowID]WindowInfo
}

// NewMinimizer returns a minimize layer over a fresh float layer.
func NewMinimizer(screen geometry.Screen, strategy layout.Strategy) *Minimizer {
	return &Minimizer{
		wrapped: NewFloater(screen, strategy),
		infos:   make(map[WindowID]WindowInfo),
	}
}

func (m *Minimizer) Windows() []WindowID {
	out := m.wrapped.Windows()
	return append(out, m.minimised...)
}

func (m *Minimizer) Managed(id WindowID) bool {
	return m.Minimised(id) || m.wrapped.Managed(id)
}

// AddWindow is a no-op for minimized windows so the managed set stays
// duplicate free.
func (m *Minimizer) AddWindow(info WindowInfo) error {
	if m.Minimised(info.ID) {
		return nil
	}
	return m.wrapped.AddWindow(info)
}

func (m *Minimizer) RemoveWindow(id WindowID) error {
	if i := m.minimisedIndex(id); i >= 0 {
		m.minimised = append(m.minimised[:i], m.minimised[i+1:]...)
		delete(m.infos, id)
		return nil
	}
	return m.wrapped.RemoveWindow(id)
}

// Layout never contains minimized windows.
func (m *Minimizer) Layout() RenderLayout {
	return m.wrapped.Layout()
}

// FocusWindow restores a minimized window before focusing it.
func (m *Minimizer) FocusWindow(id WindowID) error {
	if id != None && m.Minimised(id) {
		if err := m.ToggleMinimised(id); err != nil {
			return err
		}
	}
	return m.wrapped.FocusWindow(id)
}

// CycleFocus only visits visible windows.
func (m *Minimizer) CycleFocus(dir Direction) {
	m.wrapped.CycleFocus(dir)
}

// WindowInfo returns the frozen descriptor for minimized windows.
func (m *Minimizer) WindowInfo(id WindowID) (WindowInfo, error) {
	if m.Minimised(id) {
		return m.infos[id], nil
	}
	return m.wrapped.WindowInfo(id)
}

func (m *Minimizer) Screen() geometry.Screen { return m.wrapped.Screen() }

func (m *Minimizer) ResizeScreen(screen geometry.Screen) { m.wrapped.ResizeScreen(screen) }

func (m *Minimizer) FocusedWindow() WindowID { return m.wrapped.FocusedWindow() }

func (m *Minimizer) MasterWindow() WindowID { return m.wrapped.MasterWindow() }

// SwapWithMaster restores a minimized window before the swap.
func (m *Minimizer) SwapWithMaster(id WindowID) error {
	if m.Minimised(id) {
		if err := m.ToggleMinimised(id); err != nil {
			return err
		}
	}
	return m.wrapped.SwapWithMaster(id)
}

func (m *Minimizer) SwapWindows(dir Direction) { m.wrapped.SwapWindows(dir) }

func (m *Minimizer) FloatingWindows() []WindowID { return m.wrapped.FloatingWindows() }

// ToggleFloating restores a minimized window before flipping its mode.
func (m *Minimizer) ToggleFloating(id WindowID) error {
	if m.Minimised(id) {
		if err := m.ToggleMinimised(id); err != nil {
			return err
		}
	}
	return m.wrapped.ToggleFloating(id)
}

// SetWindowGeometry updates the frozen geometry of a minimized window so the
// new rectangle applies on restore.
func (m *Minimizer) SetWindowGeometry(id WindowID, geom geometry.Rect) error {
	if m.Minimised(id) {
		info := m.infos[id]
		info.Geometry = geom
		m.infos[id] = info
		return nil
	}
	return m.wrapped.SetWindowGeometry(id, geom)
}

func (m *Minimizer) MinimisedWindows() []WindowID {
	out := make([]WindowID, len(m.minimised))
	copy(out, m.minimised)
	return out
}

func (m *Minimizer) Minimised(id WindowID) bool {
	return m.minimisedIndex(id) >= 0
}

func (m *Minimizer) minimisedIndex(id WindowID) int {
	for i, w := range m.minimised {
		if w == id {
			return i
		}
	}
	return -1
}

// ToggleMinimised hides a visible window, freezing its descriptor, or
// restores a hidden one with that frozen descriptor. Restoring focuses the
// window, as any add does.
func (m *Minimizer) ToggleMinimised(id WindowID) error {
	if i := m.minimisedIndex(id); i >= 0 {
		info := m.infos[id]
		m.minimised = append(m.minimised[:i], m.minimised[i+1:]...)
		delete(m.infos, id)
		return m.wrapped.AddWindow(info)
	}
	info, err := m.wrapped.WindowInfo(id)
	if err != nil {
		return err
	}
	if err := m.wrapped.RemoveWindow(id); err != nil {
		return err
	}
	m.infos[id] = info
	m.minimised = append(m.minimised, id)
	return nil
}

func (m *Minimizer) Gap() int { return m.wrapped.Gap() }

func (m *Minimizer) SetGap(size int) { m.wrapped.SetGap(size) }
