package wm

import (
	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/layout"
)

// Tiling is the bottom layer: an ordered list of tiled windows whose
// rectangles come from the layout strategy. Index 0 is the master. Geometry
// is recomputed on every Layout call and never cached, so a screen resize is
// picked up automatically.
type Tiling struct {
	windows  []WindowID
	focused  WindowID
	screen   geometry.Screen
	strategy layout.Strategy
}

// NewTiling returns an empty, unfocused tiling core. A nil strategy falls
// back to master-stack.
func NewTiling(screen geometry.Screen, strategy layout.Strategy) *Tiling {
	if strategy == nil {
		strategy = layout.MasterStack{}
	}
	return &Tiling{screen: screen, strategy: strategy}
}

func (t *Tiling) Windows() []WindowID {
	out := make([]WindowID, len(t.windows))
	copy(out, t.windows)
	return out
}

func (t *Tiling) Managed(id WindowID) bool {
	return t.indexOf(id) >= 0
}

func (t *Tiling) indexOf(id WindowID) int {
	for i, w := range t.windows {
		if w == id {
			return i
		}
	}
	return -1
}

// AddWindow appends the window at the end of the tile order and focuses it.
func (t *Tiling) AddWindow(info WindowInfo) error {
	if info.ID == None || t.Managed(info.ID) {
		return nil
	}
	t.windows = append(t.windows, info.ID)
	t.focused = info.ID
	return nil
}

// RemoveWindow drops the window. When it held focus, focus moves to its
// cyclic predecessor in the remaining tile order; removing the last window
// leaves the layer unfocused.
func (t *Tiling) RemoveWindow(id WindowID) error {
	i := t.indexOf(id)
	if i < 0 {
		return errUnknownWindow(id)
	}
	t.windows = append(t.windows[:i], t.windows[i+1:]...)
	if len(t.windows) == 0 {
		t.focused = None
		return nil
	}
	if t.focused == id {
		t.focused = t.windows[(i-1+len(t.windows))%len(t.windows)]
	}
	return nil
}

func (t *Tiling) Layout() RenderLayout {
	entries := make([]Entry, len(t.windows))
	for i, id := range t.windows {
		entries[i] = Entry{ID: id, Geometry: t.strategy.Geometry(i, t.screen, len(t.windows))}
	}
	return RenderLayout{Entries: entries, Focused: t.focused}
}

func (t *Tiling) FocusWindow(id WindowID) error {
	if id == None {
		t.focused = None
		return nil
	}
	if !t.Managed(id) {
		return errUnknownWindow(id)
	}
	t.focused = id
	return nil
}

// CycleFocus steps focus through the tile order, wrapping at both ends. From
// the unfocused state, Next lands on the master and Prev on the last tile.
func (t *Tiling) CycleFocus(dir Direction) {
	if len(t.windows) == 0 {
		return
	}
	i := t.indexOf(t.focused)
	if i < 0 {
		if dir == Next {
			t.focused = t.windows[0]
		} else {
			t.focused = t.windows[len(t.windows)-1]
		}
		return
	}
	t.focused = t.windows[t.step(i, dir)]
}

func (t *Tiling) step(i int, dir Direction) int {
	n := len(t.windows)
	if dir == Next {
		return (i + 1) % n
	}
	return (i - 1 + n) % n
}

// WindowInfo reports the tile rectangle the window currently occupies.
func (t *Tiling) WindowInfo(id WindowID) (WindowInfo, error) {
	i := t.indexOf(id)
	if i < 0 {
		return WindowInfo{}, errUnknownWindow(id)
	}
	return WindowInfo{
		ID:       id,
		Geometry: t.strategy.Geometry(i, t.screen, len(t.windows)),
		Mode:     Tiled,
	}, nil
}

func (t *Tiling) Screen() geometry.Screen { return t.screen }

func (t *Tiling) ResizeScreen(screen geometry.Screen) { t.screen = screen }

func (t *Tiling) FocusedWindow() WindowID { return t.focused }

// MasterWindow returns the tile at index 0, or None when empty.
func (t *Tiling) MasterWindow() WindowID {
	if len(t.windows) == 0 {
		return None
	}
	return t.windows[0]
}

// SwapWithMaster exchanges the window with the master tile and focuses it.
// Swapping the master with itself still takes focus.
func (t *Tiling) SwapWithMaster(id WindowID) error {
	i := t.indexOf(id)
	if i < 0 {
		return errUnknownWindow(id)
	}
	t.windows[0], t.windows[i] = t.windows[i], t.windows[0]
	t.focused = id
	return nil
}

// SwapWindows exchanges the focused tile with its neighbor in the given
// direction. Focus follows the window, not the slot.
func (t *Tiling) SwapWindows(dir Direction) {
	if t.focused == None || len(t.windows) < 2 {
		return
	}
	i := t.indexOf(t.focused)
	j := t.step(i, dir)
	t.windows[i], t.windows[j] = t.windows[j], t.windows[i]
}

// Gap reports the strategy's gap when it has one, else 0.
func (t *Tiling) Gap() int {
	if g, ok := t.strategy.(GapSupport); ok {
		return g.Gap()
	}
	return 0
}

// SetGap adjusts the strategy's gap. Ignored for strategies without gaps.
func (t *Tiling) SetGap(size int) {
	if g, ok := t.strategy.(GapSupport); ok {
		g.SetGap(size)
	}
}
