package wm

import (
	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/layout"
)

// Floater wraps the tiling core with windows that keep an explicit geometry
// and render above every tile. It tracks two orders for floating windows:
// insertion order (reported by FloatingWindows) and z-order (render order,
// bottom to top).
//
// Focus is a single pointer across both kinds: when `focused` is None the
// tiling core's focus stands; otherwise a floating window has focus and
// shadows whatever the core remembers. Explicitly focusing a floating window
// raises it to the top of the z-order; cycling focus only moves the pointer,
// and Layout lifts the focused floating window to the top at render time so
// a Next immediately undone by Prev leaves both focus and render order
// untouched.
type Floater struct {
	tiling   *Tiling
	floating []WindowID // insertion order
	zorder   []WindowID // render order, bottom to top
	infos    map[WindowID]WindowInfo
	pinned   map[WindowID]bool // tiled windows with a caller-set geometry
	focused  WindowID
}

// NewFloater returns a float layer over a fresh tiling core.
func NewFloater(screen geometry.Screen, strategy layout.Strategy) *Floater {
	return &Floater{
		tiling: NewTiling(screen, strategy),
		infos:  make(map[WindowID]WindowInfo),
		pinned: make(map[WindowID]bool),
	}
}

func (f *Floater) Windows() []WindowID {
	out := f.tiling.Windows()
	return append(out, f.floating...)
}

func (f *Floater) Managed(id WindowID) bool {
	return f.floatIndex(id) >= 0 || f.tiling.Managed(id)
}

func (f *Floater) isFloating(id WindowID) bool {
	return f.floatIndex(id) >= 0
}

func (f *Floater) floatIndex(id WindowID) int {
	for i, w := range f.floating {
		if w == id {
			return i
		}
	}
	return -1
}

// AddWindow routes the window by its Mode. A new floating window lands on top
// of the z-order and takes focus; tiled windows go to the core.
func (f *Floater) AddWindow(info WindowInfo) error {
	if info.ID == None || f.Managed(info.ID) {
		return nil
	}
	info.Fullscreen = false
	f.infos[info.ID] = info
	if info.Mode == Floating {
		f.floating = append(f.floating, info.ID)
		f.zorder = append(f.zorder, info.ID)
		f.focused = info.ID
		return nil
	}
	f.focused = None
	return f.tiling.AddWindow(info)
}

// RemoveWindow drops the window. Removing the focused floating window moves
// focus to its cyclic predecessor in insertion order; when it was the last
// floating window the core's focus stands again.
func (f *Floater) RemoveWindow(id WindowID) error {
	i := f.floatIndex(id)
	if i < 0 {
		if err := f.tiling.RemoveWindow(id); err != nil {
			return err
		}
		delete(f.infos, id)
		delete(f.pinned, id)
		return nil
	}
	f.floating = append(f.floating[:i], f.floating[i+1:]...)
	f.zorder = withoutID(f.zorder, id)
	delete(f.infos, id)
	if f.focused == id {
		if len(f.floating) > 0 {
			f.focused = f.floating[(i-1+len(f.floating))%len(f.floating)]
		} else {
			f.focused = None
		}
	}
	return nil
}

func withoutID(ids []WindowID, id WindowID) []WindowID {
	for i, w := range ids {
		if w == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Layout renders tiles first, then floating windows in z-order. The focused
// floating window is drawn last without mutating the stored order.
func (f *Floater) Layout() RenderLayout {
	l := f.tiling.Layout()
	focused := f.FocusedWindow()
	entries := l.Entries
	for _, id := range f.zorder {
		if id == f.focused {
			continue
		}
		entries = append(entries, Entry{ID: id, Geometry: f.infos[id].Geometry})
	}
	if f.focused != None {
		entries = append(entries, Entry{ID: f.focused, Geometry: f.infos[f.focused].Geometry})
	}
	return RenderLayout{Entries: entries, Focused: focused}
}

// FocusWindow focuses id. A floating window is also raised to the top of the
// z-order. None clears focus on both kinds.
func (f *Floater) FocusWindow(id WindowID) error {
	if id == None {
		f.focused = None
		return f.tiling.FocusWindow(None)
	}
	if f.isFloating(id) {
		f.focused = id
		f.raise(id)
		return nil
	}
	if err := f.tiling.FocusWindow(id); err != nil {
		return err
	}
	f.focused = None
	return nil
}

func (f *Floater) raise(id WindowID) {
	f.zorder = append(withoutID(f.zorder, id), id)
}

// CycleFocus walks one deterministic ring: tiles in tile order, then floating
// windows in z-order bottom to top. Only the focus pointer moves.
func (f *Floater) CycleFocus(dir Direction) {
	ring := append(f.tiling.Windows(), f.zorder...)
	if len(ring) == 0 {
		return
	}
	cur := f.FocusedWindow()
	if cur == None {
		if dir == Next {
			f.point(ring[0])
		} else {
			f.point(ring[len(ring)-1])
		}
		return
	}
	for i, w := range ring {
		if w == cur {
			if dir == Next {
				f.point(ring[(i+1)%len(ring)])
			} else {
				f.point(ring[(i-1+len(ring))%len(ring)])
			}
			return
		}
	}
}

// point moves the focus pointer without touching the z-order.
func (f *Floater) point(id WindowID) {
	if f.isFloating(id) {
		f.focused = id
		return
	}
	f.focused = None
	f.tiling.FocusWindow(id)
}

func (f *Floater) WindowInfo(id WindowID) (WindowInfo, error) {
	if f.isFloating(id) {
		return f.infos[id], nil
	}
	return f.tiling.WindowInfo(id)
}

func (f *Floater) Screen() geometry.Screen { return f.tiling.Screen() }

func (f *Floater) ResizeScreen(screen geometry.Screen) { f.tiling.ResizeScreen(screen) }

func (f *Floater) FocusedWindow() WindowID {
	if f.focused != None {
		return f.focused
	}
	return f.tiling.FocusedWindow()
}

func (f *Floater) MasterWindow() WindowID { return f.tiling.MasterWindow() }

// SwapWithMaster tiles the window first when it floats, then swaps it into
// the master slot.
func (f *Floater) SwapWithMaster(id WindowID) error {
	if f.isFloating(id) {
		if err := f.ToggleFloating(id); err != nil {
			return err
		}
	}
	if err := f.tiling.SwapWithMaster(id); err != nil {
		return err
	}
	f.focused = None
	return nil
}

// SwapWindows reorders tiles only; a floating focus makes it a no-op.
func (f *Floater) SwapWindows(dir Direction) {
	if f.focused != None {
		return
	}
	f.tiling.SwapWindows(dir)
}

func (f *Floater) FloatingWindows() []WindowID {
	out := make([]WindowID, len(f.floating))
	copy(out, f.floating)
	return out
}

// ToggleFloating flips the window between tiled and floating and focuses it.
// A window going back to tiling keeps its stored geometry for the next
// toggle. A tile starting to float takes the rectangle it was tiled at,
// unless the caller pinned an explicit geometry with SetWindowGeometry.
func (f *Floater) ToggleFloating(id WindowID) error {
	if !f.Managed(id) {
		return errUnknownWindow(id)
	}
	info := f.infos[id]
	info.ID = id
	if f.isFloating(id) {
		info.Mode = Tiled
	} else {
		if !f.pinned[id] {
			current, err := f.tiling.WindowInfo(id)
			if err != nil {
				return err
			}
			info.Geometry = current.Geometry
		}
		info.Mode = Floating
	}
	if err := f.RemoveWindow(id); err != nil {
		return err
	}
	return f.AddWindow(info)
}

// SetWindowGeometry records an explicit rectangle. Floating windows move
// immediately; for tiled windows the rectangle is pinned and takes effect
// when the window starts floating.
func (f *Floater) SetWindowGeometry(id WindowID, geom geometry.Rect) error {
	if !f.Managed(id) {
		return errUnknownWindow(id)
	}
	info := f.infos[id]
	info.ID = id
	info.Geometry = geom
	f.infos[id] = info
	if !f.isFloating(id) {
		f.pinned[id] = true
	}
	return nil
}

func (f *Floater) Gap() int { return f.tiling.Gap() }

func (f *Floater) SetGap(size int) { f.tiling.SetGap(size) }
