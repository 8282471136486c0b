package wm

import (
	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/layout"
)

// Fullscreen wraps the minimize layer and lets one window eclipse the whole
// screen. The eclipsing window leaves the wrapped layer; its descriptor is
// held so leaving fullscreen restores the previous placement.
//
// Fullscreen is fragile on purpose: adding a window, moving focus anywhere
// else, cycling focus, swapping tiles, or toggling any mode exits fullscreen
// first, then applies the operation.
type Fullscreen struct {
	wrapped *Minimizer
	held    *WindowInfo
}

// NewFullscreen returns a fullscreen layer over a fresh minimize layer.
func NewFullscreen(screen geometry.Screen, strategy layout.Strategy) *Fullscreen {
	return &Fullscreen{wrapped: NewMinimizer(screen, strategy)}
}

func (f *Fullscreen) isHeld(id WindowID) bool {
	return f.held != nil && f.held.ID == id
}

// restore hands the held window back to the wrapped layer with its previous
// mode and geometry. The restored window takes focus, as any add does.
func (f *Fullscreen) restore() error {
	if f.held == nil {
		return nil
	}
	info := *f.held
	f.held = nil
	info.Fullscreen = false
	return f.wrapped.AddWindow(info)
}

func (f *Fullscreen) Windows() []WindowID {
	out := f.wrapped.Windows()
	if f.held != nil {
		out = append(out, f.held.ID)
	}
	return out
}

func (f *Fullscreen) Managed(id WindowID) bool {
	return f.isHeld(id) || f.wrapped.Managed(id)
}

// AddWindow exits fullscreen, then adds the window. A descriptor with the
// Fullscreen flag set makes the new window eclipse the screen immediately.
func (f *Fullscreen) AddWindow(info WindowInfo) error {
	if info.ID == None || f.Managed(info.ID) {
		return nil
	}
	if err := f.restore(); err != nil {
		return err
	}
	if info.Fullscreen {
		f.held = &info
		return nil
	}
	return f.wrapped.AddWindow(info)
}

// RemoveWindow of the held window clears fullscreen without restoring it;
// removing anything else does not disturb the eclipse.
func (f *Fullscreen) RemoveWindow(id WindowID) error {
	if f.isHeld(id) {
		f.held = nil
		return nil
	}
	return f.wrapped.RemoveWindow(id)
}

// Layout is a single full-screen entry while a window is held.
func (f *Fullscreen) Layout() RenderLayout {
	if f.held != nil {
		return RenderLayout{
			Entries: []Entry{{ID: f.held.ID, Geometry: f.Screen().Rect()}},
			Focused: f.held.ID,
		}
	}
	return f.wrapped.Layout()
}

// FocusWindow on the held window is a no-op; any other target, including
// None, exits fullscreen first.
func (f *Fullscreen) FocusWindow(id WindowID) error {
	if f.isHeld(id) {
		return nil
	}
	if id != None && !f.Managed(id) {
		return errUnknownWindow(id)
	}
	if err := f.restore(); err != nil {
		return err
	}
	return f.wrapped.FocusWindow(id)
}

func (f *Fullscreen) CycleFocus(dir Direction) {
	// exiting first keeps the ring identical to the non-fullscreen one
	f.restore()
	f.wrapped.CycleFocus(dir)
}

// WindowInfo of the held window reports the full screen rectangle with the
// Fullscreen flag set; the held mode shows what it will restore to.
func (f *Fullscreen) WindowInfo(id WindowID) (WindowInfo, error) {
	if f.isHeld(id) {
		return WindowInfo{
			ID:         id,
			Geometry:   f.Screen().Rect(),
			Mode:       f.held.Mode,
			Fullscreen: true,
		}, nil
	}
	return f.wrapped.WindowInfo(id)
}

func (f *Fullscreen) Screen() geometry.Screen { return f.wrapped.Screen() }

func (f *Fullscreen) ResizeScreen(screen geometry.Screen) { f.wrapped.ResizeScreen(screen) }

func (f *Fullscreen) FocusedWindow() WindowID {
	if f.held != nil {
		return f.held.ID
	}
	return f.wrapped.FocusedWindow()
}

func (f *Fullscreen) MasterWindow() WindowID { return f.wrapped.MasterWindow() }

func (f *Fullscreen) SwapWithMaster(id WindowID) error {
	if !f.Managed(id) {
		return errUnknownWindow(id)
	}
	if err := f.restore(); err != nil {
		return err
	}
	return f.wrapped.SwapWithMaster(id)
}

func (f *Fullscreen) SwapWindows(dir Direction) {
	f.restore()
	f.wrapped.SwapWindows(dir)
}

func (f *Fullscreen) FloatingWindows() []WindowID { return f.wrapped.FloatingWindows() }

func (f *Fullscreen) ToggleFloating(id WindowID) error {
	if f.isHeld(id) {
		if err := f.restore(); err != nil {
			return err
		}
	}
	return f.wrapped.ToggleFloating(id)
}

// SetWindowGeometry on the held window updates the geometry it will restore
// to; the eclipse itself always covers the screen.
func (f *Fullscreen) SetWindowGeometry(id WindowID, geom geometry.Rect) error {
	if f.isHeld(id) {
		f.held.Geometry = geom
		return nil
	}
	return f.wrapped.SetWindowGeometry(id, geom)
}

func (f *Fullscreen) MinimisedWindows() []WindowID { return f.wrapped.MinimisedWindows() }

func (f *Fullscreen) Minimised(id WindowID) bool { return f.wrapped.Minimised(id) }

func (f *Fullscreen) ToggleMinimised(id WindowID) error {
	if f.isHeld(id) {
		if err := f.restore(); err != nil {
			return err
		}
	}
	return f.wrapped.ToggleMinimised(id)
}

// FullscreenWindow returns the eclipsing window, or None.
func (f *Fullscreen) FullscreenWindow() WindowID {
	if f.held == nil {
		return None
	}
	return f.held.ID
}

// ToggleFullscreen makes the window eclipse the screen, or restores it when
// it already does. Entering fullscreen restores any previously held window
// first, so at most one window is ever held.
func (f *Fullscreen) ToggleFullscreen(id WindowID) error {
	if f.isHeld(id) {
		return f.restore()
	}
	if !f.wrapped.Managed(id) {
		return errUnknownWindow(id)
	}
	if err := f.restore(); err != nil {
		return err
	}
	info, err := f.wrapped.WindowInfo(id)
	if err != nil {
		return err
	}
	if err := f.wrapped.RemoveWindow(id); err != nil {
		return err
	}
	info.ID = id
	f.held = &info
	return nil
}

func (f *Fullscreen) Gap() int { return f.wrapped.Gap() }

func (f *Fullscreen) SetGap(size int) { f.wrapped.SetGap(size) }
