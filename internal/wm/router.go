package wm

import (
	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/layout"
)

// Router is the top layer: a fixed set of independent layer stacks, one per
// workspace, with a current workspace every unnamed operation applies to.
// Operations naming a window route to the workspace that owns it; a window
// nobody owns routes to the current workspace, which then reports the
// unknown-window error.
type Router struct {
	workspaces []*Fullscreen
	current    int
}

// NewRouter builds count independent stacks sharing the screen size. Each
// workspace gets its own strategy instance so per-workspace state (like a
// gap decorator) stays independent until a broadcast changes it. A count
// below 1 is raised to 1.
func NewRouter(count int, screen geometry.Screen, strategy func() layout.Strategy) *Router {
	if count < 1 {
		count = 1
	}
	if strategy == nil {
		strategy = func() layout.Strategy { return layout.NewGap(layout.MasterStack{}) }
	}
	workspaces := make([]*Fullscreen, count)
	for i := range workspaces {
		workspaces[i] = NewFullscreen(screen, strategy())
	}
	return &Router{workspaces: workspaces}
}

func (r *Router) active() *Fullscreen {
	return r.workspaces[r.current]
}

// ownerIndex returns the workspace managing id, or the current workspace when
// none does.
func (r *Router) ownerIndex(id WindowID) int {
	for i, ws := range r.workspaces {
		if ws.Managed(id) {
			return i
		}
	}
	return r.current
}

func (r *Router) owner(id WindowID) *Fullscreen {
	return r.workspaces[r.ownerIndex(id)]
}

// Windows is the union over all workspaces, in workspace order.
func (r *Router) Windows() []WindowID {
	var out []WindowID
	for _, ws := range r.workspaces {
		out = append(out, ws.Windows()...)
	}
	return out
}

func (r *Router) Managed(id WindowID) bool {
	for _, ws := range r.workspaces {
		if ws.Managed(id) {
			return true
		}
	}
	return false
}

// AddWindow places new windows on the current workspace. Re-adding a window
// another workspace owns is a no-op there.
func (r *Router) AddWindow(info WindowInfo) error {
	return r.owner(info.ID).AddWindow(info)
}

func (r *Router) RemoveWindow(id WindowID) error {
	return r.owner(id).RemoveWindow(id)
}

func (r *Router) Layout() RenderLayout {
	return r.active().Layout()
}

// FocusWindow switches to the owning workspace, then focuses. None clears
// focus on the current workspace.
func (r *Router) FocusWindow(id WindowID) error {
	if id == None {
		return r.active().FocusWindow(None)
	}
	i := r.ownerIndex(id)
	if err := r.workspaces[i].FocusWindow(id); err != nil {
		return err
	}
	r.current = i
	return nil
}

func (r *Router) CycleFocus(dir Direction) {
	r.active().CycleFocus(dir)
}

func (r *Router) WindowInfo(id WindowID) (WindowInfo, error) {
	return r.owner(id).WindowInfo(id)
}

func (r *Router) Screen() geometry.Screen {
	return r.active().Screen()
}

// ResizeScreen broadcasts the new size to every workspace.
func (r *Router) ResizeScreen(screen geometry.Screen) {
	for _, ws := range r.workspaces {
		ws.ResizeScreen(screen)
	}
}

func (r *Router) FocusedWindow() WindowID {
	return r.active().FocusedWindow()
}

func (r *Router) MasterWindow() WindowID {
	return r.active().MasterWindow()
}

// SwapWithMaster pulls a window owned by another workspace onto the current
// one first, then swaps it into the master slot here.
func (r *Router) SwapWithMaster(id WindowID) error {
	if !r.active().Managed(id) {
		if !r.Managed(id) {
			return errUnknownWindow(id)
		}
		if err := r.moveToCurrent(id); err != nil {
			return err
		}
	}
	return r.active().SwapWithMaster(id)
}

func (r *Router) moveToCurrent(id WindowID) error {
	from := r.owner(id)
	info, err := from.WindowInfo(id)
	if err != nil {
		return err
	}
	if err := from.RemoveWindow(id); err != nil {
		return err
	}
	return r.active().AddWindow(info)
}

func (r *Router) SwapWindows(dir Direction) {
	r.active().SwapWindows(dir)
}

func (r *Router) FloatingWindows() []WindowID {
	return r.active().FloatingWindows()
}

func (r *Router) ToggleFloating(id WindowID) error {
	return r.owner(id).ToggleFloating(id)
}

func (r *Router) SetWindowGeometry(id WindowID, geom geometry.Rect) error {
	return r.owner(id).SetWindowGeometry(id, geom)
}

func (r *Router) MinimisedWindows() []WindowID {
	return r.active().MinimisedWindows()
}

func (r *Router) Minimised(id WindowID) bool {
	return r.owner(id).Minimised(id)
}

func (r *Router) ToggleMinimised(id WindowID) error {
	return r.owner(id).ToggleMinimised(id)
}

func (r *Router) FullscreenWindow() WindowID {
	return r.active().FullscreenWindow()
}

// ToggleFullscreen switches to the owning workspace, then toggles there.
func (r *Router) ToggleFullscreen(id WindowID) error {
	i := r.ownerIndex(id)
	if err := r.workspaces[i].ToggleFullscreen(id); err != nil {
		return err
	}
	r.current = i
	return nil
}

func (r *Router) Gap() int {
	return r.active().Gap()
}

// SetGap broadcasts the gap to every workspace.
func (r *Router) SetGap(size int) {
	for _, ws := range r.workspaces {
		ws.SetGap(size)
	}
}

func (r *Router) CurrentWorkspace() int {
	return r.current
}

func (r *Router) WorkspaceCount() int {
	return len(r.workspaces)
}

func (r *Router) Workspace(index int) (*Fullscreen, error) {
	if index < 0 || index >= len(r.workspaces) {
		return nil, &UnknownWorkspaceError{Index: index}
	}
	return r.workspaces[index], nil
}

// SwitchWorkspace changes the current workspace. Switching to the current
// one is a no-op; workspace state is untouched either way.
func (r *Router) SwitchWorkspace(index int) error {
	if index < 0 || index >= len(r.workspaces) {
		return &UnknownWorkspaceError{Index: index}
	}
	r.current = index
	return nil
}
