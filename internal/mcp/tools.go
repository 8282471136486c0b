package mcp

import (
	"context"
	"fmt"
	"log"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/wm"
)

func parseDirection(s string) (wm.Direction, error) {
	switch s {
	case "prev":
		return wm.Prev, nil
	case "next":
		return wm.Next, nil
	default:
		return wm.Prev, fmt.Errorf("invalid direction %q (want prev or next)", s)
	}
}

func rectFromInput(r RectInput) geometry.Rect {
	return geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// layoutState snapshots the current workspace. Callers hold s.mu.
func (s *Server) layoutState() LayoutState {
	l := s.stack.Layout()
	state := LayoutState{
		Workspace: s.stack.CurrentWorkspace(),
		Focused:   uint32(l.Focused),
		Entries:   make([]LayoutEntry, len(l.Entries)),
	}
	for i, e := range l.Entries {
		state.Entries[i] = LayoutEntry{
			ID:     uint32(e.ID),
			X:      e.Geometry.X,
			Y:      e.Geometry.Y,
			Width:  e.Geometry.Width,
			Height: e.Geometry.Height,
		}
	}
	return state
}

func (s *Server) handleAddWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args AddWindowInput) (*mcpsdk.CallToolResult, AddWindowOutput, error) {
	if args.ID == 0 {
		return nil, AddWindowOutput{}, fmt.Errorf("window id must be non-zero")
	}
	if args.Floating && args.Geometry == nil {
		return nil, AddWindowOutput{}, fmt.Errorf("floating windows need a geometry")
	}
	info := wm.WindowInfo{ID: wm.WindowID(args.ID), Fullscreen: args.Fullscreen}
	if args.Floating {
		info.Mode = wm.Floating
	}
	if args.Geometry != nil {
		info.Geometry = rectFromInput(*args.Geometry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stack.AddWindow(info); err != nil {
		return nil, AddWindowOutput{}, err
	}
	log.Printf("mcp: add_window id=%d mode=%s fullscreen=%t", args.ID, info.Mode, args.Fullscreen)
	return nil, AddWindowOutput{
		Workspace: s.stack.CurrentWorkspace(),
		State:     s.layoutState(),
	}, nil
}

func (s *Server) handleRemoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args RemoveWindowInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stack.RemoveWindow(wm.WindowID(args.ID)); err != nil {
		return nil, LayoutState{}, err
	}
	log.Printf("mcp: remove_window id=%d", args.ID)
	return nil, s.layoutState(), nil
}

func (s *Server) handleGetWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetWindowsInput) (*mcpsdk.CallToolResult, GetWindowsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := GetWindowsOutput{Windows: []WindowSummary{}}
	for i := 0; i < s.stack.WorkspaceCount(); i++ {
		ws, err := s.stack.Workspace(i)
		if err != nil {
			return nil, GetWindowsOutput{}, err
		}
		for _, id := range ws.Windows() {
			info, err := ws.WindowInfo(id)
			if err != nil {
				return nil, GetWindowsOutput{}, err
			}
			out.Windows = append(out.Windows, WindowSummary{
				ID:         uint32(id),
				Workspace:  i,
				Mode:       info.Mode.String(),
				Minimised:  ws.Minimised(id),
				Fullscreen: info.Fullscreen,
			})
		}
	}
	return nil, out, nil
}

func (s *Server) handleGetLayout(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetLayoutInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nil, s.layoutState(), nil
}

func (s *Server) handleFocusWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusWindowInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stack.FocusWindow(wm.WindowID(args.ID)); err != nil {
		return nil, LayoutState{}, err
	}
	return nil, s.layoutState(), nil
}

func (s *Server) handleCycleFocus(_ context.Context, _ *mcpsdk.CallToolRequest, args CycleFocusInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	dir, err := parseDirection(args.Direction)
	if err != nil {
		return nil, LayoutState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack.CycleFocus(dir)
	return nil, s.layoutState(), nil
}

func (s *Server) handleSwapWithMaster(_ context.Context, _ *mcpsdk.CallToolRequest, args SwapWithMasterInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stack.SwapWithMaster(wm.WindowID(args.ID)); err != nil {
		return nil, LayoutState{}, err
	}
	log.Printf("mcp: swap_with_master id=%d", args.ID)
	return nil, s.layoutState(), nil
}

func (s *Server) handleSwapWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args SwapWindowsInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	dir, err := parseDirection(args.Direction)
	if err != nil {
		return nil, LayoutState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack.SwapWindows(dir)
	return nil, s.layoutState(), nil
}

func (s *Server) handleToggleFloating(_ context.Context, _ *mcpsdk.CallToolRequest, args ToggleFloatingInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stack.ToggleFloating(wm.WindowID(args.ID)); err != nil {
		return nil, LayoutState{}, err
	}
	log.Printf("mcp: toggle_floating id=%d", args.ID)
	return nil, s.layoutState(), nil
}

func (s *Server) handleSetWindowGeometry(_ context.Context, _ *mcpsdk.CallToolRequest, args SetWindowGeometryInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stack.SetWindowGeometry(wm.WindowID(args.ID), rectFromInput(args.Geometry)); err != nil {
		return nil, LayoutState{}, err
	}
	return nil, s.layoutState(), nil
}

func (s *Server) handleToggleMinimised(_ context.Context, _ *mcpsdk.CallToolRequest, args ToggleMinimisedInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stack.ToggleMinimised(wm.WindowID(args.ID)); err != nil {
		return nil, LayoutState{}, err
	}
	log.Printf("mcp: toggle_minimised id=%d", args.ID)
	return nil, s.layoutState(), nil
}

func (s *Server) handleToggleFullscreen(_ context.Context, _ *mcpsdk.CallToolRequest, args ToggleFullscreenInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stack.ToggleFullscreen(wm.WindowID(args.ID)); err != nil {
		return nil, LayoutState{}, err
	}
	log.Printf("mcp: toggle_fullscreen id=%d", args.ID)
	return nil, s.layoutState(), nil
}

func (s *Server) handleSwitchWorkspace(_ context.Context, _ *mcpsdk.CallToolRequest, args SwitchWorkspaceInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stack.SwitchWorkspace(args.Index); err != nil {
		return nil, LayoutState{}, err
	}
	log.Printf("mcp: switch_workspace index=%d", args.Index)
	return nil, s.layoutState(), nil
}

func (s *Server) handleResizeScreen(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeScreenInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	if args.Width < 1 || args.Height < 1 {
		return nil, LayoutState{}, fmt.Errorf("screen size must be positive, got %dx%d", args.Width, args.Height)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack.ResizeScreen(geometry.Screen{Width: args.Width, Height: args.Height})
	log.Printf("mcp: resize_screen %dx%d", args.Width, args.Height)
	return nil, s.layoutState(), nil
}

func (s *Server) handleSetGap(_ context.Context, _ *mcpsdk.CallToolRequest, args SetGapInput) (*mcpsdk.CallToolResult, LayoutState, error) {
	if args.Size < 0 {
		return nil, LayoutState{}, fmt.Errorf("gap must not be negative, got %d", args.Size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack.SetGap(args.Size)
	log.Printf("mcp: set_gap size=%d", args.Size)
	return nil, s.layoutState(), nil
}
