// Package mcp exposes the layout engine over the Model Context Protocol so
// an MCP client can drive workspaces, windows and layouts through tools.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/layerwm/internal/config"
	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/wm"
)

const (
	ServerName    = "layerwm"
	ServerVersion = "0.1.0"
)

// Server wraps one layer stack behind an MCP tool surface. The engine itself
// is single threaded; the mutex serializes tool calls.
type Server struct {
	mcpServer *mcpsdk.Server

	mu    sync.Mutex
	stack *wm.Router
}

// NewServer builds the layer stack from the configuration and registers the
// tool set.
func NewServer(cfg *config.Config) (*Server, error) {
	stack, err := wm.NewStack(
		geometry.Screen{Width: cfg.Screen.Width, Height: cfg.Screen.Height},
		wm.Options{
			Workspaces: cfg.Workspaces,
			Layout:     cfg.DefaultLayout,
			Gap:        cfg.GapSize,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build layer stack: %w", err)
	}
	s := &Server{stack: stack}
	s.mcpServer = mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, nil)
	s.registerTools()
	return s, nil
}

// Run serves MCP over stdio until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "add_window",
		Description: "Bring a window under management on the current workspace. Floating windows need a geometry; fullscreen windows eclipse the screen immediately.",
	}, s.handleAddWindow)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "remove_window",
		Description: "Drop a window from management, wherever it lives.",
	}, s.handleRemoveWindow)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_windows",
		Description: "List every managed window with its workspace, mode and state.",
	}, s.handleGetWindows)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_layout",
		Description: "Return the current workspace's visible windows back to front with the focused window.",
	}, s.handleGetLayout)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_window",
		Description: "Focus a window, switching to its workspace and restoring it if minimized. ID 0 clears focus.",
	}, s.handleFocusWindow)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "cycle_focus",
		Description: "Move focus to the previous or next window on the current workspace.",
	}, s.handleCycleFocus)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "swap_with_master",
		Description: "Swap a window into the master slot of the current workspace, pulling it over from another workspace if needed.",
	}, s.handleSwapWithMaster)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "swap_windows",
		Description: "Swap the focused tile with its previous or next neighbor.",
	}, s.handleSwapWindows)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_floating",
		Description: "Flip a window between tiled and floating.",
	}, s.handleToggleFloating)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_window_geometry",
		Description: "Set a window's explicit rectangle. Applies immediately to floating windows and on the next float for tiled ones.",
	}, s.handleSetWindowGeometry)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_minimised",
		Description: "Minimize a visible window or restore a minimized one.",
	}, s.handleToggleMinimised)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_fullscreen",
		Description: "Make a window eclipse the whole screen, or restore it.",
	}, s.handleToggleFullscreen)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "switch_workspace",
		Description: "Switch the current workspace.",
	}, s.handleSwitchWorkspace)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_screen",
		Description: "Change the screen size on every workspace; tiled layouts recompute.",
	}, s.handleResizeScreen)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_gap",
		Description: "Set the gap between tiles on every workspace.",
	}, s.handleSetGap)
}
