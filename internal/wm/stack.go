package wm

import (
	"fmt"

	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/layout"
)

// Options configure a full layer stack.
type Options struct {
	// Workspaces is the number of independent workspaces. Defaults to 4.
	Workspaces int
	// Layout names the tiling strategy: "master-stack" (default) or
	// "spiral".
	Layout string
	// Gap is the initial inset between tiles.
	Gap int
}

// NewStack assembles the whole engine: a workspace router over fullscreen,
// minimize, float and tiling layers, each workspace with its own gap-wrapped
// strategy instance.
func NewStack(screen geometry.Screen, opts Options) (*Router, error) {
	if opts.Workspaces <= 0 {
		opts.Workspaces = 4
	}
	if opts.Layout == "" {
		opts.Layout = "master-stack"
	}
	if _, err := layout.ForName(opts.Layout); err != nil {
		return nil, fmt.Errorf("invalid stack options: %w", err)
	}
	factory := func() layout.Strategy {
		base, _ := layout.ForName(opts.Layout)
		gapped := layout.NewGap(base)
		gapped.SetGap(opts.Gap)
		return gapped
	}
	return NewRouter(opts.Workspaces, screen, factory), nil
}
