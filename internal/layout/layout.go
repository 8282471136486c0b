// Package layout provides the pluggable strategies that compute rectangles
// for tiled windows. Strategies are pure: the same inputs always produce the
// same rectangle, and nothing is cached between calls.
package layout

import (
	"fmt"

	"github.com/1broseidon/layerwm/internal/geometry"
)

// Strategy computes the rectangle of the i-th of n tiled windows on the given
// screen. Index 0 is the master window. Callers only pass 0 <= i < n with
// n >= 1.
type Strategy interface {
	Geometry(i int, screen geometry.Screen, n int) geometry.Rect
}

// ForName returns the strategy registered under the given configuration name.
func ForName(name string) (Strategy, error) {
	switch name {
	case "master-stack":
		return MasterStack{}, nil
	case "spiral":
		return Spiral{}, nil
	default:
		return nil, fmt.Errorf("unsupported layout %q", name)
	}
}

// MasterStack gives the master window the left half of the screen and splits
// the right half evenly among the remaining windows, top to bottom. A single
// window fills the screen.
type MasterStack struct{}

func (MasterStack) Geometry(i int, screen geometry.Screen, n int) geometry.Rect {
	if n <= 1 {
		return screen.Rect()
	}
	half := screen.Width / 2
	if i == 0 {
		return geometry.Rect{X: 0, Y: 0, Width: half, Height: screen.Height}
	}
	slaveHeight := screen.Height / (n - 1)
	return geometry.Rect{
		X:      half,
		Y:      (i - 1) * slaveHeight,
		Width:  screen.Width - half,
		Height: slaveHeight,
	}
}

// Spiral halves the remaining area for every window, cycling the cut through
// left, top, right and bottom; the last window takes whatever is left.
type Spiral struct{}

func (Spiral) Geometry(i int, screen geometry.Screen, n int) geometry.Rect {
	rest := screen.Rect()
	for depth := 0; ; depth++ {
		if depth == n-1 {
			return rest
		}
		var taken, remaining geometry.Rect
		switch depth % 4 {
		case 0:
			taken, remaining = splitVertical(rest)
		case 1:
			taken, remaining = splitHorizontal(rest)
		case 2:
			remaining, taken = splitVertical(rest)
		default:
			remaining, taken = splitHorizontal(rest)
		}
		if depth == i {
			return taken
		}
		rest = remaining
	}
}

func splitVertical(r geometry.Rect) (left, right geometry.Rect) {
	half := r.Width / 2
	left = geometry.Rect{X: r.X, Y: r.Y, Width: half, Height: r.Height}
	right = geometry.Rect{X: r.X + half, Y: r.Y, Width: r.Width - half, Height: r.Height}
	return left, right
}

func splitHorizontal(r geometry.Rect) (top, bottom geometry.Rect) {
	half := r.Height / 2
	top = geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: half}
	bottom = geometry.Rect{X: r.X, Y: r.Y + half, Width: r.Width, Height: r.Height - half}
	return top, bottom
}

// Gap wraps another strategy and insets every rectangle by the configured gap
// on all four sides. The gap starts at 0, so a fresh Gap is transparent.
type Gap struct {
	size    int
	wrapped Strategy
}

// NewGap returns a gap decorator around the given strategy.
func NewGap(wrapped Strategy) *Gap {
	return &Gap{wrapped: wrapped}
}

func (g *Gap) Geometry(i int, screen geometry.Screen, n int) geometry.Rect {
	r := g.wrapped.Geometry(i, screen, n)
	return geometry.Rect{
		X:      r.X + g.size,
		Y:      r.Y + g.size,
		Width:  r.Width - 2*g.size,
		Height: r.Height - 2*g.size,
	}
}

// Gap returns the current gap size.
func (g *Gap) Gap() int { return g.size }

// SetGap sets the inset applied to every rectangle.
func (g *Gap) SetGap(size int) { g.size = size }
