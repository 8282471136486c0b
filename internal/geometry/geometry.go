// Package geometry holds the primitive value types shared by the layout
// strategies and the layer stack.
package geometry

// Rect is a rectangle in screen coordinates. Width and Height are signed so
// gap arithmetic stays simple; callers validate sizes at the edges.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Screen is the size of the output windows are laid out on.
type Screen struct {
	Width  int
	Height int
}

// Rect returns the full-screen rectangle anchored at the origin.
func (s Screen) Rect() Rect {
	return Rect{X: 0, Y: 0, Width: s.Width, Height: s.Height}
}
