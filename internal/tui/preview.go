package tui

import (
	"fmt"
	"strings"

	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/wm"
)

// RenderCanvas draws a render layout onto a character canvas. Entries are
// drawn back to front, so floating windows overdraw the tiles beneath them.
// The focused window's label is marked with an asterisk.
func RenderCanvas(l wm.RenderLayout, screen geometry.Screen, width, height int) []string {
	if width < 5 || height < 3 || screen.Width < 1 || screen.Height < 1 {
		return emptyCanvas(width, height)
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, e := range l.Entries {
		label := fmt.Sprintf("%d", e.ID)
		if e.ID == l.Focused {
			label += "*"
		}
		drawWindow(canvas, e.Geometry, label, screen, width, height)
	}

	drawBorder(canvas, width, height)

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

func drawWindow(canvas [][]rune, rect geometry.Rect, label string, screen geometry.Screen, canvasW, canvasH int) {
	// map screen coordinates onto the canvas
	x1 := rect.X * canvasW / screen.Width
	y1 := rect.Y * canvasH / screen.Height
	x2 := (rect.X + rect.Width) * canvasW / screen.Width
	y2 := (rect.Y + rect.Height) * canvasH / screen.Height

	if x1 < 1 {
		x1 = 1
	}
	if y1 < 1 {
		y1 = 1
	}
	if x2 >= canvasW-1 {
		x2 = canvasW - 2
	}
	if y2 >= canvasH-1 {
		y2 = canvasH - 2
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	// clear the interior so this window hides whatever is beneath it
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			canvas[y][x] = ' '
		}
	}

	for x := x1; x <= x2; x++ {
		canvas[y1][x] = '─'
		canvas[y2][x] = '─'
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = '│'
		canvas[y][x2] = '│'
	}
	canvas[y1][x1] = '┌'
	canvas[y1][x2] = '┐'
	canvas[y2][x1] = '└'
	canvas[y2][x2] = '┘'

	centerY := (y1 + y2) / 2
	centerX := (x1 + x2) / 2
	if centerY > y1 && centerY < y2 {
		startX := centerX - len(label)/2
		for i, r := range label {
			if startX+i > x1 && startX+i < x2 {
				canvas[centerY][startX+i] = r
			}
		}
	}
}

func drawBorder(canvas [][]rune, width, height int) {
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	lines := make([]string, height)
	empty := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = empty
	}
	return lines
}
