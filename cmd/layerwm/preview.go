package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/1broseidon/layerwm/internal/config"
	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/tui"
	"github.com/1broseidon/layerwm/internal/wm"
)

func runPreview(args []string) int {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	layoutName := fs.String("layout", "", "tiling layout: master-stack or spiral (default: from config)")
	windows := fs.Int("windows", 3, "number of tiled windows")
	floats := fs.Int("floating", 0, "number of floating windows on top")
	gap := fs.Int("gap", -1, "gap between tiles (default: from config)")
	width := fs.Int("width", 0, "canvas width in characters (default: terminal width)")
	height := fs.Int("height", 0, "canvas height in characters (default: terminal height)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: layerwm preview [options]")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *layoutName == "" {
		*layoutName = cfg.DefaultLayout
	}
	if *gap < 0 {
		*gap = cfg.GapSize
	}
	if *windows < 0 || *floats < 0 {
		fmt.Fprintln(os.Stderr, "window counts must not be negative")
		return 2
	}

	screen := geometry.Screen{Width: cfg.Screen.Width, Height: cfg.Screen.Height}
	stack, err := wm.NewStack(screen, wm.Options{
		Workspaces: 1,
		Layout:     *layoutName,
		Gap:        *gap,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	id := wm.WindowID(1)
	for i := 0; i < *windows; i++ {
		if err := stack.AddWindow(wm.WindowInfo{ID: id, Mode: wm.Tiled}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		id++
	}
	for i := 0; i < *floats; i++ {
		rect := geometry.Rect{
			X:      screen.Width/6 + i*40,
			Y:      screen.Height/6 + i*30,
			Width:  screen.Width / 3,
			Height: screen.Height / 3,
		}
		if err := stack.AddWindow(wm.WindowInfo{ID: id, Mode: wm.Floating, Geometry: rect}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		id++
	}

	canvasW, canvasH := *width, *height
	if canvasW == 0 || canvasH == 0 {
		termW, termH, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			termW, termH = 80, 24
		}
		if canvasW == 0 {
			canvasW = termW
		}
		if canvasH == 0 {
			canvasH = termH - 2
		}
	}

	lines := tui.RenderCanvas(stack.Layout(), stack.Screen(), canvasW, canvasH)
	fmt.Println(strings.Join(lines, "\n"))
	fmt.Printf("%s, %d tiled + %d floating, gap %d, screen %dx%d\n",
		*layoutName, *windows, *floats, *gap, screen.Width, screen.Height)
	return 0
}
