// Package tui renders layer-stack state in the terminal: an ASCII canvas
// used by the preview command and an interactive bubbletea demo that drives
// a live stack from the keyboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/layerwm/internal/config"
	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/wm"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// model is the root bubbletea model for the interactive demo.
type model struct {
	stack  *wm.Router
	screen geometry.Screen
	nextID wm.WindowID

	status string
	failed bool

	// terminal dimensions
	width  int
	height int
}

func newModel(cfg *config.Config) (model, error) {
	screen := geometry.Screen{Width: cfg.Screen.Width, Height: cfg.Screen.Height}
	stack, err := wm.NewStack(screen, wm.Options{
		Workspaces: cfg.Workspaces,
		Layout:     cfg.DefaultLayout,
		Gap:        cfg.GapSize,
	})
	if err != nil {
		return model{}, err
	}
	return model{
		stack:  stack,
		screen: screen,
		nextID: 1,
		status: "ready",
	}, nil
}

// NewProgram builds the interactive demo program from a configuration.
func NewProgram(cfg *config.Config) (*tea.Program, error) {
	m, err := newModel(cfg)
	if err != nil {
		return nil, err
	}
	return tea.NewProgram(m, tea.WithAltScreen()), nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// floatRect derives a cascading rectangle for a new floating window so
// successive floats do not stack exactly on top of each other.
func (m model) floatRect() geometry.Rect {
	step := int(m.nextID%5) * 30
	return geometry.Rect{
		X:      m.screen.Width/8 + step,
		Y:      m.screen.Height/8 + step,
		Width:  m.screen.Width / 3,
		Height: m.screen.Height / 3,
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		id := m.nextID
		m.nextID++
		m.apply(fmt.Sprintf("add %d tiled", id), m.stack.AddWindow(wm.WindowInfo{ID: id, Mode: wm.Tiled}))
	case "f":
		id := m.nextID
		rect := m.floatRect()
		m.nextID++
		m.apply(fmt.Sprintf("add %d floating", id), m.stack.AddWindow(wm.WindowInfo{ID: id, Mode: wm.Floating, Geometry: rect}))
	case "x":
		if id := m.stack.FocusedWindow(); id != wm.None {
			m.apply(fmt.Sprintf("remove %d", id), m.stack.RemoveWindow(id))
		} else {
			m.note("nothing focused")
		}
	case "tab", "j":
		m.stack.CycleFocus(wm.Next)
		m.note("focus next")
	case "shift+tab", "k":
		m.stack.CycleFocus(wm.Prev)
		m.note("focus prev")
	case "t":
		if id := m.stack.FocusedWindow(); id != wm.None {
			m.apply(fmt.Sprintf("toggle floating %d", id), m.stack.ToggleFloating(id))
		} else {
			m.note("nothing focused")
		}
	case "n":
		if id := m.stack.FocusedWindow(); id != wm.None {
			m.apply(fmt.Sprintf("minimize %d", id), m.stack.ToggleMinimised(id))
		} else {
			m.note("nothing focused")
		}
	case "u":
		// restore the oldest minimized window
		if ids := m.stack.MinimisedWindows(); len(ids) > 0 {
			m.apply(fmt.Sprintf("restore %d", ids[0]), m.stack.ToggleMinimised(ids[0]))
		} else {
			m.note("nothing minimized")
		}
	case "z":
		if id := m.stack.FocusedWindow(); id != wm.None {
			m.apply(fmt.Sprintf("toggle fullscreen %d", id), m.stack.ToggleFullscreen(id))
		} else {
			m.note("nothing focused")
		}
	case "enter":
		if id := m.stack.FocusedWindow(); id != wm.None {
			m.apply(fmt.Sprintf("swap %d with master", id), m.stack.SwapWithMaster(id))
		} else {
			m.note("nothing focused")
		}
	case "[":
		m.stack.SwapWindows(wm.Prev)
		m.note("swap prev")
	case "]":
		m.stack.SwapWindows(wm.Next)
		m.note("swap next")
	case "+", "=":
		m.stack.SetGap(m.stack.Gap() + 2)
		m.note(fmt.Sprintf("gap %d", m.stack.Gap()))
	case "-":
		if g := m.stack.Gap(); g >= 2 {
			m.stack.SetGap(g - 2)
		}
		m.note(fmt.Sprintf("gap %d", m.stack.Gap()))
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			index := int(key[0] - '1')
			m.apply(fmt.Sprintf("workspace %d", index+1), m.stack.SwitchWorkspace(index))
		}
	}
	return m, nil
}

func (m *model) apply(action string, err error) {
	if err != nil {
		m.status = fmt.Sprintf("%s: %v", action, err)
		m.failed = true
		return
	}
	m.status = action
	m.failed = false
}

func (m *model) note(s string) {
	m.status = s
	m.failed = false
}

func (m model) View() string {
	canvasW := m.width
	canvasH := m.height - 4
	if canvasW < 20 {
		canvasW = 20
	}
	if canvasH < 6 {
		canvasH = 6
	}

	title := titleStyle.Render(fmt.Sprintf("layerwm demo — workspace %d/%d — gap %d",
		m.stack.CurrentWorkspace()+1, m.stack.WorkspaceCount(), m.stack.Gap()))

	canvas := strings.Join(RenderCanvas(m.stack.Layout(), m.stack.Screen(), canvasW, canvasH), "\n")

	status := statusStyle.Render(m.status)
	if m.failed {
		status = errorStyle.Render(m.status)
	}
	if ids := m.stack.MinimisedWindows(); len(ids) > 0 {
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = fmt.Sprintf("%d", id)
		}
		status += helpStyle.Render(fmt.Sprintf("  (minimized: %s)", strings.Join(parts, " ")))
	}

	help := helpStyle.Render("a add  f float  x close  tab cycle  t float/tile  n min  u restore  z full  enter master  [ ] swap  +/- gap  1-9 ws  q quit")

	return title + "\n" + canvas + "\n" + status + "\n" + help
}
