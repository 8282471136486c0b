package wm

import (
	"errors"
	"reflect"
	"testing"

	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/layout"
)

var testScreen = geometry.Screen{Width: 800, Height: 600}

func tiledInfo(id WindowID) WindowInfo {
	return WindowInfo{ID: id, Mode: Tiled}
}

func floatInfo(id WindowID, r geometry.Rect) WindowInfo {
	return WindowInfo{ID: id, Mode: Floating, Geometry: r}
}

func mustAdd(t *testing.T, m Manager, info WindowInfo) {
	t.Helper()
	if err := m.AddWindow(info); err != nil {
		t.Fatalf("AddWindow(%d): %v", info.ID, err)
	}
}

func entryIDs(l RenderLayout) []WindowID {
	ids := make([]WindowID, len(l.Entries))
	for i, e := range l.Entries {
		ids[i] = e.ID
	}
	return ids
}

func wantIDs(t *testing.T, got, want []WindowID) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("window order: got %v, want %v", got, want)
	}
}

func newTestTiling() *Tiling {
	return NewTiling(testScreen, layout.MasterStack{})
}

func TestTilingAddFocusesNewWindow(t *testing.T) {
	tl := newTestTiling()
	if tl.FocusedWindow() != None {
		t.Fatal("fresh layer must be unfocused")
	}
	mustAdd(t, tl, tiledInfo(1))
	mustAdd(t, tl, tiledInfo(2))
	if got := tl.FocusedWindow(); got != 2 {
		t.Fatalf("focused: got %d, want 2", got)
	}
	// re-adding is a no-op
	mustAdd(t, tl, tiledInfo(1))
	wantIDs(t, tl.Windows(), []WindowID{1, 2})
	if got := tl.FocusedWindow(); got != 2 {
		t.Fatalf("focused after duplicate add: got %d, want 2", got)
	}
}

func TestTilingLayoutGeometry(t *testing.T) {
	tl := newTestTiling()
	for id := WindowID(1); id <= 3; id++ {
		mustAdd(t, tl, tiledInfo(id))
	}
	// master 400x600, slaves 400x300 stacked on the right
	want := RenderLayout{
		Entries: []Entry{
			{ID: 1, Geometry: geometry.Rect{X: 0, Y: 0, Width: 400, Height: 600}},
			{ID: 2, Geometry: geometry.Rect{X: 400, Y: 0, Width: 400, Height: 300}},
			{ID: 3, Geometry: geometry.Rect{X: 400, Y: 300, Width: 400, Height: 300}},
		},
		Focused: 3,
	}
	if got := tl.Layout(); !reflect.DeepEqual(got, want) {
		t.Fatalf("layout:\n got %+v\nwant %+v", got, want)
	}
}

func TestTilingRemoveRepairsFocus(t *testing.T) {
	tl := newTestTiling()
	for id := WindowID(1); id <= 3; id++ {
		mustAdd(t, tl, tiledInfo(id))
	}
	// removing an unfocused window leaves focus alone
	if err := tl.FocusWindow(2); err != nil {
		t.Fatal(err)
	}
	if err := tl.RemoveWindow(3); err != nil {
		t.Fatal(err)
	}
	if got := tl.FocusedWindow(); got != 2 {
		t.Fatalf("focused after removing 3: got %d, want 2", got)
	}
	// removing the focused window moves focus to its cyclic predecessor
	if err := tl.RemoveWindow(2); err != nil {
		t.Fatal(err)
	}
	if got := tl.FocusedWindow(); got != 1 {
		t.Fatalf("focused after removing 2: got %d, want 1", got)
	}
	// removing the last window clears focus
	if err := tl.RemoveWindow(1); err != nil {
		t.Fatal(err)
	}
	if got := tl.FocusedWindow(); got != None {
		t.Fatalf("focused after removing all: got %d, want None", got)
	}
}

func TestTilingRemoveFocusedMasterWrapsToLast(t *testing.T) {
	tl := newTestTiling()
	for id := WindowID(1); id <= 3; id++ {
		mustAdd(t, tl, tiledInfo(id))
	}
	if err := tl.FocusWindow(1); err != nil {
		t.Fatal(err)
	}
	// predecessor of index 0 wraps to the end: [2 3] -> 3
	if err := tl.RemoveWindow(1); err != nil {
		t.Fatal(err)
	}
	if got := tl.FocusedWindow(); got != 3 {
		t.Fatalf("focused: got %d, want 3", got)
	}
}

func TestTilingFocusNoneClears(t *testing.T) {
	tl := newTestTiling()
	mustAdd(t, tl, tiledInfo(1))
	if err := tl.FocusWindow(None); err != nil {
		t.Fatal(err)
	}
	if got := tl.FocusedWindow(); got != None {
		t.Fatalf("focused: got %d, want None", got)
	}
}

func TestTilingCycleFocusWraps(t *testing.T) {
	tl := newTestTiling()
	for id := WindowID(1); id <= 3; id++ {
		mustAdd(t, tl, tiledInfo(id))
	}
	tl.CycleFocus(Next) // 3 -> 1
	if got := tl.FocusedWindow(); got != 1 {
		t.Fatalf("Next from 3: got %d, want 1", got)
	}
	tl.CycleFocus(Prev) // 1 -> 3
	if got := tl.FocusedWindow(); got != 3 {
		t.Fatalf("Prev from 1: got %d, want 3", got)
	}
}

func TestTilingCycleFocusFromUnfocused(t *testing.T) {
	tl := newTestTiling()
	for id := WindowID(1); id <= 3; id++ {
		mustAdd(t, tl, tiledInfo(id))
	}
	if err := tl.FocusWindow(None); err != nil {
		t.Fatal(err)
	}
	tl.CycleFocus(Next)
	if got := tl.FocusedWindow(); got != 1 {
		t.Fatalf("Next from unfocused: got %d, want 1", got)
	}
	if err := tl.FocusWindow(None); err != nil {
		t.Fatal(err)
	}
	tl.CycleFocus(Prev)
	if got := tl.FocusedWindow(); got != 3 {
		t.Fatalf("Prev from unfocused: got %d, want 3", got)
	}
}

func TestTilingCycleFocusEmpty(t *testing.T) {
	tl := newTestTiling()
	tl.CycleFocus(Next)
	if got := tl.FocusedWindow(); got != None {
		t.Fatalf("focused: got %d, want None", got)
	}
}

func TestTilingSwapWithMaster(t *testing.T) {
	tl := newTestTiling()
	for id := WindowID(1); id <= 3; id++ {
		mustAdd(t, tl, tiledInfo(id))
	}
	if err := tl.SwapWithMaster(3); err != nil {
		t.Fatal(err)
	}
	wantIDs(t, tl.Windows(), []WindowID{3, 2, 1})
	if got := tl.MasterWindow(); got != 3 {
		t.Fatalf("master: got %d, want 3", got)
	}
	if got := tl.FocusedWindow(); got != 3 {
		t.Fatalf("focused: got %d, want 3", got)
	}
	// swapping the master with itself only moves focus
	if err := tl.FocusWindow(2); err != nil {
		t.Fatal(err)
	}
	if err := tl.SwapWithMaster(3); err != nil {
		t.Fatal(err)
	}
	wantIDs(t, tl.Windows(), []WindowID{3, 2, 1})
	if got := tl.FocusedWindow(); got != 3 {
		t.Fatalf("focused after self swap: got %d, want 3", got)
	}
}

func TestTilingSwapWindowsFocusFollows(t *testing.T) {
	tl := newTestTiling()
	for id := WindowID(1); id <= 3; id++ {
		mustAdd(t, tl, tiledInfo(id))
	}
	if err := tl.FocusWindow(2); err != nil {
		t.Fatal(err)
	}
	tl.SwapWindows(Next) // [1 2 3] -> [1 3 2]
	wantIDs(t, tl.Windows(), []WindowID{1, 3, 2})
	if got := tl.FocusedWindow(); got != 2 {
		t.Fatalf("focused: got %d, want 2", got)
	}
	tl.SwapWindows(Prev) // back to [1 2 3]
	wantIDs(t, tl.Windows(), []WindowID{1, 2, 3})
}

func TestTilingSwapWindowsUnfocusedNoop(t *testing.T) {
	tl := newTestTiling()
	for id := WindowID(1); id <= 3; id++ {
		mustAdd(t, tl, tiledInfo(id))
	}
	if err := tl.FocusWindow(None); err != nil {
		t.Fatal(err)
	}
	tl.SwapWindows(Next)
	wantIDs(t, tl.Windows(), []WindowID{1, 2, 3})
}

func TestTilingResizeRecomputesLayout(t *testing.T) {
	tl := newTestTiling()
	mustAdd(t, tl, tiledInfo(1))
	mustAdd(t, tl, tiledInfo(2))
	tl.ResizeScreen(geometry.Screen{Width: 1000, Height: 400})
	want := []Entry{
		{ID: 1, Geometry: geometry.Rect{X: 0, Y: 0, Width: 500, Height: 400}},
		{ID: 2, Geometry: geometry.Rect{X: 500, Y: 0, Width: 500, Height: 400}},
	}
	if got := tl.Layout().Entries; !reflect.DeepEqual(got, want) {
		t.Fatalf("layout after resize:\n got %+v\nwant %+v", got, want)
	}
}

func TestTilingUnknownWindowErrors(t *testing.T) {
	tl := newTestTiling()
	mustAdd(t, tl, tiledInfo(1))
	var unknown *UnknownWindowError
	if err := tl.FocusWindow(9); !errors.As(err, &unknown) || unknown.Window != 9 {
		t.Fatalf("FocusWindow: got %v", err)
	}
	if err := tl.RemoveWindow(9); !errors.As(err, &unknown) {
		t.Fatalf("RemoveWindow: got %v", err)
	}
	if err := tl.SwapWithMaster(9); !errors.As(err, &unknown) {
		t.Fatalf("SwapWithMaster: got %v", err)
	}
	if _, err := tl.WindowInfo(9); !errors.As(err, &unknown) {
		t.Fatalf("WindowInfo: got %v", err)
	}
}
