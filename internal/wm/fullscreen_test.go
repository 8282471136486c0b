package wm

import (
	"errors"
	"reflect"
	"testing"

	"github.com/1broseidon/layerwm/internal/geometry"
	"github.com/1broseidon/layerwm/internal/layout"
)

func newTestFullscreen() *Fullscreen {
	return NewFullscreen(testScreen, layout.MasterStack{})
}

func TestFullscreenEclipsesEverything(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, tiledInfo(2))
	mustAdd(t, f, floatInfo(3, floatRect))
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	want := RenderLayout{
		Entries: []Entry{{ID: 2, Geometry: testScreen.Rect()}},
		Focused: 2,
	}
	if got := f.Layout(); !reflect.DeepEqual(got, want) {
		t.Fatalf("layout: got %+v, want %+v", got, want)
	}
	if got := f.FullscreenWindow(); got != 2 {
		t.Fatalf("fullscreen window: got %d, want 2", got)
	}
	// everything stays managed behind the eclipse
	wantIDs(t, f.Windows(), []WindowID{1, 3, 2})
}

func TestFullscreenToggleTwiceRestoresPlacement(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, floatInfo(2, floatRect))
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	info, err := f.WindowInfo(2)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode != Floating || info.Geometry != floatRect || info.Fullscreen {
		t.Fatalf("restored info: got %+v", info)
	}
	if got := f.FocusedWindow(); got != 2 {
		t.Fatalf("focused: got %d, want 2", got)
	}
}

func TestFullscreenAddExitsFullscreen(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	if err := f.ToggleFullscreen(1); err != nil {
		t.Fatal(err)
	}
	mustAdd(t, f, tiledInfo(2))
	if got := f.FullscreenWindow(); got != None {
		t.Fatalf("fullscreen window: got %d, want None", got)
	}
	wantIDs(t, entryIDs(f.Layout()), []WindowID{1, 2})
}

func TestFullscreenAddWithFlagEclipsesImmediately(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	info := floatInfo(5, floatRect)
	info.Fullscreen = true
	mustAdd(t, f, info)
	if got := f.FullscreenWindow(); got != 5 {
		t.Fatalf("fullscreen window: got %d, want 5", got)
	}
	// leaving fullscreen lands it at its descriptor geometry, floating
	if err := f.ToggleFullscreen(5); err != nil {
		t.Fatal(err)
	}
	got, err := f.WindowInfo(5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mode != Floating || got.Geometry != floatRect || got.Fullscreen {
		t.Fatalf("restored info: got %+v", got)
	}
}

func TestFullscreenAddTiledWithFlagRestoresIntoTiling(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, tiledInfo(2))
	info := tiledInfo(5)
	info.Fullscreen = true
	mustAdd(t, f, info)
	wantIDs(t, entryIDs(f.Layout()), []WindowID{5})
	// removing another window leaves the eclipse alone
	if err := f.RemoveWindow(2); err != nil {
		t.Fatal(err)
	}
	if got := f.FullscreenWindow(); got != 5 {
		t.Fatalf("fullscreen window: got %d, want 5", got)
	}
	// leaving fullscreen tiles 5 next to 1
	if err := f.ToggleFullscreen(5); err != nil {
		t.Fatal(err)
	}
	wantIDs(t, entryIDs(f.Layout()), []WindowID{1, 5})
}

func TestFullscreenFocusHeldIsNoop(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, tiledInfo(2))
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	if err := f.FocusWindow(2); err != nil {
		t.Fatal(err)
	}
	if got := f.FullscreenWindow(); got != 2 {
		t.Fatalf("fullscreen window: got %d, want 2", got)
	}
}

func TestFullscreenFocusOtherExits(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, tiledInfo(2))
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	if err := f.FocusWindow(1); err != nil {
		t.Fatal(err)
	}
	if got := f.FullscreenWindow(); got != None {
		t.Fatalf("fullscreen window: got %d, want None", got)
	}
	if got := f.FocusedWindow(); got != 1 {
		t.Fatalf("focused: got %d, want 1", got)
	}
}

func TestFullscreenFocusNoneExits(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	if err := f.ToggleFullscreen(1); err != nil {
		t.Fatal(err)
	}
	if err := f.FocusWindow(None); err != nil {
		t.Fatal(err)
	}
	if got := f.FullscreenWindow(); got != None {
		t.Fatalf("fullscreen window: got %d, want None", got)
	}
	if got := f.FocusedWindow(); got != None {
		t.Fatalf("focused: got %d, want None", got)
	}
}

func TestFullscreenCycleExits(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, tiledInfo(2))
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	// exit re-adds 2 at the end of the tile order with focus; Next wraps to 1
	f.CycleFocus(Next)
	if got := f.FullscreenWindow(); got != None {
		t.Fatalf("fullscreen window: got %d, want None", got)
	}
	if got := f.FocusedWindow(); got != 1 {
		t.Fatalf("focused: got %d, want 1", got)
	}
}

func TestFullscreenRemoveOtherKeepsEclipse(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, tiledInfo(2))
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	if err := f.RemoveWindow(1); err != nil {
		t.Fatal(err)
	}
	if got := f.FullscreenWindow(); got != 2 {
		t.Fatalf("fullscreen window: got %d, want 2", got)
	}
	wantIDs(t, entryIDs(f.Layout()), []WindowID{2})
}

func TestFullscreenRemoveHeldClears(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, tiledInfo(2))
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	if err := f.RemoveWindow(2); err != nil {
		t.Fatal(err)
	}
	if f.Managed(2) {
		t.Fatal("removed window must not stay managed")
	}
	wantIDs(t, entryIDs(f.Layout()), []WindowID{1})
}

func TestFullscreenSetGeometryUpdatesRestoreRect(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, floatInfo(2, floatRect))
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	moved := geometry.Rect{X: 30, Y: 40, Width: 160, Height: 120}
	if err := f.SetWindowGeometry(2, moved); err != nil {
		t.Fatal(err)
	}
	// the eclipse itself still covers the screen
	if got := f.Layout().Entries[0].Geometry; got != testScreen.Rect() {
		t.Fatalf("eclipse geometry: got %+v", got)
	}
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	info, err := f.WindowInfo(2)
	if err != nil {
		t.Fatal(err)
	}
	if info.Geometry != moved {
		t.Fatalf("restored geometry: got %+v, want %+v", info.Geometry, moved)
	}
}

func TestFullscreenOnMinimizedWindow(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, tiledInfo(2))
	if err := f.ToggleMinimised(2); err != nil {
		t.Fatal(err)
	}
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	if got := f.FullscreenWindow(); got != 2 {
		t.Fatalf("fullscreen window: got %d, want 2", got)
	}
	if f.Minimised(2) {
		t.Fatal("window must leave the minimized set")
	}
}

func TestFullscreenSecondToggleReplacesHeld(t *testing.T) {
	f := newTestFullscreen()
	mustAdd(t, f, tiledInfo(1))
	mustAdd(t, f, tiledInfo(2))
	if err := f.ToggleFullscreen(1); err != nil {
		t.Fatal(err)
	}
	if err := f.ToggleFullscreen(2); err != nil {
		t.Fatal(err)
	}
	if got := f.FullscreenWindow(); got != 2 {
		t.Fatalf("fullscreen window: got %d, want 2", got)
	}
	// 1 went back to tiling when 2 took over
	if !f.wrapped.Managed(1) {
		t.Fatal("previous fullscreen window must be restored")
	}
}

func TestFullscreenUnknownWindow(t *testing.T) {
	f := newTestFullscreen()
	var unknown *UnknownWindowError
	if err := f.ToggleFullscreen(9); !errors.As(err, &unknown) {
		t.Fatalf("ToggleFullscreen: got %v", err)
	}
	if err := f.FocusWindow(9); !errors.As(err, &unknown) {
		t.Fatalf("FocusWindow: got %v", err)
	}
}
