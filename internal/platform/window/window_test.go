package window

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/void-arcade/internal/core"
	"github.com/vovakirdan/void-arcade/internal/storage"
)

type fakeKeys struct {
	down map[ebiten.Key]bool
	edge map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{down: map[ebiten.Key]bool{}, edge: map[ebiten.Key]bool{}}
}

func (k *fakeKeys) Pressed(key ebiten.Key) bool     { return k.down[key] }
func (k *fakeKeys) JustPressed(key ebiten.Key) bool { return k.edge[key] }

type fakePointer struct {
	pressed      []ebiten.TouchID
	touchX       int
	released     bool
	mousePressed bool
	mouseUp      bool
	mouseX       int
}

func (p *fakePointer) JustPressedTouches() []ebiten.TouchID { return p.pressed }
func (p *fakePointer) TouchX(ebiten.TouchID) int            { return p.touchX }
func (p *fakePointer) TouchReleased(ebiten.TouchID) bool    { return p.released }
func (p *fakePointer) MouseJustPressed() bool               { return p.mousePressed }
func (p *fakePointer) MouseJustReleased() bool              { return p.mouseUp }
func (p *fakePointer) MouseX() int                          { return p.mouseX }

type fakeGame struct {
	resets int
	cfg    core.RuntimeConfig
	frames []core.InputFrame
	state  core.GameState
	events []core.Event
}

func (g *fakeGame) ID() string    { return "window-fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
	g.state = core.GameState{Phase: core.PhaseIdle, HighScore: cfg.HighScore}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	events := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {}
func (g *fakeGame) State() core.GameState   { return g.state }

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestHost(t *testing.T, store *storage.Store) (*Host, *fakeGame, *fakeKeys, *fakePointer) {
	t.Helper()
	g := &fakeGame{}
	h := NewHost(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, Options{Width: 640, Height: 320, Store: store})
	keys, ptr := newFakeKeys(), &fakePointer{}
	h.keys, h.pointer = keys, ptr
	h.clock = func() time.Time { return t0 }
	return h, g, keys, ptr
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		w, h       int
		cols, rows int
	}{
		{800, 640, 100, 40},
		{807, 655, 100, 40},
		{4, 4, 1, 1},
		{0, 0, 1, 1},
	}
	for _, tc := range tests {
		cols, rows := gridSize(tc.w, tc.h)
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("gridSize(%d, %d) = %d, %d; expected %d, %d", tc.w, tc.h, cols, rows, tc.cols, tc.rows)
		}
	}
}

func TestRGBA(t *testing.T) {
	c := rgba(core.RGB(10, 20, 30), core.DefaultForeground)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 0xff {
		t.Errorf("rgba = %+v", c)
	}
	d := rgba(core.ColorDefault, core.DefaultBackground)
	if d.R != 0 || d.G != 0 || d.B != 0 || d.A != 0xff {
		t.Errorf("default should use the fallback, got %+v", d)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want glyph
	}{
		{' ', glyphNone},
		{0, glyphNone},
		{'A', glyphText},
		{'*', glyphText},
		{'█', glyphBlock},
		{'✶', glyphBlock},
	}
	for _, tc := range tests {
		if got := classify(tc.r); got != tc.want {
			t.Errorf("classify(%q) = %d, expected %d", tc.r, got, tc.want)
		}
	}
}

func TestReadKeys(t *testing.T) {
	keys := newFakeKeys()
	keys.down[ebiten.KeyA] = true
	keys.down[ebiten.KeySpace] = true
	keys.down[ebiten.KeyP] = true // held but not a fresh press
	keys.edge[ebiten.KeyY] = true

	f := core.NewInputFrame()
	readKeys(keys, &f)

	for _, a := range []core.Action{core.ActionLeft, core.ActionFire, core.ActionAnswerYes} {
		if !f.Has(a) {
			t.Errorf("%s should be set", a)
		}
	}
	if f.Has(core.ActionPause) {
		t.Error("a command should fire only on its press edge")
	}
	if f.Has(core.ActionRight) {
		t.Error("right was not pressed")
	}
}

func TestTouchSteers(t *testing.T) {
	in := newTouchInput()
	ptr := &fakePointer{pressed: []ebiten.TouchID{3}, touchX: 100}

	frame := func() core.InputFrame {
		f := core.NewInputFrame()
		in.update(ptr, &f, t0)
		return f
	}

	if f := frame(); !f.Has(core.ActionFire) {
		t.Fatal("touch start should fire")
	}
	ptr.pressed = nil

	ptr.touchX = 105
	if f := frame(); f.Has(core.ActionRight) {
		t.Error("a small drag should not steer")
	}
	ptr.touchX = 115
	if f := frame(); !f.Has(core.ActionRight) || !f.Has(core.ActionFire) {
		t.Errorf("drag right should steer right and fire, got %v", f.Actions)
	}
	// Direction holds while the finger rests.
	if f := frame(); !f.Has(core.ActionRight) {
		t.Error("direction should hold until the touch ends")
	}

	ptr.released = true
	if f := frame(); len(f.Actions) != 0 {
		t.Errorf("release should clear controls, got %v", f.Actions)
	}
	ptr.released = false

	// The mouse acts as a touch when no finger is down.
	ptr.mousePressed, ptr.mouseX = true, 50
	if f := frame(); !f.Has(core.ActionFire) {
		t.Error("mouse press should fire")
	}
	ptr.mousePressed, ptr.mouseX = false, 30
	if f := frame(); !f.Has(core.ActionLeft) {
		t.Error("mouse drag left should steer left")
	}
	ptr.mouseUp = true
	if f := frame(); len(f.Actions) != 0 {
		t.Errorf("mouse release should clear controls, got %v", f.Actions)
	}
}

func TestHostSizesGameToWindow(t *testing.T) {
	_, g, _, _ := newTestHost(t, nil)
	if g.cfg.ScreenW != 80 || g.cfg.ScreenH != 20 {
		t.Errorf("grid = %dx%d, expected 80x20", g.cfg.ScreenW, g.cfg.ScreenH)
	}
}

func TestHostQuitAndBack(t *testing.T) {
	h, g, keys, _ := newTestHost(t, nil)

	g.state.Phase = "playing"
	h.state = g.state
	keys.edge[ebiten.KeyEscape] = true
	if err := h.Update(); err != nil {
		t.Fatalf("back while playing should reach the game, got %v", err)
	}
	if !g.frames[len(g.frames)-1].Has(core.ActionBack) {
		t.Error("game should see back")
	}

	g.state.Phase = core.PhaseIdle
	keys.edge[ebiten.KeyEscape] = false
	h.Update()
	keys.edge[ebiten.KeyEscape] = true
	if err := h.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("back while idle = %v, expected termination", err)
	}

	keys.edge[ebiten.KeyEscape] = false
	keys.edge[ebiten.KeyQ] = true
	if err := h.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit = %v, expected termination", err)
	}
}

func TestHostLayoutResizes(t *testing.T) {
	h, g, _, _ := newTestHost(t, nil)

	if w, hh := h.Layout(800, 640); w != 800 || hh != 640 {
		t.Errorf("Layout = %dx%d, canvas should match the window", w, hh)
	}
	if g.resets != 2 || g.cfg.ScreenW != 100 || g.cfg.ScreenH != 40 {
		t.Errorf("idle resize: resets = %d, grid = %dx%d", g.resets, g.cfg.ScreenW, g.cfg.ScreenH)
	}

	h.Layout(800, 640)
	if g.resets != 2 {
		t.Error("an unchanged size should not reset")
	}

	g.state.Phase = "playing"
	h.Update()
	h.Layout(400, 320)
	if g.resets != 2 {
		t.Error("a running game should not be reset")
	}
	if h.screen.Width() != 50 || h.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, expected 50x20", h.screen.Width(), h.screen.Height())
	}

	g.state.Phase = core.PhaseIdle
	h.Update()
	if g.resets != 3 || g.cfg.ScreenW != 50 {
		t.Errorf("deferred reset: resets = %d, width = %d", g.resets, g.cfg.ScreenW)
	}
}

func TestHostPersistsScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveHighScore("window-fake", 40)

	h, g, _, _ := newTestHost(t, store)
	if g.cfg.HighScore != 40 {
		t.Errorf("HighScore = %d, expected the persisted 40", g.cfg.HighScore)
	}

	g.events = []core.Event{{Kind: core.EventHighScore, Value: 90}}
	g.state = core.GameState{Score: 90, HighScore: 90, GameOver: true, Phase: "gameover"}
	h.Update()
	h.Update()
	h.Close()

	if best := store.LoadHighScore("window-fake"); best != 90 {
		t.Errorf("persisted best = %d, expected 90", best)
	}
	if scores, _ := store.TopScores("window-fake", 10); len(scores) != 1 {
		t.Errorf("runs = %d, expected 1", len(scores))
	}
}
