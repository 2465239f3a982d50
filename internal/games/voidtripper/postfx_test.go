package voidtripper

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// refusingSurface rejects every read.
type refusingSurface struct{ *core.Screen }

func (refusingSurface) ReadRegion(core.Rect) ([]core.Cell, error) {
	return nil, core.ErrSurfaceUnavailable
}

// panickingSurface blows up on writes.
type panickingSurface struct{ *core.Screen }

func (panickingSurface) WriteRegion(core.Rect, []core.Cell) error {
	panic("surface detached")
}

func effectsGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(quietConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 4, Seed: 1})
	return g
}

func testView(g *Game, s *core.Screen) view {
	return g.newView(s, 0)
}

func TestPostEffectOrder(t *testing.T) {
	g := effectsGame(t)
	g.fx.negative = time.Hour
	g.aberration = 20
	g.glitches = []Glitch{{W: 16, H: 16, Life: 3}}
	g.kaleidoscope = 3
	g.trip = 5

	var names []string
	for _, fx := range g.postEffects() {
		names = append(names, fx.name)
	}
	want := []string{"negative", "aberration", "glitch", "kaleidoscope", "scanlines"}
	if len(names) != len(want) {
		t.Fatalf("effects = %v, expected %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("effect %d = %s, expected %s", i, names[i], want[i])
		}
	}

	g.fx.negative = 0
	g.aberration = 0
	g.glitches = nil
	g.kaleidoscope = 1
	g.trip = 1
	if fx := g.postEffects(); len(fx) != 0 {
		t.Errorf("calm frame should have no effects, got %d", len(fx))
	}
}

func TestNegativeInvertsColors(t *testing.T) {
	g := effectsGame(t)
	g.fx.negative = time.Hour
	screen := core.NewScreen(10, 4)
	screen.SetColored(0, 0, 'x', core.RGB(255, 0, 0))

	g.applyPostEffects(screen, testView(g, screen))

	c := screen.GetCell(0, 0)
	if c.FG != core.RGB(0, 255, 255) {
		t.Errorf("fg = %s, expected #00ffff", c.FG.Hex())
	}
	if c.BG != core.RGB(255, 255, 255) {
		t.Errorf("bg = %s, expected white", c.BG.Hex())
	}
	if c.Rune != 'x' {
		t.Errorf("rune changed to %q", c.Rune)
	}
	if g.PostEffectSkips() != 0 {
		t.Errorf("skips = %d, expected 0", g.PostEffectSkips())
	}
}

func TestUnavailableSurfaceSkipsEffects(t *testing.T) {
	g := effectsGame(t)
	g.fx.negative = time.Hour
	g.aberration = 30
	g.trip = 5

	screen := core.NewScreen(10, 4)
	g.applyPostEffects(refusingSurface{screen}, testView(g, screen))

	if g.PostEffectSkips() != 3 {
		t.Errorf("skips = %d, expected 3", g.PostEffectSkips())
	}
	if !errors.Is(g.post.lastErr, core.ErrSurfaceUnavailable) {
		t.Errorf("last error = %v, expected ErrSurfaceUnavailable", g.post.lastErr)
	}
}

func TestPanickingEffectIsContained(t *testing.T) {
	g := effectsGame(t)
	g.fx.negative = time.Hour
	g.trip = 5

	screen := core.NewScreen(10, 4)
	g.applyPostEffects(panickingSurface{screen}, testView(g, screen))

	if g.PostEffectSkips() != 2 {
		t.Errorf("skips = %d, expected 2", g.PostEffectSkips())
	}

	// The next frame on a healthy surface runs normally.
	g.applyPostEffects(screen, testView(g, screen))
	if g.PostEffectSkips() != 2 {
		t.Errorf("healthy frame should not skip, total = %d", g.PostEffectSkips())
	}
}

func TestZeroSizedScreenSkips(t *testing.T) {
	g := effectsGame(t)
	g.trip = 5
	screen := core.NewScreen(0, 0)
	g.applyPostEffects(screen, view{sx: 8, sy: 16})
	if g.PostEffectSkips() != 1 {
		t.Errorf("skips = %d, expected 1", g.PostEffectSkips())
	}
}

func TestGlitchClipsToSurface(t *testing.T) {
	g := effectsGame(t)
	screen := core.NewScreen(10, 4)
	screen.SetColored(2, 1, '#', core.RGB(100, 100, 100))

	g.glitches = []Glitch{
		{X: -50, Y: -20, W: 400, H: 100, OffsetX: 500, Life: 5},
		{X: 16, Y: 16, W: 8, H: 16, OffsetX: 16, Life: 5},
	}
	g.applyPostEffects(screen, testView(g, screen))

	if g.PostEffectSkips() != 0 {
		t.Fatalf("glitch hanging off the surface should clip, skips = %d", g.PostEffectSkips())
	}
	c := screen.GetCell(4, 1)
	if c.Rune != '#' || c.FG != core.RGB(150, 70, 100) {
		t.Errorf("displaced cell = %q %s, expected tinted copy", c.Rune, c.FG.Hex())
	}
}

func TestAberrationSplitsChannels(t *testing.T) {
	g := effectsGame(t)
	g.aberration = 8
	screen := core.NewScreen(10, 1)
	screen.SetColored(3, 0, 'a', core.RGB(200, 0, 0))
	screen.SetColored(4, 0, 'b', core.RGB(0, 50, 0))
	screen.SetColored(5, 0, 'c', core.RGB(0, 0, 150))

	g.applyPostEffects(screen, testView(g, screen))

	r, gg, b := screen.GetCell(4, 0).FG.Channels()
	if r != 200 || gg != 50 || b != 150 {
		t.Errorf("middle cell = (%d, %d, %d), expected (200, 50, 150)", r, gg, b)
	}
}
