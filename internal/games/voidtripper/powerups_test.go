package voidtripper

import (
	"testing"
	"time"

	"github.com/vovakirdan/void-arcade/internal/core"
)

func pickupGame(t *testing.T, name string) *Game {
	t.Helper()
	g := NewWithConfig(quietConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 30, Seed: 9, PlayerName: name})
	return g
}

func TestPowerUpNamesAndIcons(t *testing.T) {
	seen := make(map[string]PowerUpKind)
	for k := range powerUpKinds {
		name := k.String()
		if name == "???" {
			t.Errorf("kind %d has no name", k)
		}
		if k.Icon() == "*" {
			t.Errorf("%s has no icon", name)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("kinds %d and %d share the name %q", prev, k, name)
		}
		seen[name] = k
	}
	if powerUpKinds != 10 {
		t.Errorf("expected 10 pickup kinds, got %d", powerUpKinds)
	}
}

func TestFourthWallGreetsPlayer(t *testing.T) {
	g := pickupGame(t, "neo")
	g.applyPowerUp(FourthWall, 0)

	if !hasOverlay(g, "Hey neo, nice moves!") {
		t.Fatalf("greeting missing, overlays = %+v", g.overlays)
	}
	if g.sched.pending() != 2 {
		t.Fatalf("expected 2 follow-up lines, got %d", g.sched.pending())
	}

	g.sched.drain(1499*time.Millisecond, g)
	if hasOverlay(g, fourthWallLines[0]) {
		t.Error("second line shown early")
	}
	g.sched.drain(1500*time.Millisecond, g)
	if !hasOverlay(g, fourthWallLines[0]) {
		t.Error("second line missing at 1.5s")
	}
	g.sched.drain(3*time.Second, g)
	if !hasOverlay(g, fourthWallLines[1]) {
		t.Error("third line missing at 3s")
	}
	if g.sched.pending() != 0 {
		t.Errorf("queue should be empty, got %d", g.sched.pending())
	}
}

func TestFourthWallWithoutName(t *testing.T) {
	g := pickupGame(t, "")
	g.applyPowerUp(FourthWall, 0)

	found := false
	for _, who := range greetings {
		if hasOverlay(g, "Hey "+who+", nice moves!") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a stock greeting, overlays = %+v", g.overlays)
	}
}

func TestExistentialLinesAreStaggered(t *testing.T) {
	g := pickupGame(t, "")
	now := 5 * time.Second
	g.applyPowerUp(Existential, now)

	if !hasOverlay(g, existentialLines[0]) {
		t.Fatal("first line should appear immediately")
	}
	g.sched.drain(now+999*time.Millisecond, g)
	if hasOverlay(g, existentialLines[1]) {
		t.Error("second line shown before 1s")
	}
	g.sched.drain(now+time.Second, g)
	if !hasOverlay(g, existentialLines[1]) {
		t.Error("second line missing at 1s")
	}
	if hasOverlay(g, existentialLines[2]) {
		t.Error("third line shown before 2s")
	}
	g.sched.drain(now+2*time.Second, g)
	if !hasOverlay(g, existentialLines[2]) {
		t.Error("third line missing at 2s")
	}
	if !active(g.fx.existential, now+7*time.Second) || active(g.fx.existential, now+8*time.Second) {
		t.Error("existential dimming should last exactly the effect duration")
	}
}

func TestRealityBreakSettles(t *testing.T) {
	g := pickupGame(t, "")
	g.applyPowerUp(RealityBreak, 0)

	if g.kaleidoscope < 2 || g.kaleidoscope > 7 {
		t.Errorf("kaleidoscope = %d, expected 2..7", g.kaleidoscope)
	}
	if g.aberration != 50 || g.shake != 40 {
		t.Errorf("aberration = %v shake = %v, expected 50 and 40", g.aberration, g.shake)
	}
	if len(g.glitches) != 10 {
		t.Errorf("glitches = %d, expected 10", len(g.glitches))
	}

	g.sched.drain(3*time.Second, g)
	if g.kaleidoscope != 1 {
		t.Errorf("kaleidoscope = %d after 3s, expected 1", g.kaleidoscope)
	}
}

func TestDimensionShiftQueuesPuzzle(t *testing.T) {
	g := pickupGame(t, "")
	g.applyPowerUp(DimensionShift, 0)

	if g.pendingQuiz == nil {
		t.Fatal("chess dimension should queue a puzzle")
	}
	if g.pendingQuiz.Question == "" || len(g.pendingQuiz.Pieces) == 0 {
		t.Errorf("puzzle is incomplete: %+v", *g.pendingQuiz)
	}
	if !active(g.fx.dimension, 0) {
		t.Error("dimension tint should be active")
	}
}

func TestActiveLabelsOldestFirst(t *testing.T) {
	g := pickupGame(t, "")
	g.applyPowerUp(Negative, 0)
	g.applyPowerUp(MultiShot, time.Second)
	g.applyPowerUp(Shield, 2*time.Second)

	got := g.activeLabels(3 * time.Second)
	want := []PowerUpKind{Negative, MultiShot, Shield}
	if len(got) != len(want) {
		t.Fatalf("labels = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %v, expected %v", i, got[i], want[i])
		}
	}

	got = g.activeLabels(9 * time.Second)
	if len(got) != 1 || got[0] != Shield {
		t.Errorf("labels at 9s = %v, expected [PLOT ARMOR]", got)
	}
}

func TestSchedulerOrder(t *testing.T) {
	var s scheduler
	var order []int
	record := func(n int) func(*Game) {
		return func(*Game) { order = append(order, n) }
	}

	s.after(0, 2*time.Second, record(3))
	s.after(0, time.Second, record(1))
	s.after(0, time.Second, record(2))
	s.after(0, 5*time.Second, record(4))

	s.drain(2*time.Second, nil)
	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("fired %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d = %d, expected %d", i, order[i], want[i])
		}
	}
	if s.pending() != 1 {
		t.Errorf("pending = %d, expected 1", s.pending())
	}
}

func TestSchedulerChainsDueActions(t *testing.T) {
	var s scheduler
	fired := 0
	s.after(0, time.Second, func(*Game) {
		fired++
		s.after(time.Second, 0, func(*Game) { fired++ })
	})

	s.drain(time.Second, nil)
	if fired != 2 {
		t.Errorf("fired = %d, expected the chained action to run in the same drain", fired)
	}
}

func TestSchedulerClear(t *testing.T) {
	var s scheduler
	fired := false
	s.after(0, time.Millisecond, func(*Game) { fired = true })
	s.clear()
	s.drain(time.Hour, nil)

	if fired {
		t.Error("cleared action fired")
	}
	if s.pending() != 0 {
		t.Errorf("pending = %d after clear", s.pending())
	}
}

func TestSessionResetDropsScheduledLines(t *testing.T) {
	g := pickupGame(t, "")
	g.applyPowerUp(FourthWall, 0)
	g.resetSession()

	if g.sched.pending() != 0 {
		t.Errorf("pending = %d after reset", g.sched.pending())
	}
}
