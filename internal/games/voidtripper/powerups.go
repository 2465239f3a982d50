package voidtripper

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// PowerUpKind enumerates the pickups.
type PowerUpKind int

const (
	MultiShot PowerUpKind = iota
	TimeSlow
	Shield
	ScreenFlip
	Existential
	DimensionShift
	RealityBreak
	FourthWall
	SizeChaos
	Negative
	powerUpKinds
)

// String returns the name shown in the HUD.
func (k PowerUpKind) String() string {
	switch k {
	case MultiShot:
		return "SPREAD SHOT"
	case TimeSlow:
		return "MATRIX MODE"
	case Shield:
		return "PLOT ARMOR"
	case ScreenFlip:
		return "AUSTRALIA MODE"
	case Existential:
		return "EXISTENTIAL CRISIS"
	case DimensionShift:
		return "CHESS DIMENSION"
	case RealityBreak:
		return "WHAT"
	case FourthWall:
		return "HI PLAYER"
	case SizeChaos:
		return "DRINK ME"
	case Negative:
		return "NEGATIVE ZONE"
	default:
		return "???"
	}
}

// Icon returns the glyph drawn for a falling pickup.
func (k PowerUpKind) Icon() string {
	switch k {
	case MultiShot:
		return "⁂"
	case TimeSlow:
		return "◷"
	case Shield:
		return "◈"
	case ScreenFlip:
		return "⇅"
	case Existential:
		return "?"
	case DimensionShift:
		return "♔"
	case RealityBreak:
		return "҉"
	case FourthWall:
		return "👁"
	case SizeChaos:
		return "◐"
	case Negative:
		return "◑"
	default:
		return "*"
	}
}

// effects holds the expiry instant of every timed effect on the session
// clock. An effect is active while the clock is before its expiry.
type effects struct {
	multiShot   time.Duration
	timeSlow    time.Duration
	shield      time.Duration
	screenFlip  time.Duration
	existential time.Duration
	dimension   time.Duration
	sizeChaos   time.Duration
	negative    time.Duration
	inverted    time.Duration
}

func active(until, now time.Duration) bool {
	return now < until
}

// applyPowerUp starts the effect of k at session time now.
func (g *Game) applyPowerUp(k PowerUpKind, now time.Duration) {
	d := g.cfg.PowerUps.Duration
	until := now + d
	cx, cy := g.worldW/2, g.worldH/2

	switch k {
	case MultiShot:
		g.fx.multiShot = until
	case TimeSlow:
		g.fx.timeSlow = until
		g.addOverlay(msgTimeSlows, cx, cy, StyleMeta)
	case Shield:
		g.fx.shield = until
		g.player.InvincibleUntil = max(g.player.InvincibleUntil, until)
	case ScreenFlip:
		g.fx.screenFlip = until
		g.addOverlay(msgAustralia, cx, cy, StyleMeta)
	case Existential:
		g.fx.existential = until
		g.addOverlay(existentialLines[0], cx, g.worldH/3, StyleMeta)
		g.sched.after(now, time.Second, func(g *Game) {
			g.addOverlay(existentialLines[1], g.worldW/2, g.worldH/2, StyleMeta)
		})
		g.sched.after(now, 2*time.Second, func(g *Game) {
			g.addOverlay(existentialLines[2], g.worldW/2, g.worldH*2/3, StyleMeta)
		})
	case DimensionShift:
		g.fx.dimension = until
		g.addOverlay(msgChessOn, cx, cy, StylePiece)
		p := core.Pick(g.rng, chessPuzzles)
		g.pendingQuiz = &p
	case RealityBreak:
		g.aberration = 50
		g.shake = 40
		g.addGlitches(10)
		g.kaleidoscope = 2 + g.rng.Intn(6)
		g.sched.after(now, 3*time.Second, func(g *Game) {
			g.kaleidoscope = 1
		})
		g.addOverlay(msgRealityBreak, cx, cy, StyleGlitch)
	case FourthWall:
		name := g.runtime.PlayerName
		if name == "" {
			name = core.Pick(g.rng, greetings)
		}
		g.addOverlay(fmt.Sprintf("Hey %s, nice moves!", name), cx, g.worldH/3, StyleMeta)
		g.sched.after(now, 1500*time.Millisecond, func(g *Game) {
			g.addOverlay(fourthWallLines[0], g.worldW/2, g.worldH/2, StyleMeta)
		})
		g.sched.after(now, 3*time.Second, func(g *Game) {
			g.addOverlay(fourthWallLines[1], g.worldW/2, g.worldH*2/3, StyleMeta)
		})
	case SizeChaos:
		g.fx.sizeChaos = until
		if g.rng.Chance(0.5) {
			g.player.SizeMult = 0.5
			g.addOverlay(msgSmol, cx, cy, StyleMeta)
		} else {
			g.player.SizeMult = 2
			g.addOverlay(msgUnit, cx, cy, StyleMeta)
		}
	case Negative:
		g.fx.negative = until
		g.addOverlay(msgNegative, cx, cy, StyleNegative)
	}

	g.labels[k] = until
}

// activeLabels returns the HUD effect list, oldest pickup first.
func (g *Game) activeLabels(now time.Duration) []PowerUpKind {
	var kinds []PowerUpKind
	for k := range powerUpKinds {
		if active(g.labels[k], now) {
			kinds = append(kinds, k)
		}
	}
	slices.SortStableFunc(kinds, func(a, b PowerUpKind) int {
		return cmp.Compare(g.labels[a], g.labels[b])
	})
	return kinds
}
